package ecology

import (
	simcore "lifescape/internal/core"
	"lifescape/internal/sims/terrain"
	"lifescape/pkg/core"
)

func init() {
	simcore.Register("ecosystem", func(cfg map[string]string) simcore.Sim {
		c := FromMap(cfg)
		ground := terrain.NewWithConfig(terrain.FromMap(cfg))
		return New(c, ground, core.NewRNG(c.Seed))
	})
}
