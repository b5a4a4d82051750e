package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	// TPS is the render rate; SPS caps how many simulation ticks run per second.
	TPS  int
	SPS  int
	Seed int64
	// HUD is the width in pixels of the parameter panel; zero hides it.
	HUD  int
	File string

	// Params is forwarded to the simulation factory.
	Params map[string]string

	overrides kvList
}

// fileConfig mirrors Config for YAML config files. Pointer fields tell an
// omitted key apart from a zero value.
type fileConfig struct {
	Sim    string            `yaml:"sim"`
	Scale  *int              `yaml:"scale"`
	TPS    *int              `yaml:"tps"`
	SPS    *int              `yaml:"sps"`
	Seed   *int64            `yaml:"seed"`
	HUD    *int              `yaml:"hud"`
	Params map[string]string `yaml:"params"`
}

type kvList []string

func (l *kvList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "world", Scale: 3, TPS: 60, SPS: 20, Seed: 42, HUD: 240, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
	fs.StringVar(&c.File, "config", c.File, "YAML config file")
	fs.Var(&c.overrides, "set", "simulation parameter in key=value form (repeatable)")
}

// Parse parses args into c. Values from the -config file fill in every
// setting that was not given explicitly on the command line, and -set
// entries win over the file's params.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if c.File != "" {
		fc, err := loadFile(c.File)
		if err != nil {
			return err
		}
		c.apply(fc, explicit)
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	for _, kv := range c.overrides {
		key, value, _ := strings.Cut(kv, "=")
		c.Params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return c.validate()
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func (c *Config) apply(fc fileConfig, explicit map[string]bool) {
	if fc.Sim != "" && !explicit["sim"] {
		c.Sim = fc.Sim
	}
	setInt := func(name string, dst *int, v *int) {
		if v != nil && !explicit[name] {
			*dst = *v
		}
	}
	setInt("scale", &c.Scale, fc.Scale)
	setInt("tps", &c.TPS, fc.TPS)
	setInt("sps", &c.SPS, fc.SPS)
	setInt("hud", &c.HUD, fc.HUD)
	if fc.Seed != nil && !explicit["seed"] {
		c.Seed = *fc.Seed
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	for k, v := range fc.Params {
		c.Params[k] = v
	}
}

func (c *Config) validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.SPS <= 0 {
		return fmt.Errorf("sps must be positive, got %d", c.SPS)
	}
	if c.HUD < 0 {
		c.HUD = 0
	}
	return nil
}
