package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	return cfg, cfg.Parse(fs, args)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifescape.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sim != "world" || cfg.Scale != 3 || cfg.TPS != 60 || cfg.SPS != 20 || cfg.Seed != 42 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if len(cfg.Params) != 0 {
		t.Fatalf("expected no params, got %v", cfg.Params)
	}
}

func TestSetCollectsParams(t *testing.T) {
	cfg, err := parse(t, "-set", "rule=B36/S23", "-set", "prey = 12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Params["rule"] != "B36/S23" || cfg.Params["prey"] != "12" {
		t.Fatalf("unexpected params %v", cfg.Params)
	}
	if _, err := parse(t, "-set", "novalue"); err == nil {
		t.Fatalf("expected malformed -set to fail")
	}
}

func TestFileFillsUnsetFlags(t *testing.T) {
	path := writeConfig(t, `
sim: life
scale: 2
sps: 5
seed: 7
params:
  rule: B3/S23
  soup_radius: "12"
`)
	cfg, err := parse(t, "-config", path, "-scale", "4", "-set", "soup_radius=20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sim != "life" || cfg.SPS != 5 || cfg.Seed != 7 {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.Scale != 4 {
		t.Fatalf("expected explicit -scale to win, got %d", cfg.Scale)
	}
	if cfg.TPS != 60 {
		t.Fatalf("expected default tps when file omits it, got %d", cfg.TPS)
	}
	if cfg.Params["rule"] != "B3/S23" || cfg.Params["soup_radius"] != "20" {
		t.Fatalf("unexpected params %v", cfg.Params)
	}
}

func TestFileErrorsAreReported(t *testing.T) {
	if _, err := parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
	path := writeConfig(t, "scale: [1, 2\n")
	if _, err := parse(t, "-config", path); err == nil {
		t.Fatalf("expected YAML syntax error")
	}
}

func TestValidateRejectsBadRates(t *testing.T) {
	if _, err := parse(t, "-sps", "0"); err == nil {
		t.Fatalf("expected non-positive sps to fail")
	}
	if _, err := parse(t, "-scale", "-1"); err == nil {
		t.Fatalf("expected non-positive scale to fail")
	}
}
