package config

import (
	"path/filepath"
	"testing"
)

func samplePath() string {
	return filepath.Join("..", "..", "mcsync.example.yaml")
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(samplePath())
	if err != nil {
		t.Fatalf("failed to load sample config: %v", err)
	}
	if cfg.MC.Server != "mc.example.com" {
		t.Fatalf("unexpected server %q", cfg.MC.Server)
	}
	if cfg.MC.Top != 50 || cfg.MC.Skip != 0 {
		t.Fatalf("unexpected paging defaults top=%d skip=%d", cfg.MC.Top, cfg.MC.Skip)
	}
	if cfg.Export.Module != "assets" {
		t.Fatalf("unexpected export module %q", cfg.Export.Module)
	}
	if !cfg.Scheduler.Enabled || cfg.Scheduler.Tick != "15m" {
		t.Fatalf("unexpected scheduler config %+v", cfg.Scheduler)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MC_SERVER", "mc.internal")
	t.Setenv("MC_USER", "operator")
	t.Setenv("MC_PASSWORD", "hunter2")
	cfg, err := Load(samplePath())
	if err != nil {
		t.Fatalf("failed to load sample config: %v", err)
	}
	if cfg.MC.Server != "mc.internal" {
		t.Fatalf("env server override not applied, got %q", cfg.MC.Server)
	}
	if cfg.MC.User != "operator" || cfg.MC.Password != "hunter2" {
		t.Fatalf("env credential overrides not applied, got %q/%q", cfg.MC.User, cfg.MC.Password)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
