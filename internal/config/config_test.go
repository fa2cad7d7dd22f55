package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Coach.Name != "Trainer Max" {
		t.Errorf("Coach.Name = %q, want default", cfg.Coach.Name)
	}
	if cfg.Provider != "" {
		t.Errorf("Provider = %q, want empty (env discovery)", cfg.Provider)
	}
}

func TestLoadFromFullFile(t *testing.T) {
	path := writeConfig(t, `
provider: openai
model: gpt-4o-mini
db_path: /tmp/traino-test.db
coach:
  name: Coach Rivera
  style: calm, methodical
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.DBPath != "/tmp/traino-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Coach.Name != "Coach Rivera" || cfg.Coach.Style != "calm, methodical" {
		t.Errorf("Coach = %+v", cfg.Coach)
	}
}

func TestLoadFromPartialFileKeepsPersonaDefaults(t *testing.T) {
	path := writeConfig(t, "provider: offline\n")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Provider != "offline" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Coach.Name != "Trainer Max" {
		t.Errorf("Coach.Name = %q, want default", cfg.Coach.Name)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := writeConfig(t, "provider: [unclosed\n")
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}
