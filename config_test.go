package stanza

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	if cfg.Name != "Blog" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.ContentDir != "content" || cfg.LayoutsDir != "layouts" ||
		cfg.StaticDir != "static" || cfg.OutputDir != "public" {
		t.Errorf("dir defaults = %+v", cfg)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.CoverMaxWidth != 1200 {
		t.Errorf("CoverMaxWidth = %d", cfg.CoverMaxWidth)
	}
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := SiteConfig{Name: "Mine", OutputDir: "dist"}
	cfg.setDefaults()

	if cfg.Name != "Mine" || cfg.OutputDir != "dist" {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `name: "Example Site"
url: "https://example.com"
description: "Things I wrote"
outputDir: dist
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Example Site" || cfg.URL != "https://example.com" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	// Unset keys fall back to defaults.
	if cfg.ContentDir != "content" || cfg.Addr != ":3000" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig without a config file should use defaults, got %v", err)
	}
	if cfg.Name != "Blog" {
		t.Errorf("Name = %q", cfg.Name)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig should fail when an explicit config file is missing")
	}
}
