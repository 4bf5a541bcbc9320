package stanza

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a stanza site. It is read once at
// command start and passed explicitly to the builder and servers.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Blog")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	ContentDir string `mapstructure:"contentDir"` // Markdown posts (default "content")
	LayoutsDir string `mapstructure:"layoutsDir"` // html/template layouts (default "layouts")
	StaticDir  string `mapstructure:"staticDir"`  // Static assets copied verbatim (default "static")
	OutputDir  string `mapstructure:"outputDir"`  // Build output (default "public")

	Addr          string `mapstructure:"addr"`          // Dev server listen address (default ":3000")
	CoverMaxWidth int    `mapstructure:"coverMaxWidth"` // Cover thumbnail width cap (default 1200)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.LayoutsDir == "" {
		c.LayoutsDir = "layouts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.CoverMaxWidth == 0 {
		c.CoverMaxWidth = 1200
	}
}

// LoadConfig reads the site configuration from path (or ./config.yaml when
// path is empty), applying STANZA_* environment overrides. A missing default
// config file is not an error; an explicitly named one must exist.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()

	// Registering defaults also makes the keys visible to AutomaticEnv, so
	// STANZA_OUTPUTDIR and friends work without a config file.
	v.SetDefault("name", "Blog")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("contentDir", "content")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("addr", ":3000")
	v.SetDefault("coverMaxWidth", 1200)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("STANZA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if path != "" || !notFound {
			return SiteConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}
