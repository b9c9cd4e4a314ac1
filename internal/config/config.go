package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Source tree
	SourceDir string

	// Outputs
	MarkdownOut  string
	HTMLOut      string
	TemplatePath string
	TOC          bool
	TOCDepth     int

	// Preview server
	Serve  bool
	Port   string
	APIKey string
}

func Load() Config {
	cfg := Config{
		SourceDir:    envOr("MDPRESS_SOURCE", "."),
		MarkdownOut:  os.Getenv("MDPRESS_MARKDOWN_OUT"),
		HTMLOut:      envOr("MDPRESS_HTML_OUT", "document.html"),
		TemplatePath: os.Getenv("MDPRESS_TEMPLATE"),
		TOC:          envBool("MDPRESS_TOC", false),
		TOCDepth:     envInt("MDPRESS_TOC_DEPTH", 3),

		Serve:  envBool("MDPRESS_SERVE", false),
		Port:   envOr("PORT", "8090"),
		APIKey: os.Getenv("MDPRESS_API_KEY"),
	}

	if cfg.TOCDepth <= 0 {
		cfg.TOCDepth = 3
	}

	return cfg
}

func (c Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("MDPRESS_SOURCE is required")
	}
	if !c.Serve && c.MarkdownOut == "" && c.HTMLOut == "" {
		return fmt.Errorf("at least one of MDPRESS_MARKDOWN_OUT or MDPRESS_HTML_OUT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
