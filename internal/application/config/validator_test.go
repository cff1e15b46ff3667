package config

import (
	"strings"
	"testing"

	"github.com/doeshing/nltklayer/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Fetch: domain.FetchSettings{
			TargetDir:       domain.DefaultTargetDir,
			IndexURL:        domain.DefaultIndexURL,
			DownloadTimeout: "5m",
		},
		Layer: domain.LayerSettings{
			Root:         domain.DefaultLayerRoot,
			Python:       domain.DefaultPython,
			ProbeTimeout: "60s",
		},
		Cache: domain.CacheSettings{TTL: "1h", MaxEntries: 16},
		Log:   domain.LogSettings{Level: "info"},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*domain.Config){
		"fetch.target_dir":       func(c *domain.Config) { c.Fetch.TargetDir = "" },
		"fetch.index_url":        func(c *domain.Config) { c.Fetch.IndexURL = "ftp://example.com/index.xml" },
		"fetch.download_timeout": func(c *domain.Config) { c.Fetch.DownloadTimeout = "soon" },
		"layer.python":           func(c *domain.Config) { c.Layer.Python = "" },
		"layer.probe_timeout":    func(c *domain.Config) { c.Layer.ProbeTimeout = "-1s" },
		"cache.ttl":              func(c *domain.Config) { c.Cache.TTL = "forever" },
		"log.level":              func(c *domain.Config) { c.Log.Level = "loud" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			err := Validate(cfg)
			if err == nil || !strings.Contains(err.Error(), field) {
				t.Fatalf("expected error mentioning %s, got %v", field, err)
			}
		})
	}
}
