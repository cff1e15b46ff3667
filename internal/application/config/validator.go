package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/doeshing/nltklayer/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateFetch(cfg.Fetch); err != nil {
		return err
	}
	if err := validateLayer(cfg.Layer); err != nil {
		return err
	}
	if err := validateCache(cfg.Cache); err != nil {
		return err
	}
	if err := validateLog(cfg.Log); err != nil {
		return err
	}
	return nil
}

func validateFetch(fetch domain.FetchSettings) error {
	if fetch.TargetDir == "" {
		return fmt.Errorf("fetch.target_dir must be set")
	}
	u, err := url.Parse(fetch.IndexURL)
	if err != nil {
		return fmt.Errorf("fetch.index_url invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("fetch.index_url must be http or https, got %q", fetch.IndexURL)
	}
	if err := validateDuration("fetch.download_timeout", fetch.DownloadTimeout); err != nil {
		return err
	}
	for _, dir := range fetch.SearchDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("fetch.search_dirs cannot contain empty entries")
		}
	}
	return nil
}

func validateLayer(layer domain.LayerSettings) error {
	if layer.Root == "" {
		return fmt.Errorf("layer.root must be set")
	}
	if layer.Python == "" {
		return fmt.Errorf("layer.python must be set")
	}
	return validateDuration("layer.probe_timeout", layer.ProbeTimeout)
}

func validateCache(cache domain.CacheSettings) error {
	if err := validateDuration("cache.ttl", cache.TTL); err != nil {
		return err
	}
	if cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must be >= 0")
	}
	return nil
}

func validateLog(log domain.LogSettings) error {
	switch strings.ToLower(log.Level) {
	case "", "trace", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log.level must be trace|debug|info|warn|error, got %s", log.Level)
	}
}

func validateDuration(field, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s invalid: %w", field, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be > 0", field)
	}
	return nil
}
