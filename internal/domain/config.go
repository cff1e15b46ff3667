package domain

import "time"

// Config mirrors ~/.nltklayer/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Fetch               FetchSettings   `yaml:"fetch"`
	Layer               LayerSettings   `yaml:"layer"`
	Cache               CacheSettings   `yaml:"cache"`
	History             HistorySettings `yaml:"history"`
	Log                 LogSettings     `yaml:"log"`
}

// FetchSettings configures the downloader.
type FetchSettings struct {
	TargetDir       string   `yaml:"target_dir"`
	IndexURL        string   `yaml:"index_url"`
	DownloadTimeout string   `yaml:"download_timeout"`
	SearchDirs      []string `yaml:"search_dirs"`
}

// Timeout parses DownloadTimeout, falling back to the default.
func (f FetchSettings) Timeout() time.Duration {
	return parseDuration(f.DownloadTimeout, DefaultDownloadTimeout)
}

// LayerSettings locates the layer under test.
type LayerSettings struct {
	Root         string `yaml:"root"`
	Python       string `yaml:"python"`
	ProbeTimeout string `yaml:"probe_timeout"`
}

// Timeout parses ProbeTimeout, falling back to the default.
func (l LayerSettings) Timeout() time.Duration {
	return parseDuration(l.ProbeTimeout, DefaultProbeTimeout)
}

// CacheSettings controls the on-disk index cache.
type CacheSettings struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir"`
	TTL        string `yaml:"ttl"`
	MaxEntries int    `yaml:"max_entries"`
}

// TTLDuration parses TTL, falling back to the default.
func (c CacheSettings) TTLDuration() time.Duration {
	return parseDuration(c.TTL, DefaultCacheTTL)
}

// HistorySettings controls the run ledger.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogSettings controls diagnostic logging.
type LogSettings struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
