package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/nltklayer/assets"
	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/pkg/filesystem"
	"github.com/doeshing/nltklayer/internal/ports"
)

// FileLoader loads YAML configuration from ~/.nltklayer/config.yaml (overridable via NLTKLAYER_CONFIG).
// Values from the file are layered over the embedded defaults, then environment overrides apply.
type FileLoader struct {
	overridePath string
	getenv       func(string) string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, getenv: os.Getenv}
}

// Load implements ports.ConfigProvider. A missing file is not an error.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(l.Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return domain.Config{}, err
	}

	l.applyEnv(&cfg)
	return expandPaths(cfg), nil
}

// Path returns the config file location that Load reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandHome(l.overridePath)
	}
	if custom := l.getenv(domain.EnvConfig); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filesystem.StatePath("config.yaml")
}

func (l *FileLoader) applyEnv(cfg *domain.Config) {
	if dir := l.getenv(domain.EnvDataDir); dir != "" {
		cfg.Fetch.TargetDir = dir
	}
	if root := l.getenv(domain.EnvLayerRoot); root != "" {
		cfg.Layer.Root = root
	}
	if python := l.getenv(domain.EnvPython); python != "" {
		cfg.Layer.Python = python
	}
}

func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func expandPaths(cfg domain.Config) domain.Config {
	cfg.Fetch.TargetDir = filesystem.ExpandHome(cfg.Fetch.TargetDir)
	dirs := make([]string, 0, len(cfg.Fetch.SearchDirs))
	for _, dir := range cfg.Fetch.SearchDirs {
		dirs = append(dirs, filesystem.ExpandHome(dir))
	}
	cfg.Fetch.SearchDirs = dirs
	cfg.Layer.Root = filesystem.ExpandHome(cfg.Layer.Root)
	cfg.Cache.Dir = filesystem.ExpandHome(cfg.Cache.Dir)
	cfg.History.Path = filesystem.ExpandHome(cfg.History.Path)
	cfg.Log.File = filesystem.ExpandHome(cfg.Log.File)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
