package app

import (
	"context"
	"net/http"

	appconfig "github.com/doeshing/nltklayer/internal/application/config"
	"github.com/doeshing/nltklayer/internal/application/doctor"
	"github.com/doeshing/nltklayer/internal/application/fetch"
	"github.com/doeshing/nltklayer/internal/application/verify"
	"github.com/doeshing/nltklayer/internal/infrastructure/cache"
	"github.com/doeshing/nltklayer/internal/infrastructure/config"
	"github.com/doeshing/nltklayer/internal/infrastructure/history"
	"github.com/doeshing/nltklayer/internal/infrastructure/nltkdata"
	"github.com/doeshing/nltklayer/internal/infrastructure/probe"
	"github.com/doeshing/nltklayer/internal/pkg/logger"
	"github.com/doeshing/nltklayer/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	FetchService   *fetch.Service
	VerifyService  *verify.Service
	DoctorService  *doctor.Service
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	HistoryStore   ports.HistoryRepository
	// IndexCache is nil when caching is disabled.
	IndexCache     *cache.FileCache
	Logger         ports.Logger
}

// Options selects how the container is built.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{Verbose: opts.Verbose, Settings: cfg.Log})

	var (
		indexCache *cache.FileCache
		cacheStore ports.CacheStore
	)
	if cfg.Cache.Enabled && cfg.Cache.Dir != "" {
		indexCache = cache.NewFileCache(cfg.Cache.Dir, cfg.Cache.TTLDuration(), cfg.Cache.MaxEntries)
		cacheStore = indexCache
	}

	historyStore := history.NewLazyStore(cfg.History.Path)
	var recorder ports.RunRecorder
	if cfg.History.Enabled {
		recorder = historyStore
	}

	httpClient := &http.Client{}
	indexClient := &http.Client{Timeout: cfg.Fetch.Timeout()}
	index := nltkdata.NewIndexClient(cfg.Fetch.IndexURL, indexClient, cacheStore, log)
	finder := nltkdata.NewFinder()

	fetchService := &fetch.Service{
		ConfigProvider: cfgLoader,
		Installer:      nltkdata.NewInstaller(index, httpClient, cfg.Fetch.Timeout(), log),
		Finder:         finder,
		Logger:         log,
		Recorder:       recorder,
	}

	verifyService := &verify.Service{
		ConfigProvider: cfgLoader,
		Finder:         finder,
		Probe:          probe.NewPythonProbe(cfg.Layer.Python, cfg.Layer.Timeout(), log),
		Logger:         log,
		Recorder:       recorder,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Index:          index,
		History:        historyStore,
	}

	return &Container{
		FetchService:   fetchService,
		VerifyService:  verifyService,
		DoctorService:  doctorService,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		HistoryStore:   historyStore,
		IndexCache:     indexCache,
		Logger:         log,
	}, nil
}
