// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application services in internal/application depend only on these
// contracts. Concrete adapters (HTTP index client, zip installer, python
// probe, sqlite ledger) live under internal/infrastructure.
package ports

import (
	"context"

	"github.com/doeshing/nltklayer/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically read from ~/.nltklayer/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ResourceInstaller acquires a data resource into a directory.
type ResourceInstaller interface {
	Install(ctx context.Context, req domain.InstallRequest) (domain.InstallResult, error)
}

// ResourceFinder resolves a lookup path against an explicit search path.
// It returns the resolved location, or an error wrapping domain.ErrResourceNotFound.
type ResourceFinder interface {
	Find(path domain.SearchPath, lookup string) (string, error)
}

// LayerProbe exercises the packaged library from inside the layer's own runtime.
type LayerProbe interface {
	Version(ctx context.Context, env domain.LayerEnv) (string, error)
	// DataPath reports nltk.data.path as seen by the interpreter.
	DataPath(ctx context.Context, env domain.LayerEnv) ([]string, error)
	PolarityScores(ctx context.Context, env domain.LayerEnv, texts []string) ([]domain.SentimentScore, error)
	SentenceTokenize(ctx context.Context, env domain.LayerEnv, text string) ([]string, error)
}

// PackageIndex answers whether the remote data index lists a package.
type PackageIndex interface {
	Contains(ctx context.Context, id string) (bool, error)
}

// HistoryLocator reports where run summaries are stored.
type HistoryLocator interface {
	Path() string
}

// CacheStore persists remote documents between runs.
type CacheStore interface {
	Get(key string) (domain.CacheEntry, bool, error)
	Set(entry domain.CacheEntry) error
}

// RunRecorder stores run summaries.
type RunRecorder interface {
	Save(domain.RunRecord) error
}

// HistoryRepository extends RunRecorder with read and maintenance operations.
type HistoryRepository interface {
	RunRecorder
	HistoryLocator
	Records(limit int) ([]domain.RunRecord, error)
	Clear() error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, rotating files).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
