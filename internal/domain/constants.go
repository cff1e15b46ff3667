package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for extracted data files (rw-r--r--)
	FilePermissions = 0o644
)

// Layer layout constants
const (
	// DefaultLayerRoot is where the function runtime mounts the layer's python tree
	DefaultLayerRoot = "/opt/python"
	// DataDirName is the data directory name inside the layer root
	DataDirName = "nltk_data"
	// DefaultTargetDir is the default fetch destination
	DefaultTargetDir = DefaultLayerRoot + "/" + DataDirName
	// DefaultPython is the interpreter used to probe the layer
	DefaultPython = "python3"
)

// Environment overrides
const (
	EnvDataDir   = "NLTK_DATA"
	EnvLayerRoot = "NLTKLAYER_LAYER_ROOT"
	EnvPython    = "NLTKLAYER_PYTHON"
	EnvConfig    = "NLTKLAYER_CONFIG"
	EnvDebug     = "NLTKLAYER_DEBUG"
)

// DefaultIndexURL is the published NLTK data index.
const DefaultIndexURL = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/index.xml"

// Timeout and duration constants
const (
	// DefaultDownloadTimeout bounds each resource download
	DefaultDownloadTimeout = 5 * time.Minute
	// DefaultProbeTimeout bounds each interpreter probe
	DefaultProbeTimeout = 60 * time.Second
	// DefaultCacheTTL is how long a fetched index stays fresh
	DefaultCacheTTL = time.Hour
)

// Limit constants
const (
	// DefaultMaxCacheEntries is the maximum number of cache entries
	DefaultMaxCacheEntries = 16
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
