package domain

import "path/filepath"

// Resource describes an NLTK data package the layer depends on.
type Resource struct {
	// ID is the package identifier in the NLTK data index.
	ID string
	// Subdir is where the package is installed, relative to the data directory.
	// Empty means the top level.
	Subdir string
	// LookupPath is the logical path probed to confirm the package is present.
	LookupPath string
}

// String implements fmt.Stringer.
func (r Resource) String() string {
	return r.ID
}

// InstallDir returns the directory the package archive is unpacked into.
func (r Resource) InstallDir(dataDir string) string {
	if r.Subdir == "" {
		return dataDir
	}
	return filepath.Join(dataDir, r.Subdir)
}

// DefaultResources returns the packages the layer ships with. A fresh slice is
// returned on each call.
func DefaultResources() []Resource {
	return []Resource{
		{ID: "vader_lexicon", Subdir: "", LookupPath: "vader_lexicon"},
		{ID: "punkt", Subdir: "tokenizers", LookupPath: "tokenizers/punkt"},
	}
}

// InstallRequest asks an installer to place one resource under Dir.
type InstallRequest struct {
	Dir      string
	Resource Resource
	Force    bool
}

// InstallResult describes a completed install.
type InstallResult struct {
	ResourceID  string
	ArchivePath string
	Bytes       int64
	UpToDate    bool
}
