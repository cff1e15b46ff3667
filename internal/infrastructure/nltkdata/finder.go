package nltkdata

import (
	"archive/zip"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/ports"
)

// NotFoundError reports a lookup that resolved nowhere.
type NotFoundError struct {
	Lookup   string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource %q not found, searched: %s", e.Lookup, strings.Join(e.Searched, ", "))
}

// Unwrap lets errors.Is match domain.ErrResourceNotFound.
func (e *NotFoundError) Unwrap() error {
	return domain.ErrResourceNotFound
}

// Finder resolves lookup paths the way nltk.data.find does: a plain file or
// directory, or the zipped form <lookup>.zip containing <base>/.
type Finder struct{}

// NewFinder returns a Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Find implements ports.ResourceFinder.
func (f *Finder) Find(searchPath domain.SearchPath, lookup string) (string, error) {
	lookup = strings.Trim(filepath.ToSlash(lookup), "/")
	if lookup == "" {
		return "", fmt.Errorf("%w: empty lookup path", domain.ErrResourceNotFound)
	}
	for _, dir := range searchPath {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, filepath.FromSlash(lookup))
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		archive := candidate + ".zip"
		if zipHasPrefix(archive, path.Base(lookup)+"/") {
			return archive, nil
		}
	}
	return "", &NotFoundError{Lookup: lookup, Searched: searchPath.Dirs()}
}

func zipHasPrefix(archive, prefix string) bool {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return false
	}
	defer r.Close()
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, prefix) {
			return true
		}
	}
	return false
}

var _ ports.ResourceFinder = (*Finder)(nil)
