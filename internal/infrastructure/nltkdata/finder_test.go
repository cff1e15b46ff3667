package nltkdata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/nltklayer/internal/domain"
)

func TestFindResolvesDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "tokenizers", "punkt"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().Find(domain.SearchPath{t.TempDir(), dir}, "tokenizers/punkt")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != filepath.Join(dir, "tokenizers", "punkt") {
		t.Fatalf("unexpected location %s", got)
	}
}

func TestFindResolvesZippedForm(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "vader_lexicon.zip")
	if err := os.WriteFile(archive, zipBytes(t, map[string]string{"vader_lexicon/vader_lexicon.txt": "x"}), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().Find(domain.SearchPath{dir}, "vader_lexicon")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != archive {
		t.Fatalf("expected zip location, got %s", got)
	}
}

func TestFindPrefersEarlierDirectory(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	for _, d := range []string{first, second} {
		if err := os.MkdirAll(filepath.Join(d, "vader_lexicon"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	got, err := NewFinder().Find(domain.SearchPath{first, second}, "vader_lexicon")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(first, "vader_lexicon") {
		t.Fatalf("expected head of search path to win, got %s", got)
	}
}

func TestFindNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := NewFinder().Find(domain.SearchPath{dir}, "tokenizers/punkt")
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || len(nf.Searched) != 1 || nf.Searched[0] != dir {
		t.Fatalf("expected searched dirs in error, got %v", err)
	}
}

func TestFindAfterInstall(t *testing.T) {
	ds := newDataServer(t, layerArchives(t))
	dir := t.TempDir()
	installer := newTestInstaller(ds)
	finder := NewFinder()

	for _, res := range domain.DefaultResources() {
		if _, err := installer.Install(context.Background(), domain.InstallRequest{Dir: dir, Resource: res}); err != nil {
			t.Fatalf("Install(%s) error = %v", res.ID, err)
		}
		if _, err := finder.Find(domain.SearchPath{dir}, res.LookupPath); err != nil {
			t.Fatalf("Find(%s) error = %v", res.LookupPath, err)
		}
	}
}
