package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/nltklayer/internal/domain"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c := NewFileCache(t.TempDir(), time.Hour, 4)
	key := KeyFor("https://example.com/index.xml")

	if err := c.Set(domain.CacheEntry{Key: key, Source: "https://example.com/index.xml", Data: []byte("<nltk_data/>")}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	entry, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if string(entry.Data) != "<nltk_data/>" {
		t.Fatalf("unexpected data %q", entry.Data)
	}
}

func TestFileCacheExpiresEntries(t *testing.T) {
	c := NewFileCache(t.TempDir(), time.Minute, 4)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	if err := c.Set(domain.CacheEntry{Key: "k", Data: []byte("x")}); err != nil {
		t.Fatal(err)
	}
	c.now = func() time.Time { return base.Add(2 * time.Minute) }

	if _, ok, err := c.Get("k"); err != nil || ok {
		t.Fatalf("expected expired miss, got ok=%v err=%v", ok, err)
	}
	if _, err := os.Stat(c.pathFor("k")); !os.IsNotExist(err) {
		t.Fatalf("expected expired entry removed, stat err = %v", err)
	}
}

func TestFileCacheMissOnEmptyKey(t *testing.T) {
	c := NewFileCache(t.TempDir(), time.Hour, 4)
	if _, ok, err := c.Get(""); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestFileCacheEvictsOldest(t *testing.T) {
	c := NewFileCache(t.TempDir(), 0, 2)
	for i, key := range []string{"a", "b", "c"} {
		if err := c.Set(domain.CacheEntry{Key: key, Data: []byte{byte(i)}}); err != nil {
			t.Fatal(err)
		}
		past := time.Now().Add(time.Duration(i-10) * time.Minute)
		if err := os.Chtimes(c.pathFor(key), past, past); err != nil {
			t.Fatal(err)
		}
	}
	files, err := os.ReadDir(c.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected eviction down to 2 entries, got %d", len(files))
	}
	if _, ok, _ := c.Get("a"); ok {
		t.Fatal("expected oldest entry to be evicted")
	}
}

func TestFileCacheSizeAndClear(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := NewFileCache(dir, time.Hour, 4)

	count, total, err := c.Size()
	if err != nil || count != 0 || total != 0 {
		t.Fatalf("Size() on missing dir = %d, %d, %v", count, total, err)
	}

	for _, src := range []string{"a", "b"} {
		if err := c.Set(domain.CacheEntry{Key: KeyFor(src), Source: src, Data: []byte(src)}); err != nil {
			t.Fatal(err)
		}
	}
	count, total, err = c.Size()
	if err != nil || count != 2 || total == 0 {
		t.Fatalf("Size() = %d, %d, %v", count, total, err)
	}

	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected cache dir removed, stat err = %v", err)
	}
}
