package nltkdata

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/infrastructure/cache"
	"github.com/doeshing/nltklayer/internal/pkg/logger"
	"github.com/doeshing/nltklayer/internal/ports"
)

// Index is the parsed NLTK data index.
type Index struct {
	XMLName  xml.Name  `xml:"nltk_data"`
	Packages []Package `xml:"packages>package"`
}

// Package is one downloadable entry of the index.
type Package struct {
	ID             string `xml:"id,attr"`
	Name           string `xml:"name,attr"`
	Subdir         string `xml:"subdir,attr"`
	URL            string `xml:"url,attr"`
	Size           int64  `xml:"size,attr"`
	UnzippedSize   int64  `xml:"unzipped_size,attr"`
	Checksum       string `xml:"checksum,attr"`
	SHA256Checksum string `xml:"sha256_checksum,attr"`
	Unzip          string `xml:"unzip,attr"`
}

// Lookup finds a package by id.
func (i Index) Lookup(id string) (Package, bool) {
	for _, pkg := range i.Packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return Package{}, false
}

// ParseIndex decodes an index document.
func ParseIndex(data []byte) (Index, error) {
	var idx Index
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&idx); err != nil {
		return Index{}, fmt.Errorf("parse index: %w", err)
	}
	return idx, nil
}

// IndexClient fetches the index once per process, consulting an optional disk cache.
type IndexClient struct {
	url        string
	httpClient *http.Client
	cache      ports.CacheStore
	logger     ports.Logger

	mu     sync.Mutex
	loaded *Index
}

// NewIndexClient builds a client. cacheStore may be nil.
func NewIndexClient(url string, client *http.Client, cacheStore ports.CacheStore, log ports.Logger) *IndexClient {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &IndexClient{url: url, httpClient: client, cache: cacheStore, logger: log}
}

// Fetch returns the index. Only a successful load is memoized, and only a
// document that parses is written to the cache.
func (c *IndexClient) Fetch(ctx context.Context) (Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded != nil {
		return *c.loaded, nil
	}

	if idx, ok := c.fromCache(); ok {
		c.loaded = &idx
		return idx, nil
	}

	data, err := c.download(ctx)
	if err != nil {
		return Index{}, err
	}
	idx, err := ParseIndex(data)
	if err != nil {
		return Index{}, err
	}
	c.store(data)
	c.loaded = &idx
	return idx, nil
}

// Contains reports whether the index lists id.
func (c *IndexClient) Contains(ctx context.Context, id string) (bool, error) {
	idx, err := c.Fetch(ctx)
	if err != nil {
		return false, err
	}
	_, ok := idx.Lookup(id)
	return ok, nil
}

// fromCache reports a miss for entries that no longer parse, so the caller
// refetches and overwrites them.
func (c *IndexClient) fromCache() (Index, bool) {
	if c.cache == nil {
		return Index{}, false
	}
	entry, ok, err := c.cache.Get(cache.KeyFor(c.url))
	if err != nil {
		c.logger.Warn("index cache unreadable", map[string]interface{}{"error": err.Error()})
		return Index{}, false
	}
	if !ok {
		return Index{}, false
	}
	idx, err := ParseIndex(entry.Data)
	if err != nil {
		c.logger.Warn("cached index is corrupt, refetching", map[string]interface{}{"url": c.url, "error": err.Error()})
		return Index{}, false
	}
	c.logger.Debug("index served from cache", map[string]interface{}{"url": c.url})
	return idx, true
}

func (c *IndexClient) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create index request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch index: %s returned %s", c.url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return data, nil
}

func (c *IndexClient) store(data []byte) {
	if c.cache == nil {
		return
	}
	entry := domain.CacheEntry{Key: cache.KeyFor(c.url), Source: c.url, Data: data}
	if err := c.cache.Set(entry); err != nil {
		c.logger.Warn("index cache write failed", map[string]interface{}{"error": err.Error()})
	}
}
