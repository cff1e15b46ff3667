package nltkdata

import (
	"archive/zip"
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// zipBytes builds an archive from name/content pairs.
func zipBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

type dataServer struct {
	*httptest.Server
	archives      map[string][]byte
	checksums     map[string]string
	indexHits     atomic.Int32
	downloadHits  atomic.Int32
	missingFromIx map[string]bool
}

// newDataServer serves an index.xml plus one zip per package id.
func newDataServer(t *testing.T, archives map[string][]byte) *dataServer {
	t.Helper()
	ds := &dataServer{archives: archives, checksums: map[string]string{}, missingFromIx: map[string]bool{}}
	for id, data := range archives {
		ds.checksums[id] = md5Hex(data)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/index.xml", func(w http.ResponseWriter, r *http.Request) {
		ds.indexHits.Add(1)
		var b strings.Builder
		b.WriteString("<?xml version=\"1.0\"?>\n<nltk_data>\n<packages>\n")
		for id, data := range ds.archives {
			if ds.missingFromIx[id] {
				continue
			}
			fmt.Fprintf(&b, "<package id=%q name=%q subdir=\"misc\" url=\"%s/packages/%s.zip\" size=\"%d\" checksum=%q unzip=\"1\" />\n",
				id, id, ds.URL, id, len(data), ds.checksums[id])
		}
		b.WriteString("</packages>\n<collections/>\n</nltk_data>\n")
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(b.String()))
	})
	mux.HandleFunc("/packages/", func(w http.ResponseWriter, r *http.Request) {
		ds.downloadHits.Add(1)
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/packages/"), ".zip")
		data, ok := ds.archives[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	})
	ds.Server = httptest.NewServer(mux)
	t.Cleanup(ds.Close)
	return ds
}

func (ds *dataServer) indexURL() string {
	return ds.URL + "/index.xml"
}
