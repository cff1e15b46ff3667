package nltkdata

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/pkg/logger"
	"github.com/doeshing/nltklayer/internal/ports"
	"github.com/doeshing/nltklayer/internal/version"
)

// Installer downloads index packages and unpacks them into a data directory.
type Installer struct {
	index      *IndexClient
	httpClient *http.Client
	timeout    time.Duration
	logger     ports.Logger
}

// NewInstaller builds an installer. timeout bounds each download; zero disables it.
func NewInstaller(index *IndexClient, client *http.Client, timeout time.Duration, log ports.Logger) *Installer {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Installer{index: index, httpClient: client, timeout: timeout, logger: log}
}

// Install implements ports.ResourceInstaller. The archive is kept next to its
// extracted tree so a later run can tell whether it is up to date.
func (i *Installer) Install(ctx context.Context, req domain.InstallRequest) (domain.InstallResult, error) {
	res := req.Resource
	idx, err := i.fetchIndex(ctx)
	if err != nil {
		return domain.InstallResult{}, err
	}
	pkg, ok := idx.Lookup(res.ID)
	if !ok {
		return domain.InstallResult{}, fmt.Errorf("%w: %s", domain.ErrPackageNotInIndex, res.ID)
	}

	destDir := res.InstallDir(req.Dir)
	if err := os.MkdirAll(destDir, domain.DirectoryPermissions); err != nil {
		return domain.InstallResult{}, fmt.Errorf("create %s: %w", destDir, err)
	}
	archive := filepath.Join(destDir, res.ID+".zip")
	result := domain.InstallResult{ResourceID: res.ID, ArchivePath: archive}

	if !req.Force && archiveCurrent(archive, pkg) {
		result.UpToDate = true
		i.logger.Info("package already up to date", map[string]interface{}{"resource": res.ID, "archive": archive})
	} else {
		n, err := i.download(ctx, pkg, archive)
		if err != nil {
			return domain.InstallResult{}, err
		}
		result.Bytes = n
	}

	if err := extractArchive(archive, destDir); err != nil {
		return domain.InstallResult{}, fmt.Errorf("extract %s: %w", archive, err)
	}
	return result, nil
}

// fetchIndex applies the download timeout to the index request as well.
func (i *Installer) fetchIndex(ctx context.Context) (Index, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	return i.index.Fetch(ctx)
}

func (i *Installer) download(ctx context.Context, pkg Package, dest string) (int64, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pkg.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent())

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download %s: %w", pkg.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download %s: HTTP %d", pkg.ID, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+pkg.ID+"-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpPath)
	}()

	md5sum, shasum := md5.New(), sha256.New()
	n, err := io.Copy(io.MultiWriter(tmp, md5sum, shasum), resp.Body)
	if err != nil {
		return 0, fmt.Errorf("download %s: %w", pkg.ID, err)
	}
	if pkg.Size > 0 && n != pkg.Size {
		return 0, fmt.Errorf("download %s: got %d bytes, index says %d", pkg.ID, n, pkg.Size)
	}
	if err := verifyChecksum(pkg, md5sum, shasum); err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return 0, fmt.Errorf("install %s: %w", dest, err)
	}

	i.logger.Info("package downloaded", map[string]interface{}{"resource": pkg.ID, "bytes": n, "archive": dest})
	return n, nil
}

// verifyChecksum prefers sha256 when the index publishes one.
func verifyChecksum(pkg Package, md5sum, shasum hash.Hash) error {
	switch {
	case pkg.SHA256Checksum != "":
		if got := hex.EncodeToString(shasum.Sum(nil)); got != pkg.SHA256Checksum {
			return fmt.Errorf("%w: %s sha256 %s, want %s", domain.ErrChecksumMismatch, pkg.ID, got, pkg.SHA256Checksum)
		}
	case pkg.Checksum != "":
		if got := hex.EncodeToString(md5sum.Sum(nil)); got != pkg.Checksum {
			return fmt.Errorf("%w: %s md5 %s, want %s", domain.ErrChecksumMismatch, pkg.ID, got, pkg.Checksum)
		}
	}
	return nil
}

func archiveCurrent(archive string, pkg Package) bool {
	if pkg.Checksum == "" && pkg.SHA256Checksum == "" {
		return false
	}
	f, err := os.Open(archive)
	if err != nil {
		return false
	}
	defer f.Close()

	md5sum, shasum := md5.New(), sha256.New()
	if _, err := io.Copy(io.MultiWriter(md5sum, shasum), f); err != nil {
		return false
	}
	return verifyChecksum(pkg, md5sum, shasum) == nil
}

func userAgent() string {
	return "nltklayer/" + version.Version
}

var _ ports.ResourceInstaller = (*Installer)(nil)
