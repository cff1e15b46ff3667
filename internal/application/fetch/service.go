package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/pkg/logger"
	"github.com/doeshing/nltklayer/internal/pkg/safe"
	"github.com/doeshing/nltklayer/internal/ports"
)

// Options overrides configuration for a single run.
type Options struct {
	TargetDir string
	Force     bool
}

// Service downloads the layer's data resources and confirms they resolve.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Installer      ports.ResourceInstaller
	Finder         ports.ResourceFinder
	Logger         ports.Logger
	Recorder       ports.RunRecorder
	// Resources defaults to domain.DefaultResources.
	Resources []domain.Resource
	Now       func() time.Time
}

// Run acquires every resource, then looks each one up. A failed acquisition
// never stops the loop; the returned error is reserved for configuration problems.
func (s *Service) Run(ctx context.Context, opts Options) (domain.FetchReport, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.FetchReport{}, fmt.Errorf("load config: %w", err)
	}

	target := cfg.Fetch.TargetDir
	if opts.TargetDir != "" {
		target = opts.TargetDir
	}
	if target == "" {
		target = domain.DefaultTargetDir
	}

	resources := s.Resources
	if resources == nil {
		resources = domain.DefaultResources()
	}

	report := domain.FetchReport{TargetDir: target}
	for _, res := range resources {
		report.Acquisitions = append(report.Acquisitions, s.acquire(ctx, target, res, opts.Force))
	}

	report.SearchPath = domain.SearchPath(cfg.Fetch.SearchDirs).Prepend(target)
	for _, res := range resources {
		report.Verifications = append(report.Verifications, s.verify(report.SearchPath, res))
	}

	s.record(report)
	return report, nil
}

func (s *Service) acquire(ctx context.Context, dir string, res domain.Resource, force bool) domain.CheckResult {
	s.logger().Info("downloading resource", map[string]interface{}{"resource": res.ID, "dir": dir})

	var result domain.InstallResult
	err := safe.Call(func() error {
		var installErr error
		result, installErr = s.Installer.Install(ctx, domain.InstallRequest{Dir: dir, Resource: res, Force: force})
		return installErr
	})
	if err != nil {
		s.logger().Error("download failed", err, map[string]interface{}{"resource": res.ID})
		return fail(res.ID, err.Error())
	}

	if result.UpToDate {
		return ok(res.ID, "already up to date")
	}
	return ok(res.ID, fmt.Sprintf("%s written to %s", humanize.Bytes(uint64(result.Bytes)), result.ArchivePath))
}

func (s *Service) verify(path domain.SearchPath, res domain.Resource) domain.CheckResult {
	var location string
	err := safe.Call(func() error {
		var findErr error
		location, findErr = s.Finder.Find(path, res.LookupPath)
		return findErr
	})
	if err != nil {
		s.logger().Warn("verification failed", map[string]interface{}{"resource": res.ID, "error": err.Error()})
		return fail(res.ID, err.Error())
	}
	s.logger().Debug("resource resolved", map[string]interface{}{"resource": res.ID, "location": location})
	return ok(res.ID, location)
}

func (s *Service) record(report domain.FetchReport) {
	if s.Recorder == nil {
		return
	}
	verified := report.Verified()
	rec := domain.RunRecord{
		ID:        uuid.NewString(),
		Kind:      domain.RunKindFetch,
		Timestamp: s.now(),
		Target:    report.TargetDir,
		Passed:    verified.Passed,
		Total:     verified.Total,
		Failures:  domain.Failures(report.Verifications),
	}
	if err := s.Recorder.Save(rec); err != nil {
		s.logger().Warn("failed to record run", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) logger() ports.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logger.NewNop()
}

func ok(name, details string) domain.CheckResult {
	return domain.CheckResult{Name: name, Status: domain.HealthOK, Details: details}
}

func fail(name, details string) domain.CheckResult {
	return domain.CheckResult{Name: name, Status: domain.HealthError, Details: details}
}
