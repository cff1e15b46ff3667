package verify

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/pkg/logger"
	"github.com/doeshing/nltklayer/internal/pkg/safe"
	"github.com/doeshing/nltklayer/internal/ports"
)

// Check names, in execution order.
const (
	CheckBasicImport    = "Basic Import"
	CheckDataPaths      = "Data Paths"
	CheckLayerStructure = "Layer Structure"
	CheckSentiment      = "Sentiment Analysis"
	CheckTokenization   = "Tokenization"
)

// Options overrides configuration for a single run.
type Options struct {
	LayerRoot string
}

// Service smoke-tests a built layer.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Finder         ports.ResourceFinder
	Probe          ports.LayerProbe
	Logger         ports.Logger
	Recorder       ports.RunRecorder
	// Stat defaults to os.Stat.
	Stat func(string) (os.FileInfo, error)
	Now  func() time.Time
}

type check struct {
	name string
	run  func(context.Context, domain.LayerEnv) domain.CheckResult
}

// Run executes every check in order. A failing or panicking check never
// prevents the next one from running; the returned error is reserved for
// configuration problems.
func (s *Service) Run(ctx context.Context, opts Options) (domain.VerifyReport, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.VerifyReport{}, fmt.Errorf("load config: %w", err)
	}

	root := cfg.Layer.Root
	if opts.LayerRoot != "" {
		root = opts.LayerRoot
	}
	if root == "" {
		root = domain.DefaultLayerRoot
	}

	env := domain.LayerEnv{
		Root:       root,
		SearchPath: domain.SearchPath(cfg.Fetch.SearchDirs).Prepend(domain.DataDir(root)),
	}

	checks := []check{
		{CheckBasicImport, s.checkImport},
		{CheckDataPaths, s.checkDataPaths},
		{CheckLayerStructure, s.checkLayerStructure},
		{CheckSentiment, s.checkSentiment},
		{CheckTokenization, s.checkTokenization},
	}

	report := domain.VerifyReport{LayerRoot: root, SearchPath: env.SearchPath}
	for _, c := range checks {
		report.Checks = append(report.Checks, s.runCheck(ctx, env, c))
	}

	s.record(report)
	return report, nil
}

func (s *Service) runCheck(ctx context.Context, env domain.LayerEnv, c check) domain.CheckResult {
	s.logger().Debug("running check", map[string]interface{}{"check": c.name})

	var result domain.CheckResult
	err := safe.Call(func() error {
		result = c.run(ctx, env)
		return nil
	})
	if err != nil {
		s.logger().Error("check crashed", err, map[string]interface{}{"check": c.name})
		return fail(c.name, fmt.Sprintf("%s crashed: %v", c.name, err))
	}
	result.Name = c.name
	if !result.Passed() {
		s.logger().Warn("check failed", map[string]interface{}{"check": c.name, "details": result.Details})
	}
	return result
}

func (s *Service) record(report domain.VerifyReport) {
	if s.Recorder == nil {
		return
	}
	summary := report.Summary()
	rec := domain.RunRecord{
		ID:        uuid.NewString(),
		Kind:      domain.RunKindVerify,
		Timestamp: s.now(),
		Target:    report.LayerRoot,
		Passed:    summary.Passed,
		Total:     summary.Total,
		Failures:  domain.Failures(report.Checks),
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
