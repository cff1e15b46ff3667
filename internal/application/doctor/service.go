package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/ports"
)

// Diagnostic names, in execution order.
const (
	CheckConfig      = "Config file"
	CheckInterpreter = "Python interpreter"
	CheckIndex       = "Package index"
	CheckTargetDir   = "Target directory"
	CheckHistory     = "History"
)

// Service runs environment diagnostics before a fetch or verify.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Index          ports.PackageIndex
	History        ports.HistoryLocator
	// Resources defaults to domain.DefaultResources.
	Resources []domain.Resource
	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
	// Stat defaults to os.Stat.
	Stat func(string) (os.FileInfo, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.CheckResult

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail(CheckConfig, fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok(CheckConfig, fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.interpreterCheck(cfg.Layer.Python))
	checks = append(checks, s.indexCheck(ctx))
	checks = append(checks, s.targetCheck(cfg.Fetch.TargetDir))
	checks = append(checks, s.historyCheck(cfg.History))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) interpreterCheck(python string) domain.CheckResult {
	if python == "" {
		python = domain.DefaultPython
	}
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(python)
	if err != nil {
		return fail(CheckInterpreter, fmt.Sprintf("%s not found: %v", python, err))
	}
	return ok(CheckInterpreter, path)
}

func (s *Service) indexCheck(ctx context.Context) domain.CheckResult {
	if s.Index == nil {
		return warn(CheckIndex, "index client not initialized")
	}
	resources := s.Resources
	if resources == nil {
		resources = domain.DefaultResources()
	}

	result := ok(CheckIndex, "all packages listed")
	for _, res := range resources {
		found, err := s.Index.Contains(ctx, res.ID)
		if err != nil {
			return fail(CheckIndex, fmt.Sprintf("index unavailable: %v", err))
		}
		if !found {
			result.Status = domain.HealthError
			result.Details = "packages missing from index"
			result.Items = append(result.Items, domain.CheckItem{Label: res.ID, Status: domain.HealthError, Message: res.ID + " not listed"})
			continue
		}
		result.Items = append(result.Items, domain.CheckItem{Label: res.ID, Status: domain.HealthOK, Message: res.ID + " listed"})
	}
	return result
}

func (s *Service) targetCheck(dir string) domain.CheckResult {
	if dir == "" {
		dir = domain.DefaultTargetDir
	}
	stat := s.Stat
	if stat == nil {
		stat = os.Stat
	}
	info, err := stat(dir)
	switch {
	case os.IsNotExist(err):
		return warn(CheckTargetDir, dir+" does not exist yet and will be created")
	case err != nil:
		return fail(CheckTargetDir, err.Error())
	case !info.IsDir():
		return fail(CheckTargetDir, dir+" is not a directory")
	}
	return ok(CheckTargetDir, dir)
}

func (s *Service) historyCheck(settings domain.HistorySettings) domain.CheckResult {
	if !settings.Enabled {
		return ok(CheckHistory, "disabled")
	}
	if s.History == nil {
		return warn(CheckHistory, "history store not initialized")
	}
	return ok(CheckHistory, s.History.Path())
}

func ok(name, details string) domain.CheckResult {
	return domain.CheckResult{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.CheckResult {
	return domain.CheckResult{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.CheckResult {
	return domain.CheckResult{Name: name, Status: domain.HealthError, Details: details}
}
