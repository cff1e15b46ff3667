package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/nltklayer/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubIndex struct {
	listed map[string]bool
	err    error
}

func (s stubIndex) Contains(_ context.Context, id string) (bool, error) {
	return s.listed[id], s.err
}

type stubHistory string

func (s stubHistory) Path() string { return string(s) }

func foundPython(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func TestRunHealthyEnvironment(t *testing.T) {
	cfg := domain.Config{ConfigFormatVersion: "1"}
	cfg.Fetch.TargetDir = t.TempDir()
	cfg.Layer.Python = "python3"
	cfg.History.Enabled = true

	svc := &Service{
		ConfigProvider: stubConfig{cfg: cfg},
		Index:          stubIndex{listed: map[string]bool{"vader_lexicon": true, "punkt": true}},
		History:        stubHistory("/tmp/runs.db"),
		LookPath:       foundPython,
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{CheckConfig, CheckInterpreter, CheckIndex, CheckTargetDir, CheckHistory}
	var got []string
	for _, c := range report.Checks {
		got = append(got, c.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("check order mismatch (-want +got):\n%s", diff)
	}
	if !report.OK() {
		t.Fatalf("expected healthy report, got %+v", report.Checks)
	}
	if report.Checks[1].Details != "/usr/bin/python3" {
		t.Fatalf("unexpected interpreter details %q", report.Checks[1].Details)
	}
	if report.Checks[4].Details != "/tmp/runs.db" {
		t.Fatalf("unexpected history details %q", report.Checks[4].Details)
	}
}

func TestRunReportsProblems(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := domain.Config{}
	cfg.Fetch.TargetDir = file
	cfg.Layer.Python = "python3"

	svc := &Service{
		ConfigProvider: stubConfig{cfg: cfg},
		Index:          stubIndex{listed: map[string]bool{"punkt": true}},
		LookPath: func(string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	statuses := map[string]domain.HealthStatus{}
	for _, c := range report.Checks {
		statuses[c.Name] = c.Status
	}
	want := map[string]domain.HealthStatus{
		CheckConfig:      domain.HealthOK,
		CheckInterpreter: domain.HealthError,
		CheckIndex:       domain.HealthError,
		CheckTargetDir:   domain.HealthError,
		CheckHistory:     domain.HealthOK,
	}
	if diff := cmp.Diff(want, statuses); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
	if report.OK() {
		t.Fatal("expected report to fail")
	}
}

func TestRunMissingTargetDirIsWarning(t *testing.T) {
	cfg := domain.Config{}
	cfg.Fetch.TargetDir = filepath.Join(t.TempDir(), "nltk_data")
	svc := &Service{
		ConfigProvider: stubConfig{cfg: cfg},
		Index:          stubIndex{err: errors.New("offline")},
		LookPath:       foundPython,
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := report.Checks[3].Status; got != domain.HealthWarn {
		t.Fatalf("expected warn for missing target dir, got %s", got)
	}
	if got := report.Checks[2].Status; got != domain.HealthError {
		t.Fatalf("expected index failure when offline, got %s", got)
	}
}

func TestRunStopsOnConfigError(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("bad yaml")}}
	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected config error")
	}
	if len(report.Checks) != 1 || report.Checks[0].Status != domain.HealthError {
		t.Fatalf("unexpected report %+v", report.Checks)
	}
}
