package probe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/nltklayer/internal/domain"
)

// fakeInterpreter writes a shell script that ignores "-c <script>" and prints body.
func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script interpreter stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "python3")
	script := "#!/bin/sh\ncat > /dev/null\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func testEnv() domain.LayerEnv {
	return domain.LayerEnv{Root: "/opt/python", SearchPath: domain.SearchPath{"/opt/python/nltk_data"}}
}

func TestVersion(t *testing.T) {
	python := fakeInterpreter(t, `echo '{"ok": true, "version": "3.8.1"}'`)
	probe := NewPythonProbe(python, 5*time.Second, nil)

	got, err := probe.Version(context.Background(), testEnv())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if got != "3.8.1" {
		t.Fatalf("expected 3.8.1, got %s", got)
	}
}

func TestDataPath(t *testing.T) {
	python := fakeInterpreter(t, `echo '{"ok": true, "data_path": ["/opt/python/nltk_data", "/usr/share/nltk_data"]}'`)
	probe := NewPythonProbe(python, 5*time.Second, nil)

	got, err := probe.DataPath(context.Background(), testEnv())
	if err != nil {
		t.Fatalf("DataPath() error = %v", err)
	}
	want := []string{"/opt/python/nltk_data", "/usr/share/nltk_data"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("data path mismatch (-want +got):\n%s", diff)
	}
}

func TestPolarityScores(t *testing.T) {
	python := fakeInterpreter(t, `echo '{"ok": true, "scores": [{"neg": 0.0, "neu": 0.182, "pos": 0.818, "compound": 0.6696}]}'`)
	probe := NewPythonProbe(python, 5*time.Second, nil)

	scores, err := probe.PolarityScores(context.Background(), testEnv(), []string{"I love this!"})
	if err != nil {
		t.Fatalf("PolarityScores() error = %v", err)
	}
	want := []domain.SentimentScore{{Negative: 0, Neutral: 0.182, Positive: 0.818, Compound: 0.6696}}
	if diff := cmp.Diff(want, scores); diff != "" {
		t.Fatalf("scores mismatch (-want +got):\n%s", diff)
	}
	if domain.ClassifyCompound(scores[0].Compound) != domain.PolarityPositive {
		t.Fatal("expected positive classification")
	}
}

func TestSentenceTokenize(t *testing.T) {
	python := fakeInterpreter(t, `echo '{"ok": true, "sentences": ["Hello world!", "How are you today?", "I'"'"'m doing great."]}'`)
	probe := NewPythonProbe(python, 5*time.Second, nil)

	got, err := probe.SentenceTokenize(context.Background(), testEnv(), domain.TokenizationSample)
	if err != nil {
		t.Fatalf("SentenceTokenize() error = %v", err)
	}
	if len(got) != 3 || got[2] != "I'm doing great." {
		t.Fatalf("unexpected sentences %q", got)
	}
}

func TestProbeReportsScriptError(t *testing.T) {
	python := fakeInterpreter(t, `echo '{"ok": false, "error": "ModuleNotFoundError: No module named '"'"'nltk'"'"'"}'`)
	probe := NewPythonProbe(python, 5*time.Second, nil)

	_, err := probe.Version(context.Background(), testEnv())
	if err == nil || !strings.Contains(err.Error(), "ModuleNotFoundError") {
		t.Fatalf("expected module error, got %v", err)
	}
}

func TestProbeReportsInterpreterFailure(t *testing.T) {
	python := fakeInterpreter(t, "echo 'Traceback: boom' >&2\nexit 3")
	probe := NewPythonProbe(python, 5*time.Second, nil)

	_, err := probe.Version(context.Background(), testEnv())
	if err == nil || !strings.Contains(err.Error(), "Traceback: boom") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}

func TestProbeReportsMalformedOutput(t *testing.T) {
	python := fakeInterpreter(t, "echo 'not json'")
	probe := NewPythonProbe(python, 5*time.Second, nil)

	if _, err := probe.Version(context.Background(), testEnv()); err == nil {
		t.Fatal("expected malformed output error")
	}
}

func TestProbeMissingInterpreter(t *testing.T) {
	probe := NewPythonProbe(filepath.Join(t.TempDir(), "no-such-python"), time.Second, nil)
	if _, err := probe.Version(context.Background(), testEnv()); err == nil {
		t.Fatal("expected exec error")
	}
}

func TestPythonPathPrependsRoot(t *testing.T) {
	t.Setenv("PYTHONPATH", "/site")
	got := pythonPath("/opt/python")
	want := "/opt/python" + string(os.PathListSeparator) + "/site"
	if got != want {
		t.Fatalf("pythonPath() = %s, want %s", got, want)
	}
}
