package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/nltklayer/assets"
	"github.com/doeshing/nltklayer/internal/domain"
	"github.com/doeshing/nltklayer/internal/pkg/logger"
	"github.com/doeshing/nltklayer/internal/ports"
)

// PythonProbe runs the embedded probe script in the layer's interpreter with
// the layer root on PYTHONPATH. One process per call.
type PythonProbe struct {
	python  string
	timeout time.Duration
	script  string
	logger  ports.Logger
}

// NewPythonProbe builds a probe. python defaults to python3.
func NewPythonProbe(python string, timeout time.Duration, log ports.Logger) *PythonProbe {
	if python == "" {
		python = domain.DefaultPython
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &PythonProbe{python: python, timeout: timeout, script: assets.ProbeScript, logger: log}
}

type request struct {
	Op       string   `json:"op"`
	DataPath []string `json:"data_path,omitempty"`
	Texts    []string `json:"texts,omitempty"`
	Text     string   `json:"text,omitempty"`
}

type response struct {
	OK        bool                    `json:"ok"`
	Error     string                  `json:"error"`
	Version   string                  `json:"version"`
	DataPath  []string                `json:"data_path"`
	Scores    []domain.SentimentScore `json:"scores"`
	Sentences []string                `json:"sentences"`
}

// Version reports the importable library version.
func (p *PythonProbe) Version(ctx context.Context, env domain.LayerEnv) (string, error) {
	resp, err := p.call(ctx, env, request{Op: "version"})
	if err != nil {
		return "", err
	}
	return resp.Version, nil
}

// DataPath reports the interpreter's data search path after the layer's
// directories are prepended.
func (p *PythonProbe) DataPath(ctx context.Context, env domain.LayerEnv) ([]string, error) {
	resp, err := p.call(ctx, env, request{Op: "data_path"})
	if err != nil {
		return nil, err
	}
	return resp.DataPath, nil
}

// PolarityScores scores each text with the VADER analyzer.
func (p *PythonProbe) PolarityScores(ctx context.Context, env domain.LayerEnv, texts []string) ([]domain.SentimentScore, error) {
	resp, err := p.call(ctx, env, request{Op: "sentiment", Texts: texts})
	if err != nil {
		return nil, err
	}
	return resp.Scores, nil
}

// SentenceTokenize splits text into sentences.
func (p *PythonProbe) SentenceTokenize(ctx context.Context, env domain.LayerEnv, text string) ([]string, error) {
	resp, err := p.call(ctx, env, request{Op: "sentences", Text: text})
	if err != nil {
		return nil, err
	}
	return resp.Sentences, nil
}

func (p *PythonProbe) call(ctx context.Context, env domain.LayerEnv, req request) (response, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	req.DataPath = env.SearchPath.Dirs()
	payload, err := json.Marshal(req)
	if err != nil {
		return response{}, err
	}

	cmd := exec.CommandContext(ctx, p.python, "-c", p.script)
	cmd.Env = append(os.Environ(), "PYTHONPATH="+pythonPath(env.Root), "PYTHONIOENCODING=utf-8")
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	p.logger.Debug("probe finished", map[string]interface{}{
		"op":          req.Op,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return response{}, fmt.Errorf("probe %s timed out after %s", req.Op, p.timeout)
		}
		return response{}, fmt.Errorf("probe %s: %w: %s", req.Op, err, strings.TrimSpace(stderr.String()))
	}

	var resp response
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return response{}, fmt.Errorf("probe %s: malformed output %q: %w", req.Op, strings.TrimSpace(stdout.String()), err)
	}
	if !resp.OK {
		return response{}, fmt.Errorf("probe %s: %s", req.Op, resp.Error)
	}
	return resp, nil
}

// pythonPath puts the layer root ahead of any inherited PYTHONPATH.
func pythonPath(root string) string {
	if existing := os.Getenv("PYTHONPATH"); existing != "" {
		return root + string(os.PathListSeparator) + existing
	}
	return root
}

var _ ports.LayerProbe = (*PythonProbe)(nil)
