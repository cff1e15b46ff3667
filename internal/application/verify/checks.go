package verify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/nltklayer/internal/domain"
)

func (s *Service) checkImport(ctx context.Context, env domain.LayerEnv) domain.CheckResult {
	version, err := s.Probe.Version(ctx, env)
	if err != nil {
		return fail(CheckBasicImport, fmt.Sprintf("Failed to import NLTK: %v", err))
	}
	return ok(CheckBasicImport, fmt.Sprintf("NLTK version: %s", version))
}

// checkDataPaths prints the interpreter's nltk.data.path and resolves the
// layer lookups against the same search path the fetcher verifies with.
func (s *Service) checkDataPaths(ctx context.Context, env domain.LayerEnv) domain.CheckResult {
	paths, err := s.Probe.DataPath(ctx, env)
	if err != nil {
		return fail(CheckDataPaths, fmt.Sprintf("Failed to read NLTK data paths: %v", err))
	}
	result := ok(CheckDataPaths, fmt.Sprintf("NLTK data paths: [%s]", strings.Join(paths, ", ")))
	for _, lookup := range domain.LayerLookups() {
		if _, err := s.Finder.Find(env.SearchPath, lookup.Path); err != nil {
			result.Status = domain.HealthError
			result.Items = append(result.Items, item(lookup.Label, domain.HealthError, fmt.Sprintf("%s not found at %s", lookup.Label, lookup.Path)))
			continue
		}
		result.Items = append(result.Items, item(lookup.Label, domain.HealthOK, lookup.Label+" found"))
	}
	return result
}

func (s *Service) checkLayerStructure(_ context.Context, env domain.LayerEnv) domain.CheckResult {
	stat := s.Stat
	if stat == nil {
		stat = os.Stat
	}
	result := ok(CheckLayerStructure, env.Root)
	for _, path := range domain.LayerPaths(env.Root) {
		if _, err := stat(path); err != nil {
			result.Status = domain.HealthError
			result.Items = append(result.Items, item(path, domain.HealthError, path+" not found"))
			continue
		}
		result.Items = append(result.Items, item(path, domain.HealthOK, path))
	}
	return result
}

// checkSentiment passes whenever scoring itself works. Polarity mismatches are
// reported as warnings only, since lexicon versions drift.
func (s *Service) checkSentiment(ctx context.Context, env domain.LayerEnv) domain.CheckResult {
	cases := domain.DefaultSentimentCases()
	texts := make([]string, len(cases))
	for i, c := range cases {
		texts[i] = c.Text
	}

	scores, err := s.Probe.PolarityScores(ctx, env, texts)
	if err != nil {
		return fail(CheckSentiment, fmt.Sprintf("Sentiment analysis failed: %v", err))
	}
	if len(scores) != len(cases) {
		return fail(CheckSentiment, fmt.Sprintf("Sentiment analysis failed: scored %d of %d inputs", len(scores), len(cases)))
	}

	result := ok(CheckSentiment, "Sentiment analysis working")
	for i, c := range cases {
		compound := scores[i].Compound
		detected := domain.ClassifyCompound(compound)
		status := domain.HealthOK
		if detected != c.Expected {
			status = domain.HealthWarn
		}
		result.Items = append(result.Items, item(c.Text, status, fmt.Sprintf("'%s' -> %s (compound: %.3f)", c.Text, detected, compound)))
	}
	return result
}

// checkTokenization treats a sentence count mismatch as a warning.
func (s *Service) checkTokenization(ctx context.Context, env domain.LayerEnv) domain.CheckResult {
	sentences, err := s.Probe.SentenceTokenize(ctx, env, domain.TokenizationSample)
	if err != nil {
		return fail(CheckTokenization, fmt.Sprintf("Tokenization failed: %v", err))
	}
	if len(sentences) != domain.TokenizationExpectedCount {
		return warn(CheckTokenization, fmt.Sprintf("Expected %d sentences, got %d: %s",
			domain.TokenizationExpectedCount, len(sentences), quoteAll(sentences)))
	}
	return ok(CheckTokenization, fmt.Sprintf("Tokenization successful: %s", quoteAll(sentences)))
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func item(label string, status domain.HealthStatus, message string) domain.CheckItem {
	return domain.CheckItem{Label: label, Status: status, Message: message}
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
