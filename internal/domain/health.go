package domain

// HealthStatus indicates check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// CheckItem is one line of evidence inside a check.
type CheckItem struct {
	Label   string
	Status  HealthStatus
	Message string
}

// CheckResult captures a single check outcome.
type CheckResult struct {
	Name    string
	Status  HealthStatus
	Details string
	Items   []CheckItem
}

// Passed reports whether the check counts towards the pass tally. Warnings pass.
func (c CheckResult) Passed() bool {
	return c.Status == HealthOK || c.Status == HealthWarn
}

// RunSummary is the pass tally of a group of checks.
type RunSummary struct {
	Passed int
	Total  int
}

// OK is true when every check passed.
func (s RunSummary) OK() bool {
	return s.Passed == s.Total
}

// Summarize counts passed checks.
func Summarize(results []CheckResult) RunSummary {
	summary := RunSummary{Total: len(results)}
	for _, r := range results {
		if r.Passed() {
			summary.Passed++
		}
	}
	return summary
}

// Failures returns the names of checks that did not pass.
func Failures(results []CheckResult) []string {
	var names []string
	for _, r := range results {
		if !r.Passed() {
			names = append(names, r.Name)
		}
	}
	return names
}

// FetchReport aggregates a fetch run.
type FetchReport struct {
	TargetDir     string
	SearchPath    SearchPath
	Acquisitions  []CheckResult
	Verifications []CheckResult
}

// Downloaded tallies acquisition results.
func (r FetchReport) Downloaded() RunSummary {
	return Summarize(r.Acquisitions)
}

// Verified tallies post-acquisition lookups.
func (r FetchReport) Verified() RunSummary {
	return Summarize(r.Verifications)
}

// OK is true only when every resource verified. Acquisition failures alone do
// not fail the run.
func (r FetchReport) OK() bool {
	return r.Verified().OK()
}

// VerifyReport aggregates a verify run.
type VerifyReport struct {
	LayerRoot  string
	SearchPath SearchPath
	Checks     []CheckResult
}

// Summary tallies the checks.
func (r VerifyReport) Summary() RunSummary {
	return Summarize(r.Checks)
}

// OK is true when every check passed.
func (r VerifyReport) OK() bool {
	return r.Summary().OK()
}

// HealthReport aggregates environment diagnostics.
type HealthReport struct {
	Checks []CheckResult
}

// OK is true when no diagnostic reported an error.
func (r HealthReport) OK() bool {
	return Summarize(r.Checks).OK()
}
