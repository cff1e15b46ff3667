package domain

import "time"

// RunKind names the procedure a record came from.
type RunKind string

const (
	RunKindFetch  RunKind = "fetch"
	RunKindVerify RunKind = "verify"
)

// RunRecord summarizes one fetch or verify run.
type RunRecord struct {
	ID        string    `json:"id"`
	Kind      RunKind   `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target"`
	Passed    int       `json:"passed"`
	Total     int       `json:"total"`
	Failures  []string  `json:"failures,omitempty"`
}

// OK reports whether the recorded run succeeded.
func (r RunRecord) OK() bool {
	return r.Passed == r.Total
}

// CacheEntry stores a cached remote document.
type CacheEntry struct {
	Key       string    `json:"key"`
	Source    string    `json:"source"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}
