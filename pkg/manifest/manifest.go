package manifest

import "github.com/dtnitsch/wordshift/pkg/pipeline"

// RunManifest represents the structure of the run summary file.
// It lists every comparison of a run, whether its output was written, and
// which source documents fed it, so a front-end can tell skipped analyses
// apart from stale output files.
type RunManifest struct {
	RunID       string              `json:"run_id"`
	GeneratedAt string              `json:"generated_at"`
	Format      string              `json:"format"`
	Encoding    string              `json:"encoding"`
	Total       int                 `json:"total"`
	Written     int                 `json:"written"`
	Skipped     int                 `json:"skipped"`
	Comparisons []ComparisonSummary `json:"comparisons"`
}

// ComparisonSummary represents summary information for a single comparison.
type ComparisonSummary struct {
	Name        string           `json:"name"`
	Output      string           `json:"output"`
	Status      string           `json:"status"` // "written" or "skipped"
	Reason      string           `json:"reason,omitempty"`
	Records     int              `json:"records"`
	SizeBytes   int64            `json:"size_bytes,omitempty"`
	TopKeywords []string         `json:"top_keywords,omitempty"`
	Inputs      []pipeline.Input `json:"inputs"`
}
