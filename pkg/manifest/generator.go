package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/wordshift/pkg/pipeline"
	"github.com/dtnitsch/wordshift/pkg/storage"
)

// topKeywordCount bounds the keywords listed per comparison.
const topKeywordCount = 10

// Build assembles the manifest for a run from its outcomes.
func Build(runID, format, encoding string, outcomes []*pipeline.Outcome, now time.Time) RunManifest {
	m := RunManifest{
		RunID:       runID,
		GeneratedAt: now.Format(time.RFC3339),
		Format:      format,
		Encoding:    encoding,
		Total:       len(outcomes),
		Comparisons: make([]ComparisonSummary, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		summary := ComparisonSummary{
			Name:      o.Name,
			Output:    o.Output,
			Status:    string(o.Status),
			Reason:    o.Reason,
			Records:   len(o.Records),
			SizeBytes: o.SizeBytes,
			Inputs:    o.Inputs,
		}
		if summary.Inputs == nil {
			summary.Inputs = []pipeline.Input{}
		}

		switch o.Status {
		case pipeline.StatusWritten:
			m.Written++
		case pipeline.StatusSkipped:
			m.Skipped++
		}

		for i, r := range o.Records {
			if i == topKeywordCount {
				break
			}
			summary.TopKeywords = append(summary.TopKeywords, fmt.Sprintf("%s:%s", r.Word, r.ChangeRate))
		}

		m.Comparisons = append(m.Comparisons, summary)
	}

	return m
}

// Save writes the manifest as indented JSON to path.
func Save(m RunManifest, path string, s *storage.Storage) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}

	return nil
}
