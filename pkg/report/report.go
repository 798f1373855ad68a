// Package report ranks comparison records and encodes them into the output
// document consumed by the front-end.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/wordshift/models"
	"github.com/dtnitsch/wordshift/pkg/compare"
	"gopkg.in/yaml.v3"
)

// Options controls how records are ranked and shaped.
type Options struct {
	Format models.OutputFormat
	// Top is the number of records kept. Zero means the format's default.
	Top int
	// Narrative is the scenario text of a narrative report.
	Narrative string
}

// Document is a built report ready for encoding.
type Document struct {
	Format models.OutputFormat
	// Records are the kept records in output order.
	Records []models.ChangeRecord
	// Payload is []models.ChangeRecord or models.NarrativeReport.
	Payload interface{}
}

// FormatDelta renders a rate as a percentage with two decimals.
// Positive values carry an explicit plus sign.
func FormatDelta(rate models.Rate) string {
	if rate.Infinite {
		return "+inf%"
	}

	// The sign follows the unrounded value, so a tiny increase is "+0.00%".
	pct := rate.Value * 100
	if pct == 0 {
		return "0.00%"
	}
	if pct > 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// Build ranks records according to the output format and truncates them.
// The records slice is reordered in place.
func Build(records []models.ChangeRecord, opts Options) (*Document, error) {
	format := opts.Format
	if format == "" {
		format = models.FormatRanked
	}
	top := opts.Top
	if top == 0 {
		top = format.DefaultTop()
	}
	if top < 0 {
		return nil, fmt.Errorf("top must not be negative, got %d", top)
	}

	switch format {
	case models.FormatRanked:
		compare.RankByMagnitude(records)
		kept := compare.Top(records, top)
		return &Document{Format: format, Records: kept, Payload: kept}, nil

	case models.FormatNarrative:
		compare.RankAlphabetical(records)
		kept := compare.Top(records, top)
		keywords := make([]models.KeywordDelta, len(kept))
		for i, r := range kept {
			keywords[i] = models.KeywordDelta{Word: r.Word, Delta: FormatDelta(r.ChangeRate)}
		}
		return &Document{
			Format:  format,
			Records: kept,
			Payload: models.NarrativeReport{Scenario: opts.Narrative, Keywords: keywords},
		}, nil

	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Encode serializes a document. Ranked JSON is compact; narrative JSON is
// indented for readability.
func Encode(doc *Document, encoding models.Encoding) ([]byte, error) {
	switch encoding {
	case models.EncodingYAML:
		data, err := yaml.Marshal(doc.Payload)
		if err != nil {
			return nil, fmt.Errorf("error marshalling YAML: %w", err)
		}
		return data, nil

	case models.EncodingJSON, "":
		var (
			data []byte
			err  error
		)
		if doc.Format == models.FormatNarrative {
			data, err = json.MarshalIndent(doc.Payload, "", "  ")
		} else {
			data, err = json.Marshal(doc.Payload)
		}
		if err != nil {
			return nil, fmt.Errorf("error marshalling JSON: %w", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}
