package models

import (
	"fmt"
	"strings"
)

// OutputFormat selects the output contract written for a comparison.
type OutputFormat string

const (
	// FormatRanked writes every kept record with raw counts, ordered by the
	// magnitude of change.
	FormatRanked OutputFormat = "ranked"
	// FormatNarrative wraps a short keyword list together with a narrative text.
	FormatNarrative OutputFormat = "narrative"
)

// DefaultTop returns how many records a format keeps when no limit is configured.
func (f OutputFormat) DefaultTop() int {
	if f == FormatNarrative {
		return 10
	}
	return 50
}

// ParseOutputFormat resolves a format name. The empty string means FormatRanked.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ranked", "ranked-array", "array":
		return FormatRanked, nil
	case "narrative", "narrative-composite", "composite":
		return FormatNarrative, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want ranked or narrative)", s)
	}
}

// Encoding is the serialization used for output documents.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// ParseEncoding resolves an encoding name. The empty string means EncodingJSON.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return EncodingJSON, nil
	case "yaml", "yml":
		return EncodingYAML, nil
	default:
		return "", fmt.Errorf("unknown encoding %q (want json or yaml)", s)
	}
}

// KeywordDelta is one entry of a narrative report.
type KeywordDelta struct {
	Word  string `json:"word" yaml:"word"`
	Delta string `json:"delta" yaml:"delta"`
}

// NarrativeReport is the composite output document: a caller-supplied
// scenario text plus the top keyword deltas.
type NarrativeReport struct {
	Scenario string         `json:"scenario" yaml:"scenario"`
	Keywords []KeywordDelta `json:"keywords" yaml:"keywords"`
}
