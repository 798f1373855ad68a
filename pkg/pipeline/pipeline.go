// Package pipeline runs one comparison end to end: load both sides, count
// words, compare, rank and write the output document.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtnitsch/wordshift/models"
	"github.com/dtnitsch/wordshift/pkg/analytics"
	"github.com/dtnitsch/wordshift/pkg/compare"
	"github.com/dtnitsch/wordshift/pkg/loader"
	"github.com/dtnitsch/wordshift/pkg/mapreduce"
	"github.com/dtnitsch/wordshift/pkg/report"
	"github.com/dtnitsch/wordshift/pkg/storage"
)

// Status is the result state of a comparison.
type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
)

// topWordsPerInput bounds the most frequent words recorded per input.
const topWordsPerInput = 5

// Input describes one source document of a comparison.
type Input struct {
	Side              string   `json:"side"` // "current" or "compare"
	Path              string   `json:"path"`
	Missing           bool     `json:"missing,omitempty"`
	SHA256            string   `json:"sha256,omitempty"`
	SizeBytes         int64    `json:"size_bytes,omitempty"`
	ModifiedAt        string   `json:"modified_at,omitempty"`
	Language          string   `json:"language,omitempty"`
	EnglishConfidence float64  `json:"english_confidence,omitempty"`
	Tokens            int      `json:"tokens"`
	TopWords          []string `json:"top_words,omitempty"`
}

// Outcome is the result of running a single comparison.
type Outcome struct {
	Name   string
	Output string
	Status Status
	Reason string
	// SizeBytes is the size of the written output document.
	SizeBytes int64
	// Records are the records written, in output order.
	Records []models.ChangeRecord
	Inputs  []Input
}

// Options controls the shape of every output document of a pipeline.
type Options struct {
	Format    models.OutputFormat
	Encoding  models.Encoding
	Top       int
	Narrative string
}

// Config wires a Pipeline's collaborators.
type Config struct {
	Loader    *loader.Loader
	Analytics *analytics.Analytics
	Storage   *storage.Storage
	Logger    *slog.Logger
	// Console receives human-readable diagnostics.
	Console io.Writer
	Options Options
}

type Pipeline struct {
	loader    *loader.Loader
	analytics *analytics.Analytics
	storage   *storage.Storage
	logger    *slog.Logger
	console   io.Writer
	opts      Options
}

// New creates a Pipeline, filling unset collaborators with defaults.
func New(cfg Config) *Pipeline {
	p := &Pipeline{
		loader:    cfg.Loader,
		analytics: cfg.Analytics,
		storage:   cfg.Storage,
		logger:    cfg.Logger,
		console:   cfg.Console,
		opts:      cfg.Options,
	}
	if p.storage == nil {
		p.storage = &storage.Storage{}
	}
	if p.loader == nil {
		p.loader = loader.New(p.storage, nil)
	}
	if p.analytics == nil {
		p.analytics = analytics.New(analytics.Options{})
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.console == nil {
		p.console = io.Discard
	}
	if p.opts.Format == "" {
		p.opts.Format = models.FormatRanked
	}
	if p.opts.Encoding == "" {
		p.opts.Encoding = models.EncodingJSON
	}
	return p
}

// Run executes one comparison. A comparison with an empty side is skipped:
// no output file is written and the outcome says why. Errors are returned
// only for failures other than missing documents.
func (p *Pipeline) Run(cmp models.Comparison) (*Outcome, error) {
	outcome := &Outcome{Name: cmp.Name, Output: cmp.Output}
	logger := p.logger.With("comparison", cmp.Name, "output", cmp.Output)

	fmt.Fprintf(p.console, "\n[%s] analyzing...\n", cmp.Output)
	logger.Info("Starting comparison", "current", cmp.Current, "compare", cmp.Compare)

	current, inputs, err := p.loadSide("current", cmp.Current, logger)
	if err != nil {
		return nil, err
	}
	outcome.Inputs = append(outcome.Inputs, inputs...)

	previous, inputs, err := p.loadSide("compare", cmp.Compare, logger)
	if err != nil {
		return nil, err
	}
	outcome.Inputs = append(outcome.Inputs, inputs...)

	if len(current) == 0 || len(previous) == 0 {
		fmt.Fprintln(p.console, "Not enough data, skipping analysis.")
		logger.Warn("Skipping comparison", "current_words", len(current), "compare_words", len(previous))
		outcome.Status = StatusSkipped
		outcome.Reason = "empty frequency table"
		return outcome, nil
	}

	records := compare.Compare(current, previous)
	doc, err := report.Build(records, report.Options{
		Format:    p.opts.Format,
		Top:       p.opts.Top,
		Narrative: p.opts.Narrative,
	})
	if err != nil {
		return nil, fmt.Errorf("comparison %s: %w", cmp.Name, err)
	}

	data, err := report.Encode(doc, p.opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("comparison %s: %w", cmp.Name, err)
	}

	if err := p.storage.SaveFile(cmp.Output, data); err != nil {
		return nil, fmt.Errorf("comparison %s: %w", cmp.Name, err)
	}

	stats, err := p.storage.GetFileStats(cmp.Output)
	if err != nil {
		return nil, fmt.Errorf("comparison %s: %w", cmp.Name, err)
	}

	outcome.Status = StatusWritten
	outcome.SizeBytes = stats.SizeBytes
	outcome.Records = doc.Records

	fmt.Fprintf(p.console, "%s written.\n", cmp.Output)
	logger.Info("Comparison written", "words", len(records), "kept", len(doc.Records), "size_bytes", outcome.SizeBytes)
	return outcome, nil
}

// RunAll executes comparisons one after another, stopping at the first error.
func (p *Pipeline) RunAll(comparisons []models.Comparison) ([]*Outcome, error) {
	outcomes := make([]*Outcome, 0, len(comparisons))
	for _, cmp := range comparisons {
		outcome, err := p.Run(cmp)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// loadSide loads and counts every document of one side and merges the counts.
// Missing documents contribute nothing.
func (p *Pipeline) loadSide(side string, paths []string, logger *slog.Logger) (models.FrequencyTable, []Input, error) {
	tables := make([]models.FrequencyTable, 0, len(paths))
	inputs := make([]Input, 0, len(paths))

	for _, path := range paths {
		input := Input{Side: side, Path: path}

		doc, err := p.loader.Load(path)
		if err != nil {
			if errors.Is(err, loader.ErrMissing) {
				fmt.Fprintf(p.console, "File not found: %s\n", path)
				logger.Warn("Document missing", "side", side, "path", path)
				input.Missing = true
				inputs = append(inputs, input)
				continue
			}
			return nil, nil, err
		}

		if doc.NonEnglish() {
			logger.Warn("Document does not look like English; stopwords may not apply",
				"path", path, "language", doc.Detection.Language, "english_confidence", doc.Detection.EnglishConfidence)
		}

		table := mapreduce.Map(doc.Text, p.analytics)
		input.SHA256 = doc.SHA256
		input.SizeBytes = doc.SizeBytes
		input.ModifiedAt = doc.ModTime.UTC().Format(time.RFC3339)
		input.Language = doc.Detection.Language
		input.EnglishConfidence = doc.Detection.EnglishConfidence
		input.Tokens = table.Total()
		input.TopWords = mapreduce.TopKeywords(table, topWordsPerInput)
		inputs = append(inputs, input)
		tables = append(tables, table)
	}

	return mapreduce.Reduce(tables), inputs, nil
}
