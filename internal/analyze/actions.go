package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/wordshift/internal/common"
	"github.com/dtnitsch/wordshift/models"
	"github.com/dtnitsch/wordshift/pkg/analytics"
	"github.com/dtnitsch/wordshift/pkg/detector"
	"github.com/dtnitsch/wordshift/pkg/help"
	"github.com/dtnitsch/wordshift/pkg/loader"
	"github.com/dtnitsch/wordshift/pkg/manifest"
	"github.com/dtnitsch/wordshift/pkg/mapreduce"
	"github.com/dtnitsch/wordshift/pkg/pipeline"
	"github.com/dtnitsch/wordshift/pkg/storage"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

// RunAction runs every configured comparison.
func RunAction(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return execute(c, cfg)
}

// CompareAction runs a single comparison described by flags.
func CompareAction(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	current := common.SplitList(c.String("current"))
	compare := common.SplitList(c.String("compare"))
	if len(current) == 0 || len(compare) == 0 {
		fmt.Fprintln(os.Stderr, "Error: both --current and --compare are required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  wordshift compare --current current_minutes.txt --compare previous_minutes.txt --output change.json`)
		return cli.Exit("", 1)
	}

	cfg.Comparisons = []models.Comparison{{
		Name:    c.String("name"),
		Current: current,
		Compare: compare,
		Output:  c.String("output"),
	}}
	return execute(c, cfg)
}

// FreqAction prints the most frequent words of a single document.
func FreqAction(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	path := c.String("file")
	if path == "" {
		return cli.Exit("no document provided via --file flag", 1)
	}

	l := loader.New(&storage.Storage{}, nil)
	doc, err := l.Load(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	n := c.Int("words")
	if !c.IsSet("words") && cfg.Top > 0 {
		n = cfg.Top
	}

	table := mapreduce.Map(doc.Text, newAnalytics(cfg))
	fmt.Fprintf(c.App.Writer, "%s: %d tokens, %d distinct words\n", path, table.Total(), len(table))
	return mapreduce.WriteTopKeywords(c.App.Writer, table, n)
}

// QuickstartAction prints the quick start cheat sheet.
func QuickstartAction(c *cli.Context) error {
	fmt.Print(help.QuickstartYAML)
	return nil
}

func execute(c *cli.Context, cfg *models.Config) error {
	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("invalid configuration: %v", err), 1)
	}
	format, _ := cfg.OutputFormat()
	encoding, _ := cfg.OutputEncoding()

	runID := uuid.NewString()
	logger := newLogger(c).With("run_id", runID)
	logger.Info("Starting run", "comparisons", len(cfg.Comparisons), "format", format, "encoding", encoding)

	s := &storage.Storage{}
	var d *detector.Detector
	if cfg.DetectLanguage {
		d = detector.New()
	}

	p := pipeline.New(pipeline.Config{
		Loader:    loader.New(s, d),
		Analytics: newAnalytics(cfg),
		Storage:   s,
		Logger:    logger,
		Console:   os.Stderr,
		Options: pipeline.Options{
			Format:    format,
			Encoding:  encoding,
			Top:       cfg.Top,
			Narrative: cfg.Narrative,
		},
	})

	outcomes, runErr := p.RunAll(cfg.Comparisons)

	if path := c.String("manifest"); path != "" {
		m := manifest.Build(runID, string(format), string(encoding), outcomes, time.Now())
		if err := manifest.Save(m, path, s); err != nil {
			logger.Error("Failed to save manifest", "path", path, "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "Run manifest saved to: %s\n", path)
		}
	}

	if c.Bool("print") {
		printOutcomes(os.Stdout, outcomes, isTerminal(os.Stdout))
	}

	if runErr != nil {
		logger.Error("Run failed", "error", runErr)
		return cli.Exit(runErr.Error(), 1)
	}
	logger.Info("Run finished", "comparisons", len(outcomes))
	return nil
}

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func newAnalytics(cfg *models.Config) *analytics.Analytics {
	return analytics.New(analytics.Options{
		MinWordLength:   cfg.MinWordLength,
		DomainStopwords: cfg.DomainStopwords,
		ExtraStopwords:  cfg.Stopwords,
	})
}

// buildConfig loads the config file and applies flag overrides.
func buildConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("encoding") {
		cfg.Encoding = c.String("encoding")
	}
	if c.IsSet("top") {
		cfg.Top = c.Int("top")
	}
	if c.IsSet("narrative") {
		cfg.Narrative = c.String("narrative")
	}
	if c.IsSet("min-word-length") {
		cfg.MinWordLength = c.Int("min-word-length")
	}
	if c.IsSet("domain-stopwords") {
		cfg.DomainStopwords = c.Bool("domain-stopwords")
	}
	if c.IsSet("detect-language") {
		cfg.DetectLanguage = c.Bool("detect-language")
	}
	if extra := common.SplitList(c.String("stopwords")); len(extra) > 0 {
		cfg.Stopwords = append(cfg.Stopwords, extra...)
	}

	return cfg, nil
}
