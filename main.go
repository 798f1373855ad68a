package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/wordshift/internal/analyze"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "wordshift",
		Usage: "Rank the words whose usage changed most between two policy statements",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML or TOML config file (chosen by extension)",
				EnvVars: []string{"WORDSHIFT_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "Output format: ranked or narrative",
				EnvVars: []string{"WORDSHIFT_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "encoding",
				Usage:   "Output encoding: json or yaml",
				EnvVars: []string{"WORDSHIFT_ENCODING"},
			},
			&cli.IntFlag{
				Name:    "top",
				Usage:   "Records kept per comparison (0 = 50 for ranked, 10 for narrative)",
				EnvVars: []string{"WORDSHIFT_TOP"},
			},
			&cli.StringFlag{
				Name:    "narrative",
				Usage:   "Scenario text embedded in narrative output",
				EnvVars: []string{"WORDSHIFT_NARRATIVE"},
			},
			&cli.IntFlag{
				Name:  "min-word-length",
				Usage: "Shortest word kept (default 4)",
			},
			&cli.BoolFlag{
				Name:    "domain-stopwords",
				Usage:   "Also ignore meeting, committee, fed and federal",
				EnvVars: []string{"WORDSHIFT_DOMAIN_STOPWORDS"},
			},
			&cli.StringFlag{
				Name:  "stopwords",
				Usage: "Comma-separated extra words to ignore",
			},
			&cli.BoolFlag{
				Name:  "detect-language",
				Usage: "Warn when a document does not look like English",
			},
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Write a JSON run manifest to this path",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "Print the top records of each comparison as a table",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
		},
		Action: analyze.RunAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run every configured comparison (current vs previous and vs last year by default)",
				Action: analyze.RunAction,
			},
			{
				Name:  "compare",
				Usage: "Compare one document set against another",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "current",
						Usage: "Comma-separated current document paths",
					},
					&cli.StringFlag{
						Name:  "compare",
						Usage: "Comma-separated documents to compare against",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "change.json",
						Usage:   "Output file path",
					},
					&cli.StringFlag{
						Name:  "name",
						Value: "compare",
						Usage: "Comparison name used in logs and the manifest",
					},
				},
				Action: analyze.CompareAction,
			},
			{
				Name:  "freq",
				Usage: "Print the most frequent words of one document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Document path",
					},
					&cli.IntFlag{
						Name:    "words",
						Aliases: []string{"n"},
						Value:   25,
						Usage:   "Number of words to print (the global --top is used when this is not set)",
					},
				},
				Action: analyze.FreqAction,
			},
			{
				Name:   "quickstart",
				Usage:  "Print a quick start cheat sheet",
				Action: analyze.QuickstartAction,
			},
		},
	}
}
