package main

import (
	"log"
	"os"

	"github.com/dtnitsch/text-analyzer/internal/analyze"
	"github.com/dtnitsch/text-analyzer/internal/history"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "text-analyzer",
		Usage: "analyze text files: character/word/line counts and frequency tables",
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "analyze one or more files and print a report",
				ArgsUsage: "<file> [file...]",
				Action:    analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "counts",
						Aliases: []string{"c"},
						Usage:   "show overall statistics (characters, words, lines)",
					},
					&cli.BoolFlag{
						Name:  "freq",
						Usage: "show character and word frequency tables",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "limit the word frequency table to the top N words (0 = all)",
					},
					&cli.BoolFlag{
						Name:  "no-stopwords",
						Usage: "filter common stopwords from the word frequency table",
					},
					&cli.IntFlag{
						Name:  "buckets",
						Usage: "bucket count for the word table",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the report to a file instead of stdout",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "report format: text, json, or yaml",
					},
					&cli.BoolFlag{
						Name:  "html",
						Usage: "treat inputs as HTML and analyze the readable text",
					},
					&cli.BoolFlag{
						Name:  "detect-language",
						Usage: "detect the language of each input",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of files analyzed concurrently",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "do not record this run in the history database",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to the YAML config file",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "list previously recorded analysis runs",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to list (0 = all)",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "only list runs for this file",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: text or yaml",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
