package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/sentence-robot/internal/run"
	"github.com/dtnitsch/sentence-robot/internal/sanitize"
	"github.com/dtnitsch/sentence-robot/pkg/help"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "sentence-robot",
		Usage:   "Turn a search term into keyword-annotated sentences",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Fetch an article, split it into sentences and annotate them with keywords",
				Action: run.RunAction,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:    "term",
						Aliases: []string{"t"},
						Usage:   "Search term of the article to fetch",
					},
					&cli.IntFlag{
						Name:    "max-sentences",
						Aliases: []string{"n"},
						Usage:   "Maximum number of sentences to keep (default from config)",
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Retrieval source: wikipedia, algorithmia or html",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Article language as a BCP 47 tag",
					},
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Keyword provider: watson or local",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Sentences analyzed at once",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write output to a file instead of stdout",
					},
				),
			},
			{
				Name:   "sanitize",
				Usage:  "Sanitize and segment a local article without calling any service",
				Action: sanitize.SanitizeAction,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Value:   "-",
						Usage:   "Article file to read, - for stdin",
					},
					&cli.IntFlag{
						Name:    "max-sentences",
						Aliases: []string{"n"},
						Usage:   "Maximum number of sentences to keep (0 keeps all)",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "Output format: text, json or yaml",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write output to a file instead of stdout",
					},
				),
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick-start guide as YAML",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML config file (default: config.yaml when present)",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log debug output",
		},
	}
}
