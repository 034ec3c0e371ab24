package run

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dtnitsch/sentence-robot/internal/common"
	"github.com/dtnitsch/sentence-robot/models"
	"github.com/dtnitsch/sentence-robot/pkg/config"
	"github.com/dtnitsch/sentence-robot/pkg/mapreduce"
	"github.com/dtnitsch/sentence-robot/pkg/pipeline"
	"github.com/dtnitsch/sentence-robot/pkg/storage"
	"github.com/urfave/cli/v2"
)

// TopKeywordCount is how many aggregate keywords the run stats list.
const TopKeywordCount = 10

func RunAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))

	term := strings.TrimSpace(c.String("term"))
	if term == "" {
		fmt.Fprintln(os.Stderr, "Error: No search term provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  sentence-robot run --term "Michael Jackson" --max-sentences 5`)
		return cli.Exit("", 1)
	}

	cfg, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	ApplyOverrides(cfg, Overrides{
		Source:           c.String("source"),
		Language:         c.String("language"),
		Provider:         c.String("provider"),
		Workers:          c.Int("workers"),
		MaximumSentences: c.Int("max-sentences"),
		MaximumSet:       c.IsSet("max-sentences"),
	})
	if err := config.Validate(cfg); err != nil {
		logger.Error("invalid config", "error", err)
		return cli.Exit(fmt.Sprintf("invalid config: %v", err), 2)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	output, err := Execute(ctx, cfg, term, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("run failed: %v", err), 1)
	}

	store := &storage.Storage{}
	if err := store.Write(c.String("output"), output, c.String("format")); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// Execute builds the pipeline described by cfg and runs it once for term.
func Execute(ctx context.Context, cfg *models.Config, term string, logger *slog.Logger) (*FinalOutput, error) {
	startTime := time.Now()

	source, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	analyzer, err := newAnalyzer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	seg, err := common.NewSegmenter(cfg, logger)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(source, analyzer, seg,
		pipeline.WithLogger(logger),
		pipeline.WithWorkers(cfg.Pipeline.Workers))

	content := &models.Content{
		SearchTerm:       term,
		MaximumSentences: cfg.Pipeline.MaximumSentences,
	}
	if err := p.Run(ctx, content); err != nil {
		return nil, err
	}

	return &FinalOutput{
		Status: "success",
		Stats: Stats{
			SearchTerm:  term,
			Source:      cfg.Retrieval.Source,
			Provider:    cfg.Analysis.Provider,
			Language:    content.Language,
			Sentences:   len(content.Sentences),
			TopKeywords: mapreduce.TopKeywords(mapreduce.CountKeywords(content.Sentences), TopKeywordCount),
			ContentHash: common.ContentHash([]byte(content.SourceContentOriginal)),
			DurationMS:  time.Since(startTime).Milliseconds(),
		},
		Content: content,
	}, nil
}
