package run

import (
	"context"
	"fmt"

	"github.com/dtnitsch/sentence-robot/models"
	"github.com/dtnitsch/sentence-robot/pkg/analytics"
	"github.com/dtnitsch/sentence-robot/pkg/config"
	"github.com/dtnitsch/sentence-robot/pkg/fetcher"
	"github.com/dtnitsch/sentence-robot/pkg/nlu"
	"github.com/dtnitsch/sentence-robot/pkg/pipeline"
	"github.com/dtnitsch/sentence-robot/pkg/retrieval"
)

// ApplyOverrides copies the set command-line values onto cfg.
func ApplyOverrides(cfg *models.Config, o Overrides) {
	if o.Source != "" {
		cfg.Retrieval.Source = o.Source
	}
	if o.Language != "" {
		cfg.Retrieval.Language = o.Language
	}
	if o.Provider != "" {
		cfg.Analysis.Provider = o.Provider
	}
	if o.Workers > 0 {
		cfg.Pipeline.Workers = o.Workers
	}
	if o.MaximumSet {
		cfg.Pipeline.MaximumSentences = o.MaximumSentences
	}
}

func newSource(cfg *models.Config) (retrieval.Source, error) {
	f := fetcher.NewFetcher(cfg.Retrieval.Timeout)
	src, err := retrieval.New(cfg.Retrieval, config.BaseLanguage(cfg.Retrieval.Language), f)
	if err != nil {
		return nil, fmt.Errorf("failed to build retrieval source: %w", err)
	}
	return src, nil
}

func newAnalyzer(ctx context.Context, cfg *models.Config) (pipeline.KeywordAnalyzer, error) {
	switch cfg.Analysis.Provider {
	case models.ProviderLocal:
		return &analytics.Analyzer{Limit: cfg.Analysis.KeywordLimit}, nil
	case models.ProviderWatson:
		client, err := nlu.NewClient(ctx, cfg.Analysis)
		if err != nil {
			return nil, fmt.Errorf("failed to build nlu client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown analysis provider %q", cfg.Analysis.Provider)
	}
}
