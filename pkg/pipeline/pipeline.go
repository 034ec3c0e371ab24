// Package pipeline turns a search term into keyword-annotated sentences:
// fetch, sanitize, segment, truncate, enrich, always in that order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtnitsch/sentence-robot/models"
	"github.com/dtnitsch/sentence-robot/pkg/sanitizer"
	"github.com/dtnitsch/sentence-robot/pkg/segmenter"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidContent = errors.New("invalid content")

// ArticleFetcher returns the raw article text for a search term.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, term string) (string, error)
}

// KeywordAnalyzer returns the keywords of a piece of text.
type KeywordAnalyzer interface {
	Keywords(ctx context.Context, text string) ([]string, error)
}

type Pipeline struct {
	fetcher   ArticleFetcher
	analyzer  KeywordAnalyzer
	segmenter *segmenter.Segmenter
	logger    *slog.Logger
	workers   int
}

type Option func(*Pipeline)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithWorkers bounds how many sentences are analyzed at once. Values below
// two keep enrichment sequential.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

func New(fetcher ArticleFetcher, analyzer KeywordAnalyzer, seg *segmenter.Segmenter, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:   fetcher,
		analyzer:  analyzer,
		segmenter: seg,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:   1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run fills content in place. On error the content must be discarded; no
// stage recovers locally and nothing is retried.
func (p *Pipeline) Run(ctx context.Context, content *models.Content) error {
	if err := validate(content); err != nil {
		return err
	}

	logger := p.logger.With("run_id", uuid.NewString(), "search_term", content.SearchTerm)
	startTime := time.Now()
	logger.Info("Pipeline started", "maximum_sentences", content.MaximumSentences, "workers", p.workers)

	if err := p.fetchContent(ctx, content); err != nil {
		logger.Error("Fetch failed", "error", err)
		return err
	}
	logger.Info("Article fetched", "bytes", len(content.SourceContentOriginal))

	p.sanitizeContent(content)
	p.segmentContent(content)
	total := len(content.Sentences)
	p.limitSentences(content)
	logger.Info("Article segmented",
		"language", content.Language,
		"sentences_found", total,
		"sentences_kept", len(content.Sentences))

	if err := p.enrichSentences(ctx, logger, content); err != nil {
		logger.Error("Enrichment failed", "error", err)
		return err
	}

	logger.Info("Pipeline finished", "duration", time.Since(startTime).String())
	return nil
}

func validate(content *models.Content) error {
	if content == nil {
		return fmt.Errorf("%w: nil content", ErrInvalidContent)
	}
	if content.SearchTerm == "" {
		return fmt.Errorf("%w: search term is required", ErrInvalidContent)
	}
	if content.MaximumSentences < 0 {
		return fmt.Errorf("%w: maximum sentences must not be negative", ErrInvalidContent)
	}
	return nil
}

func (p *Pipeline) fetchContent(ctx context.Context, content *models.Content) error {
	text, err := p.fetcher.FetchArticle(ctx, content.SearchTerm)
	if err != nil {
		return fmt.Errorf("fetch article %q: %w", content.SearchTerm, err)
	}
	content.SourceContentOriginal = text
	return nil
}

func (p *Pipeline) sanitizeContent(content *models.Content) {
	content.SourceContentSanitized = sanitizer.Sanitize(content.SourceContentOriginal)
}

func (p *Pipeline) segmentContent(content *models.Content) {
	content.Sentences, content.Language = p.segmenter.Segment(content.SourceContentSanitized)
}

func (p *Pipeline) limitSentences(content *models.Content) {
	content.Sentences = segmenter.Truncate(content.Sentences, content.MaximumSentences)
}

func (p *Pipeline) enrichSentences(ctx context.Context, logger *slog.Logger, content *models.Content) error {
	if p.workers > 1 && len(content.Sentences) > 1 {
		return p.enrichConcurrently(ctx, content)
	}

	for i := range content.Sentences {
		keywords, err := p.analyze(ctx, i, content.Sentences[i].Text)
		if err != nil {
			return err
		}
		content.Sentences[i].Keywords = keywords
		logger.Debug("Sentence enriched", "index", i, "keywords", len(keywords))
	}
	return nil
}

// enrichConcurrently writes each result into the slot of its sentence, so
// output order matches input order. Keywords are only assigned once every
// call has succeeded; the first failure cancels the others.
func (p *Pipeline) enrichConcurrently(ctx context.Context, content *models.Content) error {
	results := make([][]string, len(content.Sentences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, sentence := range content.Sentences {
		g.Go(func() error {
			keywords, err := p.analyze(gctx, i, sentence.Text)
			if err != nil {
				return err
			}
			results[i] = keywords
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range content.Sentences {
		content.Sentences[i].Keywords = results[i]
	}
	return nil
}

func (p *Pipeline) analyze(ctx context.Context, index int, text string) ([]string, error) {
	keywords, err := p.analyzer.Keywords(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyze sentence %d: %w", index+1, err)
	}
	if keywords == nil {
		keywords = []string{}
	}
	return keywords, nil
}
