// Package retrieval fetches raw article text for a search term from an
// external content service.
package retrieval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtnitsch/sentence-robot/models"
	"github.com/dtnitsch/sentence-robot/pkg/fetcher"
)

var (
	ErrEmptySearchTerm = errors.New("search term is empty")
	ErrArticleNotFound = errors.New("article not found")
)

// Source returns article text in a lightly marked-up format: paragraphs
// separated by blank lines, headings on their own "=Heading=" lines.
type Source interface {
	FetchArticle(ctx context.Context, term string) (string, error)
}

// APIError is a failure reported by the content service.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// asAPIError converts transport status errors into *APIError for service.
func asAPIError(service string, err error) error {
	var statusErr *fetcher.StatusError
	if errors.As(err, &statusErr) {
		return &APIError{Service: service, StatusCode: statusErr.StatusCode, Message: statusErr.Body}
	}
	return err
}

func checkTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrEmptySearchTerm
	}
	return term, nil
}

// New builds the Source named by cfg.Source.
func New(cfg models.RetrievalConfig, language string, f *fetcher.Fetcher) (Source, error) {
	switch cfg.Source {
	case models.SourceWikipedia, "":
		return NewWikipedia(f, language, cfg.Endpoint), nil
	case models.SourceAlgorithmia:
		return NewAlgorithmia(f, cfg.APIKey, cfg.Endpoint), nil
	case models.SourceHTML:
		return NewHTMLArticle(f, language, cfg.Endpoint), nil
	default:
		return nil, fmt.Errorf("unknown retrieval source %q", cfg.Source)
	}
}
