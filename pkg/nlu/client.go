// Package nlu is a client for the Watson Natural Language Understanding
// keyword extraction API.
package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dtnitsch/sentence-robot/models"
	"github.com/dtnitsch/sentence-robot/pkg/fetcher"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// APIError is a non-2xx answer from the analysis or IAM service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nlu: status %d: %s", e.StatusCode, e.Message)
}

func asAPIError(err error) error {
	var statusErr *fetcher.StatusError
	if errors.As(err, &statusErr) {
		return &APIError{StatusCode: statusErr.StatusCode, Message: statusErr.Body}
	}
	return err
}

// Keyword is one entry of the keywords feature.
type Keyword struct {
	Text      string  `json:"text"`
	Relevance float64 `json:"relevance,omitempty"`
	Count     int     `json:"count,omitempty"`
}

type keywordsOptions struct {
	Limit int `json:"limit,omitempty"`
}

type analyzeRequest struct {
	Text     string `json:"text"`
	Features struct {
		Keywords keywordsOptions `json:"keywords"`
	} `json:"features"`
}

// analyzeResponse accepts both the REST shape and the SDK envelope
// {"result": {...}} that some gateways return.
type analyzeResponse struct {
	Language string    `json:"language"`
	Keywords []Keyword `json:"keywords"`
	Result   *struct {
		Keywords []Keyword `json:"keywords"`
	} `json:"result"`
}

// Client calls POST {url}/v1/analyze with IAM bearer authentication.
type Client struct {
	fetcher *fetcher.Fetcher
	url     string
	version string
	limit   int
	limiter *rate.Limiter
}

// NewClient builds a client from cfg. ctx bounds IAM token refreshes.
func NewClient(ctx context.Context, cfg models.AnalysisConfig) (*Client, error) {
	if cfg.APIKey == "" || cfg.URL == "" {
		return nil, errors.New("nlu: api key and url are required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	iamFetcher := fetcher.NewFetcher(timeout)
	tokens := newIAMTokenSource(ctx, iamFetcher, cfg.APIKey, cfg.IAMURL)

	httpClient := oauth2.NewClient(ctx, tokens)
	httpClient.Timeout = timeout

	c := &Client{
		fetcher: fetcher.NewFetcherWithClient(httpClient),
		url:     strings.TrimRight(cfg.URL, "/"),
		version: cfg.Version,
		limit:   cfg.KeywordLimit,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c, nil
}

// Analyze requests the keywords feature for text.
func (c *Client) Analyze(ctx context.Context, text string) ([]Keyword, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}
	}

	var reqBody analyzeRequest
	reqBody.Text = text
	reqBody.Features.Keywords = keywordsOptions{Limit: c.limit}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyze request: %w", err)
	}

	endpoint := c.url + "/v1/analyze?" + url.Values{"version": {c.version}}.Encode()
	body, err := c.fetcher.PostJSON(ctx, endpoint, payload, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, asAPIError(err)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode analyze response: %w", err)
	}
	if resp.Keywords == nil && resp.Result != nil {
		return resp.Result.Keywords, nil
	}
	return resp.Keywords, nil
}

// Keywords returns only the keyword strings, in service order.
func (c *Client) Keywords(ctx context.Context, text string) ([]string, error) {
	keywords, err := c.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, k.Text)
	}
	return out, nil
}
