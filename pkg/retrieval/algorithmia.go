package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/sentence-robot/pkg/fetcher"
)

const (
	DefaultAlgorithmiaEndpoint = "https://api.algorithmia.com"
	wikipediaParserAlgorithm   = "web/WikipediaParser/0.1.2"
)

// Algorithmia calls the hosted WikipediaParser algorithm. The request body is
// the search term as a JSON string; the response carries result.content.
type Algorithmia struct {
	fetcher  *fetcher.Fetcher
	apiKey   string
	endpoint string
}

type algorithmiaResponse struct {
	Result *struct {
		Content string `json:"content"`
	} `json:"result"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewAlgorithmia(f *fetcher.Fetcher, apiKey, endpoint string) *Algorithmia {
	if endpoint == "" {
		endpoint = DefaultAlgorithmiaEndpoint
	}
	return &Algorithmia{fetcher: f, apiKey: apiKey, endpoint: strings.TrimRight(endpoint, "/")}
}

func (a *Algorithmia) FetchArticle(ctx context.Context, term string) (string, error) {
	term, err := checkTerm(term)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(term)
	if err != nil {
		return "", fmt.Errorf("failed to encode search term: %w", err)
	}

	body, err := a.fetcher.PostJSON(ctx, a.endpoint+"/v1/algo/"+wikipediaParserAlgorithm, payload, map[string]string{
		"Authorization": "Simple " + a.apiKey,
	})
	if err != nil {
		return "", asAPIError("algorithmia", err)
	}

	var resp algorithmiaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode algorithmia response: %w", err)
	}
	if resp.Error != nil {
		return "", &APIError{Service: "algorithmia", Message: resp.Error.Message}
	}
	if resp.Result == nil {
		return "", fmt.Errorf("%w: %q", ErrArticleNotFound, term)
	}
	return resp.Result.Content, nil
}
