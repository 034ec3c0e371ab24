package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dtnitsch/sentence-robot/pkg/fetcher"
)

// Wikipedia reads plain-text extracts from the MediaWiki Action API.
type Wikipedia struct {
	fetcher  *fetcher.Fetcher
	endpoint string
}

type wikipediaResponse struct {
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
	Query struct {
		Pages []struct {
			Title         string `json:"title"`
			Extract       string `json:"extract"`
			Missing       bool   `json:"missing"`
			Invalid       bool   `json:"invalid"`
			InvalidReason string `json:"invalidreason"`
		} `json:"pages"`
	} `json:"query"`
}

// NewWikipedia targets https://{language}.wikipedia.org unless endpoint is set.
func NewWikipedia(f *fetcher.Fetcher, language, endpoint string) *Wikipedia {
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language)
	}
	return &Wikipedia{fetcher: f, endpoint: endpoint}
}

func (w *Wikipedia) FetchArticle(ctx context.Context, term string) (string, error) {
	term, err := checkTerm(term)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("titles", term)

	body, err := w.fetcher.GetBytes(ctx, w.endpoint+"?"+params.Encode())
	if err != nil {
		return "", asAPIError("wikipedia", err)
	}

	var resp wikipediaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode wikipedia response: %w", err)
	}
	if resp.Error != nil {
		return "", &APIError{Service: "wikipedia", Message: resp.Error.Code + ": " + resp.Error.Info}
	}
	if len(resp.Query.Pages) == 0 {
		return "", fmt.Errorf("%w: %q", ErrArticleNotFound, term)
	}

	page := resp.Query.Pages[0]
	switch {
	case page.Invalid:
		return "", &APIError{Service: "wikipedia", Message: "invalid title: " + page.InvalidReason}
	case page.Missing:
		return "", fmt.Errorf("%w: %q", ErrArticleNotFound, term)
	}
	return page.Extract, nil
}
