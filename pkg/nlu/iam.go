package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtnitsch/sentence-robot/pkg/fetcher"
	"golang.org/x/oauth2"
)

const iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"

// iamTokenSource exchanges an IBM Cloud API key for a bearer token.
// Wrap it in oauth2.ReuseTokenSource so tokens are reused until they expire.
type iamTokenSource struct {
	ctx     context.Context
	fetcher *fetcher.Fetcher
	apiKey  string
	url     string
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Expiration  int64  `json:"expiration"`
}

func newIAMTokenSource(ctx context.Context, f *fetcher.Fetcher, apiKey, iamURL string) oauth2.TokenSource {
	src := &iamTokenSource{
		ctx:     ctx,
		fetcher: f,
		apiKey:  apiKey,
		url:     strings.TrimRight(iamURL, "/") + "/identity/token",
	}
	return oauth2.ReuseTokenSource(nil, src)
}

func (s *iamTokenSource) Token() (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("grant_type", iamGrantType)
	form.Set("apikey", s.apiKey)

	req, err := http.NewRequestWithContext(s.ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create IAM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := s.fetcher.Do(req)
	if err != nil {
		return nil, fmt.Errorf("IAM token request failed: %w", asAPIError(err))
	}

	var resp iamTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode IAM token: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("IAM response carried no access token")
	}

	token := &oauth2.Token{
		AccessToken: resp.AccessToken,
		TokenType:   "Bearer",
	}
	switch {
	case resp.Expiration > 0:
		token.Expiry = time.Unix(resp.Expiration, 0)
	case resp.ExpiresIn > 0:
		token.Expiry = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return token, nil
}
