package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dtnitsch/sentence-robot/models"
)

type fakeWatson struct {
	tokenCalls   atomic.Int32
	analyzeCalls atomic.Int32
	failAnalyze  bool
	failIAM      bool
	envelope     bool
}

func (f *fakeWatson) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		if r.PostForm.Get("grant_type") != iamGrantType {
			t.Errorf("grant_type = %q", r.PostForm.Get("grant_type"))
		}
		if f.failIAM || r.PostForm.Get("apikey") != "key-123" {
			http.Error(w, `{"errorCode":"BXNIM0415E","errorMessage":"Provided API key could not be found."}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-abc",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"expiration":   time.Now().Add(time.Hour).Unix(),
		})
	})
	mux.HandleFunc("/v1/analyze", func(w http.ResponseWriter, r *http.Request) {
		f.analyzeCalls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.URL.Query().Get("version"); got != "2018-04-05" {
			t.Errorf("version = %q", got)
		}

		var req map[string]any
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("request body %s: %v", body, err)
		}
		features, _ := req["features"].(map[string]any)
		if _, ok := features["keywords"]; !ok {
			t.Errorf("request has no keywords feature: %s", body)
		}

		if f.failAnalyze {
			http.Error(w, `{"error":"unsupported text language","code":400}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if f.envelope {
			_, _ = io.WriteString(w, `{"result":{"keywords":[{"text":"sky"},{"text":"blue"}]}}`)
			return
		}
		_, _ = io.WriteString(w, `{"usage":{"text_units":1,"features":1},"language":"en","keywords":[{"text":"sky","relevance":0.99,"count":1},{"text":"blue","relevance":0.61,"count":1}]}`)
	})
	return mux
}

func newTestClient(t *testing.T, srvURL string) *Client {
	t.Helper()
	c, err := NewClient(context.Background(), models.AnalysisConfig{
		APIKey:  "key-123",
		URL:     srvURL,
		IAMURL:  srvURL,
		Version: "2018-04-05",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestClient_Keywords(t *testing.T) {
	fake := &fakeWatson{}
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	for i := 0; i < 2; i++ {
		got, err := c.Keywords(context.Background(), "The sky is blue.")
		if err != nil {
			t.Fatalf("Keywords() error = %v", err)
		}
		if want := []string{"sky", "blue"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Keywords() = %v, want %v", got, want)
		}
	}

	if n := fake.tokenCalls.Load(); n != 1 {
		t.Errorf("IAM token requested %d times, want 1", n)
	}
	if n := fake.analyzeCalls.Load(); n != 2 {
		t.Errorf("analyze called %d times, want 2", n)
	}
}

func TestClient_KeywordsFromResultEnvelope(t *testing.T) {
	srv := httptest.NewServer((&fakeWatson{envelope: true}).handler(t))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Keywords(context.Background(), "The sky is blue.")
	if err != nil {
		t.Fatalf("Keywords() error = %v", err)
	}
	if want := []string{"sky", "blue"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}
}

func TestClient_AnalyzeKeepsRelevance(t *testing.T) {
	srv := httptest.NewServer((&fakeWatson{}).handler(t))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Analyze(context.Background(), "The sky is blue.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(got) != 2 || got[0].Relevance != 0.99 || got[1].Count != 1 {
		t.Errorf("Analyze() = %+v", got)
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name       string
		fake       *fakeWatson
		wantStatus int
	}{
		{"analyze rejected", &fakeWatson{failAnalyze: true}, http.StatusBadRequest},
		{"iam rejected", &fakeWatson{failIAM: true}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.fake.handler(t))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).Keywords(context.Background(), "text")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Keywords() error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	if _, err := NewClient(context.Background(), models.AnalysisConfig{URL: "https://nlu.example.com"}); err == nil {
		t.Error("NewClient() without api key expected error")
	}
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer((&fakeWatson{}).handler(t))
	defer srv.Close()

	c, err := NewClient(context.Background(), models.AnalysisConfig{
		APIKey: "key-123", URL: srv.URL, IAMURL: srv.URL, Version: "2018-04-05",
		RequestsPerSecond: 0.001,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := c.Keywords(context.Background(), "first"); err != nil {
		t.Fatalf("first Keywords() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := c.Keywords(ctx, "second"); err == nil {
		t.Error("second Keywords() expected rate limiter error")
	}
}
