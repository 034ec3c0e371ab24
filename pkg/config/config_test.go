package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/sentence-robot/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadRobot_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
retrieval:
  source: algorithmia
  api_key: from-file
  timeout: 5s
analysis:
  api_key: nlu-file
  url: https://nlu.example.com
pipeline:
  maximum_sentences: 3
`)
	t.Setenv("ALGORITHMIA_API_KEY", "from-env")
	t.Setenv("PIPELINE_WORKERS", "4")

	cfg, err := LoadRobot(path, true)
	if err != nil {
		t.Fatalf("LoadRobot() error = %v", err)
	}

	if cfg.Retrieval.APIKey != "from-env" {
		t.Errorf("Retrieval.APIKey = %q, want env value", cfg.Retrieval.APIKey)
	}
	if cfg.Retrieval.Timeout != 5*time.Second {
		t.Errorf("Retrieval.Timeout = %v, want 5s", cfg.Retrieval.Timeout)
	}
	if cfg.Pipeline.MaximumSentences != 3 {
		t.Errorf("Pipeline.MaximumSentences = %d, want 3", cfg.Pipeline.MaximumSentences)
	}
	if cfg.Pipeline.Workers != 4 {
		t.Errorf("Pipeline.Workers = %d, want 4", cfg.Pipeline.Workers)
	}
	if cfg.Analysis.Version != DefaultNLUVersion {
		t.Errorf("Analysis.Version = %q, want default %q", cfg.Analysis.Version, DefaultNLUVersion)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadRobot_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadRobot(missing, false)
	if err != nil {
		t.Fatalf("LoadRobot(optional) error = %v", err)
	}
	if cfg.Retrieval.Source != models.SourceWikipedia {
		t.Errorf("Retrieval.Source = %q, want %q", cfg.Retrieval.Source, models.SourceWikipedia)
	}
	if cfg.Pipeline.MaximumSentences != DefaultMaximumSentences {
		t.Errorf("Pipeline.MaximumSentences = %d, want %d", cfg.Pipeline.MaximumSentences, DefaultMaximumSentences)
	}
	if len(cfg.Languages) != len(DefaultLanguages) {
		t.Errorf("Languages = %v, want %v", cfg.Languages, DefaultLanguages)
	}

	if _, err := LoadRobot(missing, true); err == nil {
		t.Error("LoadRobot(required) expected error for missing file")
	}
}

func TestLoadRobot_ZeroMaximumMeansDefault(t *testing.T) {
	path := writeConfig(t, "pipeline:\n  maximum_sentences: 0\n")
	t.Setenv("MAXIMUM_SENTENCES", "0")

	cfg, err := LoadRobot(path, true)
	if err != nil {
		t.Fatalf("LoadRobot() error = %v", err)
	}
	if cfg.Pipeline.MaximumSentences != DefaultMaximumSentences {
		t.Errorf("Pipeline.MaximumSentences = %d, want default %d", cfg.Pipeline.MaximumSentences, DefaultMaximumSentences)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "robot.env")
	if err := os.WriteFile(envPath, []byte("WATSON_NLU_URL=https://from-dotenv.example.com\n"), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("ENV_FILE", envPath)
	// Registered so t.Setenv restores the variable godotenv is about to set.
	t.Setenv("WATSON_NLU_URL", "")
	os.Unsetenv("WATSON_NLU_URL")

	cfg, err := Load[models.Config]("", false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Analysis.URL != "https://from-dotenv.example.com" {
		t.Errorf("Analysis.URL = %q, want value from env file", cfg.Analysis.URL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Config)
		wantErr string
	}{
		{
			name:   "local provider needs no credentials",
			mutate: func(c *models.Config) { c.Analysis.Provider = models.ProviderLocal },
		},
		{
			name:    "watson without key",
			mutate:  func(c *models.Config) {},
			wantErr: "analysis.api_key",
		},
		{
			name: "algorithmia without key",
			mutate: func(c *models.Config) {
				c.Analysis.Provider = models.ProviderLocal
				c.Retrieval.Source = models.SourceAlgorithmia
			},
			wantErr: "retrieval.api_key",
		},
		{
			name: "unknown source",
			mutate: func(c *models.Config) {
				c.Analysis.Provider = models.ProviderLocal
				c.Retrieval.Source = "gopher"
			},
			wantErr: "unknown retrieval.source",
		},
		{
			name: "bad language tag",
			mutate: func(c *models.Config) {
				c.Analysis.Provider = models.ProviderLocal
				c.Retrieval.Language = "not a tag"
			},
			wantErr: "invalid retrieval.language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &models.Config{}
			SetDefaults(cfg)
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestBaseLanguage(t *testing.T) {
	tests := map[string]string{
		"en":    "en",
		"pt-BR": "pt",
		"de-CH": "de",
		"":      DefaultLanguage,
	}
	for in, want := range tests {
		if got := BaseLanguage(in); got != want {
			t.Errorf("BaseLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}
