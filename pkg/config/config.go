package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/sentence-robot/models"
	"golang.org/x/text/language"
)

const (
	DefaultPath             = "config.yaml"
	DefaultLanguage         = "en"
	DefaultIAMURL           = "https://iam.cloud.ibm.com"
	DefaultNLUVersion       = "2018-04-05"
	DefaultTimeout          = 30 * time.Second
	DefaultMaximumSentences = 7
)

// DefaultLanguages is the detection candidate set when none is configured.
var DefaultLanguages = []string{"en", "pt", "es", "fr", "de", "it"}

// LoadRobot loads a models.Config from path and fills in defaults.
func LoadRobot(path string, required bool) (*models.Config, error) {
	cfg, err := Load[models.Config](path, required)
	if err != nil {
		return nil, err
	}
	SetDefaults(cfg)
	return cfg, nil
}

// SetDefaults fills zero values.
func SetDefaults(cfg *models.Config) {
	if cfg.Retrieval.Source == "" {
		cfg.Retrieval.Source = models.SourceWikipedia
	}
	if cfg.Retrieval.Language == "" {
		cfg.Retrieval.Language = DefaultLanguage
	}
	if cfg.Retrieval.Timeout == 0 {
		cfg.Retrieval.Timeout = DefaultTimeout
	}
	if cfg.Analysis.Provider == "" {
		cfg.Analysis.Provider = models.ProviderWatson
	}
	if cfg.Analysis.IAMURL == "" {
		cfg.Analysis.IAMURL = DefaultIAMURL
	}
	if cfg.Analysis.Version == "" {
		cfg.Analysis.Version = DefaultNLUVersion
	}
	if cfg.Analysis.Timeout == 0 {
		cfg.Analysis.Timeout = DefaultTimeout
	}
	// Zero is indistinguishable from unset in YAML and env.
	if cfg.Pipeline.MaximumSentences == 0 {
		cfg.Pipeline.MaximumSentences = DefaultMaximumSentences
	}
	if cfg.Pipeline.Workers <= 0 {
		cfg.Pipeline.Workers = 1
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = append([]string(nil), DefaultLanguages...)
	}
}

// Validate reports every problem with cfg at once.
func Validate(cfg *models.Config) error {
	var errs []error

	switch cfg.Retrieval.Source {
	case models.SourceWikipedia, models.SourceHTML:
	case models.SourceAlgorithmia:
		if cfg.Retrieval.APIKey == "" {
			errs = append(errs, errors.New("retrieval.api_key is required for the algorithmia source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown retrieval.source %q", cfg.Retrieval.Source))
	}

	if _, err := language.Parse(cfg.Retrieval.Language); err != nil {
		errs = append(errs, fmt.Errorf("invalid retrieval.language %q: %w", cfg.Retrieval.Language, err))
	}

	switch cfg.Analysis.Provider {
	case models.ProviderLocal:
	case models.ProviderWatson:
		if cfg.Analysis.APIKey == "" {
			errs = append(errs, errors.New("analysis.api_key is required for the watson provider"))
		}
		if cfg.Analysis.URL == "" {
			errs = append(errs, errors.New("analysis.url is required for the watson provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown analysis.provider %q", cfg.Analysis.Provider))
	}

	if cfg.Pipeline.MaximumSentences < 0 {
		errs = append(errs, errors.New("pipeline.maximum_sentences must not be negative"))
	}

	return errors.Join(errs...)
}

// BaseLanguage returns the ISO 639-1 base of a BCP 47 tag ("pt-BR" -> "pt").
// Unparseable tags fall back to DefaultLanguage.
func BaseLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage
	}
	base, _ := t.Base()
	return base.String()
}
