// Package models defines data structures for configuration and pipeline content.
package models

import "time"

// Retrieval sources.
const (
	SourceWikipedia   = "wikipedia"
	SourceAlgorithmia = "algorithmia"
	SourceHTML        = "html"
)

// Analysis providers.
const (
	ProviderWatson = "watson"
	ProviderLocal  = "local"
)

// Config holds everything a run needs: both credential bundles and the
// pipeline knobs. It is loaded once at startup and passed to constructors.
type Config struct {
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`

	// Languages is the candidate set for language detection (ISO 639-1).
	Languages []string `yaml:"languages" env:"LANGUAGES"`

	// PunktModels maps an ISO 639-1 code to a Punkt training file. English
	// is built in.
	PunktModels map[string]string `yaml:"punkt_models"`
}

// RetrievalConfig configures the article retrieval service.
type RetrievalConfig struct {
	Source   string        `yaml:"source" env:"RETRIEVAL_SOURCE"`
	Language string        `yaml:"language" env:"RETRIEVAL_LANGUAGE"`
	Endpoint string        `yaml:"endpoint" env:"RETRIEVAL_ENDPOINT"`
	APIKey   string        `yaml:"api_key" env:"ALGORITHMIA_API_KEY"`
	Timeout  time.Duration `yaml:"timeout" env:"RETRIEVAL_TIMEOUT"`
}

// AnalysisConfig configures the keyword extraction service.
type AnalysisConfig struct {
	Provider          string        `yaml:"provider" env:"ANALYSIS_PROVIDER"`
	APIKey            string        `yaml:"api_key" env:"WATSON_NLU_APIKEY"`
	URL               string        `yaml:"url" env:"WATSON_NLU_URL"`
	IAMURL            string        `yaml:"iam_url" env:"WATSON_IAM_URL"`
	Version           string        `yaml:"version" env:"WATSON_NLU_VERSION"`
	KeywordLimit      int           `yaml:"keyword_limit" env:"ANALYSIS_KEYWORD_LIMIT"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"ANALYSIS_RPS"`
	Timeout           time.Duration `yaml:"timeout" env:"ANALYSIS_TIMEOUT"`
}

// PipelineConfig holds run defaults. A zero MaximumSentences means "use the
// default"; only the --max-sentences flag can ask for zero sentences.
type PipelineConfig struct {
	MaximumSentences int `yaml:"maximum_sentences" env:"MAXIMUM_SENTENCES"`
	Workers          int `yaml:"workers" env:"PIPELINE_WORKERS"`
}
