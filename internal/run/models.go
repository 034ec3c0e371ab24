package run

import "github.com/dtnitsch/sentence-robot/models"

// Overrides holds the command-line values that take precedence over the
// loaded configuration. Zero values leave the configuration untouched.
type Overrides struct {
	Source           string
	Language         string
	Provider         string
	Workers          int
	MaximumSentences int
	MaximumSet       bool
}

// Stats summarises a finished run.
type Stats struct {
	SearchTerm  string   `json:"search_term" yaml:"search_term"`
	Source      string   `json:"source" yaml:"source"`
	Provider    string   `json:"provider" yaml:"provider"`
	Language    string   `json:"language" yaml:"language"`
	Sentences   int      `json:"sentences" yaml:"sentences"`
	TopKeywords []string `json:"top_keywords" yaml:"top_keywords"`
	ContentHash string   `json:"content_hash" yaml:"content_hash"`
	DurationMS  int64    `json:"duration_ms" yaml:"duration_ms"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string          `json:"status" yaml:"status"`
	Stats   Stats           `json:"stats" yaml:"stats"`
	Content *models.Content `json:"content" yaml:"content"`
}
