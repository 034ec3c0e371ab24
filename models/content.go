package models

// Content carries the inputs of a single pipeline run and everything the
// stages write into it. It is created per run and owned by the caller.
type Content struct {
	SearchTerm             string     `json:"search_term" yaml:"search_term"`
	MaximumSentences       int        `json:"maximum_sentences" yaml:"maximum_sentences"`
	SourceContentOriginal  string     `json:"source_content_original" yaml:"source_content_original"`
	SourceContentSanitized string     `json:"source_content_sanitized" yaml:"source_content_sanitized"`
	Language               string     `json:"language,omitempty" yaml:"language,omitempty"`
	Sentences              []Sentence `json:"sentences" yaml:"sentences"`
}

// Sentence is one segmented unit of the article plus its keywords.
type Sentence struct {
	Text     string   `json:"text" yaml:"text"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Images   []string `json:"images" yaml:"images"` // filled by downstream consumers
}

// NewSentence wraps text in a Sentence with empty keywords and images.
func NewSentence(text string) Sentence {
	return Sentence{
		Text:     text,
		Keywords: []string{},
		Images:   []string{},
	}
}

// Texts returns the sentence texts in order.
func (c *Content) Texts() []string {
	texts := make([]string, len(c.Sentences))
	for i, s := range c.Sentences {
		texts[i] = s.Text
	}
	return texts
}
