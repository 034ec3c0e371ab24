// Package segmenter splits sanitized article text into sentences using Punkt
// sentence-boundary detection, choosing a model by detected language.
package segmenter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/sentence-robot/models"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"github.com/pemistahl/lingua-go"
)

// DefaultLanguage is the language of the built-in Punkt model.
const DefaultLanguage = "en"

type tokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Segmenter turns text into sentence boundaries.
type Segmenter struct {
	tokenizers map[string]tokenizer
	fallback   string
	languages  []string
	detector   lingua.LanguageDetector
	logger     *slog.Logger
}

// Option configures a Segmenter.
type Option func(*Segmenter) error

// WithLanguages sets the ISO 639-1 candidates for language detection.
// Detection is disabled with fewer than two recognised languages.
func WithLanguages(codes ...string) Option {
	return func(s *Segmenter) error {
		s.languages = codes
		return nil
	}
}

// WithModelFile registers a Punkt training file (NLTK JSON export) for a language.
func WithModelFile(code, path string) Option {
	return func(s *Segmenter) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read punkt model %s: %w", path, err)
		}
		training, err := sentences.LoadTraining(data)
		if err != nil {
			return fmt.Errorf("load punkt model %s: %w", path, err)
		}
		s.tokenizers[strings.ToLower(code)] = sentences.NewSentenceTokenizer(training)
		return nil
	}
}

// WithLogger sets the logger used for model fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Segmenter) error {
		s.logger = logger
		return nil
	}
}

// New builds a Segmenter with the English model always available.
func New(opts ...Option) (*Segmenter, error) {
	en, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load english punkt model: %w", err)
	}

	s := &Segmenter{
		tokenizers: map[string]tokenizer{DefaultLanguage: en},
		fallback:   DefaultLanguage,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if candidates := linguaLanguages(s.languages); len(candidates) >= 2 {
		s.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build()
	}

	return s, nil
}

// linguaLanguages maps ISO 639-1 codes to lingua languages, skipping unknown codes.
func linguaLanguages(codes []string) []lingua.Language {
	var out []lingua.Language
	for _, code := range codes {
		for _, lang := range lingua.AllLanguages() {
			if strings.EqualFold(lang.IsoCode639_1().String(), code) {
				out = append(out, lang)
				break
			}
		}
	}
	return out
}

// DetectLanguage returns the ISO 639-1 code of text, or the fallback
// language when detection is disabled or inconclusive.
func (s *Segmenter) DetectLanguage(text string) string {
	if s.detector == nil {
		return s.fallback
	}
	lang, ok := s.detector.DetectLanguageOf(text)
	if !ok {
		return s.fallback
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// Segment splits text into sentences with empty keywords and images. It
// returns the language whose model was used.
func (s *Segmenter) Segment(text string) ([]models.Sentence, string) {
	out := []models.Sentence{}
	if strings.TrimSpace(text) == "" {
		return out, s.fallback
	}

	lang := s.DetectLanguage(text)
	tok, ok := s.tokenizers[lang]
	if !ok {
		s.logger.Warn("No sentence model for detected language, using fallback",
			"language", lang, "fallback", s.fallback)
		lang = s.fallback
		tok = s.tokenizers[lang]
	}

	for _, boundary := range tok.Tokenize(text) {
		sentence := strings.TrimSpace(boundary.Text)
		if sentence == "" {
			continue
		}
		out = append(out, models.NewSentence(sentence))
	}
	return out, lang
}

// Truncate keeps the first n sentences. It never grows the slice, so
// truncating again to the same or a larger n is a no-op.
func Truncate(list []models.Sentence, n int) []models.Sentence {
	if n < 0 {
		n = 0
	}
	if len(list) <= n {
		return list
	}
	return list[:n]
}
