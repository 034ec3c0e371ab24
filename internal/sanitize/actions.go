// Package sanitize implements the offline sanitize command: clean and
// segment a local article without calling any service.
package sanitize

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/sentence-robot/internal/common"
	"github.com/dtnitsch/sentence-robot/models"
	"github.com/dtnitsch/sentence-robot/pkg/sanitizer"
	"github.com/dtnitsch/sentence-robot/pkg/segmenter"
	"github.com/dtnitsch/sentence-robot/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Output is the result of sanitizing one article.
type Output struct {
	Language  string            `json:"language" yaml:"language"`
	Sanitized string            `json:"sanitized" yaml:"sanitized"`
	Sentences []models.Sentence `json:"sentences" yaml:"sentences"`
}

// String renders one sentence per line for text output.
func (o *Output) String() string {
	texts := make([]string, len(o.Sentences))
	for i, s := range o.Sentences {
		texts[i] = s.Text
	}
	return strings.Join(texts, "\n")
}

func SanitizeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	store := &storage.Storage{}
	raw, err := store.ReadFile(c.String("input"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	seg, err := common.NewSegmenter(cfg, logger)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	output := Process(seg, string(raw), c.Int("max-sentences"))
	logger.Info("Article sanitized", "language", output.Language, "sentences", len(output.Sentences))

	var v any = output
	if c.String("format") == storage.FormatText {
		v = output.String()
	}
	if err := store.Write(c.String("output"), v, c.String("format")); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write output: %v", err), 1)
	}
	return nil
}

// Process sanitizes and segments raw. maximum <= 0 keeps every sentence.
func Process(seg *segmenter.Segmenter, raw string, maximum int) *Output {
	sanitized := sanitizer.Sanitize(raw)
	sentences, language := seg.Segment(sanitized)
	if maximum > 0 {
		sentences = segmenter.Truncate(sentences, maximum)
	}
	return &Output{
		Language:  language,
		Sanitized: sanitized,
		Sentences: sentences,
	}
}
