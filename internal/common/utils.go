package common

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/sentence-robot/models"
	"github.com/dtnitsch/sentence-robot/pkg/config"
	"github.com/dtnitsch/sentence-robot/pkg/segmenter"
	"github.com/urfave/cli/v2"
)

// NewLogger returns a JSON logger on stderr. Quiet wins over verbose.
func NewLogger(quiet, verbose bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel(quiet, verbose)}))
}

func LogLevel(quiet, verbose bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// LoadConfig reads the file named by --config, which must exist, or the
// default config.yaml when present.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	return LoadConfigFile(c.String("config"))
}

func LoadConfigFile(path string) (*models.Config, error) {
	if path != "" {
		return config.LoadRobot(path, true)
	}
	return config.LoadRobot(config.DefaultPath, false)
}

// NewSegmenter builds a segmenter for the configured candidate languages
// and Punkt model files.
func NewSegmenter(cfg *models.Config, logger *slog.Logger) (*segmenter.Segmenter, error) {
	opts := []segmenter.Option{
		segmenter.WithLanguages(cfg.Languages...),
		segmenter.WithLogger(logger),
	}
	for code, path := range cfg.PunktModels {
		opts = append(opts, segmenter.WithModelFile(code, path))
	}
	seg, err := segmenter.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build segmenter: %w", err)
	}
	return seg, nil
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
