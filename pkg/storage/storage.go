// Package storage writes run results to stdout or a file.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

type Storage struct{}

// Encode writes v to w in the given format. FormatText expects a string or
// a fmt.Stringer.
func (s *Storage) Encode(w io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatText:
		var text string
		switch t := v.(type) {
		case string:
			text = t
		case fmt.Stringer:
			text = t.String()
		default:
			return fmt.Errorf("text output not supported for %T", v)
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return fmt.Errorf("writing text: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// Write encodes v to filePath, or to stdout when filePath is empty or "-".
func (s *Storage) Write(filePath string, v any, format string) error {
	if filePath == "" || filePath == "-" {
		return s.Encode(os.Stdout, v, format)
	}

	var b strings.Builder
	if err := s.Encode(&b, v, format); err != nil {
		return err
	}
	return s.SaveFile(filePath, []byte(b.String()))
}

// SaveFile writes content to filePath, creating parent directories.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ReadFile reads filePath, or stdin when filePath is empty or "-".
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	if filePath == "" || filePath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
