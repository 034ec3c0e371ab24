// Package mapreduce aggregates per-sentence keywords into run-level counts.
package mapreduce

import (
	"strings"

	"github.com/dtnitsch/sentence-robot/models"
)

// Map counts the keywords of a single sentence, case-insensitively.
func Map(sentence models.Sentence) map[string]int {
	counts := make(map[string]int, len(sentence.Keywords))
	for _, k := range sentence.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			counts[k]++
		}
	}
	return counts
}

// Reduce aggregates a slice of keyword count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// CountKeywords maps every sentence and reduces the results.
func CountKeywords(sentences []models.Sentence) map[string]int {
	intermediate := make([]map[string]int, 0, len(sentences))
	for _, s := range sentences {
		intermediate = append(intermediate, Map(s))
	}
	return Reduce(intermediate)
}
