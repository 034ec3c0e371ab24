// Package sanitizer strips markup artifacts and parenthetical asides from raw
// article text so it can be split into sentences.
package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// parenthetical matches a (...) span that may hold one level of nested (...).
var parenthetical = regexp.MustCompile(`\((?:\([^()]*\)|[^()])*\)`)

// Sanitize removes blank lines, heading markers and parentheticals, returning
// the article as a single NFC-normalized line.
func Sanitize(original string) string {
	text := RemoveBlankLinesAndMarkup(original)
	text = RemoveParentheticals(text)
	return strings.TrimSpace(norm.NFC.String(text))
}

// RemoveBlankLinesAndMarkup drops lines that are blank after trimming or
// start with "=", and joins what is left with single spaces.
func RemoveBlankLinesAndMarkup(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "=") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}

// RemoveParentheticals strips parenthesized spans until none remain that the
// pattern can match. Spaces in front of a span are dropped too when the span
// or a run of adjacent spans is followed by closing punctuation. Runs of
// spaces collapse to one. Unbalanced parentheses are kept.
func RemoveParentheticals(text string) string {
	for {
		locs := parenthetical.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			break
		}

		var b strings.Builder
		b.Grow(len(text))
		last := 0
		for i, loc := range locs {
			head := text[last:loc[0]]
			if followedByClosingPunct(restAfterRun(text, locs, i)) {
				head = strings.TrimRight(head, " ")
			}
			b.WriteString(head)
			last = loc[1]
		}
		b.WriteString(text[last:])
		text = b.String()
	}
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return text
}

// restAfterRun returns the text after span i and any spans that follow it
// separated only by whitespace.
func restAfterRun(text string, locs [][]int, i int) string {
	end := locs[i][1]
	for j := i + 1; j < len(locs) && strings.TrimSpace(text[end:locs[j][0]]) == ""; j++ {
		end = locs[j][1]
	}
	return text[end:]
}

func followedByClosingPunct(rest string) bool {
	if rest == "" {
		return false
	}
	return strings.ContainsRune(".,;:!?", rune(rest[0]))
}
