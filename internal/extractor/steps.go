package extractor

import (
	"regexp"
	"strings"
)

var (
	reNumbering = regexp.MustCompile(`^[\d]+[\.\)]\s*`)
	reBulleting = regexp.MustCompile(`^[-•*]\s*`)
)

// Lines starting with these are narration around the steps, not steps.
var metaPrefixes = []string{
	"here are", "following", "process steps", "transcript",
	"note:", "section", "based on", "the above", "these are",
	"below", "i have", "let me", "sure,", "certainly",
	"important", "context", "the meeting", "discussed",
	"use only", "names from", "example",
}

// ParseSteps extracts process steps from numbered or bulleted text. Short
// fragments, headings, and narration lines are dropped.
func ParseSteps(text string) []string {
	var steps []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cleaned := reNumbering.ReplaceAllString(line, "")
		cleaned = reBulleting.ReplaceAllString(cleaned, "")
		cleaned = strings.Trim(strings.TrimSpace(cleaned), `"`)

		if len(cleaned) < 10 {
			continue
		}

		lower := strings.ToLower(cleaned)
		if hasAnyPrefix(lower, metaPrefixes) {
			continue
		}
		if cleaned == strings.ToUpper(cleaned) || strings.HasSuffix(cleaned, ":") {
			continue
		}

		steps = append(steps, cleaned)
	}

	return steps
}

func hasAnyPrefix(text string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
