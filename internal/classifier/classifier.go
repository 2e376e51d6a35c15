package classifier

import (
	"strings"
	"unicode"
)

// Classify labels each raw step. Precedence: decision > loop > end-phase,
// no match falls through to PROCESS.
func (c *implClassifier) Classify(steps []string) []Step {
	classified := make([]Step, 0, len(steps))

	for i, raw := range steps {
		lower := strings.ToLower(raw)

		category := CategoryProcess
		switch {
		case containsAny(lower, c.tables.DecisionKeywords):
			category = CategoryDecision
		case containsAny(lower, c.tables.LoopKeywords):
			category = CategoryLoop
		case containsAny(lower, c.tables.EndPhaseKeywords):
			category = CategoryEndPhase
		}

		classified = append(classified, Step{
			Index:      i + 1,
			RawText:    raw,
			Category:   category,
			ShortLabel: c.shortLabel(raw),
		})
	}

	return classified
}

// FilterConversational drops steps describing the meeting itself. When every
// step is conversational the first 8 originals are kept instead.
func (c *implClassifier) FilterConversational(steps []string) []string {
	filtered := make([]string, 0, len(steps))

	for _, s := range steps {
		lower := strings.ToLower(s)
		if !containsAny(lower, c.tables.ConversationPhrases) {
			filtered = append(filtered, s)
		}
	}

	if len(filtered) == 0 {
		if len(steps) > 8 {
			return steps[:8]
		}
		return steps
	}

	return filtered
}

// shortLabel turns step text into a flowchart-friendly label: subject prefix
// stripped, trailing periods removed, capitalized, truncated to maxLabelWords.
func (c *implClassifier) shortLabel(text string) string {
	text = strings.TrimSpace(text)

	lower := strings.ToLower(text)
	for _, prefix := range c.tables.SubjectPrefixes {
		if strings.HasPrefix(lower, prefix+" ") {
			text = strings.TrimSpace(text[len(prefix)+1:])
			break
		}
	}

	text = strings.TrimRight(text, ".")
	text = capitalize(text)

	words := strings.Fields(text)
	if len(words) > c.maxLabelWords {
		text = strings.Join(words[:c.maxLabelWords], " ") + "..."
	}

	return text
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
