package similarity

import (
	"regexp"
	"strings"
)

// Scorer computes bounded textual similarity between two snippets.
type Scorer interface {
	// Score returns a similarity in [0, 1]. An empty side scores 0.
	Score(a, b string) float64
}

// Match credits: exact overlap counts in full, synonyms and shared prefixes
// progressively less.
const (
	exactCredit     = 1.0
	synonymCredit   = 0.7
	substringCredit = 0.5

	commonWeight   = 1.0
	longWordWeight = 4.0
	defaultWeight  = 2.0

	longWordLen  = 6
	substringLen = 5
)

var wordRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

type implScorer struct {
	tables Tables
}

// New creates a Scorer over the supplied vocabularies.
func New(tables Tables) Scorer {
	return &implScorer{tables: tables}
}

// Score combines three signals over the token sets of both texts: exact
// intersection, synonym matches, and shared 5-char prefixes. Each word in the
// union is weighted by specificity; the result is matched weight over total
// weight.
func (s *implScorer) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	wordsA := s.tokenize(a)
	wordsB := s.tokenize(b)

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	direct := make(map[string]struct{})
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			direct[w] = struct{}{}
		}
	}

	synonym := make(map[string]struct{})
	for w := range wordsA {
		if _, ok := direct[w]; ok {
			continue
		}
		for _, syn := range s.tables.Synonyms[w] {
			if _, ok := wordsB[syn]; ok {
				synonym[w] = struct{}{}
				break
			}
		}
	}

	// Shared prefixes catch inflections, e.g. "management" vs "manage".
	substring := make(map[string]struct{})
	for w := range wordsA {
		if _, ok := direct[w]; ok {
			continue
		}
		if _, ok := synonym[w]; ok {
			continue
		}
		if len(w) < substringLen {
			continue
		}
		for other := range wordsB {
			if len(other) >= substringLen && w[:substringLen] == other[:substringLen] {
				substring[w] = struct{}{}
				break
			}
		}
	}

	union := make(map[string]struct{}, len(wordsA)+len(wordsB))
	for w := range wordsA {
		union[w] = struct{}{}
	}
	for w := range wordsB {
		union[w] = struct{}{}
	}

	var score, maxScore float64
	for w := range union {
		weight := defaultWeight
		if _, ok := s.tables.CommonWords[w]; ok {
			weight = commonWeight
		} else if len(w) >= longWordLen {
			weight = longWordWeight
		}

		maxScore += weight

		switch {
		case contains(direct, w):
			score += weight * exactCredit
		case contains(synonym, w):
			score += weight * synonymCredit
		case contains(substring, w):
			score += weight * substringCredit
		}
	}

	if maxScore == 0 {
		return 0.0
	}

	return score / maxScore
}

// tokenize extracts lower-cased alphabetic words of length >= 3 with
// stopwords removed.
func (s *implScorer) tokenize(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if _, stop := s.tables.Stopwords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

func contains(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}
