package textutil

import (
	"math"
	"regexp"
	"strings"
)

var wordSplitter = regexp.MustCompile(`[^a-z0-9']+`)

// Tokenize lower-cases text and splits it into word tokens.
// Punctuation is dropped; apostrophes inside words are kept ("i'll").
func Tokenize(text string) []string {
	parts := wordSplitter.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "'")
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// WordSet returns the set of distinct tokens in text.
func WordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		set[tok] = struct{}{}
	}
	return set
}

// JaccardSimilarity computes |A∩B| / |A∪B| over two word sets.
// Two empty sets are considered identical (similarity 1.0).
func JaccardSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// CountKeywordHits counts how many tokens appear in the keyword set.
// Every occurrence counts, not just distinct tokens.
func CountKeywordHits(tokens []string, keywords map[string]struct{}) int {
	hits := 0
	for _, tok := range tokens {
		if _, ok := keywords[tok]; ok {
			hits++
		}
	}
	return hits
}

// ContainsAny reports whether text contains any of the given substrings,
// case-insensitively.
func ContainsAny(text string, substrings []string) bool {
	lower := strings.ToLower(text)
	for _, s := range substrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// KeywordSet builds a lookup set from a keyword list.
func KeywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[strings.ToLower(k)] = struct{}{}
	}
	return set
}

// SplitSentences splits text on sentence-ending punctuation.
// Good enough for clause-level heuristics; no abbreviation handling.
func SplitSentences(text string) []string {
	raw := sentenceSplitter.Split(text, -1)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

var sentenceSplitter = regexp.MustCompile(`[.!?]+\s*`)

// Truncate cuts text to at most max runes, appending an ellipsis when cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp limits v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
