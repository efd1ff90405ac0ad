package analytics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/textutil"
)

const (
	maxCodeReferences        = 20
	maxRepositories          = 10
	maxTechnicalTerms        = 15
	maxAPIDiscussions        = 10
	maxArchitectureDecisions = 8
	maxBugReports            = 10
)

// CodeContextExtractor pulls code, repository, API, architecture, and bug
// references out of the meeting text via independent pattern passes.
type CodeContextExtractor struct{}

// NewCodeContextExtractor creates a new CodeContextExtractor
func NewCodeContextExtractor() *CodeContextExtractor {
	return &CodeContextExtractor{}
}

// Extract runs all six pattern passes over the concatenated transcript text.
func (e *CodeContextExtractor) Extract(meeting *entities.MeetingData) (*entities.CodeContextAnalytics, error) {
	text := meeting.FullText()

	return &entities.CodeContextAnalytics{
		CodeReferences:        collectMatches(text, codeReferencePatterns, maxCodeReferences),
		RepositoriesMentioned: collectMatches(text, repositoryPatterns, maxRepositories),
		TechnicalTerms:        rankTechnicalTerms(text, maxTechnicalTerms),
		APIDiscussions:        collectMatches(text, apiDiscussionPatterns, maxAPIDiscussions),
		ArchitectureDecisions: collectArchitectureDecisions(text, maxArchitectureDecisions),
		BugReports:            collectBugReports(text, maxBugReports),
	}, nil
}

// collectMatches runs each pattern over the text, preferring the capture
// group when present, deduplicates, and caps the result.
func collectMatches(text string, patterns []*regexp.Regexp, limit int) []string {
	seen := make(map[string]struct{})
	results := make([]string, 0, limit)

	for _, pattern := range patterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			value := m[0]
			if len(m) > 1 && m[len(m)-1] != "" {
				value = m[len(m)-1]
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			results = append(results, value)
			if len(results) >= limit {
				return results
			}
		}
	}

	return results
}

// rankTechnicalTerms counts vocabulary term frequency and returns the top
// terms by descending frequency.
func rankTechnicalTerms(text string, limit int) []string {
	tokens := textutil.Tokenize(text)
	counts := make(map[string]int)
	vocab := textutil.KeywordSet(technicalVocabulary)

	for _, tok := range tokens {
		if _, ok := vocab[tok]; ok {
			counts[tok]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.SliceStable(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

// collectArchitectureDecisions keeps sentences mentioning architecture
// concerns, deduplicated and capped.
func collectArchitectureDecisions(text string, limit int) []string {
	seen := make(map[string]struct{})
	results := make([]string, 0, limit)

	for _, sentence := range textutil.SplitSentences(text) {
		if !textutil.ContainsAny(sentence, architectureKeywords) {
			continue
		}
		if _, dup := seen[sentence]; dup {
			continue
		}
		seen[sentence] = struct{}{}
		results = append(results, sentence)
		if len(results) >= limit {
			break
		}
	}

	return results
}

// collectBugReports captures the clause following a bug-signal keyword.
func collectBugReports(text string, limit int) []string {
	seen := make(map[string]struct{})
	results := make([]string, 0, limit)

	for _, m := range bugReportPattern.FindAllStringSubmatch(text, -1) {
		clause := strings.TrimSpace(m[1])
		if clause == "" {
			continue
		}
		if _, dup := seen[clause]; dup {
			continue
		}
		seen[clause] = struct{}{}
		results = append(results, clause)
		if len(results) >= limit {
			break
		}
	}

	return results
}
