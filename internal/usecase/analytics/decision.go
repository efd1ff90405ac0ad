package analytics

import (
	"sort"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/textutil"
)

const (
	maxDecisions             = 15
	minDecisionClauseLength  = 10
	decisionDedupThreshold   = 0.7
	decisionBaseConfidence   = 0.5
	decisionConfidenceBump   = 0.15
	decisionUncertaintyDrop  = 0.2
	decisionContextMaxLength = 200
)

var decisionPriorityWeights = map[string]int{
	entities.DecisionPriorityCritical: 4,
	entities.DecisionPriorityHigh:     3,
	entities.DecisionPriorityMedium:   2,
	entities.DecisionPriorityLow:      1,
}

// DecisionExtractor pattern-matches decision utterances
type DecisionExtractor struct{}

// NewDecisionExtractor creates a new DecisionExtractor
func NewDecisionExtractor() *DecisionExtractor {
	return &DecisionExtractor{}
}

// Extract returns up to 15 deduplicated decisions ordered by confidence,
// then priority weight, both descending.
func (e *DecisionExtractor) Extract(meeting *entities.MeetingData) ([]entities.DecisionAnalytics, error) {
	candidates := make([]entities.DecisionAnalytics, 0)

	for _, seg := range meeting.Transcripts {
		for _, sentence := range textutil.SplitSentences(seg.Text) {
			for _, pattern := range decisionPatterns {
				m := pattern.FindStringSubmatch(sentence)
				if m == nil {
					continue
				}
				clause := strings.TrimSpace(m[len(m)-1])
				if len(clause) <= minDecisionClauseLength {
					continue
				}

				candidates = append(candidates, entities.DecisionAnalytics{
					Decision:             clause,
					Confidence:           decisionConfidence(clause, sentence),
					Timestamp:            seg.StartTime,
					ParticipantsInvolved: []string{seg.SpeakerID},
					Context:              textutil.Truncate(sentence, decisionContextMaxLength),
					Priority:             decisionPriority(clause, sentence),
				})
			}
		}
	}

	deduped := dedupeDecisions(candidates)

	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].Confidence != deduped[j].Confidence {
			return deduped[i].Confidence > deduped[j].Confidence
		}
		return decisionPriorityWeights[deduped[i].Priority] > decisionPriorityWeights[deduped[j].Priority]
	})
	if len(deduped) > maxDecisions {
		deduped = deduped[:maxDecisions]
	}

	return deduped, nil
}

// decisionPriority classifies by keyword tiers. Critical and high tiers
// look at both the clause and its surrounding sentence; the medium tier
// only at the clause.
func decisionPriority(clause, sentence string) string {
	combined := strings.ToLower(clause + " " + sentence)
	switch {
	case textutil.ContainsAny(combined, decisionCriticalWords):
		return entities.DecisionPriorityCritical
	case textutil.ContainsAny(combined, decisionHighWords):
		return entities.DecisionPriorityHigh
	case textutil.ContainsAny(strings.ToLower(clause), decisionMediumWords):
		return entities.DecisionPriorityMedium
	default:
		return entities.DecisionPriorityLow
	}
}

// decisionConfidence starts at 0.5, adds 0.15 per confidence word in the
// surrounding sentence, subtracts 0.2 per uncertainty word in clause or
// sentence, clamped to [0.1, 1.0].
func decisionConfidence(clause, sentence string) float64 {
	confidence := decisionBaseConfidence
	sentenceLower := strings.ToLower(sentence)
	combined := strings.ToLower(clause) + " " + sentenceLower

	for _, w := range decisionConfidenceWords {
		if strings.Contains(sentenceLower, w) {
			confidence += decisionConfidenceBump
		}
	}
	for _, w := range decisionUncertaintyWords {
		if strings.Contains(combined, w) {
			confidence -= decisionUncertaintyDrop
		}
	}

	return textutil.Clamp(confidence, 0.1, 1.0)
}

// dedupeDecisions removes near-duplicates (Jaccard word-set similarity
// above 0.7), keeping the higher-confidence instance. The pass is
// idempotent: survivors of one pass survive any further pass unchanged.
func dedupeDecisions(candidates []entities.DecisionAnalytics) []entities.DecisionAnalytics {
	survivors := make([]entities.DecisionAnalytics, 0, len(candidates))
	wordSets := make([]map[string]struct{}, 0, len(candidates))

	for _, candidate := range candidates {
		candidateSet := textutil.WordSet(candidate.Decision)
		duplicateOf := -1
		for i := range survivors {
			if textutil.JaccardSimilarity(candidateSet, wordSets[i]) > decisionDedupThreshold {
				duplicateOf = i
				break
			}
		}
		if duplicateOf == -1 {
			survivors = append(survivors, candidate)
			wordSets = append(wordSets, candidateSet)
			continue
		}
		if candidate.Confidence > survivors[duplicateOf].Confidence {
			survivors[duplicateOf] = candidate
			wordSets[duplicateOf] = candidateSet
		}
	}

	return survivors
}
