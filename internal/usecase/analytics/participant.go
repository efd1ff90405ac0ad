package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/textutil"
)

// ParticipantExtractor builds per-speaker aggregates and contribution scores
type ParticipantExtractor struct{}

// NewParticipantExtractor creates a new ParticipantExtractor
func NewParticipantExtractor() *ParticipantExtractor {
	return &ParticipantExtractor{}
}

// participantAccumulator collects per-speaker state while iterating segments
type participantAccumulator struct {
	speakerID      string
	name           string
	speakingTime   float64
	wordCount      int
	indicatorCount int
}

// Extract returns one ParticipantAnalytics per distinct speaker observed
// in the transcript. Speakers with zero segments never appear.
func (e *ParticipantExtractor) Extract(meeting *entities.MeetingData) ([]entities.ParticipantAnalytics, error) {
	accumulators := make(map[string]*participantAccumulator)
	order := make([]string, 0)

	for _, seg := range meeting.Transcripts {
		acc, ok := accumulators[seg.SpeakerID]
		if !ok {
			acc = &participantAccumulator{speakerID: seg.SpeakerID}
			accumulators[seg.SpeakerID] = acc
			order = append(order, seg.SpeakerID)
		}

		// Keep the placeholder name until a self-introduction shows up.
		if acc.name == "" {
			if name, ok := matchSelfIntroduction(seg.Text); ok {
				acc.name = name
			}
		}

		acc.speakingTime += seg.Duration()
		acc.wordCount += len(textutil.Tokenize(seg.Text))
		acc.indicatorCount += len(classifyEngagementIndicators(seg.Text))
	}

	results := make([]entities.ParticipantAnalytics, 0, len(order))
	for _, speakerID := range order {
		acc := accumulators[speakerID]
		name := acc.name
		if name == "" {
			name = fmt.Sprintf("Speaker %s", speakerID)
		}
		score := contributionScore(acc.speakingTime, acc.wordCount, acc.indicatorCount)
		results = append(results, entities.ParticipantAnalytics{
			SpeakerID:         acc.speakerID,
			Name:              name,
			SpeakingTime:      acc.speakingTime,
			WordCount:         acc.wordCount,
			ContributionScore: score,
			EngagementLevel:   engagementLevel(score),
			TopicsContributed: []string{},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ContributionScore > results[j].ContributionScore
	})

	return results, nil
}

// contributionScore weights speaking time, word count, and engagement
// indicators into a 0-10 composite, rounded to two decimals.
func contributionScore(speakingTime float64, wordCount, indicatorCount int) float64 {
	timeScore := minFloat(speakingTime/300, 1) * 3
	wordScore := minFloat(float64(wordCount)/500, 1) * 4
	indicatorScore := minFloat(float64(indicatorCount)/5, 1) * 3
	return textutil.Round2(timeScore + wordScore + indicatorScore)
}

func engagementLevel(score float64) string {
	switch {
	case score >= 7:
		return entities.EngagementLevelHigh
	case score >= 4:
		return entities.EngagementLevelMedium
	default:
		return entities.EngagementLevelLow
	}
}

// classifyEngagementIndicators tags a segment's text with zero or more
// engagement-indicator tags.
func classifyEngagementIndicators(text string) []string {
	lower := strings.ToLower(text)
	tags := make([]string, 0, 4)

	if strings.Contains(text, "?") || containsAnyWord(lower, interrogativeWords) {
		tags = append(tags, indicatorAsksQuestions)
	}
	if textutil.ContainsAny(lower, opinionWords) {
		tags = append(tags, indicatorOpinion)
	}
	if containsAnyWord(lower, technicalWords) {
		tags = append(tags, indicatorTechnical)
	}
	if textutil.ContainsAny(lower, actionWords) {
		tags = append(tags, indicatorActionOriented)
	}

	return tags
}

// containsAnyWord matches whole tokens, unlike substring matching, so
// "show" does not trigger on "how".
func containsAnyWord(lower string, words []string) bool {
	tokens := textutil.WordSet(lower)
	for _, w := range words {
		if _, ok := tokens[w]; ok {
			return true
		}
	}
	return false
}

// matchSelfIntroduction tries the self-introduction patterns against a
// segment's text and returns the captured name on the first hit.
func matchSelfIntroduction(text string) (string, bool) {
	for _, p := range selfIntroPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
