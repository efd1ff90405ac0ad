package analytics

import (
	"sort"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/textutil"
)

// SentimentExtractor runs lexicon-based polarity analysis per segment
type SentimentExtractor struct{}

// NewSentimentExtractor creates a new SentimentExtractor
func NewSentimentExtractor() *SentimentExtractor {
	return &SentimentExtractor{}
}

// Extract computes per-segment and overall sentiment proportions. When the
// transcript contains no lexicon hits at all, the overall proportions
// default to an even third each so they still sum to 1.0.
func (e *SentimentExtractor) Extract(meeting *entities.MeetingData) (*entities.SentimentResult, error) {
	positiveSet := textutil.KeywordSet(positiveSentimentWords)
	negativeSet := textutil.KeywordSet(negativeSentimentWords)
	neutralSet := textutil.KeywordSet(neutralSentimentWords)

	timeline := make([]entities.SentimentPoint, 0)
	positiveSeen := make(map[string]struct{})
	negativeSeen := make(map[string]struct{})
	var totalPositive, totalNegative, totalNeutral int

	for _, seg := range meeting.Transcripts {
		tokens := textutil.Tokenize(seg.Text)
		var pos, neg, neu int
		for _, tok := range tokens {
			if _, ok := positiveSet[tok]; ok {
				pos++
				positiveSeen[tok] = struct{}{}
			}
			if _, ok := negativeSet[tok]; ok {
				neg++
				negativeSeen[tok] = struct{}{}
			}
			if _, ok := neutralSet[tok]; ok {
				neu++
			}
		}

		hits := pos + neg + neu
		if hits == 0 {
			continue
		}

		totalPositive += pos
		totalNegative += neg
		totalNeutral += neu
		timeline = append(timeline, entities.SentimentPoint{
			SpeakerID: seg.SpeakerID,
			Timestamp: seg.StartTime,
			Positive:  float64(pos) / float64(hits),
			Negative:  float64(neg) / float64(hits),
			Neutral:   float64(neu) / float64(hits),
		})
	}

	overall := entities.SentimentScores{Positive: 1.0 / 3, Negative: 1.0 / 3, Neutral: 1.0 / 3}
	if total := totalPositive + totalNegative + totalNeutral; total > 0 {
		overall = entities.SentimentScores{
			Positive: float64(totalPositive) / float64(total),
			Negative: float64(totalNegative) / float64(total),
			Neutral:  float64(totalNeutral) / float64(total),
		}
	}

	return &entities.SentimentResult{
		OverallSentiment:   overall,
		Mood:               classifyMood(overall),
		SentimentTimeline:  timeline,
		PositiveIndicators: setToSlice(positiveSeen),
		NegativeIndicators: setToSlice(negativeSeen),
	}, nil
}

func classifyMood(overall entities.SentimentScores) string {
	switch {
	case overall.Positive > 0.5:
		return entities.MoodPositive
	case overall.Negative > 0.4:
		return entities.MoodNegative
	default:
		return entities.MoodNeutral
	}
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
