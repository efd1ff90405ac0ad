package analytics

import (
	"sort"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/textutil"
)

const (
	maxTopics            = 10
	topicScoreThreshold  = 0.1
	participantTopicBump = 0.2
)

// TopicExtractor scores the fixed taxonomy against the meeting text
type TopicExtractor struct{}

// NewTopicExtractor creates a new TopicExtractor
func NewTopicExtractor() *TopicExtractor {
	return &TopicExtractor{}
}

// Extract returns up to 10 topics sorted by importance score descending.
// A category is included only when its keyword-density score exceeds 0.1.
func (e *TopicExtractor) Extract(meeting *entities.MeetingData) ([]entities.TopicAnalytics, error) {
	allTokens := textutil.Tokenize(meeting.FullText())
	totalWords := len(allTokens)
	if totalWords == 0 {
		return []entities.TopicAnalytics{}, nil
	}

	results := make([]entities.TopicAnalytics, 0, len(topicTaxonomy))
	for _, category := range topicTaxonomy {
		keywordSet := textutil.KeywordSet(category.Keywords)
		hits := textutil.CountKeywordHits(allTokens, keywordSet)
		score := minFloat(float64(hits)/float64(totalWords)*100, 1.0)
		if score <= topicScoreThreshold {
			continue
		}

		duration, participants, matched := e.categoryPresence(meeting, category.Keywords)
		importance := score * (1 + float64(len(participants))*participantTopicBump)

		results = append(results, entities.TopicAnalytics{
			Topic:           category.Name,
			Confidence:      score,
			Duration:        duration,
			Participants:    participants,
			Keywords:        matched,
			ImportanceScore: importance,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ImportanceScore > results[j].ImportanceScore
	})
	if len(results) > maxTopics {
		results = results[:maxTopics]
	}

	return results, nil
}

// categoryPresence sums the duration of segments mentioning any category
// keyword, collects the speakers of those segments, and reports which
// keywords actually appeared.
func (e *TopicExtractor) categoryPresence(meeting *entities.MeetingData, keywords []string) (float64, []string, []string) {
	var duration float64
	participantSet := make(map[string]struct{})
	participants := make([]string, 0)

	for _, seg := range meeting.Transcripts {
		if !textutil.ContainsAny(seg.Text, keywords) {
			continue
		}
		duration += seg.Duration()
		if _, seen := participantSet[seg.SpeakerID]; !seen {
			participantSet[seg.SpeakerID] = struct{}{}
			participants = append(participants, seg.SpeakerID)
		}
	}

	matched := make([]string, 0, len(keywords))
	fullText := meeting.FullText()
	for _, kw := range keywords {
		if textutil.ContainsAny(fullText, []string{kw}) {
			matched = append(matched, kw)
		}
	}

	return duration, participants, matched
}
