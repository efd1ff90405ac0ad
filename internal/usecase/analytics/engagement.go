package analytics

import (
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// EngagementExtractor measures turn-taking, questions, and speaking balance
type EngagementExtractor struct{}

// NewEngagementExtractor creates a new EngagementExtractor
func NewEngagementExtractor() *EngagementExtractor {
	return &EngagementExtractor{}
}

// Extract computes the meeting-wide engagement score and dynamics.
func (e *EngagementExtractor) Extract(meeting *entities.MeetingData) (*entities.EngagementResult, error) {
	distribution := make(map[string]entities.SpeakerEngagement)
	totalTurns := 0
	totalQuestions := 0

	for _, seg := range meeting.Transcripts {
		stats := distribution[seg.SpeakerID]
		stats.SpeakingTime += seg.Duration()
		stats.TurnCount++
		stats.QuestionsAsked += strings.Count(seg.Text, "?")
		distribution[seg.SpeakerID] = stats

		totalTurns++
		totalQuestions += strings.Count(seg.Text, "?")
	}

	totalDuration := meeting.AudioInfo.DurationSeconds
	if totalDuration > 0 {
		for id, stats := range distribution {
			stats.SpeakingPercentage = stats.SpeakingTime / totalDuration * 100
			if stats.TurnCount > 0 {
				stats.AverageTurnLength = stats.SpeakingTime / float64(stats.TurnCount)
			}
			distribution[id] = stats
		}
	}

	speakers := len(distribution)
	score := float64(totalTurns*2 + totalQuestions*5 + speakers*10)
	if score > 100 {
		score = 100
	}

	return &entities.EngagementResult{
		EngagementScore:     score,
		TotalSpeakers:       speakers,
		TotalSpeakingTurns:  totalTurns,
		TotalQuestionsAsked: totalQuestions,
		SpeakerDistribution: distribution,
		MeetingDynamics: entities.MeetingDynamics{
			BalancedParticipation: classifyParticipationBalance(distribution, totalDuration),
			InteractionLevel:      classifyInteractionLevel(totalQuestions),
			DiscussionFlow:        classifyDiscussionFlow(totalTurns, speakers),
		},
	}, nil
}

// classifyParticipationBalance compares the spread of speaking percentages.
func classifyParticipationBalance(distribution map[string]entities.SpeakerEngagement, totalDuration float64) string {
	if totalDuration <= 0 || len(distribution) == 0 {
		return "unknown"
	}

	first := true
	var minPct, maxPct float64
	for _, stats := range distribution {
		if first {
			minPct, maxPct = stats.SpeakingPercentage, stats.SpeakingPercentage
			first = false
			continue
		}
		if stats.SpeakingPercentage < minPct {
			minPct = stats.SpeakingPercentage
		}
		if stats.SpeakingPercentage > maxPct {
			maxPct = stats.SpeakingPercentage
		}
	}

	switch {
	case maxPct-minPct < 20:
		return "balanced"
	case maxPct > 70:
		return "dominated"
	default:
		return "moderate"
	}
}

func classifyInteractionLevel(questions int) string {
	switch {
	case questions > 10:
		return "high"
	case questions > 3:
		return "medium"
	default:
		return "low"
	}
}

func classifyDiscussionFlow(turns, speakers int) string {
	if turns > speakers*3 {
		return "interactive"
	}
	return "presentation-style"
}
