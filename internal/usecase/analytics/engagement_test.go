package analytics

import (
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestEngagementExtract_ScoreFormula(t *testing.T) {
	e := NewEngagementExtractor()
	result, err := e.Extract(testMeeting(
		seg("s1", "how does this work?", 0, 10),
		seg("s2", "let me explain", 10, 20),
		seg("s1", "got it, and the rollout?", 20, 30),
		seg("s2", "next week", 30, 40),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	// 4 turns * 2 + 2 questions * 5 + 2 speakers * 10 = 38
	if result.EngagementScore != 38 {
		t.Fatalf("expected score 38, got %v", result.EngagementScore)
	}
	if result.TotalSpeakers != 2 || result.TotalSpeakingTurns != 4 || result.TotalQuestionsAsked != 2 {
		t.Fatalf("unexpected counts: %d speakers, %d turns, %d questions",
			result.TotalSpeakers, result.TotalSpeakingTurns, result.TotalQuestionsAsked)
	}
}

func TestEngagementExtract_ScoreCappedAt100(t *testing.T) {
	meeting := testMeeting()
	for i := 0; i < 60; i++ {
		meeting.Transcripts = append(meeting.Transcripts, seg("s1", "why?", float64(i), float64(i+1)))
	}

	e := NewEngagementExtractor()
	result, err := e.Extract(meeting)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if result.EngagementScore != 100 {
		t.Fatalf("expected capped score 100, got %v", result.EngagementScore)
	}
}

func TestEngagementExtract_MoreQuestionsScoreHigher(t *testing.T) {
	e := NewEngagementExtractor()

	low, err := e.Extract(testMeeting(seg("s1", "status update", 0, 10)))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	high, err := e.Extract(testMeeting(seg("s1", "status update? why? how?", 0, 10)))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if high.EngagementScore <= low.EngagementScore {
		t.Fatalf("expected questions to raise the score: %v vs %v",
			low.EngagementScore, high.EngagementScore)
	}
}

func TestEngagementExtract_SpeakingPercentages(t *testing.T) {
	meeting := testMeeting(
		seg("s1", "the long explanation", 0, 60),
		seg("s2", "a shorter reply", 60, 100),
	)
	meeting.AudioInfo = entities.AudioInfo{DurationSeconds: 100}

	e := NewEngagementExtractor()
	result, err := e.Extract(meeting)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if result.SpeakerDistribution["s1"].SpeakingPercentage != 60 {
		t.Fatalf("expected s1 at 60%%, got %v", result.SpeakerDistribution["s1"].SpeakingPercentage)
	}
	if result.SpeakerDistribution["s2"].SpeakingPercentage != 40 {
		t.Fatalf("expected s2 at 40%%, got %v", result.SpeakerDistribution["s2"].SpeakingPercentage)
	}
	if result.MeetingDynamics.BalancedParticipation != "moderate" {
		t.Fatalf("expected moderate balance, got %s", result.MeetingDynamics.BalancedParticipation)
	}
}

func TestEngagementExtract_UnknownBalanceWithoutDuration(t *testing.T) {
	e := NewEngagementExtractor()
	result, err := e.Extract(testMeeting(seg("s1", "hello", 0, 5)))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if result.MeetingDynamics.BalancedParticipation != "unknown" {
		t.Fatalf("expected unknown balance, got %s", result.MeetingDynamics.BalancedParticipation)
	}
}
