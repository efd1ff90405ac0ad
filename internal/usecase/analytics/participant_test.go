package analytics

import (
	"strings"
	"testing"
)

func TestParticipantExtract_SaturatedScore(t *testing.T) {
	// 300s of speaking, 500+ words, and enough indicators saturate every
	// component: 3 + 4 + 3 = 10.0
	filler := strings.Repeat("word ", 250)
	text := filler + "what do I think? we should deploy the code and fix the api"

	e := NewParticipantExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", text, 0, 150),
		seg("s1", text, 150, 300),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 participant, got %d", len(results))
	}
	if results[0].ContributionScore != 10.0 {
		t.Fatalf("expected saturated score 10.0, got %v", results[0].ContributionScore)
	}
	if results[0].EngagementLevel != "high" {
		t.Fatalf("expected high engagement, got %s", results[0].EngagementLevel)
	}
}

func TestParticipantExtract_DistinctSpeakersSortedByScore(t *testing.T) {
	e := NewParticipantExtractor()
	results, err := e.Extract(testMeeting(
		seg("quiet", "yes", 0, 1),
		seg("busy", strings.Repeat("word ", 400)+" we should fix the api? I think so", 1, 200),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(results))
	}
	if results[0].SpeakerID != "busy" {
		t.Fatalf("expected busy speaker first, got %s", results[0].SpeakerID)
	}
	if results[0].ContributionScore <= results[1].ContributionScore {
		t.Fatalf("expected descending scores, got %v then %v",
			results[0].ContributionScore, results[1].ContributionScore)
	}
}

func TestParticipantExtract_SelfIntroductionName(t *testing.T) {
	e := NewParticipantExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "Hi everyone, I'm Alice and I lead the platform team", 0, 5),
		seg("s2", "thanks for joining", 5, 8),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	byID := make(map[string]string)
	for _, p := range results {
		byID[p.SpeakerID] = p.Name
	}
	if byID["s1"] != "Alice" {
		t.Fatalf("expected name Alice for s1, got %q", byID["s1"])
	}
	if byID["s2"] != "Speaker s2" {
		t.Fatalf("expected placeholder name for s2, got %q", byID["s2"])
	}
}

func TestParticipantExtract_EmptyTranscript(t *testing.T) {
	e := NewParticipantExtractor()
	results, err := e.Extract(testMeeting())
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no participants, got %d", len(results))
	}
}

func TestContributionScore_Rounding(t *testing.T) {
	// 100s -> 1.0, 100 words -> 0.8, 1 indicator -> 0.6; total 2.4
	score := contributionScore(100, 100, 1)
	if score != 2.4 {
		t.Fatalf("expected 2.4, got %v", score)
	}
}

func TestClassifyEngagementIndicators_WholeWordMatching(t *testing.T) {
	// "show" must not trigger the interrogative "how"
	tags := classifyEngagementIndicators("please show the results")
	for _, tag := range tags {
		if tag == indicatorAsksQuestions {
			t.Fatalf("substring match should not produce asks_questions")
		}
	}

	tags = classifyEngagementIndicators("how does the cache behave?")
	found := false
	for _, tag := range tags {
		if tag == indicatorAsksQuestions {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected asks_questions tag, got %v", tags)
	}
}
