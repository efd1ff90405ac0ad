package analytics

import (
	"fmt"
	"math"
	"testing"
)

func TestDecisionExtract_ShouldPattern(t *testing.T) {
	e := NewDecisionExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "I think we should review PR #12 by Friday", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(results))
	}

	d := results[0]
	if d.Decision != "review PR #12 by Friday" {
		t.Fatalf("unexpected decision clause: %q", d.Decision)
	}
	// no confidence or uncertainty words: base 0.5
	if math.Abs(d.Confidence-0.5) > 1e-9 {
		t.Fatalf("expected confidence 0.5, got %v", d.Confidence)
	}
	// "should" in the sentence lands in the high tier
	if d.Priority != "high" {
		t.Fatalf("expected high priority, got %s", d.Priority)
	}
	if len(d.ParticipantsInvolved) != 1 || d.ParticipantsInvolved[0] != "s1" {
		t.Fatalf("expected participants [s1], got %v", d.ParticipantsInvolved)
	}
}

func TestDecisionExtract_DedupKeepsHigherConfidence(t *testing.T) {
	e := NewDecisionExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "We decided to ship the new cache layer.", 0, 5),
		seg("s2", "We will ship the new cache layer.", 5, 10),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected duplicates collapsed to 1, got %d", len(results))
	}
	// "decided" bumps the first instance to 0.65; the survivor keeps it
	if math.Abs(results[0].Confidence-0.65) > 1e-9 {
		t.Fatalf("expected surviving confidence 0.65, got %v", results[0].Confidence)
	}
}

func TestDecisionExtract_ConfidenceClampedLow(t *testing.T) {
	e := NewDecisionExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "We should maybe possibly perhaps postpone the migration", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(results))
	}
	// 0.5 - 3*0.2 clamps at the 0.1 floor
	if math.Abs(results[0].Confidence-0.1) > 1e-9 {
		t.Fatalf("expected clamped confidence 0.1, got %v", results[0].Confidence)
	}
}

func TestDecisionExtract_CapAtFifteen(t *testing.T) {
	variants := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra", "tango",
	}

	segments := make([]string, 0, len(variants))
	for _, v := range variants {
		segments = append(segments, fmt.Sprintf("We decided to launch variant %s next sprint.", v))
	}

	meeting := testMeeting()
	for i, text := range segments {
		meeting.Transcripts = append(meeting.Transcripts, seg("s1", text, float64(i), float64(i+1)))
	}

	e := NewDecisionExtractor()
	results, err := e.Extract(meeting)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 15 {
		t.Fatalf("expected decisions capped at 15, got %d", len(results))
	}
}

func TestDedupeDecisions_Idempotent(t *testing.T) {
	e := NewDecisionExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "We decided to adopt the new build pipeline.", 0, 5),
		seg("s2", "We agreed that documentation needs a refresh.", 5, 10),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	again := dedupeDecisions(results)
	if len(again) != len(results) {
		t.Fatalf("dedup not idempotent: %d -> %d", len(results), len(again))
	}
}
