package analytics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestEngineExtractAll_EmptyMeeting(t *testing.T) {
	engine := NewEngine(nil)
	result := engine.ExtractAll(testMeeting())

	if result.MeetingID != "meeting-test" {
		t.Fatalf("unexpected meeting id %s", result.MeetingID)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no extractor errors, got %v", result.Errors)
	}
	if result.AggregatedMetrics == nil {
		t.Fatalf("expected aggregated metrics")
	}
	if result.AggregatedMetrics.MeetingProductivityScore != 0 {
		t.Fatalf("expected productivity 0 for empty meeting, got %v",
			result.AggregatedMetrics.MeetingProductivityScore)
	}
	// no participants falls back to the neutral engagement default
	if result.AggregatedMetrics.EngagementScore != 50.0 {
		t.Fatalf("expected neutral engagement 50, got %v",
			result.AggregatedMetrics.EngagementScore)
	}
	if result.AggregatedMetrics.TechnicalComplexity != "low" {
		t.Fatalf("expected low complexity, got %s",
			result.AggregatedMetrics.TechnicalComplexity)
	}
}

func TestEngineExtractAll_AllCategoriesPopulated(t *testing.T) {
	engine := NewEngine(nil)
	result := engine.ExtractAll(testMeeting(
		seg("s1", "Hi, I'm Alice. We decided to migrate the project database by Friday.", 0, 30),
		seg("s2", "Great, I'll review the `migrate` script. Any bug: the retry loop is flaky?", 30, 60),
	))

	if result.Participants == nil {
		t.Fatalf("expected participants")
	}
	if result.CodeContext == nil {
		t.Fatalf("expected code context")
	}
	if result.Sentiment == nil {
		t.Fatalf("expected sentiment")
	}
	if result.Engagement == nil {
		t.Fatalf("expected engagement")
	}
	if result.AggregatedMetrics == nil {
		t.Fatalf("expected aggregated metrics")
	}
	if result.AggregatedMetrics.TotalParticipants != 2 {
		t.Fatalf("expected 2 participants, got %d", result.AggregatedMetrics.TotalParticipants)
	}
}

func TestEngineTechnicalComplexity_HighOnManyCodeReferences(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&sb, "check `helper%d` next. ", i)
	}

	engine := NewEngine(nil)
	result := engine.ExtractAll(testMeeting(seg("s1", sb.String(), 0, 60)))

	if result.AggregatedMetrics.TechnicalComplexity != "high" {
		t.Fatalf("expected high complexity, got %s",
			result.AggregatedMetrics.TechnicalComplexity)
	}
}

func TestEngineProductivityScore_CappedAt100(t *testing.T) {
	engine := NewEngine(nil)
	result := &entities.MeetingAnalytics{
		Decisions: make([]entities.DecisionAnalytics, 3),
		ActionItems: []entities.ActionItemAnalytics{
			{Task: "a"}, {Task: "b"},
		},
	}

	score := engine.productivityScore(result)
	if score != 100 {
		t.Fatalf("expected capped productivity 100, got %v", score)
	}
}

func TestEngineProductivityScore_Formula(t *testing.T) {
	engine := NewEngine(nil)
	result := &entities.MeetingAnalytics{
		Decisions:   make([]entities.DecisionAnalytics, 1),
		ActionItems: make([]entities.ActionItemAnalytics, 1),
		Topics:      make([]entities.TopicAnalytics, 7),
	}

	// 1*30 + 1*25 + min(7,5)*9 = 100 -> exactly at the cap boundary
	score := engine.productivityScore(result)
	if score != 100 {
		t.Fatalf("expected 100, got %v", score)
	}

	result.Topics = result.Topics[:2]
	// 30 + 25 + 2*9 = 73
	score = engine.productivityScore(result)
	if score != 73 {
		t.Fatalf("expected 73, got %v", score)
	}
}

func TestEngineAggregateEngagement_AverageOfContributions(t *testing.T) {
	engine := NewEngine(nil)
	result := &entities.MeetingAnalytics{
		Participants: []entities.ParticipantAnalytics{
			{ContributionScore: 2.0},
			{ContributionScore: 4.0},
		},
	}

	// avg 3.0 * 20 = 60
	score := engine.aggregateEngagementScore(result)
	if score != 60 {
		t.Fatalf("expected 60, got %v", score)
	}
}

func TestEngineAggregateEngagement_CappedAt100(t *testing.T) {
	engine := NewEngine(nil)
	result := &entities.MeetingAnalytics{
		Participants: []entities.ParticipantAnalytics{
			{ContributionScore: 9.0},
			{ContributionScore: 9.5},
		},
	}

	score := engine.aggregateEngagementScore(result)
	if score != 100 {
		t.Fatalf("expected capped 100, got %v", score)
	}
}

func TestEngineTechnicalComplexity_Tiers(t *testing.T) {
	engine := NewEngine(nil)

	if got := engine.technicalComplexity(nil); got != "low" {
		t.Fatalf("expected low for missing code context, got %s", got)
	}

	medium := &entities.CodeContextAnalytics{CodeReferences: make([]string, 4)}
	if got := engine.technicalComplexity(medium); got != "medium" {
		t.Fatalf("expected medium, got %s", got)
	}

	high := &entities.CodeContextAnalytics{TechnicalTerms: make([]string, 21)}
	if got := engine.technicalComplexity(high); got != "high" {
		t.Fatalf("expected high, got %s", got)
	}
}
