package analytics

import (
	"testing"
)

func TestActionItemExtract_ShouldPatternWithDueDate(t *testing.T) {
	e := NewActionItemExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "I think we should review PR #12 by Friday", 0, 5),
		seg("s2", "I agree, sounds good", 5, 8),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(results))
	}

	item := results[0]
	if item.Task != "review PR #12 by Friday" {
		t.Fatalf("unexpected task: %q", item.Task)
	}
	if item.Assignee != nil {
		t.Fatalf("expected no assignee, got %v", *item.Assignee)
	}
	if item.DueDate == nil || *item.DueDate != "by Friday" {
		t.Fatalf("expected due date 'by Friday', got %v", item.DueDate)
	}
	if item.Priority != "medium" {
		t.Fatalf("expected medium priority, got %s", item.Priority)
	}
	if item.Status != "open" {
		t.Fatalf("expected open status, got %s", item.Status)
	}
	if item.EstimatedEffort != "small" {
		t.Fatalf("expected small effort for a review, got %s", item.EstimatedEffort)
	}
}

func TestActionItemExtract_MentionAssignee(t *testing.T) {
	e := NewActionItemExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "@alice will update the docs tomorrow", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(results))
	}

	item := results[0]
	if item.Assignee == nil || *item.Assignee != "alice" {
		t.Fatalf("expected assignee alice, got %v", item.Assignee)
	}
	if item.DueDate == nil || *item.DueDate != "tomorrow" {
		t.Fatalf("expected due date tomorrow, got %v", item.DueDate)
	}
	if item.EstimatedEffort != "small" {
		t.Fatalf("expected small effort for an update, got %s", item.EstimatedEffort)
	}
}

func TestActionItemExtract_VolunteerSpeakerAssignee(t *testing.T) {
	e := NewActionItemExtractor()
	results, err := e.Extract(testMeeting(
		seg("s3", "Action item: prepare the release notes, I'll handle it", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(results))
	}
	if results[0].Assignee == nil || *results[0].Assignee != "s3" {
		t.Fatalf("expected volunteering speaker s3, got %v", results[0].Assignee)
	}
}

func TestActionItemExtract_DedupIdenticalTasks(t *testing.T) {
	e := NewActionItemExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "We need to update the deployment script", 0, 5),
		seg("s2", "We need to update the deployment script", 5, 10),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected duplicates collapsed to 1, got %d", len(results))
	}
}

func TestActionItemExtract_UrgentPriorityAndLargeEffort(t *testing.T) {
	e := NewActionItemExtractor()
	results, err := e.Extract(testMeeting(
		seg("s1", "This is urgent, we must implement the failover path", 0, 5),
	))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(results))
	}
	if results[0].Priority != "urgent" {
		t.Fatalf("expected urgent priority, got %s", results[0].Priority)
	}
	if results[0].EstimatedEffort != "large" {
		t.Fatalf("expected large effort, got %s", results[0].EstimatedEffort)
	}
}
