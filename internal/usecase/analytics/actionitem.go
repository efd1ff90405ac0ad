package analytics

import (
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/textutil"
)

const (
	maxActionItems           = 20
	minTaskLength            = 5
	actionItemDedupThreshold = 0.8
	actionContextMaxLength   = 200
)

// ActionItemExtractor pattern-matches task utterances and resolves
// assignee, due date, priority, and effort.
type ActionItemExtractor struct{}

// NewActionItemExtractor creates a new ActionItemExtractor
func NewActionItemExtractor() *ActionItemExtractor {
	return &ActionItemExtractor{}
}

// Extract returns up to 20 deduplicated action items, all in open status.
func (e *ActionItemExtractor) Extract(meeting *entities.MeetingData) ([]entities.ActionItemAnalytics, error) {
	items := make([]entities.ActionItemAnalytics, 0)

	for _, seg := range meeting.Transcripts {
		for _, pattern := range actionItemPatterns {
			m := pattern.FindStringSubmatch(seg.Text)
			if m == nil {
				continue
			}
			task := strings.TrimSpace(m[len(m)-1])
			if len(task) <= minTaskLength {
				continue
			}

			matchText := m[0]
			items = append(items, entities.ActionItemAnalytics{
				Task:            task,
				Assignee:        resolveAssignee(matchText, seg.Text, seg.SpeakerID),
				DueDate:         resolveDueDate(matchText, seg.Text),
				Priority:        actionItemPriority(seg.Text),
				Status:          entities.ActionItemStatusOpen,
				Context:         textutil.Truncate(seg.Text, actionContextMaxLength),
				EstimatedEffort: estimateEffort(task),
			})
		}
	}

	deduped := dedupeActionItems(items)
	if len(deduped) > maxActionItems {
		deduped = deduped[:maxActionItems]
	}

	return deduped, nil
}

// resolveAssignee tries, in order: an @mention, a capitalized "Name will"
// pattern, an explicit "assigned to" clause, and finally first-person
// volunteering language attributed to the current speaker.
func resolveAssignee(matchText, context, speakerID string) *string {
	if m := mentionPattern.FindStringSubmatch(matchText); m != nil {
		return &m[1]
	}
	if m := mentionPattern.FindStringSubmatch(context); m != nil {
		return &m[1]
	}
	if m := namedAssigneePattern.FindStringSubmatch(context); m != nil {
		return &m[1]
	}
	if m := assignedToPattern.FindStringSubmatch(context); m != nil {
		return &m[1]
	}
	if textutil.ContainsAny(context, volunteerWords) {
		return &speakerID
	}
	return nil
}

// resolveDueDate returns the first date-like phrase found in the match or
// its surrounding text, as the raw extracted string.
func resolveDueDate(matchText, context string) *string {
	for _, pattern := range dueDatePatterns {
		if m := pattern.FindString(matchText); m != "" {
			return &m
		}
		if m := pattern.FindString(context); m != "" {
			return &m
		}
	}
	return nil
}

func actionItemPriority(text string) string {
	lower := strings.ToLower(text)
	switch {
	case textutil.ContainsAny(lower, actionUrgentWords):
		return entities.ActionItemPriorityUrgent
	case textutil.ContainsAny(lower, actionHighWords):
		return entities.ActionItemPriorityHigh
	default:
		return entities.ActionItemPriorityMedium
	}
}

// estimateEffort classifies by the verbs appearing in the task text.
func estimateEffort(task string) string {
	lower := strings.ToLower(task)
	if textutil.ContainsAny(lower, largeEffortVerbs) {
		return entities.EffortLarge
	}
	if textutil.ContainsAny(lower, smallEffortVerbs) {
		return entities.EffortSmall
	}
	return entities.EffortMedium
}

// dedupeActionItems drops near-duplicate tasks. The 0.8 threshold is
// stricter than the decision dedup because tasks are shorter and more
// literal. Idempotent by construction.
func dedupeActionItems(items []entities.ActionItemAnalytics) []entities.ActionItemAnalytics {
	survivors := make([]entities.ActionItemAnalytics, 0, len(items))
	wordSets := make([]map[string]struct{}, 0, len(items))

	for _, item := range items {
		itemSet := textutil.WordSet(item.Task)
		duplicate := false
		for i := range survivors {
			if textutil.JaccardSimilarity(itemSet, wordSets[i]) > actionItemDedupThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			survivors = append(survivors, item)
			wordSets = append(wordSets, itemSet)
		}
	}

	return survivors
}
