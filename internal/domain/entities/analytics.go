package entities

// EngagementLevel constants for participant engagement classification
const (
	EngagementLevelLow    = "low"
	EngagementLevelMedium = "medium"
	EngagementLevelHigh   = "high"
)

// DecisionPriority constants
const (
	DecisionPriorityLow      = "low"
	DecisionPriorityMedium   = "medium"
	DecisionPriorityHigh     = "high"
	DecisionPriorityCritical = "critical"
)

// ActionItemPriority constants
const (
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityHigh   = "high"
	ActionItemPriorityUrgent = "urgent"
)

// ActionItemStatus constants. Extraction always produces open items;
// downstream task tooling owns the rest of the lifecycle.
const (
	ActionItemStatusOpen = "open"
)

// EstimatedEffort constants
const (
	EffortSmall  = "small"
	EffortMedium = "medium"
	EffortLarge  = "large"
)

// Mood constants for overall meeting sentiment
const (
	MoodPositive = "positive"
	MoodNegative = "negative"
	MoodNeutral  = "neutral"
)

// TechnicalComplexity constants
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// ParticipantAnalytics aggregates one speaker's contribution across a meeting
type ParticipantAnalytics struct {
	SpeakerID         string   `json:"speaker_id"`
	Name              string   `json:"name,omitempty"`
	SpeakingTime      float64  `json:"speaking_time"`
	WordCount         int      `json:"word_count"`
	ContributionScore float64  `json:"contribution_score"`
	EngagementLevel   string   `json:"engagement_level"`
	TopicsContributed []string `json:"topics_contributed"`
}

// TopicAnalytics describes one taxonomy category's relevance to the meeting
type TopicAnalytics struct {
	Topic           string   `json:"topic"`
	Confidence      float64  `json:"confidence"`
	Duration        float64  `json:"duration"`
	Participants    []string `json:"participants"`
	Keywords        []string `json:"keywords"`
	ImportanceScore float64  `json:"importance_score"`
}

// DecisionAnalytics is one extracted decision utterance
type DecisionAnalytics struct {
	Decision             string   `json:"decision"`
	Confidence           float64  `json:"confidence"`
	Timestamp            float64  `json:"timestamp"`
	ParticipantsInvolved []string `json:"participants_involved"`
	Context              string   `json:"context"`
	Priority             string   `json:"priority"`
}

// ActionItemAnalytics is one extracted task assignment
type ActionItemAnalytics struct {
	Task            string  `json:"task"`
	Assignee        *string `json:"assignee"`
	DueDate         *string `json:"due_date"`
	Priority        string  `json:"priority"`
	Status          string  `json:"status"`
	Context         string  `json:"context"`
	EstimatedEffort string  `json:"estimated_effort"`
}

// CodeContextAnalytics collects technical references surfaced in discussion
type CodeContextAnalytics struct {
	CodeReferences        []string `json:"code_references"`
	RepositoriesMentioned []string `json:"repositories_mentioned"`
	TechnicalTerms        []string `json:"technical_terms"`
	APIDiscussions        []string `json:"api_discussions"`
	ArchitectureDecisions []string `json:"architecture_decisions"`
	BugReports            []string `json:"bug_reports"`
}

// SentimentScores holds polarity proportions that sum to 1.0
type SentimentScores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// SentimentPoint is one timeline entry for a segment with lexicon hits
type SentimentPoint struct {
	SpeakerID string  `json:"speaker_id"`
	Timestamp float64 `json:"timestamp"`
	Positive  float64 `json:"positive"`
	Negative  float64 `json:"negative"`
	Neutral   float64 `json:"neutral"`
}

// SentimentResult is the lexicon-based sentiment analysis of a meeting
type SentimentResult struct {
	OverallSentiment   SentimentScores  `json:"overall_sentiment"`
	Mood               string           `json:"mood"`
	SentimentTimeline  []SentimentPoint `json:"sentiment_timeline"`
	PositiveIndicators []string         `json:"positive_indicators"`
	NegativeIndicators []string         `json:"negative_indicators"`
}

// SpeakerEngagement holds per-speaker turn-taking statistics
type SpeakerEngagement struct {
	SpeakingTime       float64 `json:"speaking_time"`
	TurnCount          int     `json:"turn_count"`
	QuestionsAsked     int     `json:"questions_asked"`
	SpeakingPercentage float64 `json:"speaking_percentage"`
	AverageTurnLength  float64 `json:"average_turn_length"`
}

// MeetingDynamics classifies the overall interaction pattern
type MeetingDynamics struct {
	BalancedParticipation string `json:"balanced_participation"`
	InteractionLevel      string `json:"interaction_level"`
	DiscussionFlow        string `json:"discussion_flow"`
}

// EngagementResult is the meeting-wide engagement analysis
type EngagementResult struct {
	EngagementScore     float64                      `json:"engagement_score"`
	TotalSpeakers       int                          `json:"total_speakers"`
	TotalSpeakingTurns  int                          `json:"total_speaking_turns"`
	TotalQuestionsAsked int                          `json:"total_questions_asked"`
	SpeakerDistribution map[string]SpeakerEngagement `json:"speaker_distribution"`
	MeetingDynamics     MeetingDynamics              `json:"meeting_dynamics"`
}

// AggregatedMetrics combines all extractor outputs into composite scores
type AggregatedMetrics struct {
	TotalParticipants        int     `json:"total_participants"`
	TotalTopics              int     `json:"total_topics"`
	TotalDecisions           int     `json:"total_decisions"`
	TotalActionItems         int     `json:"total_action_items"`
	MeetingProductivityScore float64 `json:"meeting_productivity_score"`
	EngagementScore          float64 `json:"engagement_score"`
	TechnicalComplexity      string  `json:"technical_complexity"`
}

// MeetingAnalytics is the complete output of one extraction run. A nil
// category means that extractor failed; the reason is kept under Errors.
// Callers must treat nil categories as "not available", not as an error.
type MeetingAnalytics struct {
	MeetingID         string                 `json:"meeting_id"`
	Participants      []ParticipantAnalytics `json:"participants"`
	Topics            []TopicAnalytics       `json:"topics"`
	Decisions         []DecisionAnalytics    `json:"decisions"`
	ActionItems       []ActionItemAnalytics  `json:"action_items"`
	CodeContext       *CodeContextAnalytics  `json:"code_context"`
	Sentiment         *SentimentResult       `json:"sentiment"`
	Engagement        *EngagementResult      `json:"engagement"`
	AggregatedMetrics *AggregatedMetrics     `json:"aggregated_metrics"`
	Errors            map[string]string      `json:"errors,omitempty"`
}

// Analytics category names, used as map keys in serialized output and
// as error keys when an extractor fails.
const (
	CategoryParticipants      = "participants"
	CategoryTopics            = "topics"
	CategoryDecisions         = "decisions"
	CategoryActionItems       = "action_items"
	CategoryCodeContext       = "code_context"
	CategorySentiment         = "sentiment"
	CategoryEngagement        = "engagement"
	CategoryAggregatedMetrics = "aggregated_metrics"
)
