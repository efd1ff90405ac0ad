package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalyticsRecord is the stored form of a MeetingAnalytics result.
// One row per meeting; re-analysis upserts on meeting_id.
type AnalyticsRecord struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID         string         `json:"meeting_id" gorm:"type:varchar(255);not null;uniqueIndex"`
	Participants      datatypes.JSON `json:"participants,omitempty" gorm:"type:jsonb"`
	Topics            datatypes.JSON `json:"topics,omitempty" gorm:"type:jsonb"`
	Decisions         datatypes.JSON `json:"decisions,omitempty" gorm:"type:jsonb"`
	ActionItems       datatypes.JSON `json:"action_items,omitempty" gorm:"type:jsonb"`
	CodeContext       datatypes.JSON `json:"code_context,omitempty" gorm:"type:jsonb"`
	Sentiment         datatypes.JSON `json:"sentiment,omitempty" gorm:"type:jsonb"`
	Engagement        datatypes.JSON `json:"engagement,omitempty" gorm:"type:jsonb"`
	AggregatedMetrics datatypes.JSON `json:"aggregated_metrics,omitempty" gorm:"type:jsonb"`
	ExtractorErrors   datatypes.JSON `json:"extractor_errors,omitempty" gorm:"type:jsonb"`
	ProductivityScore float64        `json:"productivity_score,omitempty"`
	EngagementScore   float64        `json:"engagement_score,omitempty"`
	ProcessingTime    int            `json:"processing_time,omitempty"` // in milliseconds
	CreatedAt         time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for AnalyticsRecord
func (AnalyticsRecord) TableName() string {
	return "meeting_analytics"
}

// NewAnalyticsRecord creates a new AnalyticsRecord entity
func NewAnalyticsRecord(meetingID string) *AnalyticsRecord {
	return &AnalyticsRecord{
		ID:        uuid.New(),
		MeetingID: meetingID,
	}
}
