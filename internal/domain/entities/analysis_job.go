package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the status of a background analysis job
type AnalysisJobStatus string

const (
	AnalysisJobStatusPending    AnalysisJobStatus = "pending"    // Waiting for a worker
	AnalysisJobStatusProcessing AnalysisJobStatus = "processing" // Claimed by a worker
	AnalysisJobStatusCompleted  AnalysisJobStatus = "completed"  // Analytics stored
	AnalysisJobStatusFailed     AnalysisJobStatus = "failed"     // Exhausted retries
)

// AnalysisJob represents a queued analytics run for one meeting.
// The payload URL points at an externally hosted transcript document
// produced by the transcription layer.
type AnalysisJob struct {
	ID         uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID  string            `json:"meeting_id" gorm:"type:varchar(255);not null;index"`
	Status     AnalysisJobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`
	PayloadURL string            `json:"payload_url" gorm:"type:text;not null"`

	StartedAt   *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	RetryCount  int        `json:"retry_count" gorm:"type:integer;default:0"`
	MaxRetries  int        `json:"max_retries" gorm:"type:integer;default:3"`
	LastError   *string    `json:"last_error,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewAnalysisJob creates a new pending analysis job
func NewAnalysisJob(meetingID, payloadURL string) *AnalysisJob {
	return &AnalysisJob{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		Status:     AnalysisJobStatusPending,
		PayloadURL: payloadURL,
		RetryCount: 0,
		MaxRetries: 3,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// IsRetryable checks if the job can be retried after a failure
func (j *AnalysisJob) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries && j.Status == AnalysisJobStatusFailed
}

// MarkAsProcessing marks the job as claimed by a worker
func (j *AnalysisJob) MarkAsProcessing() {
	now := time.Now()
	j.Status = AnalysisJobStatusProcessing
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted marks the job as done
func (j *AnalysisJob) MarkAsCompleted() {
	now := time.Now()
	j.Status = AnalysisJobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed records the failure reason
func (j *AnalysisJob) MarkAsFailed(errMsg string) {
	j.Status = AnalysisJobStatusFailed
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// TableName specifies the table name for GORM
func (AnalysisJob) TableName() string {
	return "analysis_jobs"
}
