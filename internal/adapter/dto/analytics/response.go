package analytics

import (
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// AnalyzeMeetingResponse wraps a completed analytics run
type AnalyzeMeetingResponse struct {
	Analytics        *entities.MeetingAnalytics `json:"analytics"`
	ProcessingTimeMs int64                      `json:"processing_time_ms"`
}

// JobResponse describes a queued or finished analysis job
type JobResponse struct {
	JobID       string     `json:"job_id"`
	MeetingID   string     `json:"meeting_id"`
	Status      string     `json:"status"`
	RetryCount  int        `json:"retry_count"`
	LastError   *string    `json:"last_error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewJobResponse converts a job entity to its API shape
func NewJobResponse(job *entities.AnalysisJob) JobResponse {
	return JobResponse{
		JobID:       job.ID.String(),
		MeetingID:   job.MeetingID,
		Status:      string(job.Status),
		RetryCount:  job.RetryCount,
		LastError:   job.LastError,
		CreatedAt:   job.CreatedAt,
		StartedAt:   job.StartedAt,
		CompletedAt: job.CompletedAt,
	}
}
