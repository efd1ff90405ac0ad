package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// AnalyticsRepository defines persistence operations for analytics results
type AnalyticsRepository interface {
	// SaveAnalytics upserts a meeting's analytics by meeting_id
	SaveAnalytics(ctx context.Context, record *entities.AnalyticsRecord) error

	// GetAnalyticsByMeetingID returns the stored analytics for a meeting,
	// or nil when none exist
	GetAnalyticsByMeetingID(ctx context.Context, meetingID string) (*entities.AnalyticsRecord, error)

	// DeleteAnalytics removes the stored analytics for a meeting
	DeleteAnalytics(ctx context.Context, meetingID string) error
}

// AnalysisJobRepository defines persistence operations for background jobs
type AnalysisJobRepository interface {
	CreateJob(ctx context.Context, job *entities.AnalysisJob) error
	GetJobByID(ctx context.Context, jobID uuid.UUID) (*entities.AnalysisJob, error)
	ListJobsByMeetingID(ctx context.Context, meetingID string) ([]entities.AnalysisJob, error)
	ListJobsByStatus(ctx context.Context, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error)

	// ClaimJob atomically transitions a pending job to processing.
	// Returns false when another worker claimed it first.
	ClaimJob(ctx context.Context, jobID uuid.UUID) (bool, error)

	MarkJobCompleted(ctx context.Context, jobID uuid.UUID) error
	MarkJobFailed(ctx context.Context, jobID uuid.UUID, errMsg string, retryable bool) error
}
