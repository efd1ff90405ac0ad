package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	repo "github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

type analysisJobRepository struct {
	db *gorm.DB
}

// NewAnalysisJobRepository creates a new analysis job repository
func NewAnalysisJobRepository(db *gorm.DB) repo.AnalysisJobRepository {
	return &analysisJobRepository{db: db}
}

func (r *analysisJobRepository) CreateJob(ctx context.Context, job *entities.AnalysisJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *analysisJobRepository) GetJobByID(ctx context.Context, jobID uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *analysisJobRepository) ListJobsByMeetingID(ctx context.Context, meetingID string) ([]entities.AnalysisJob, error) {
	var jobs []entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *analysisJobRepository) ListJobsByStatus(ctx context.Context, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error) {
	var jobs []entities.AnalysisJob
	if limit == 0 {
		limit = 100
	}
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ClaimJob flips pending -> processing with a conditional update so that
// only one worker wins when several poll the same queue.
func (r *analysisJobRepository) ClaimJob(ctx context.Context, jobID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ? AND status = ?", jobID, entities.AnalysisJobStatusPending).
		Updates(map[string]interface{}{
			"status":     entities.AnalysisJobStatusProcessing,
			"started_at": now,
			"updated_at": now,
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *analysisJobRepository) MarkJobCompleted(ctx context.Context, jobID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":       entities.AnalysisJobStatusCompleted,
			"completed_at": now,
			"updated_at":   now,
		}).Error
}

// MarkJobFailed records the failure. Retryable failures go back to pending
// with an incremented retry count; exhausted or permanent ones stay failed.
func (r *analysisJobRepository) MarkJobFailed(ctx context.Context, jobID uuid.UUID, errMsg string, retryable bool) error {
	status := entities.AnalysisJobStatusFailed
	if retryable {
		status = entities.AnalysisJobStatusPending
	}

	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":      status,
			"last_error":  errMsg,
			"retry_count": gorm.Expr("retry_count + 1"),
			"updated_at":  time.Now(),
		}).Error
}
