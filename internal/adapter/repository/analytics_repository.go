package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	repo "github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository backed by GORM
func NewAnalyticsRepository(db *gorm.DB) repo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SaveAnalytics(ctx context.Context, record *entities.AnalyticsRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	// Upsert by meeting_id so re-analysis replaces the previous result
	q := `INSERT INTO meeting_analytics (id, meeting_id, participants, topics, decisions, action_items, code_context, sentiment, engagement, aggregated_metrics, extractor_errors, productivity_score, engagement_score, processing_time, created_at)
        VALUES (?, ?, ?::jsonb, ?::jsonb, ?::jsonb, ?::jsonb, ?::jsonb, ?::jsonb, ?::jsonb, ?::jsonb, ?::jsonb, ?, ?, ?, ?)
        ON CONFLICT (meeting_id) DO UPDATE SET participants = EXCLUDED.participants, topics = EXCLUDED.topics, decisions = EXCLUDED.decisions, action_items = EXCLUDED.action_items, code_context = EXCLUDED.code_context, sentiment = EXCLUDED.sentiment, engagement = EXCLUDED.engagement, aggregated_metrics = EXCLUDED.aggregated_metrics, extractor_errors = EXCLUDED.extractor_errors, productivity_score = EXCLUDED.productivity_score, engagement_score = EXCLUDED.engagement_score, processing_time = EXCLUDED.processing_time, updated_at = NOW()`

	return r.db.WithContext(ctx).Exec(q,
		record.ID,
		record.MeetingID,
		jsonOrNull(record.Participants),
		jsonOrNull(record.Topics),
		jsonOrNull(record.Decisions),
		jsonOrNull(record.ActionItems),
		jsonOrNull(record.CodeContext),
		jsonOrNull(record.Sentiment),
		jsonOrNull(record.Engagement),
		jsonOrNull(record.AggregatedMetrics),
		jsonOrNull(record.ExtractorErrors),
		record.ProductivityScore,
		record.EngagementScore,
		record.ProcessingTime,
		time.Now(),
	).Error
}

func (r *analyticsRepository) GetAnalyticsByMeetingID(ctx context.Context, meetingID string) (*entities.AnalyticsRecord, error) {
	var record entities.AnalyticsRecord
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *analyticsRepository) DeleteAnalytics(ctx context.Context, meetingID string) error {
	return r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.AnalyticsRecord{}).Error
}

// jsonOrNull maps empty JSON columns to SQL NULL so jsonb casts don't fail
func jsonOrNull(data []byte) interface{} {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}
