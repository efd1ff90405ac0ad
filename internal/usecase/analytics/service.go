package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-insights/pkg/config"
	"github.com/johnquangdev/meeting-insights/pkg/jobcontext"
)

// Service exposes meeting analytics operations
type Service interface {
	// AnalyzeMeeting runs all extractors on an inline transcript, persists
	// and caches the result
	AnalyzeMeeting(ctx context.Context, meeting *entities.MeetingData) (*entities.MeetingAnalytics, error)

	// AnalyzeFromURL fetches a transcript document and analyzes it
	AnalyzeFromURL(ctx context.Context, meetingID string, payloadURL string) (*entities.MeetingAnalytics, error)

	// GetAnalytics returns the stored analytics for a meeting, cache-first.
	// Returns nil when no analytics exist.
	GetAnalytics(ctx context.Context, meetingID string) (*entities.MeetingAnalytics, error)

	// EnqueueAnalysis queues a background analysis job
	EnqueueAnalysis(ctx context.Context, meetingID string, payloadURL string) (*entities.AnalysisJob, error)

	// GetJob returns a job by ID, or nil when not found
	GetJob(ctx context.Context, jobID uuid.UUID) (*entities.AnalysisJob, error)

	StartWorkerPool(ctx context.Context, workerCount int) error
	StopWorkerPool() error
}

type analyticsService struct {
	engine        *Engine
	analyticsRepo repositories.AnalyticsRepository
	jobRepo       repositories.AnalysisJobRepository
	resultCache   *cache.ResultCache
	archive       *storage.MinIOClient // nil when storage is disabled
	httpClient    *http.Client
	cfg           *config.Config
	logger        *zap.Logger

	workerStopChan      chan struct{}
	workerWg            sync.WaitGroup
	isWorkerPoolRunning bool
	workerMutex         sync.Mutex
}

// NewAnalyticsService constructs a new analytics service
func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	jobRepo repositories.AnalysisJobRepository,
	resultCache *cache.ResultCache,
	archive *storage.MinIOClient,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &analyticsService{
		engine:        NewEngine(logger),
		analyticsRepo: analyticsRepo,
		jobRepo:       jobRepo,
		resultCache:   resultCache,
		archive:       archive,
		httpClient:    &http.Client{Timeout: cfg.Analytics.FetchTimeout},
		cfg:           cfg,
		logger:        logger,
		workerStopChan: make(chan struct{}),
	}
}

// transcriptPayload is the externally hosted transcript document shape
type transcriptPayload struct {
	MeetingID       string             `json:"meeting_id"`
	DurationSeconds float64            `json:"duration_seconds"`
	Transcripts     []entities.Segment `json:"transcripts"`
}

func (s *analyticsService) AnalyzeMeeting(ctx context.Context, meeting *entities.MeetingData) (*entities.MeetingAnalytics, error) {
	if meeting == nil || meeting.MeetingID == "" {
		return nil, apperrors.ErrInvalidArgument("meeting data with a meeting id is required")
	}

	started := time.Now()
	result := s.engine.ExtractAll(meeting)
	processingTime := time.Since(started)

	if s.logger != nil {
		s.logger.Info("📊 Meeting analyzed",
			zap.String("meeting_id", meeting.MeetingID),
			zap.Int("segments", len(meeting.Transcripts)),
			zap.Int("extractor_errors", len(result.Errors)),
			zap.Duration("processing_time", processingTime),
		)
	}

	record, err := s.toRecord(result, processingTime)
	if err != nil {
		return nil, apperrors.ErrAnalysisFailed(err)
	}
	if err := s.analyticsRepo.SaveAnalytics(ctx, record); err != nil {
		return nil, apperrors.ErrDatabaseFailed(err)
	}

	s.cacheResult(ctx, result)
	s.archiveResult(ctx, result)

	return result, nil
}

func (s *analyticsService) AnalyzeFromURL(ctx context.Context, meetingID string, payloadURL string) (*entities.MeetingAnalytics, error) {
	if payloadURL == "" {
		return nil, apperrors.ErrMissingPayloadURL()
	}

	body, err := s.fetchPayload(ctx, payloadURL)
	if err != nil {
		return nil, apperrors.ErrPayloadFetchFailed(payloadURL, err)
	}

	var payload transcriptPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.ErrAnalysisFailed(fmt.Errorf("invalid transcript payload: %w", err))
	}

	meeting := &entities.MeetingData{
		MeetingID:   meetingID,
		Transcripts: payload.Transcripts,
		AudioInfo:   entities.AudioInfo{DurationSeconds: payload.DurationSeconds},
	}

	return s.AnalyzeMeeting(ctx, meeting)
}

// fetchPayload downloads the transcript document with exponential backoff.
// Client errors (4xx) are permanent; 5xx and transport errors retry until
// the configured max elapsed time.
func (s *analyticsService) fetchPayload(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	fetchFn := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			fetchErr := fmt.Errorf("payload fetch returned status %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(fetchErr)
			}
			return fetchErr
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = s.cfg.Analytics.FetchMaxElapsed

	if err := backoff.Retry(fetchFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	return body, nil
}

func (s *analyticsService) GetAnalytics(ctx context.Context, meetingID string) (*entities.MeetingAnalytics, error) {
	if meetingID == "" {
		return nil, apperrors.ErrInvalidArgument("meeting id is required")
	}

	if s.resultCache != nil {
		if cached, ok := s.resultCache.Get(ctx, meetingID); ok {
			var result entities.MeetingAnalytics
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
			// Corrupt cache entry; drop it and fall through to the database
			s.resultCache.Invalidate(ctx, meetingID)
		}
	}

	record, err := s.analyticsRepo.GetAnalyticsByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrDatabaseFailed(err)
	}
	if record == nil {
		return nil, nil
	}

	result, err := s.fromRecord(record)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	s.cacheResult(ctx, result)
	return result, nil
}

func (s *analyticsService) EnqueueAnalysis(ctx context.Context, meetingID string, payloadURL string) (*entities.AnalysisJob, error) {
	if meetingID == "" {
		return nil, apperrors.ErrInvalidArgument("meeting id is required")
	}
	if payloadURL == "" {
		return nil, apperrors.ErrMissingPayloadURL()
	}

	job := entities.NewAnalysisJob(meetingID, payloadURL)
	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, apperrors.ErrJobEnqueueFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("📥 Analysis job queued",
			zap.String("job_id", job.ID.String()),
			zap.String("meeting_id", meetingID),
		)
	}

	return job, nil
}

func (s *analyticsService) GetJob(ctx context.Context, jobID uuid.UUID) (*entities.AnalysisJob, error) {
	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, apperrors.ErrDatabaseFailed(err)
	}
	return job, nil
}

// StartWorkerPool starts background workers to process queued analysis jobs
func (s *analyticsService) StartWorkerPool(ctx context.Context, workerCount int) error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool already running")
	}

	s.isWorkerPoolRunning = true
	s.workerStopChan = make(chan struct{})

	if s.logger != nil {
		s.logger.Info("🚀 Starting analysis worker pool",
			zap.Int("worker_count", workerCount),
		)
	}

	for i := 0; i < workerCount; i++ {
		s.workerWg.Add(1)
		go s.analysisWorker(ctx, i)
	}

	return nil
}

// StopWorkerPool gracefully stops all worker goroutines
func (s *analyticsService) StopWorkerPool() error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if !s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool not running")
	}

	if s.logger != nil {
		s.logger.Info("🛑 Stopping analysis worker pool...")
	}

	close(s.workerStopChan)
	s.workerWg.Wait()
	s.isWorkerPoolRunning = false

	if s.logger != nil {
		s.logger.Info("✅ Analysis worker pool stopped")
	}

	return nil
}

// analysisWorker polls for pending jobs and processes them
func (s *analyticsService) analysisWorker(parentCtx context.Context, workerID int) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(s.cfg.Analytics.WorkerInterval)
	defer ticker.Stop()

	if s.logger != nil {
		s.logger.Info("👷 Worker started", zap.Int("worker_id", workerID))
	}

	for {
		select {
		case <-s.workerStopChan:
			if s.logger != nil {
				s.logger.Info("👷 Worker stopping", zap.Int("worker_id", workerID))
			}
			return

		case <-ticker.C:
			jobs, err := s.jobRepo.ListJobsByStatus(parentCtx, entities.AnalysisJobStatusPending, 1)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Failed to poll jobs",
						zap.Int("worker_id", workerID),
						zap.Error(err),
					)
				}
				continue
			}

			if len(jobs) == 0 {
				continue
			}

			job := jobs[0]

			// Atomically claim the job; only one worker wins
			claimed, err := s.jobRepo.ClaimJob(parentCtx, job.ID)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Failed to claim job",
						zap.String("job_id", job.ID.String()),
						zap.Error(err),
					)
				}
				continue
			}
			if !claimed {
				continue
			}

			if s.logger != nil {
				s.logger.Info("👷 Worker claimed job",
					zap.Int("worker_id", workerID),
					zap.String("job_id", job.ID.String()),
					zap.String("meeting_id", job.MeetingID),
				)
			}

			s.processJob(parentCtx, &job, workerID)
		}
	}
}

// processJob runs one claimed job to completion, retrying transient
// failures up to the job's retry budget
func (s *analyticsService) processJob(parentCtx context.Context, job *entities.AnalysisJob, workerID int) {
	ctx, cancel := jobcontext.JobBegin(parentCtx, job.ID, jobcontext.JobTypeAnalysis, workerID)
	defer cancel()
	ctx = jobcontext.SetMaxRetries(ctx, job.MaxRetries)

	err := jobcontext.JobEnd(ctx, func(ctx context.Context) error {
		_, analyzeErr := s.AnalyzeFromURL(ctx, job.MeetingID, job.PayloadURL)
		return analyzeErr
	})

	if err == nil {
		if markErr := s.jobRepo.MarkJobCompleted(parentCtx, job.ID); markErr != nil && s.logger != nil {
			s.logger.Error("❌ Failed to mark job completed",
				zap.String("job_id", job.ID.String()),
				zap.Error(markErr),
			)
		}
		if s.logger != nil {
			s.logger.Info("✅ Analysis job completed",
				zap.String("job_id", job.ID.String()),
				zap.String("meeting_id", job.MeetingID),
			)
		}
		return
	}

	retryable := job.RetryCount+1 < job.MaxRetries && jobcontext.IsRetryableError(err)
	if markErr := s.jobRepo.MarkJobFailed(parentCtx, job.ID, err.Error(), retryable); markErr != nil && s.logger != nil {
		s.logger.Error("❌ Failed to mark job failed",
			zap.String("job_id", job.ID.String()),
			zap.Error(markErr),
		)
	}

	if s.logger != nil {
		s.logger.Error("❌ Analysis job failed",
			zap.String("job_id", job.ID.String()),
			zap.String("meeting_id", job.MeetingID),
			zap.Bool("retryable", retryable),
			zap.Error(err),
		)
	}
}

// cacheResult stores the serialized analytics, best-effort
func (s *analyticsService) cacheResult(ctx context.Context, result *entities.MeetingAnalytics) {
	if s.resultCache == nil || result == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.resultCache.Set(ctx, result.MeetingID, string(payload))
}

// archiveResult uploads a JSON snapshot to object storage, best-effort
func (s *analyticsService) archiveResult(ctx context.Context, result *entities.MeetingAnalytics) {
	if s.archive == nil || result == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	objectName, err := s.archive.ArchiveAnalytics(ctx, result.MeetingID, payload)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to archive analytics",
				zap.String("meeting_id", result.MeetingID),
				zap.Error(err),
			)
		}
		return
	}
	if s.logger != nil {
		s.logger.Info("📦 Analytics archived",
			zap.String("meeting_id", result.MeetingID),
			zap.String("object", objectName),
		)
	}
}

// toRecord converts an analytics result to its stored form
func (s *analyticsService) toRecord(result *entities.MeetingAnalytics, processingTime time.Duration) (*entities.AnalyticsRecord, error) {
	record := entities.NewAnalyticsRecord(result.MeetingID)
	record.ProcessingTime = int(processingTime.Milliseconds())

	var err error
	if record.Participants, err = marshalColumn(result.Participants); err != nil {
		return nil, err
	}
	if record.Topics, err = marshalColumn(result.Topics); err != nil {
		return nil, err
	}
	if record.Decisions, err = marshalColumn(result.Decisions); err != nil {
		return nil, err
	}
	if record.ActionItems, err = marshalColumn(result.ActionItems); err != nil {
		return nil, err
	}
	if record.CodeContext, err = marshalColumn(result.CodeContext); err != nil {
		return nil, err
	}
	if record.Sentiment, err = marshalColumn(result.Sentiment); err != nil {
		return nil, err
	}
	if record.Engagement, err = marshalColumn(result.Engagement); err != nil {
		return nil, err
	}
	if record.AggregatedMetrics, err = marshalColumn(result.AggregatedMetrics); err != nil {
		return nil, err
	}
	if record.ExtractorErrors, err = marshalColumn(result.Errors); err != nil {
		return nil, err
	}

	if result.AggregatedMetrics != nil {
		record.ProductivityScore = result.AggregatedMetrics.MeetingProductivityScore
		record.EngagementScore = result.AggregatedMetrics.EngagementScore
	}

	return record, nil
}

// fromRecord reconstructs an analytics result from its stored form
func (s *analyticsService) fromRecord(record *entities.AnalyticsRecord) (*entities.MeetingAnalytics, error) {
	result := &entities.MeetingAnalytics{MeetingID: record.MeetingID}

	if err := unmarshalColumn(record.Participants, &result.Participants); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.Topics, &result.Topics); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.Decisions, &result.Decisions); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.ActionItems, &result.ActionItems); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.CodeContext, &result.CodeContext); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.Sentiment, &result.Sentiment); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.Engagement, &result.Engagement); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.AggregatedMetrics, &result.AggregatedMetrics); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(record.ExtractorErrors, &result.Errors); err != nil {
		return nil, err
	}

	return result, nil
}

func marshalColumn(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analytics column: %w", err)
	}
	return datatypes.JSON(data), nil
}

func unmarshalColumn(data datatypes.JSON, out interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
