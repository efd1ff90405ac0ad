package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	dto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/analytics"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	analyticsuse "github.com/johnquangdev/meeting-insights/internal/usecase/analytics"
)

// AnalyticsController handles API endpoints for meeting analytics
type AnalyticsController struct {
	svc    analyticsuse.Service
	logger *zap.Logger
}

// NewAnalyticsController creates a new analytics controller
func NewAnalyticsController(svc analyticsuse.Service, logger *zap.Logger) *AnalyticsController {
	return &AnalyticsController{svc: svc, logger: logger}
}

// AnalyzeMeeting runs the full extractor suite on an inline transcript
// and returns the analytics synchronously.
func (ac *AnalyticsController) AnalyzeMeeting(c echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("meeting id is required"))
	}

	var req dto.AnalyzeMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meeting := &entities.MeetingData{
		MeetingID: meetingID,
		AudioInfo: entities.AudioInfo{DurationSeconds: req.DurationSeconds},
	}
	for _, seg := range req.Transcripts {
		meeting.Transcripts = append(meeting.Transcripts, entities.Segment{
			SpeakerID: seg.SpeakerID,
			Text:      seg.Text,
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
		})
	}

	started := time.Now()
	result, err := ac.svc.AnalyzeMeeting(c.Request().Context(), meeting)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	return HandleSuccess(ac.logger, c, dto.AnalyzeMeetingResponse{
		Analytics:        result,
		ProcessingTimeMs: time.Since(started).Milliseconds(),
	})
}

// EnqueueAnalysis queues a background analysis of an externally hosted
// transcript document.
func (ac *AnalyticsController) EnqueueAnalysis(c echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("meeting id is required"))
	}

	var req dto.EnqueueAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if req.PayloadURL == "" {
		return HandleError(ac.logger, c, errors.ErrMissingPayloadURL())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	job, err := ac.svc.EnqueueAnalysis(c.Request().Context(), meetingID, req.PayloadURL)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	return HandleAccepted(ac.logger, c, dto.NewJobResponse(job))
}

// GetAnalytics returns the stored analytics for a meeting
func (ac *AnalyticsController) GetAnalytics(c echo.Context) error {
	meetingID := c.Param("id")
	if meetingID == "" {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("meeting id is required"))
	}

	result, err := ac.svc.GetAnalytics(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	if result == nil {
		return HandleError(ac.logger, c, errors.ErrAnalyticsNotFound(meetingID))
	}

	return HandleSuccess(ac.logger, c, result)
}

// GetJob returns the status of a queued analysis job
func (ac *AnalyticsController) GetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("invalid job id"))
	}

	job, err := ac.svc.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	if job == nil {
		return HandleError(ac.logger, c, errors.ErrJobNotFound(jobID.String()))
	}

	return HandleSuccess(ac.logger, c, dto.NewJobResponse(job))
}
