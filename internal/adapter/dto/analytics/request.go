package analytics

// SegmentRequest is one transcript segment in an analysis request
type SegmentRequest struct {
	SpeakerID string  `json:"speaker_id" validate:"required,min=1,max=255"`
	Text      string  `json:"text" validate:"required"`
	StartTime float64 `json:"start_time" validate:"min=0"`
	EndTime   float64 `json:"end_time" validate:"min=0"`
}

// AnalyzeMeetingRequest carries a full transcript for synchronous analysis
type AnalyzeMeetingRequest struct {
	Transcripts     []SegmentRequest `json:"transcripts" validate:"required,min=1,dive"`
	DurationSeconds float64          `json:"duration_seconds" validate:"min=0"`
}

// EnqueueAnalysisRequest queues a background analysis of an externally
// hosted transcript document
type EnqueueAnalysisRequest struct {
	PayloadURL string `json:"payload_url" validate:"required,url"`
}
