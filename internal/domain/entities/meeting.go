package entities

// Segment represents one attributed span of transcript text
type Segment struct {
	SpeakerID string  `json:"speaker_id"`
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Duration returns the segment length in seconds.
// Degenerate segments (end before start) contribute zero.
func (s Segment) Duration() float64 {
	d := s.EndTime - s.StartTime
	if d < 0 {
		return 0
	}
	return d
}

// AudioInfo carries audio-level metadata supplied by the transcription layer
type AudioInfo struct {
	DurationSeconds float64 `json:"duration_seconds"`
}

// MeetingData is the immutable input to a single analytics run.
// Transcription and diarization happen upstream; this core only consumes
// the already-materialized segments.
type MeetingData struct {
	MeetingID   string    `json:"meeting_id"`
	Transcripts []Segment `json:"transcripts"`
	AudioInfo   AudioInfo `json:"audio_info"`
}

// TotalDuration returns the meeting duration in seconds, preferring the
// reported audio duration and falling back to summed segment durations.
func (m *MeetingData) TotalDuration() float64 {
	if m.AudioInfo.DurationSeconds > 0 {
		return m.AudioInfo.DurationSeconds
	}
	var total float64
	for _, seg := range m.Transcripts {
		total += seg.Duration()
	}
	return total
}

// FullText concatenates all segment text separated by spaces
func (m *MeetingData) FullText() string {
	if len(m.Transcripts) == 0 {
		return ""
	}
	size := 0
	for _, seg := range m.Transcripts {
		size += len(seg.Text) + 1
	}
	buf := make([]byte, 0, size)
	for i, seg := range m.Transcripts {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}
