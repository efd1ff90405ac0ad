package analytics

import (
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func seg(speakerID, text string, start, end float64) entities.Segment {
	return entities.Segment{SpeakerID: speakerID, Text: text, StartTime: start, EndTime: end}
}

func testMeeting(segments ...entities.Segment) *entities.MeetingData {
	return &entities.MeetingData{
		MeetingID:   "meeting-test",
		Transcripts: segments,
	}
}
