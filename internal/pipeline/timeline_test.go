package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/audio"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/emotion"
)

func TestTimeLabel(t *testing.T) {
	tcs := []struct {
		offset   time.Duration
		expected string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{65 * time.Second, "01:05"},
		{10 * time.Minute, "10:00"},
		{59500 * time.Millisecond, "00:59"}, // truncated, not rounded
	}

	for _, tc := range tcs {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, timeLabel(tc.offset))
		})
	}
}

func TestBuildTimelineShapeMismatch(t *testing.T) {
	segments := []audio.Segment{
		{Index: 0, Start: 0, End: 10 * time.Second},
		{Index: 1, Start: 10 * time.Second, End: 20 * time.Second},
	}

	t.Run("length mismatch", func(t *testing.T) {
		transcripts := []TranscriptResult{{SegmentIndex: 0, Status: StatusOK}}
		emotions := []SegmentEmotion{{SegmentIndex: 0}, {SegmentIndex: 1}}

		_, err := buildTimeline(segments, transcripts, emotions)
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("index mismatch", func(t *testing.T) {
		transcripts := []TranscriptResult{
			{SegmentIndex: 0, Status: StatusOK},
			{SegmentIndex: 7, Status: StatusOK},
		}
		emotions := []SegmentEmotion{
			{SegmentIndex: 0, Score: emotion.NeutralScore()},
			{SegmentIndex: 1, Score: emotion.NeutralScore()},
		}

		_, err := buildTimeline(segments, transcripts, emotions)
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("matching sequences", func(t *testing.T) {
		transcripts := []TranscriptResult{
			{SegmentIndex: 0, Text: "fine", Status: StatusOK},
			{SegmentIndex: 1, Status: StatusServiceError},
		}
		emotions := []SegmentEmotion{
			{SegmentIndex: 0, Score: emotion.Score{Label: emotion.Joy, Confidence: 0.9}},
			{SegmentIndex: 1, Score: emotion.NeutralScore()},
		}

		timeline, err := buildTimeline(segments, transcripts, emotions)
		require.NoError(t, err)
		require.Len(t, timeline, 2)
		require.Equal(t, "joy", timeline[0].Emotion)
		require.Equal(t, "00:00 - 00:10", timeline[0].Timestamp)
	})
}
