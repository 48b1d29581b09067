package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/audio"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/model"
)

// ErrShapeMismatch indicates the per-segment sequences handed to the
// timeline builder disagree in length or index. This is an orchestration
// bug, never a data problem, and is not retried.
var ErrShapeMismatch = errors.New("mismatched segment, transcript, and emotion sequences")

// timeLabel formats an offset as zero-padded "MM:SS", truncated to whole
// seconds.
func timeLabel(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// buildTimeline zips the three parallel per-segment sequences into ordered
// timeline entries.
func buildTimeline(segments []audio.Segment, transcripts []TranscriptResult, emotions []SegmentEmotion) ([]model.TimelineEntry, error) {
	if len(transcripts) != len(segments) || len(emotions) != len(segments) {
		return nil, fmt.Errorf("%w: %d segments, %d transcripts, %d emotions",
			ErrShapeMismatch, len(segments), len(transcripts), len(emotions))
	}

	timeline := make([]model.TimelineEntry, 0, len(segments))
	for i, seg := range segments {
		tr := transcripts[i]
		emo := emotions[i]
		if tr.SegmentIndex != seg.Index || emo.SegmentIndex != seg.Index {
			return nil, fmt.Errorf("%w: entry %d carries indices %d/%d/%d",
				ErrShapeMismatch, i, seg.Index, tr.SegmentIndex, emo.SegmentIndex)
		}

		entry := model.TimelineEntry{
			SegmentIndex: seg.Index,
			StartSeconds: seg.Start.Seconds(),
			TimeLabel:    timeLabel(seg.Start),
			Timestamp:    timeLabel(seg.Start) + " - " + timeLabel(seg.End),
			Text:         tr.Text,
			Emotion:      string(emo.Score.Label),
			Confidence:   emo.Score.Confidence,
		}
		if emo.Distribution != nil {
			entry.Distribution = make(map[string]float64, len(emo.Distribution))
			for label, prob := range emo.Distribution {
				entry.Distribution[string(label)] = prob
			}
		}
		timeline = append(timeline, entry)
	}
	return timeline, nil
}
