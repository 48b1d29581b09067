package pipeline

import (
	"context"
	"log"

	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/emotion"
)

// SegmentEmotion is the per-segment classification outcome.
type SegmentEmotion struct {
	SegmentIndex int
	Score        emotion.Score
	// Distribution is nil when classification was skipped or failed.
	Distribution emotion.Distribution
}

// classify scores one transcript through the emotion model. Segments with
// no usable transcript never reach the model: they get the deterministic
// neutral default. A model failure degrades to the same default so the
// timeline always accounts for every segment.
func (p *Pipeline) classify(ctx context.Context, tr TranscriptResult) SegmentEmotion {
	if tr.Status != StatusOK || tr.Text == "" {
		return SegmentEmotion{SegmentIndex: tr.SegmentIndex, Score: emotion.NeutralScore()}
	}

	native, err := p.model.Predict(ctx, tr.Text)
	if err != nil {
		log.Printf("[Pipeline] Segment %d: classification failed (model: %s): %v",
			tr.SegmentIndex, p.model.Name(), err)
		return SegmentEmotion{SegmentIndex: tr.SegmentIndex, Score: emotion.NeutralScore()}
	}

	dist := emotion.FromNative(native)
	return SegmentEmotion{
		SegmentIndex: tr.SegmentIndex,
		Score:        emotion.Top(dist),
		Distribution: dist,
	}
}
