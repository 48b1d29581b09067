package pipeline

import (
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/emotion"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/model"
)

// aggregate reduces a timeline into per-label counts and percentages.
// Failed segments count toward their neutral default so the distribution
// always covers 100% of segments.
func aggregate(timeline []model.TimelineEntry) model.Summary {
	counts := make(map[string]int, len(emotion.Labels))
	percentages := make(map[string]float64, len(emotion.Labels))
	for _, label := range emotion.Labels {
		counts[string(label)] = 0
		percentages[string(label)] = 0
	}

	for _, entry := range timeline {
		counts[entry.Emotion]++
	}

	total := len(timeline)
	dominant := string(emotion.None)
	if total > 0 {
		best := -1
		for _, label := range emotion.Labels {
			percentages[string(label)] = 100 * float64(counts[string(label)]) / float64(total)
			// Ties resolve to the label earliest in the priority order.
			if counts[string(label)] > best {
				best = counts[string(label)]
				dominant = string(label)
			}
		}
	}

	return model.Summary{
		Counts:          counts,
		Percentages:     percentages,
		DominantEmotion: dominant,
		TotalSegments:   total,
	}
}
