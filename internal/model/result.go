package model

// TimelineEntry is one analyzed segment of the recording. Field names and the
// emotion label spellings are part of the contract consumed by the chart
// rendering layer and must not change.
type TimelineEntry struct {
	SegmentIndex int     `json:"segment_index"`
	StartSeconds float64 `json:"start_seconds"`
	TimeLabel    string  `json:"time_label"` // "MM:SS"
	Timestamp    string  `json:"timestamp"`  // "MM:SS - MM:SS" range shown in the table view
	Text         string  `json:"text"`       // empty when the segment had no usable transcript
	Emotion      string  `json:"emotion"`
	Confidence   float64 `json:"confidence"` // 0.0-1.0

	// Distribution holds the full probability vector over the emotion set.
	// Absent for segments where classification was skipped.
	Distribution map[string]float64 `json:"distribution,omitempty"`
}

// Summary aggregates emotion counts across the whole recording.
// Percentages are on a 0-100 scale and always cover 100% of segments,
// including failed ones.
type Summary struct {
	Counts          map[string]int     `json:"counts"`
	Percentages     map[string]float64 `json:"percentages"`
	DominantEmotion string             `json:"dominant_emotion"`
	TotalSegments   int                `json:"total_segments"`
}

// AnalysisResult is the root object returned for one analyzed recording.
type AnalysisResult struct {
	Timeline       []TimelineEntry `json:"timeline"`
	Summary        Summary         `json:"summary"`
	FullTranscript string          `json:"full_transcript"`
}
