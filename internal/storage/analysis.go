package storage

import (
	"sync"

	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/model"
)

var (
	analyses   = make(map[string]*model.AnalysisResult)
	muAnalysis sync.Mutex
)

// SaveAnalysis saves the analysis result for a recording
func SaveAnalysis(recordingID string, result *model.AnalysisResult) {
	muAnalysis.Lock()
	defer muAnalysis.Unlock()
	analyses[recordingID] = result
}

// GetAnalysis retrieves the analysis result for a recording
func GetAnalysis(recordingID string) (*model.AnalysisResult, bool) {
	muAnalysis.Lock()
	defer muAnalysis.Unlock()
	result, ok := analyses[recordingID]
	if !ok {
		return nil, false
	}
	// Results are immutable once stored, so the pointer can be shared
	return result, true
}
