package api

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/audio"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/config"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/emotion"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/pipeline"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/storage"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/stt"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/utils"
)

var (
	cfg *config.Config

	pipe     *pipeline.Pipeline
	pipeErr  error
	pipeOnce sync.Once
)

// getPipeline returns the analysis pipeline (singleton). The STT and
// emotion model processes are loaded once and reused across requests.
func getPipeline() (*pipeline.Pipeline, error) {
	pipeOnce.Do(func() {
		recognizer, err := stt.CreateRecognizer()
		if err != nil {
			log.Printf("Failed to create STT provider: %v", err)
			pipeErr = err
			return
		}
		model, err := emotion.CreateModel()
		if err != nil {
			log.Printf("Failed to create emotion model: %v", err)
			pipeErr = err
			return
		}
		log.Printf("Pipeline initialized: stt=%s emotion=%s", recognizer.Name(), model.Name())
		pipe = pipeline.New(recognizer, model, pipeline.Options{
			Window:     cfg.SegmentWindow,
			Workers:    cfg.Workers,
			FFmpegPath: cfg.FFmpegPath,
		})
	})
	return pipe, pipeErr
}

func RegisterRoutes(r *gin.Engine, conf *config.Config) {
	cfg = conf

	// Health check
	r.GET("/health", healthCheck)

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.POST("/recordings", uploadRecording)
		v1.GET("/recordings/:recording_id", getRecording)
		v1.POST("/analyze/:recording_id", analyzeRecording)
		v1.GET("/analyze/:recording_id", getAnalysis)
	}
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "voice-sentiment-analyzer",
	})
}

// uploadRecording handles audio file upload
func uploadRecording(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		// Try alternative field names
		if file, err = c.FormFile("audio_file"); err != nil {
			if file, err = c.FormFile("file"); err != nil {
				utils.Error(c, http.StatusBadRequest, "audio file is required")
				return
			}
		}
	}

	// Validate file extension
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExts := []string{".wav", ".mp3", ".ogg", ".flac", ".m4a"}
	valid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			valid = true
			break
		}
	}
	if !valid {
		utils.Error(c, http.StatusBadRequest, "unsupported audio format. Supported: wav, mp3, ogg, flac, m4a")
		return
	}

	if file.Size > cfg.MaxUploadBytes {
		utils.Error(c, http.StatusBadRequest, "file size exceeds 25MB limit")
		return
	}

	recordingID, err := storage.SaveAudio(cfg.UploadDir, file)
	if err != nil {
		log.Printf("Error saving audio: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to save audio file")
		return
	}

	log.Printf("Audio uploaded successfully: %s", recordingID)
	utils.Success(c, gin.H{
		"recording_id": recordingID,
		"status":       "uploaded",
	})
}

// getRecording returns recording information
func getRecording(c *gin.Context) {
	id := c.Param("recording_id")

	rec, ok := storage.GetRecording(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "recording not found")
		return
	}

	utils.Success(c, gin.H{
		"recording_id": rec.ID,
		"status":       rec.Status,
		"created_at":   rec.CreatedAt,
		"size":         rec.Size,
		"error":        rec.Error,
	})
}

// analyzeRecording runs a recording through the analysis pipeline
func analyzeRecording(c *gin.Context) {
	id := c.Param("recording_id")

	rec, ok := storage.GetRecording(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "recording not found")
		return
	}

	if rec.Status == "processing" {
		utils.Error(c, http.StatusConflict, "recording is already being processed")
		return
	}

	// Return cached result if the recording was already analyzed
	if result, ok := storage.GetAnalysis(id); ok {
		utils.Success(c, gin.H{
			"recording_id":    id,
			"timeline":        result.Timeline,
			"summary":         result.Summary,
			"full_transcript": result.FullTranscript,
		})
		return
	}

	p, err := getPipeline()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "pipeline not available: "+err.Error())
		return
	}

	storage.UpdateStatus(id, "processing")
	log.Printf("Analyzing recording: %s", id)

	result, err := p.Run(c.Request.Context(), rec.Path)
	if err != nil {
		storage.UpdateStatus(id, "failed")
		storage.UpdateError(id, err.Error())

		var decodeErr *audio.DecodeError
		if errors.As(err, &decodeErr) {
			log.Printf("Decode error for recording %s: %v", id, err)
			utils.Error(c, http.StatusBadRequest, "could not decode audio file")
			return
		}
		if errors.Is(err, pipeline.ErrShapeMismatch) {
			log.Printf("Internal pipeline error for recording %s: %v", id, err)
			utils.Error(c, http.StatusInternalServerError, "internal pipeline error")
			return
		}
		log.Printf("Analysis failed for recording %s: %v", id, err)
		utils.Error(c, http.StatusInternalServerError, "analysis failed: "+err.Error())
		return
	}

	storage.SaveAnalysis(id, result)
	storage.UpdateStatus(id, "processed")
	log.Printf("Recording analyzed successfully: %s (%d segments, dominant: %s)",
		id, result.Summary.TotalSegments, result.Summary.DominantEmotion)

	utils.Success(c, gin.H{
		"recording_id":    id,
		"timeline":        result.Timeline,
		"summary":         result.Summary,
		"full_transcript": result.FullTranscript,
	})
}

// getAnalysis retrieves a stored analysis result
func getAnalysis(c *gin.Context) {
	id := c.Param("recording_id")

	result, ok := storage.GetAnalysis(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "analysis not found. Please analyze recording first")
		return
	}

	utils.Success(c, gin.H{
		"recording_id":    id,
		"timeline":        result.Timeline,
		"summary":         result.Summary,
		"full_transcript": result.FullTranscript,
	})
}
