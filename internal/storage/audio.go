package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Recording struct {
	ID        string
	Path      string
	Status    string // uploaded, processing, processed, failed
	Size      int64  // file size in bytes
	CreatedAt string
	Error     string
}

var (
	recordings = make(map[string]*Recording)
	mu         sync.Mutex
)

// SaveAudio saves an uploaded audio file and returns the recording ID
func SaveAudio(uploadDir string, file *multipart.FileHeader) (string, error) {
	id := "rec_" + uuid.NewString()
	dst := filepath.Join(uploadDir, id+filepath.Ext(file.Filename))

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	if err := saveMultipartFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	var fileSize int64
	if fileInfo, err := os.Stat(dst); err == nil {
		fileSize = fileInfo.Size()
	}

	mu.Lock()
	recordings[id] = &Recording{
		ID:        id,
		Path:      dst,
		Status:    "uploaded",
		Size:      fileSize,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	mu.Unlock()

	return id, nil
}

// GetRecording retrieves a recording by ID
func GetRecording(id string) (*Recording, bool) {
	mu.Lock()
	defer mu.Unlock()
	rec, ok := recordings[id]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions
	recCopy := *rec
	return &recCopy, true
}

// UpdateStatus updates the status of a recording
func UpdateStatus(id, status string) {
	mu.Lock()
	defer mu.Unlock()
	if rec, ok := recordings[id]; ok {
		rec.Status = status
	}
}

// UpdateError updates the error message of a recording
func UpdateError(id, errorMsg string) {
	mu.Lock()
	defer mu.Unlock()
	if rec, ok := recordings[id]; ok {
		rec.Error = errorMsg
	}
}

/* helper */
func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
