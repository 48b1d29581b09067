package pipeline

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/audio"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/emotion"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/model"
	"github.com/its-rath/Voice-Sentiment-Analyzer/internal/stt"
)

const (
	defaultWindow  = 10 * time.Second
	defaultWorkers = 4
)

// Options tune a pipeline instance.
type Options struct {
	// Window is the segment length. Defaults to 10s.
	Window time.Duration

	// Workers bounds how many segments are transcribed and classified
	// concurrently. Defaults to 4.
	Workers int

	// FFmpegPath overrides the ffmpeg binary used for decoding.
	FFmpegPath string
}

// Pipeline turns a raw audio recording into a time-aligned emotion
// timeline. It holds no per-run state; a single Pipeline is safe for
// concurrent runs.
type Pipeline struct {
	recognizer stt.Recognizer
	model      emotion.Model
	window     time.Duration
	workers    int
	ffmpegPath string
}

// New creates a pipeline from its two external collaborators and options
func New(recognizer stt.Recognizer, m emotion.Model, opts Options) *Pipeline {
	if opts.Window <= 0 {
		opts.Window = defaultWindow
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	return &Pipeline{
		recognizer: recognizer,
		model:      m,
		window:     opts.Window,
		workers:    opts.Workers,
		ffmpegPath: opts.FFmpegPath,
	}
}

// Run decodes an uploaded audio file and analyzes it. An undecodable input
// returns an *audio.DecodeError; that is the only condition that aborts a
// run before segment-level work begins.
func (p *Pipeline) Run(ctx context.Context, audioPath string) (*model.AnalysisResult, error) {
	buf, err := audio.Decode(ctx, p.ffmpegPath, audioPath)
	if err != nil {
		return nil, err
	}
	return p.Analyze(ctx, buf)
}

// Analyze runs the segmentation -> transcription -> classification ->
// aggregation sequence on an already decoded buffer.
func (p *Pipeline) Analyze(ctx context.Context, buf audio.Buffer) (*model.AnalysisResult, error) {
	segments := audio.Split(buf, p.window)
	sampleRate := buf.SampleRate

	log.Printf("[Pipeline] Analyzing %d segments (window: %s, workers: %d)",
		len(segments), p.window, p.workers)

	// Results are written into index-addressed slots so the timeline stays
	// in segment order no matter which worker finishes first.
	transcripts := make([]TranscriptResult, len(segments))
	emotions := make([]SegmentEmotion, len(segments))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				transcripts[i] = p.transcribe(ctx, segments[i], sampleRate)
				emotions[i] = p.classify(ctx, transcripts[i])
			}
		}()
	}
	for i := range segments {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	timeline, err := buildTimeline(segments, transcripts, emotions)
	if err != nil {
		return nil, err
	}

	parts := make([]string, 0, len(transcripts))
	for _, tr := range transcripts {
		if tr.Text != "" {
			parts = append(parts, tr.Text)
		}
	}

	return &model.AnalysisResult{
		Timeline:       timeline,
		Summary:        aggregate(timeline),
		FullTranscript: strings.Join(parts, " "),
	}, nil
}
