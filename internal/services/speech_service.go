package services

import (
	"context"
	"fmt"
	"strings"

	"twm/internal/generator"
	"twm/internal/models"
	"twm/internal/store"
	"twm/internal/tasks"
)

// SpeechService handles transcription and podcast audio.
type SpeechService struct {
	provider generator.SpeechProvider
	library  *LibraryService
	jobs     store.JobClient
}

func NewSpeechService(p generator.SpeechProvider, library *LibraryService, jobs store.JobClient) *SpeechService {
	if p == nil {
		p = generator.NewMockSpeech()
	}
	return &SpeechService{provider: p, library: library, jobs: jobs}
}

func (s *SpeechService) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return s.provider.Transcribe(ctx, audio)
}

// Synthesize returns an audio URL for text.
func (s *SpeechService) Synthesize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is empty", models.ErrValidation)
	}
	return s.provider.Synthesize(ctx, text)
}

// SynthesizePodcast renders the script of a podcast entry and stores the
// audio URL on it.
func (s *SpeechService) SynthesizePodcast(ctx context.Context, contentID string) (*models.GeneratedContent, error) {
	c, err := s.library.Get(ctx, contentID)
	if err != nil {
		return nil, err
	}
	pod, ok := c.Content.(generator.PodcastPayload)
	if !ok {
		return nil, fmt.Errorf("%w: content %s is %s, not podcast", models.ErrWrongContentType, contentID, c.Type)
	}
	url, err := s.Synthesize(ctx, pod.Script)
	if err != nil {
		return nil, fmt.Errorf("synthesize podcast %s: %w", contentID, err)
	}
	return s.library.AttachAudio(ctx, contentID, url)
}

// EnqueueSynthesis schedules SynthesizePodcast on the worker and returns the
// task id.
func (s *SpeechService) EnqueueSynthesis(ctx context.Context, contentID string) (string, error) {
	if s.jobs == nil {
		return "", fmt.Errorf("background jobs are not configured")
	}
	c, err := s.library.Get(ctx, contentID)
	if err != nil {
		return "", err
	}
	if c.Type != generator.TypePodcast {
		return "", fmt.Errorf("%w: content %s is %s, not podcast", models.ErrWrongContentType, contentID, c.Type)
	}
	task, err := tasks.NewSynthesizePodcastTask(contentID)
	if err != nil {
		return "", err
	}
	info, err := s.jobs.Enqueue(ctx, task, contentID)
	if err != nil {
		return "", fmt.Errorf("enqueue synthesis: %w", err)
	}
	return info.ID, nil
}
