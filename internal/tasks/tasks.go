package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task types handled by the worker.
const (
	// TypeGenerateContent runs the generator and stores the result in the library.
	TypeGenerateContent = "content:generate"
	// TypeSynthesizePodcast renders a podcast script to audio and attaches it.
	TypeSynthesizePodcast = "podcast:synthesize"
)

// GenerateContentPayload carries one generation request. ContentID is
// assigned up front so callers can poll the library for it.
type GenerateContentPayload struct {
	ContentID string `json:"content_id"`
	Prompt    string `json:"prompt"`
	Category  string `json:"category"`
	Model     string `json:"model,omitempty"`
}

type SynthesizePodcastPayload struct {
	ContentID string `json:"content_id"`
}

func NewGenerateContentTask(p GenerateContentPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", TypeGenerateContent, err)
	}
	return asynq.NewTask(TypeGenerateContent, raw), nil
}

func NewSynthesizePodcastTask(contentID string) (*asynq.Task, error) {
	raw, err := json.Marshal(SynthesizePodcastPayload{ContentID: contentID})
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", TypeSynthesizePodcast, err)
	}
	return asynq.NewTask(TypeSynthesizePodcast, raw), nil
}
