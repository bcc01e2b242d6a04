package models

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"twm/internal/generator"
)

const (
	// TitleMaxRunes is the prompt length kept in derived titles.
	TitleMaxRunes = 50
	// UntitledDocument is used when a document is saved without a title.
	UntitledDocument = "Unbenanntes Dokument"
)

// GeneratedContent is one entry of the content library.
type GeneratedContent struct {
	ID        string                `json:"id"`
	Type      generator.ContentType `json:"type"`
	Title     string                `json:"title"`
	Content   generator.Payload     `json:"content"`
	CreatedAt time.Time             `json:"createdAt"`
	Model     string                `json:"model,omitempty"`
}

type generatedContentJSON struct {
	ID        string                `json:"id"`
	Type      generator.ContentType `json:"type"`
	Title     string                `json:"title"`
	Content   json.RawMessage       `json:"content"`
	CreatedAt time.Time             `json:"createdAt"`
	Model     string                `json:"model,omitempty"`
}

// UnmarshalJSON decodes the payload according to the type tag.
func (c *GeneratedContent) UnmarshalJSON(data []byte) error {
	var raw generatedContentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	payload, err := generator.DecodePayload(raw.Type, raw.Content)
	if err != nil {
		return fmt.Errorf("content %s: %w", raw.ID, err)
	}
	*c = GeneratedContent{
		ID:        raw.ID,
		Type:      raw.Type,
		Title:     raw.Title,
		Content:   payload,
		CreatedAt: raw.CreatedAt,
		Model:     raw.Model,
	}
	return nil
}

// Validate checks that the type tag matches the payload variant.
func (c *GeneratedContent) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: content id is empty", ErrValidation)
	}
	if c.Content == nil {
		return fmt.Errorf("%w: content %s has no payload", ErrValidation, c.ID)
	}
	if c.Content.Type() != c.Type {
		return fmt.Errorf("%w: content %s tagged %q holds %q payload", ErrWrongContentType, c.ID, c.Type, c.Content.Type())
	}
	return nil
}

// TitleFor derives the library title for a payload generated from prompt.
func TitleFor(p generator.Payload, prompt string) string {
	switch v := p.(type) {
	case generator.PresentationPayload:
		return v.Title
	case generator.PodcastPayload:
		return v.Title
	case generator.DocumentPayload:
		if v.Title == "" {
			return UntitledDocument
		}
		return v.Title
	}
	return TruncateTitle(prompt)
}

// TruncateTitle shortens s to TitleMaxRunes runes, appending "..." when cut.
func TruncateTitle(s string) string {
	if utf8.RuneCountInString(s) <= TitleMaxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:TitleMaxRunes]) + "..."
}

// ChatRole is the sender of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

type ChatMessage struct {
	ID                string    `json:"id"`
	Role              ChatRole  `json:"role"`
	Content           string    `json:"content"`
	Timestamp         time.Time `json:"timestamp"`
	FollowUpQuestions []string  `json:"followUpQuestions,omitempty"`
}

// Settings holds provider API keys and the mock mode switch.
type Settings struct {
	OpenAIKey     string `json:"openaiKey"`
	AnthropicKey  string `json:"anthropicKey"`
	OpenRouterKey string `json:"openrouterKey"`
	ElevenLabsKey string `json:"elevenlabsKey"`
	DeepgramKey   string `json:"deepgramKey"`
	ShotstackKey  string `json:"shotstackKey"`
	MockMode      bool   `json:"mockMode"`
}

// DefaultSettings is used when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{MockMode: true}
}

// Job tracks a background generation or synthesis task.
type Job struct {
	ID        string    `json:"id"`
	TaskType  string    `json:"taskType"`
	ContentID string    `json:"contentId"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
