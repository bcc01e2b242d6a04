package store

import (
	"context"
	"fmt"

	"twm/internal/models"
)

// GetSettings returns the stored settings, or the defaults when none are stored.
func (r *Repository) GetSettings(ctx context.Context) (models.Settings, error) {
	s := models.DefaultSettings()
	found, err := r.readJSON(ctx, KeySettings, &s)
	if err != nil {
		return models.Settings{}, err
	}
	if !found {
		return models.DefaultSettings(), nil
	}
	return s, nil
}

func (r *Repository) SaveSettings(ctx context.Context, settings models.Settings) error {
	if err := r.writeJSON(ctx, KeySettings, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// GetChatHistory returns the stored conversation in send order.
func (r *Repository) GetChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if _, err := r.readJSON(ctx, KeyChatHistory, &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	return msgs, nil
}

// AppendChatMessages adds messages to the end of the conversation.
func (r *Repository) AppendChatMessages(ctx context.Context, messages ...models.ChatMessage) error {
	return updateJSON(ctx, r, KeyChatHistory, func(history *[]models.ChatMessage, _ bool) error {
		*history = append(*history, messages...)
		return nil
	})
}

func (r *Repository) ClearChatHistory(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyChatHistory)
}
