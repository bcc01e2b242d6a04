package services

import (
	"context"
	"fmt"
	"strings"

	"twm/internal/models"
	"twm/internal/store"
)

const maskRune = '•'

type SettingsService struct {
	store store.SettingsStore
}

func NewSettingsService(s store.SettingsStore) *SettingsService {
	return &SettingsService{store: s}
}

func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.store.GetSettings(ctx)
}

// Masked returns the settings with every key replaced by its masked form.
func (s *SettingsService) Masked(ctx context.Context) (models.Settings, error) {
	st, err := s.store.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	for _, k := range keyFields(&st) {
		*k = MaskKey(*k)
	}
	return st, nil
}

// Save stores settings. A key that still holds its masked display value
// keeps the stored secret.
func (s *SettingsService) Save(ctx context.Context, in models.Settings) (models.Settings, error) {
	current, err := s.store.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	next := keyFields(&in)
	prev := keyFields(&current)
	for i, k := range next {
		*k = strings.TrimSpace(*k)
		if IsMasked(*k) {
			*k = *prev[i]
		}
	}
	if err := s.store.SaveSettings(ctx, in); err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return in, nil
}

// Set updates a single setting by its JSON name.
func (s *SettingsService) Set(ctx context.Context, name, value string) (models.Settings, error) {
	st, err := s.store.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	switch name {
	case "openaiKey":
		st.OpenAIKey = value
	case "anthropicKey":
		st.AnthropicKey = value
	case "openrouterKey":
		st.OpenRouterKey = value
	case "elevenlabsKey":
		st.ElevenLabsKey = value
	case "deepgramKey":
		st.DeepgramKey = value
	case "shotstackKey":
		st.ShotstackKey = value
	case "mockMode":
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "on", "yes":
			st.MockMode = true
		case "false", "0", "off", "no":
			st.MockMode = false
		default:
			return models.Settings{}, fmt.Errorf("%w: mockMode must be true or false, got %q", models.ErrValidation, value)
		}
	default:
		return models.Settings{}, fmt.Errorf("%w: unknown setting %q", models.ErrValidation, name)
	}
	if err := s.store.SaveSettings(ctx, st); err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return st, nil
}

func keyFields(st *models.Settings) []*string {
	return []*string{
		&st.OpenAIKey, &st.AnthropicKey, &st.OpenRouterKey,
		&st.ElevenLabsKey, &st.DeepgramKey, &st.ShotstackKey,
	}
}

// MaskKey keeps the last four characters of a key visible.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	r := []rune(key)
	if len(r) <= 4 {
		return strings.Repeat(string(maskRune), len(r))
	}
	return strings.Repeat(string(maskRune), len(r)-4) + string(r[len(r)-4:])
}

// IsMasked reports whether v looks like the output of MaskKey.
func IsMasked(v string) bool {
	return v != "" && strings.HasPrefix(v, string(maskRune))
}
