package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twm/internal/generator"
)

func TestGeneratedContent_JSONKeepsVariant(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := GeneratedContent{
		ID:        "abc",
		Type:      generator.TypeTable,
		Title:     "Preise",
		Content:   generator.TablePayload{Headers: []string{"A"}, Rows: [][]string{{"1"}}},
		CreatedAt: created,
		Model:     "gpt-4",
	}
	raw, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"headers":["A"]`)
	assert.Contains(t, string(raw), `"createdAt":"2026-01-02T03:04:05Z"`)

	var decoded GeneratedContent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, orig, decoded)
	_, ok := decoded.Content.(generator.TablePayload)
	assert.True(t, ok)
}

func TestGeneratedContent_UnknownTypeFails(t *testing.T) {
	var c GeneratedContent
	err := json.Unmarshal([]byte(`{"id":"x","type":"spreadsheet","content":{}}`), &c)
	require.Error(t, err)
}

func TestGeneratedContent_Validate(t *testing.T) {
	c := GeneratedContent{ID: "1", Type: generator.TypeText, Content: generator.TextPayload{Content: "hi"}}
	require.NoError(t, c.Validate())

	c.Type = generator.TypeVideo
	assert.ErrorIs(t, c.Validate(), ErrWrongContentType)

	c = GeneratedContent{ID: "1", Type: generator.TypeText}
	assert.ErrorIs(t, c.Validate(), ErrValidation)

	c = GeneratedContent{Type: generator.TypeText, Content: generator.TextPayload{}}
	assert.ErrorIs(t, c.Validate(), ErrValidation)
}

func TestTitleFor(t *testing.T) {
	long := strings.Repeat("ä", 60)

	assert.Equal(t, "Kurz", TitleFor(generator.TextPayload{}, "Kurz"))
	assert.Equal(t, strings.Repeat("ä", 50)+"...", TitleFor(generator.ImagePayload{}, long))
	assert.Equal(t, "Folien", TitleFor(generator.PresentationPayload{Title: "Folien"}, long))
	assert.Equal(t, "Pod", TitleFor(generator.PodcastPayload{Title: "Pod"}, long))
	assert.Equal(t, UntitledDocument, TitleFor(generator.DocumentPayload{}, ""))
	assert.Equal(t, "Notiz", TitleFor(generator.DocumentPayload{Title: "Notiz"}, ""))
}

func TestTruncateTitle_Boundary(t *testing.T) {
	exact := strings.Repeat("a", 50)
	assert.Equal(t, exact, TruncateTitle(exact))
	assert.Equal(t, exact+"...", TruncateTitle(exact+"b"))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.MockMode)
	assert.Empty(t, s.OpenAIKey)
}
