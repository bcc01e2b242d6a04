package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"twm/internal/generator"
	"twm/internal/models"
	"twm/internal/store"
)

// LibraryService manages saved content.
type LibraryService struct {
	contents store.ContentStore
}

func NewLibraryService(cs store.ContentStore) *LibraryService {
	return &LibraryService{contents: cs}
}

type ListContentParams struct {
	// Type filters by content type when set.
	Type   generator.ContentType
	Limit  int
	Offset int
}

// List returns library entries newest first, plus the number of entries
// matching the filter before paging.
func (s *LibraryService) List(ctx context.Context, params ListContentParams) ([]*models.GeneratedContent, int, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, 0, fmt.Errorf("%w: limit and offset must not be negative", models.ErrValidation)
	}
	items, err := s.contents.ListContent(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list content: %w", err)
	}
	if params.Type != "" {
		filtered := make([]*models.GeneratedContent, 0, len(items))
		for _, it := range items {
			if it.Type == params.Type {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	total := len(items)
	if params.Offset >= total {
		return []*models.GeneratedContent{}, total, nil
	}
	items = items[params.Offset:]
	if params.Limit > 0 && params.Limit < len(items) {
		items = items[:params.Limit]
	}
	return items, total, nil
}

func (s *LibraryService) Get(ctx context.Context, id string) (*models.GeneratedContent, error) {
	c, err := s.contents.GetContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content %s: %w", id, err)
	}
	return c, nil
}

func (s *LibraryService) Delete(ctx context.Context, id string) error {
	if err := s.contents.DeleteContent(ctx, id); err != nil {
		return fmt.Errorf("delete content %s: %w", id, err)
	}
	return nil
}

// SaveDocument stores a document written in the editor.
func (s *LibraryService) SaveDocument(ctx context.Context, title, body string) (*models.GeneratedContent, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: document content is empty", models.ErrValidation)
	}
	payload := generator.DocumentPayload{Title: strings.TrimSpace(title), Content: body}
	doc := &models.GeneratedContent{
		ID:        uuid.NewString(),
		Type:      generator.TypeDocument,
		Title:     models.TitleFor(payload, ""),
		Content:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contents.SaveContent(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return doc, nil
}

// AttachAudio sets the audio URL of a podcast entry.
func (s *LibraryService) AttachAudio(ctx context.Context, id, audioURL string) (*models.GeneratedContent, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pod, ok := c.Content.(generator.PodcastPayload)
	if !ok {
		return nil, fmt.Errorf("%w: content %s is %s, not podcast", models.ErrWrongContentType, id, c.Type)
	}
	pod.AudioURL = audioURL
	c.Content = pod
	if err := s.contents.UpdateContent(ctx, c); err != nil {
		return nil, fmt.Errorf("attach audio to %s: %w", id, err)
	}
	return c, nil
}
