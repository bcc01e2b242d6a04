package store

import (
	"context"
	"fmt"

	"twm/internal/models"
)

// --- Content Management ---

type contentList = []*models.GeneratedContent

func (r *Repository) loadContent(ctx context.Context) (contentList, error) {
	var items contentList
	if _, err := r.readJSON(ctx, KeyContent, &items); err != nil {
		return nil, err
	}
	return compact(items), nil
}

func compact(items contentList) contentList {
	out := make(contentList, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// SaveContent puts a new item at the front of the library.
func (r *Repository) SaveContent(ctx context.Context, content *models.GeneratedContent) error {
	if err := content.Validate(); err != nil {
		return err
	}
	return updateJSON(ctx, r, KeyContent, func(items *contentList, _ bool) error {
		list := compact(*items)
		for _, it := range list {
			if it.ID == content.ID {
				return fmt.Errorf("content %s: %w", content.ID, ErrDuplicate)
			}
		}
		*items = append(contentList{content}, list...)
		return nil
	})
}

func (r *Repository) GetContent(ctx context.Context, id string) (*models.GeneratedContent, error) {
	items, err := r.loadContent(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateContent replaces the stored item with the same id, keeping its position.
func (r *Repository) UpdateContent(ctx context.Context, content *models.GeneratedContent) error {
	if err := content.Validate(); err != nil {
		return err
	}
	return updateJSON(ctx, r, KeyContent, func(items *contentList, _ bool) error {
		list := compact(*items)
		for i, it := range list {
			if it.ID == content.ID {
				list[i] = content
				*items = list
				return nil
			}
		}
		return ErrNotFound
	})
}

func (r *Repository) DeleteContent(ctx context.Context, id string) error {
	return updateJSON(ctx, r, KeyContent, func(items *contentList, _ bool) error {
		list := compact(*items)
		kept := make(contentList, 0, len(list))
		for _, it := range list {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		if len(kept) == len(list) {
			return ErrNotFound
		}
		*items = kept
		return nil
	})
}

// ListContent returns the library, newest first.
func (r *Repository) ListContent(ctx context.Context) ([]*models.GeneratedContent, error) {
	return r.loadContent(ctx)
}

func (r *Repository) ClearContent(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyContent)
}
