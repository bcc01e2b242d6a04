package categorizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Category is the content task a prompt is classified into.
type Category string

const (
	CategoryText         Category = "text"
	CategoryTable        Category = "table"
	CategoryPresentation Category = "presentation"
	CategoryPodcast      Category = "podcast"
	CategoryImage        Category = "image"
	CategoryVideo        Category = "video"
)

// ErrUnknownCategory is returned when a category string is not one of the six task categories.
var ErrUnknownCategory = errors.New("unknown task category")

// Categories lists every task category in classification priority order,
// followed by the text fallback.
func Categories() []Category {
	return []Category{
		CategoryTable,
		CategoryPresentation,
		CategoryPodcast,
		CategoryImage,
		CategoryVideo,
		CategoryText,
	}
}

// Valid reports whether c is one of the task categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryText, CategoryTable, CategoryPresentation, CategoryPodcast, CategoryImage, CategoryVideo:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory converts a caller-supplied string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// CategorizationRequest holds the prompt to classify.
type CategorizationRequest struct {
	Prompt string
}

// CategorizationResult holds the detected category and the keyword that matched, if any.
type CategorizationResult struct {
	Category Category
	Keyword  string
}

// ContentCategorizer categorizes prompts
type ContentCategorizer interface {
	Categorize(ctx context.Context, req CategorizationRequest) (CategorizationResult, error)
}
