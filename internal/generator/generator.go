package generator

import (
	"context"

	"twm/pkg/categorizer"
)

// Request is a single generation call.
type Request struct {
	Category categorizer.Category
	Prompt   string
	Model    string
}

// Generator produces a payload for a request. A real model backend would
// implement this; the payload variant must match req.Category.
type Generator interface {
	Generate(ctx context.Context, req Request) (Payload, error)
	FollowUps(ctx context.Context, content string) ([]string, error)
	Name() string
}

// MockGenerator returns fixed template content.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (g *MockGenerator) Name() string { return "mock" }

func (g *MockGenerator) Generate(ctx context.Context, req Request) (Payload, error) {
	return MockContent(req.Category, req.Prompt)
}

func (g *MockGenerator) FollowUps(ctx context.Context, content string) ([]string, error) {
	return FollowUpQuestions(), nil
}

var _ Generator = (*MockGenerator)(nil)
