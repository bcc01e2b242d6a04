package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"twm/internal/catalog"
	"twm/internal/generator"
	"twm/internal/models"
	"twm/internal/store"
	"twm/internal/tasks"
	"twm/pkg/categorizer"
)

type GenerationService struct {
	generator    generator.Generator
	classifier   categorizer.ContentCategorizer
	contents     store.ContentStore
	settings     store.SettingsStore
	jobs         store.JobClient
	defaultModel string
}

type GenerationServiceDeps struct {
	Generator    generator.Generator
	Classifier   categorizer.ContentCategorizer
	ContentStore store.ContentStore
	// SettingsStore is optional; when set, mockMode=false is reported.
	SettingsStore store.SettingsStore
	// JobClient is optional; without it EnqueueGenerate fails.
	JobClient store.JobClient
	// DefaultModel overrides the per-category catalog default.
	DefaultModel string
}

func NewGenerationService(deps GenerationServiceDeps) *GenerationService {
	gen := deps.Generator
	if gen == nil {
		gen = generator.NewMockGenerator()
	}
	cls := deps.Classifier
	if cls == nil {
		cls = categorizer.NewKeywordCategorizer()
	}
	return &GenerationService{
		generator:    gen,
		classifier:   cls,
		contents:     deps.ContentStore,
		settings:     deps.SettingsStore,
		jobs:         deps.JobClient,
		defaultModel: deps.DefaultModel,
	}
}

type GenerateParams struct {
	Prompt string
	// Category is classified from Prompt when empty.
	Category categorizer.Category
	Model    string
	// Save stores the result in the library.
	Save bool
	// ContentID is used as the library id when set (async jobs).
	ContentID string
}

// Classify returns the category for prompt and the keyword that decided it.
func (s *GenerationService) Classify(ctx context.Context, prompt string) (categorizer.CategorizationResult, error) {
	return s.classifier.Categorize(ctx, categorizer.CategorizationRequest{Prompt: prompt})
}

func (s *GenerationService) resolve(ctx context.Context, p *GenerateParams) error {
	// The prompt is passed on verbatim; only its emptiness ignores spaces.
	if strings.TrimSpace(p.Prompt) == "" {
		return fmt.Errorf("%w: prompt is empty", models.ErrValidation)
	}
	if p.Category == "" {
		res, err := s.Classify(ctx, p.Prompt)
		if err != nil {
			return fmt.Errorf("classify prompt: %w", err)
		}
		p.Category = res.Category
	} else if !p.Category.Valid() {
		return fmt.Errorf("%w: %w: %q", models.ErrValidation, categorizer.ErrUnknownCategory, p.Category)
	}
	if p.Model == "" {
		p.Model = s.defaultModel
	}
	if p.Model == "" {
		p.Model = catalog.DefaultModel(p.Category)
	}
	if _, ok := catalog.FindModel(p.Model); !ok {
		return fmt.Errorf("%w: unknown model %q", models.ErrValidation, p.Model)
	}
	return nil
}

// Generate produces content for the prompt and, when requested, saves it to
// the library.
func (s *GenerationService) Generate(ctx context.Context, params GenerateParams) (*models.GeneratedContent, error) {
	if err := s.resolve(ctx, &params); err != nil {
		return nil, err
	}
	s.warnIfLiveModeRequested(ctx)

	payload, err := s.generator.Generate(ctx, generator.Request{
		Category: params.Category,
		Prompt:   params.Prompt,
		Model:    params.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrGenerationFailed, err)
	}

	id := params.ContentID
	if id == "" {
		id = uuid.NewString()
	}
	content := &models.GeneratedContent{
		ID:        id,
		Type:      payload.Type(),
		Title:     models.TitleFor(payload, params.Prompt),
		Content:   payload,
		CreatedAt: time.Now().UTC(),
		Model:     params.Model,
	}

	if params.Save {
		if s.contents == nil {
			return nil, fmt.Errorf("content store not configured")
		}
		if err := s.contents.SaveContent(ctx, content); err != nil {
			return nil, fmt.Errorf("save generated content: %w", err)
		}
		log.Infof("Saved %s content %s (%q)", content.Type, content.ID, content.Title)
	}
	return content, nil
}

// EnqueueGenerate schedules generation on the worker. The returned content
// id is the library id the result will be saved under.
func (s *GenerationService) EnqueueGenerate(ctx context.Context, params GenerateParams) (contentID, taskID string, err error) {
	if s.jobs == nil {
		return "", "", fmt.Errorf("background jobs are not configured")
	}
	if err := s.resolve(ctx, &params); err != nil {
		return "", "", err
	}
	contentID = uuid.NewString()
	task, err := tasks.NewGenerateContentTask(tasks.GenerateContentPayload{
		ContentID: contentID,
		Prompt:    params.Prompt,
		Category:  params.Category.String(),
		Model:     params.Model,
	})
	if err != nil {
		return "", "", err
	}
	info, err := s.jobs.Enqueue(ctx, task, contentID)
	if err != nil {
		return "", "", fmt.Errorf("enqueue generation: %w", err)
	}
	return contentID, info.ID, nil
}

// FollowUps returns suggested follow-up questions for generated content.
func (s *GenerationService) FollowUps(ctx context.Context, content string) ([]string, error) {
	return s.generator.FollowUps(ctx, content)
}

func (s *GenerationService) warnIfLiveModeRequested(ctx context.Context) {
	if s.settings == nil {
		return
	}
	st, err := s.settings.GetSettings(ctx)
	if err != nil {
		log.Warnf("Could not read settings: %v", err)
		return
	}
	if !st.MockMode {
		log.Warnf("Mock mode is disabled in settings but no live provider is available; using %s generator", s.generator.Name())
	}
}
