// Package worker holds the asynq task handlers run by `twm worker`.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"twm/internal/models"
	"twm/internal/services"
	"twm/internal/store"
	"twm/internal/tasks"
	"twm/pkg/categorizer"
)

// Deps are the services the handlers run against.
type Deps struct {
	Generation *services.GenerationService
	Speech     *services.SpeechService
	JobStore   store.JobStore
}

// RegisterHandlers wires every task type into mux.
func RegisterHandlers(mux *asynq.ServeMux, deps Deps) {
	log.Infof("Registering handler for %s", tasks.TypeGenerateContent)
	mux.HandleFunc(tasks.TypeGenerateContent, HandleGenerateContent(deps))
	log.Infof("Registering handler for %s", tasks.TypeSynthesizePodcast)
	mux.HandleFunc(tasks.TypeSynthesizePodcast, HandleSynthesizePodcast(deps))
}

// HandleGenerateContent generates and saves content under the pre-assigned id.
func HandleGenerateContent(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p tasks.GenerateContentPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}
		jobID := taskID(t)
		setStatus(ctx, deps.JobStore, jobID, models.JobStatusRunning, "")

		content, err := deps.Generation.Generate(ctx, services.GenerateParams{
			Prompt:    p.Prompt,
			Category:  categorizer.Category(p.Category),
			Model:     p.Model,
			Save:      true,
			ContentID: p.ContentID,
		})
		if err != nil {
			setStatus(ctx, deps.JobStore, jobID, models.JobStatusFailed, err.Error())
			return retryable(err)
		}
		log.Infof("Job %s: generated %s content %s", jobID, content.Type, content.ID)
		setStatus(ctx, deps.JobStore, jobID, models.JobStatusCompleted, "")
		return nil
	}
}

// HandleSynthesizePodcast renders podcast audio and attaches it to the entry.
func HandleSynthesizePodcast(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p tasks.SynthesizePodcastPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}
		jobID := taskID(t)
		setStatus(ctx, deps.JobStore, jobID, models.JobStatusRunning, "")

		if _, err := deps.Speech.SynthesizePodcast(ctx, p.ContentID); err != nil {
			setStatus(ctx, deps.JobStore, jobID, models.JobStatusFailed, err.Error())
			return retryable(err)
		}
		log.Infof("Job %s: attached audio to %s", jobID, p.ContentID)
		setStatus(ctx, deps.JobStore, jobID, models.JobStatusCompleted, "")
		return nil
	}
}

// retryable marks errors that a retry cannot fix.
func retryable(err error) error {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrWrongContentType),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	return err
}

func taskID(t *asynq.Task) string {
	if rw := t.ResultWriter(); rw != nil {
		return rw.TaskID()
	}
	return ""
}

func setStatus(ctx context.Context, js store.JobStore, jobID, status, errMsg string) {
	if js == nil || jobID == "" {
		return
	}
	if err := js.UpdateJobStatus(ctx, jobID, status, errMsg); err != nil {
		log.Warnf("Job %s: could not record status %s: %v", jobID, status, err)
	}
}
