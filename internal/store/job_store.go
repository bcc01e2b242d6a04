package store

import (
	"context"
	"fmt"
	"time"

	"twm/internal/models"
)

func jobKey(id string) string { return KeyJobPrefix + id }

// RecordJob stores a new job record.
func (r *Repository) RecordJob(ctx context.Context, job *models.Job) error {
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	return r.writeJSON(ctx, jobKey(job.ID), job)
}

// UpdateJobStatus sets the status (and error message) of a recorded job.
func (r *Repository) UpdateJobStatus(ctx context.Context, jobID, status, errMsg string) error {
	return updateJSON(ctx, r, jobKey(jobID), func(job *models.Job, found bool) error {
		if !found {
			return fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		job.Status = status
		job.Error = errMsg
		job.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (r *Repository) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	var job models.Job
	found, err := r.readJSON(ctx, jobKey(jobID), &job)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &job, nil
}
