package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"twm/internal/models"
)

// AsynqJobClient enqueues tasks on Redis and records each one in the JobStore.
type AsynqJobClient struct {
	client   *asynq.Client
	jobStore JobStore
}

// RedisOptions holds the connection settings for the task queue.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

func NewAsynqJobClient(opts RedisOptions, js JobStore) (*AsynqJobClient, error) {
	if js == nil {
		return nil, fmt.Errorf("JobStore cannot be nil for AsynqJobClient")
	}
	if opts.Address == "" {
		return nil, fmt.Errorf("redis address is required for the job client")
	}
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &AsynqJobClient{client: cli, jobStore: js}, nil
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

// Enqueue records a job for task and then enqueues it under the same id,
// so the worker always finds the record it updates.
func (jc *AsynqJobClient) Enqueue(ctx context.Context, task *asynq.Task, contentID string, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if jc.client == nil {
		return nil, fmt.Errorf("AsynqJobClient internal client is not initialized")
	}
	jobID := uuid.NewString()
	job := &models.Job{
		ID:        jobID,
		TaskType:  task.Type(),
		ContentID: contentID,
		Status:    models.JobStatusEnqueued,
	}
	if err := jc.jobStore.RecordJob(ctx, job); err != nil {
		return nil, fmt.Errorf("record job for task %s: %w", task.Type(), err)
	}

	opts = append(opts, asynq.TaskID(jobID))
	info, err := jc.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		log.Errorf("Failed to enqueue task type '%s': %v", task.Type(), err)
		if uerr := jc.jobStore.UpdateJobStatus(ctx, jobID, models.JobStatusFailed, err.Error()); uerr != nil {
			log.Errorf("Failed to mark job %s failed: %v", jobID, uerr)
		}
		return nil, err
	}
	log.Debugf("Enqueued task type '%s' id=%s queue=%s", task.Type(), info.ID, info.Queue)
	return info, nil
}

var _ JobClient = (*AsynqJobClient)(nil)
