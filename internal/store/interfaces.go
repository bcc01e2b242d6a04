package store

import (
	"context"

	"github.com/hibiken/asynq"

	"twm/internal/models"
)

// Keys under which the repositories keep their JSON documents.
const (
	KeyContent     = "twm_content"
	KeySettings    = "twm_settings"
	KeyChatHistory = "twm_chat_history"
	// KeyJobPrefix is followed by the job id.
	KeyJobPrefix = "twm_job:"
)

// --- Key-Value Store ---

// KVStore is the persistence boundary. Values are opaque bytes; the
// repositories in this package store JSON.
type KVStore interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	// Update replaces the value of key with fn(current) atomically with
	// respect to every other writer of the backend, including other
	// processes. current is nil when the key is absent. When fn returns an
	// error nothing is written and the error is returned as is. fn may run
	// more than once.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error

	Ping(ctx context.Context) error
	Close() error
}

// --- Content Library ---

type ContentStore interface {
	SaveContent(ctx context.Context, content *models.GeneratedContent) error
	GetContent(ctx context.Context, id string) (*models.GeneratedContent, error)
	UpdateContent(ctx context.Context, content *models.GeneratedContent) error
	DeleteContent(ctx context.Context, id string) error
	ListContent(ctx context.Context) ([]*models.GeneratedContent, error)
	ClearContent(ctx context.Context) error
}

// --- Settings ---

type SettingsStore interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// --- Chat History ---

type ChatHistoryStore interface {
	GetChatHistory(ctx context.Context) ([]models.ChatMessage, error)
	// AppendChatMessages adds messages to the end of the stored conversation
	// in one atomic step.
	AppendChatMessages(ctx context.Context, messages ...models.ChatMessage) error
	ClearChatHistory(ctx context.Context) error
}

// --- Job Store ---

type JobStore interface {
	RecordJob(ctx context.Context, job *models.Job) error
	UpdateJobStatus(ctx context.Context, jobID, status, errMsg string) error
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
}

// --- Job Client ---

type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, contentID string, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}
