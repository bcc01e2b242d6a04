package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Repository implements the content, settings, chat history and job stores
// on top of a KVStore, one JSON document per key. Every read-modify-write
// goes through KVStore.Update, so API servers and workers sharing a backend
// do not overwrite each other.
type Repository struct {
	kv KVStore
}

// NewRepository wraps a key-value backend.
func NewRepository(kv KVStore) (*Repository, error) {
	if kv == nil {
		return nil, errors.New("key-value store cannot be nil")
	}
	return &Repository{kv: kv}, nil
}

// Ping checks the underlying backend.
func (r *Repository) Ping(ctx context.Context) error {
	return r.kv.Ping(ctx)
}

// Close closes the underlying backend.
func (r *Repository) Close() error {
	return r.kv.Close()
}

// readJSON loads key into dest. It reports false when the key is absent or
// holds a document that cannot be decoded; the latter is logged and treated
// as empty so one corrupt write does not lock the user out.
func (r *Repository) readJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	return decodeJSON(key, raw, dest), nil
}

func decodeJSON(key string, raw []byte, dest any) bool {
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warnf("Discarding unreadable value stored under %s: %v", key, err)
		return false
	}
	return true
}

// updateJSON decodes the document under key into a T (the zero value when
// absent or unreadable), lets fn modify it and writes it back atomically.
// An error from fn aborts the write.
func updateJSON[T any](ctx context.Context, r *Repository, key string, fn func(v *T, found bool) error) error {
	err := r.kv.Update(ctx, key, func(current []byte) ([]byte, error) {
		var v T
		found := decodeJSON(key, current, &v)
		if err := fn(&v, found); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	return nil
}

func (r *Repository) writeJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

var (
	_ ContentStore     = (*Repository)(nil)
	_ SettingsStore    = (*Repository)(nil)
	_ ChatHistoryStore = (*Repository)(nil)
	_ JobStore         = (*Repository)(nil)
)
