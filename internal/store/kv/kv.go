// Package kv provides the key-value backends behind store.KVStore.
package kv

import (
	"context"
	"fmt"

	"twm/internal/store"
)

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	RedisPrefix string
}

// Open creates the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (store.KVStore, error) {
	switch opts.Driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil
	case DriverSQLite:
		return NewSQLiteStore(opts.SQLitePath)
	case DriverPostgres:
		return NewPostgresStore(ctx, opts.PostgresDSN)
	case DriverRedis:
		return DialRedis(ctx, opts.RedisAddr, opts.RedisPass, opts.RedisDB, opts.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
