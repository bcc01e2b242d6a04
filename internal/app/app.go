package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"twm/internal/config"
	"twm/internal/generator"
	"twm/internal/services"
	"twm/internal/store"
	"twm/internal/store/kv"
	"twm/pkg/categorizer"
)

type App struct {
	Config *config.Config

	// Repository backs every store interface below.
	Repository *store.Repository

	ContentStore     store.ContentStore
	SettingsStore    store.SettingsStore
	ChatHistoryStore store.ChatHistoryStore
	JobStore         store.JobStore
	// JobClient is nil when no task queue broker is configured.
	JobClient store.JobClient

	// --- Initialized Services ---
	GenerationService *services.GenerationService
	LibraryService    *services.LibraryService
	ChatService       *services.ChatService
	SettingsService   *services.SettingsService
	SpeechService     *services.SpeechService
}

// NewApp opens the configured backend and wires the services on top of it.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	kvStore, err := kv.Open(ctx, kv.Options{
		Driver:      cfg.Storage.Driver,
		SQLitePath:  cfg.Storage.SQLite.Path,
		PostgresDSN: cfg.Storage.Postgres.DSN,
		RedisAddr:   cfg.Storage.Redis.Address,
		RedisPass:   cfg.Storage.Redis.Password,
		RedisDB:     cfg.Storage.Redis.DB,
		RedisPrefix: cfg.Storage.Redis.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("init %s store: %w", cfg.Storage.Driver, err)
	}
	return New(cfg, kvStore)
}

// New wires the app on an already opened key-value backend.
func New(cfg *config.Config, kvStore store.KVStore) (*App, error) {
	a := &App{Config: cfg}
	if err := a.initStores(kvStore); err != nil {
		return nil, err
	}
	if err := a.initJobClient(); err != nil {
		a.cleanupPartialInit()
		return nil, err
	}
	a.initServices()

	log.Debugf("Application initialized (storage=%s, jobs=%t)", cfg.Storage.Driver, a.JobClient != nil)
	return a, nil
}

// --- Private Helper Methods ---

func (a *App) initStores(kvStore store.KVStore) error {
	repo, err := store.NewRepository(kvStore)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	a.Repository = repo
	a.ContentStore = repo
	a.SettingsStore = repo
	a.ChatHistoryStore = repo
	a.JobStore = repo
	return nil
}

func (a *App) initJobClient() error {
	if !a.Config.JobsEnabled() {
		log.Debug("redis.address not set; background jobs disabled")
		return nil
	}
	jc, err := store.NewAsynqJobClient(store.RedisOptions{
		Address:  a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	}, a.JobStore)
	if err != nil {
		return fmt.Errorf("init job client: %w", err)
	}
	a.JobClient = jc
	return nil
}

func (a *App) initServices() {
	a.GenerationService = services.NewGenerationService(services.GenerationServiceDeps{
		Generator:     generator.NewMockGenerator(),
		Classifier:    categorizer.NewKeywordCategorizer(),
		ContentStore:  a.ContentStore,
		SettingsStore: a.SettingsStore,
		JobClient:     a.JobClient,
		DefaultModel:  a.Config.Generation.DefaultModel,
	})
	a.LibraryService = services.NewLibraryService(a.ContentStore)
	a.ChatService = services.NewChatService(a.GenerationService, a.ChatHistoryStore)
	a.SettingsService = services.NewSettingsService(a.SettingsStore)
	a.SpeechService = services.NewSpeechService(generator.NewMockSpeech(), a.LibraryService, a.JobClient)
}

// Ping checks the storage backend.
func (a *App) Ping(ctx context.Context) error {
	return a.Repository.Ping(ctx)
}

// Close releases the job client and the storage backend.
func (a *App) Close() error {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.Warnf("Error closing job client: %v", err)
		}
	}
	if a.Repository != nil {
		return a.Repository.Close()
	}
	return nil
}

func (a *App) cleanupPartialInit() {
	if a.Repository != nil {
		if err := a.Repository.Close(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}
}
