package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. TWM_STORAGE_DRIVER.
const EnvPrefix = "TWM"

type Config struct {
	Server struct {
		Address string `mapstructure:"address"`
		// Debug runs gin in debug mode.
		Debug bool `mapstructure:"debug"`
		// ShutdownTimeout is in seconds.
		ShutdownTimeout int `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Storage struct {
		Driver string `mapstructure:"driver"` // memory, sqlite, postgres, redis
		SQLite struct {
			Path string `mapstructure:"path"`
		} `mapstructure:"sqlite"`
		Postgres struct {
			DSN string `mapstructure:"dsn"`
		} `mapstructure:"postgres"`
		Redis struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
			Prefix   string `mapstructure:"prefix"`
		} `mapstructure:"redis"`
	} `mapstructure:"storage"`

	// Redis is the asynq broker. Jobs are disabled when Address is empty.
	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`

	Generation struct {
		// DefaultModel overrides the per-task default from the model catalog.
		DefaultModel string `mapstructure:"default_model"`
	} `mapstructure:"generation"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // text or json
	} `mapstructure:"log"`
}

// setDefaults registers every key, including empty ones, because viper's
// AutomaticEnv only reaches keys it already knows when unmarshalling.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.debug", false)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.sqlite.path", defaultSQLitePath())
	v.SetDefault("storage.postgres.dsn", "")
	v.SetDefault("storage.redis.address", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "twm:")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("worker.concurrency", 4)
	v.SetDefault("worker.queues", map[string]int{"default": 1})

	v.SetDefault("generation.default_model", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "twm.db"
	}
	return filepath.Join(home, ".local", "share", "twm", "twm.db")
}

// LoadConfig reads config.yaml from cfgFile, or from the current directory
// or ~/.config/twm when cfgFile is empty. A missing file is not an error;
// defaults and TWM_ environment variables apply.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "twm"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// JobsEnabled reports whether a task queue broker is configured.
func (c *Config) JobsEnabled() bool {
	return c.Redis.Address != ""
}
