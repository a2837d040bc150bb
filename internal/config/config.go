package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	defaultPort            = 9191
	defaultCleanupInterval = time.Minute * 20
)

type Config struct {
	Stage           string
	Port            int
	CleanupInterval time.Duration
}

// Load reads the configuration from the environment. Outside
// prod, variables from envFile are loaded first if it exists.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:           os.Getenv("STAGE"),
		Port:            defaultPort,
		CleanupInterval: defaultCleanupInterval,
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %q", cfg.Stage)
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return Config{}, err
		}
		if port <= 0 {
			return Config{}, fmt.Errorf("port must be positive, got: %d", port)
		}
		cfg.Port = port
	}

	if intervalEnv := os.Getenv("SESSION_CLEANUP_INTERVAL"); intervalEnv != "" {
		interval, err := time.ParseDuration(intervalEnv)
		if err != nil {
			return Config{}, err
		}
		cfg.CleanupInterval = interval
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
