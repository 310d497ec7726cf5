package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDBPath is used when neither --db nor DB_PATH is provided.
const DefaultDBPath = "./inventory.db"

// Environment variables consulted when the matching flag is left at its default.
const (
	EnvDBPath  = "DB_PATH"
	EnvLogFile = "LOG_FILE"
)

// LoadEnv loads environment variables from envFile, or from ./.env when
// envFile is empty. A missing default .env file is not an error; a missing
// explicitly named file is.
func LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed loading .env: %w", err)
	}
	return nil
}

// ResolveDBPath returns flagVal unless it is the default, in which case
// DB_PATH wins when set.
func ResolveDBPath(flagVal string) string {
	if flagVal == "" || flagVal == DefaultDBPath {
		if env := os.Getenv(EnvDBPath); env != "" {
			return env
		}
	}
	if flagVal == "" {
		return DefaultDBPath
	}
	return flagVal
}

// ResolveLogFile returns flagVal, falling back to LOG_FILE.
func ResolveLogFile(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return os.Getenv(EnvLogFile)
}
