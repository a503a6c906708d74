package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds client configuration resolved from the environment.
type Config struct {
	APIBaseURL     string
	DataDir        string
	LogFile        string
	Language       string
	RequestTimeout time.Duration
}

func Load() *Config {
	dataDir := getEnv("BELLUM_DATA_DIR", defaultDataDir())
	return &Config{
		APIBaseURL:     getEnv("BELLUM_API_URL", "http://localhost:8000"),
		DataDir:        dataDir,
		LogFile:        getEnv("BELLUM_LOG_FILE", filepath.Join(dataDir, "bellum_debug.log")),
		Language:       getEnv("BELLUM_LANG", ""),
		RequestTimeout: getEnvDuration("BELLUM_REQUEST_TIMEOUT", 30*time.Second),
	}
}

// StorePath is the location of the local settings database.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "bellum.db")
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".bellum")
	}
	return "."
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
