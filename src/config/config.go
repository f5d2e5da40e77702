// Package config provides configuration management for the Caselight application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreRemote   = "remote"
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// Default values applied when the corresponding variable is unset.
const (
	DefaultTimeout = 30 * time.Second
	DefaultStore   = StoreRemote
	DefaultDataDir = "data"
	defaultEnvFile = ".env"
	defaultSearchN = 8
	maxSearchLimit = 20
)

// Config holds the application configuration.
type Config struct {
	// APIBaseURL is the base URL of the legal-analysis backend,
	// e.g. "http://localhost:8000". Required for the remote store.
	APIBaseURL string
	// Timeout bounds every backend request.
	Timeout time.Duration
	// Store selects the saved-witness store: "remote", "file" or "postgres".
	Store string
	// PostgresDSN is the connection string for the postgres store.
	PostgresDSN string
	// DataDir holds the file store, session journals and diagnostic logs.
	DataDir string
	// Brokers lists Redpanda/Kafka seed brokers for the shared journal.
	// Empty means the in-process journal broker is used.
	Brokers []string
	// SearchLimit is the default number of candidates requested per search.
	SearchLimit int
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is applied first when present; real environment
// variables win over .env entries.
func LoadFromEnv() (*Config, error) {
	// Best effort: absence of a .env file is the common case.
	_ = godotenv.Load(defaultEnvFile)

	cfg := &Config{
		APIBaseURL:  strings.TrimRight(os.Getenv("CASELIGHT_API_URL"), "/"),
		Timeout:     DefaultTimeout,
		Store:       DefaultStore,
		PostgresDSN: os.Getenv("CASELIGHT_POSTGRES_DSN"),
		DataDir:     DefaultDataDir,
		SearchLimit: defaultSearchN,
	}

	if v := os.Getenv("CASELIGHT_TIMEOUT"); v != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CASELIGHT_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("CASELIGHT_STORE"); v != "" {
		switch v {
		case StoreRemote, StoreFile, StorePostgres:
			cfg.Store = v
		default:
			return nil, fmt.Errorf("invalid CASELIGHT_STORE %q: must be remote, file or postgres", v)
		}
	}

	if v := os.Getenv("CASELIGHT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if v := os.Getenv("CASELIGHT_BROKERS"); v != "" {
		cfg.Brokers = SplitBrokers(v)
	}

	return cfg, nil
}

// ParseTimeout parses a positive duration string.
func ParseTimeout(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %q", v)
	}
	return d, nil
}

// SplitBrokers parses a comma-separated broker list, dropping empty entries.
func SplitBrokers(v string) []string {
	var brokers []string
	for _, b := range strings.Split(v, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Validate checks that the selected store can actually be constructed.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreRemote:
		if c.APIBaseURL == "" {
			return fmt.Errorf("CASELIGHT_API_URL is required for the remote store")
		}
	case StorePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("CASELIGHT_POSTGRES_DSN is required for the postgres store")
		}
	}
	return nil
}

// ClampLimit bounds a requested search limit to the backend's accepted range.
func (c *Config) ClampLimit(limit int) int {
	if limit <= 0 {
		return c.SearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}

// SavedFile returns the path of the JSON file store.
func (c *Config) SavedFile() string {
	return filepath.Join(c.DataDir, "saved_witnesses.json")
}

// JournalFile returns the path of the JSONL journal for the given session.
func (c *Config) JournalFile(sessionID string) string {
	return filepath.Join(c.DataDir, "journal", sessionID+".jsonl")
}

// LogFile returns the path of the diagnostic log written while the TUI owns
// the terminal.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "caselight.log")
}
