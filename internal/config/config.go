package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Firebase  FirebaseConfig  `yaml:"firebase"`
	Trigger   TriggerConfig   `yaml:"trigger"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// FirebaseConfig contains Firestore project settings
type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

// TriggerConfig contains balance trigger settings
type TriggerConfig struct {
	// Collection watched for created transaction documents.
	Collection string `yaml:"collection"`
	// StalledAfterMinutes is how old an unprocessed transaction must be
	// before the sweep job re-dispatches it.
	StalledAfterMinutes int `yaml:"stalled_after_minutes"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ReprocessStalledTransactions string `yaml:"reprocess_stalled_transactions"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Firebase
	if val := os.Getenv("FIREBASE_PROJECT_ID"); val != "" {
		c.Firebase.ProjectID = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Firebase.CredentialsFile = val
	}

	// Trigger
	if val := os.Getenv("TRIGGER_COLLECTION"); val != "" {
		c.Trigger.Collection = val
	}
	if val := os.Getenv("TRIGGER_STALLED_AFTER_MINUTES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Trigger.StalledAfterMinutes)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Firebase validation
	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("firebase project id is required")
	}

	// Trigger defaults
	if c.Trigger.Collection == "" {
		c.Trigger.Collection = "transactions"
	}
	if c.Trigger.StalledAfterMinutes <= 0 {
		c.Trigger.StalledAfterMinutes = 15
	}

	// Scheduler defaults
	if c.Scheduler.ReprocessStalledTransactions == "" {
		c.Scheduler.ReprocessStalledTransactions = "0 */10 * * * *" // every 10 minutes
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// StalledCutoff returns the age threshold for the sweep job relative to now.
func (c *Config) StalledCutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(c.Trigger.StalledAfterMinutes) * time.Minute)
}
