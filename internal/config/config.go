package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Email     EmailConfig     `yaml:"email"`
	Admin     AdminConfig     `yaml:"admin"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
	Dispatch  DispatchConfig  `yaml:"dispatch"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// MongoConfig contains MongoDB connection settings
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// EmailConfig contains email provider settings
type EmailConfig struct {
	APIKey            string `yaml:"api_key"`
	SenderEmail       string `yaml:"sender_email"`
	SenderName        string `yaml:"sender_name"`
	WelcomeTemplateID string `yaml:"welcome_template_id"`
}

// AdminConfig contains the admin API credential
type AdminConfig struct {
	Token string `yaml:"token"`
}

// CORSConfig contains cross-origin settings for the public frontend
type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// DispatchConfig contains notification dispatch settings
type DispatchConfig struct {
	MaxConcurrentSends int `yaml:"max_concurrent_sends"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendTeaserReminders string `yaml:"send_teaser_reminders"`
}

// Load reads configuration from a YAML file, then applies .env and
// environment-variable overrides.
func Load(configPath string) (*Config, error) {
	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

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
	if val := os.Getenv("PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Mongo
	if val := os.Getenv("MONGODB_URI"); val != "" {
		c.Mongo.URI = val
	}
	if val := os.Getenv("MONGODB_DATABASE"); val != "" {
		c.Mongo.Database = val
	}

	// Email provider
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.APIKey = val
	}
	if val := os.Getenv("SENDER_EMAIL"); val != "" {
		c.Email.SenderEmail = val
	}
	if val := os.Getenv("SENDER_NAME"); val != "" {
		c.Email.SenderName = val
	}
	if val := os.Getenv("WELCOME_TEMPLATE_ID"); val != "" {
		c.Email.WelcomeTemplateID = val
	}

	// Admin
	if val := os.Getenv("ADMIN_TOKEN"); val != "" {
		c.Admin.Token = val
	}

	// CORS
	if val := os.Getenv("CORS_ALLOWED_ORIGIN"); val != "" {
		c.CORS.AllowedOrigin = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid and applies defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}

	if c.Email.APIKey == "" {
		return fmt.Errorf("email provider API key is required")
	}
	if c.Email.SenderEmail == "" {
		return fmt.Errorf("sender email is required")
	}

	if c.Admin.Token == "" {
		return fmt.Errorf("admin token is required")
	}

	// Defaults
	if c.Email.SenderName == "" {
		c.Email.SenderName = "JOBI"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Dispatch.MaxConcurrentSends <= 0 {
		c.Dispatch.MaxConcurrentSends = 8
	}
	if c.Scheduler.SendTeaserReminders == "" {
		c.Scheduler.SendTeaserReminders = "0 0 9 * * 1" // Mondays 9 AM UTC
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
