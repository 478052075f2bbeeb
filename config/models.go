package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	DOMjudge DOMjudgeConfig `mapstructure:"domjudge"`
	Mail     MailConfig     `mapstructure:"mail"`
	Audit    AuditConfig    `mapstructure:"audit"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.DOMjudge.BaseURL == "" {
		return errors.New("domjudge.base_url is required")
	}
	if c.DOMjudge.Username == "" {
		return errors.New("domjudge.username is required")
	}
	if c.Audit.Dir == "" {
		return errors.New("audit.dir is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DOMjudgeConfig describes the contest platform API endpoint and credentials.
type DOMjudgeConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	ContestID string `mapstructure:"contest_id"`
}

// MailConfig describes the SMTP submission account for credential emails.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
}

// Sender returns the from address, falling back to the SMTP account.
func (m MailConfig) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.Username
}

// AuditConfig locates the append-only JSON audit log files.
type AuditConfig struct {
	Dir               string `mapstructure:"dir"`
	RegistrationsFile string `mapstructure:"registrations_file"`
	CredentialsFile   string `mapstructure:"credentials_file"`
	OutcomesFile      string `mapstructure:"outcomes_file"`
}

// SeedConfig lists organizations ensured on startup.
type SeedConfig struct {
	Organizations []string `mapstructure:"organizations"`
}
