// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("http.request_timeout", "30s")

	v.SetDefault("domjudge.base_url", "https://api.birjand.ir")
	v.SetDefault("domjudge.username", "admin")
	v.SetDefault("domjudge.password", "")
	v.SetDefault("domjudge.contest_id", "1")

	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.from_name", "BIRCPC")

	v.SetDefault("audit.dir", "data")
	v.SetDefault("audit.registrations_file", "registerUser.json")
	v.SetDefault("audit.credentials_file", "userPass.json")
	v.SetDefault("audit.outcomes_file", "sendemail.json")

	v.SetDefault("seed.organizations", []string{"University of Birjand"})
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"server.environment",
		"http.request_timeout",
		"domjudge.base_url",
		"domjudge.username",
		"domjudge.password",
		"domjudge.contest_id",
		"mail.host",
		"mail.port",
		"mail.username",
		"mail.password",
		"mail.from",
		"mail.from_name",
		"audit.dir",
		"audit.registrations_file",
		"audit.credentials_file",
		"audit.outcomes_file",
		"seed.organizations",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
