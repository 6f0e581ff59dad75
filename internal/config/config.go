package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// SurrealDB connection (run history)
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
	SurrealDBAuthLevel string

	// Output
	ReportDir string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		SurrealDBURL:       getEnv("SURREALDB_URL", "ws://localhost:8000/rpc"),
		SurrealDBNamespace: getEnv("SURREALDB_NAMESPACE", "bpmlens"),
		SurrealDBDatabase:  getEnv("SURREALDB_DATABASE", "runs"),
		SurrealDBUser:      getEnv("SURREALDB_USER", "root"),
		SurrealDBPass:      getEnv("SURREALDB_PASS", "root"),
		SurrealDBAuthLevel: getEnv("SURREALDB_AUTH_LEVEL", "root"),

		ReportDir: getEnv("BPMLENS_REPORT_DIR", "."),

		LogFile:  getEnv("BPMLENS_LOG_FILE", "/tmp/bpmlens.log"),
		LogLevel: parseLogLevel(getEnv("BPMLENS_LOG_LEVEL", "INFO")),
	}
}

// fileConfig mirrors Config for YAML overrides; unset fields keep the
// value already loaded from the environment.
type fileConfig struct {
	SurrealDBURL       *string `yaml:"surrealdb_url"`
	SurrealDBNamespace *string `yaml:"surrealdb_namespace"`
	SurrealDBDatabase  *string `yaml:"surrealdb_database"`
	SurrealDBUser      *string `yaml:"surrealdb_user"`
	SurrealDBPass      *string `yaml:"surrealdb_pass"`
	SurrealDBAuthLevel *string `yaml:"surrealdb_auth_level"`
	ReportDir          *string `yaml:"report_dir"`
	LogFile            *string `yaml:"log_file"`
	LogLevel           *string `yaml:"log_level"`
}

// LoadWithFile loads environment configuration, then applies overrides
// from a YAML file. A blank path skips the file step.
func LoadWithFile(path string) (Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}

	setIf(&cfg.SurrealDBURL, fc.SurrealDBURL)
	setIf(&cfg.SurrealDBNamespace, fc.SurrealDBNamespace)
	setIf(&cfg.SurrealDBDatabase, fc.SurrealDBDatabase)
	setIf(&cfg.SurrealDBUser, fc.SurrealDBUser)
	setIf(&cfg.SurrealDBPass, fc.SurrealDBPass)
	setIf(&cfg.SurrealDBAuthLevel, fc.SurrealDBAuthLevel)
	setIf(&cfg.ReportDir, fc.ReportDir)
	setIf(&cfg.LogFile, fc.LogFile)
	if fc.LogLevel != nil {
		cfg.LogLevel = parseLogLevel(*fc.LogLevel)
	}

	return cfg, nil
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
