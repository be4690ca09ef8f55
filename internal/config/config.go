package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	data, err := loadDataConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Data: data, Log: loadLogConfig()}, nil
}

// ServerConfig describes the HTTP listen address.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// DataConfig describes the data file and its containment root.
type DataConfig struct {
	FilePath string
	BaseDir  string
}

func loadDataConfig() (DataConfig, error) {
	baseDir := strings.TrimSpace(os.Getenv("DATA_BASE_DIR"))
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return DataConfig{}, fmt.Errorf("resolve working directory: %w", err)
		}
		baseDir = wd
	}

	return DataConfig{FilePath: DataFilePath(), BaseDir: baseDir}, nil
}

// DataFilePath re-reads the configured data file path so changes to
// the environment between requests are observed by the store.
func DataFilePath() string {
	return getEnvOrDefault("DATA_FILE_PATH", "data.json")
}

// LogConfig describes logger output.
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
