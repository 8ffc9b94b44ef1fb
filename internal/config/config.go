package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds runtime settings for the server.
type Config struct {
	ServerAddr         string
	UploadsDir         string
	OutputsDir         string
	ConverterScript    string
	ActivityLogFile    string
	HistoryLimit       int
	ReaperIntervalMins int
	JobRetentionMins   int
}

// Load reads environment variables and returns normalized runtime config.
func Load() Config {
	return Config{
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		UploadsDir:         getEnv("UPLOADS_DIR", "./uploads"),
		OutputsDir:         getEnv("OUTPUTS_DIR", "./outputs"),
		ConverterScript:    getEnv("CONVERTER_SCRIPT", "./scripts/osm_to_dxf.py"),
		ActivityLogFile:    getEnv("ACTIVITY_LOG_FILE", "./data/activity.log"),
		HistoryLimit:       getEnvInt("HISTORY_LIMIT", 50),
		ReaperIntervalMins: getEnvInt("REAPER_INTERVAL_MINUTES", 10),
		JobRetentionMins:   getEnvInt("JOB_RETENTION_MINUTES", 60),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	var out int
	_, err := fmt.Sscanf(value, "%d", &out)
	if err != nil || out <= 0 {
		return fallback
	}
	return out
}
