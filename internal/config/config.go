package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Analysis service connection
	AnalysisURL    string
	AnalysisAPIKey string

	// Auth
	BriefingAPIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Request limits
	MaxBodyBytes int64

	// Cache lifetimes
	JobTTL    time.Duration
	ReportTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		AnalysisURL:    envOr("ANALYSIS_URL", "http://localhost:8085"),
		AnalysisAPIKey: os.Getenv("ANALYSIS_API_KEY"),

		BriefingAPIKey: os.Getenv("BRIEFING_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 1048576), // 1MB

		JobTTL:    envDuration("JOB_TTL", 1*time.Hour),
		ReportTTL: envDuration("REPORT_TTL", 24*time.Hour),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1048576
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.ReportTTL <= 0 {
		cfg.ReportTTL = 24 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.AnalysisAPIKey == "" {
		return fmt.Errorf("ANALYSIS_API_KEY is required")
	}
	if c.BriefingAPIKey == "" {
		return fmt.Errorf("BRIEFING_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
