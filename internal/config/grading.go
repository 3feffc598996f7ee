package config

import (
	"os"
	"strconv"
	"time"
)

// GradingConfig bounds the result poll loop. The interval grows by
// BackoffFactor after each empty poll up to MaxInterval.
type GradingConfig struct {
	PollMaxAttempts int
	PollInterval    time.Duration
	BackoffFactor   float64
	MaxInterval     time.Duration
}

func NewGradingConfig() *GradingConfig {
	maxAttempts, err := strconv.Atoi(os.Getenv("GRADING_POLL_MAX_ATTEMPTS"))
	if err != nil || maxAttempts <= 0 {
		maxAttempts = 50
	}
	intervalMs, err := strconv.Atoi(os.Getenv("GRADING_POLL_INTERVAL_MS"))
	if err != nil || intervalMs <= 0 {
		intervalMs = 1000
	}
	return &GradingConfig{
		PollMaxAttempts: maxAttempts,
		PollInterval:    time.Duration(intervalMs) * time.Millisecond,
		BackoffFactor:   1.5,
		MaxInterval:     8 * time.Second,
	}
}
