package config

import "os"

// Judge0Config holds the connection settings for the Judge0-compatible
// judge backend.
type Judge0Config struct {
	BaseURL   string
	APIKey    string
	APIKeyHdr string
	HostHdr   string
	Host      string
}

func NewJudge0Config() *Judge0Config {
	baseURL := os.Getenv("JUDGE0_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:2358"
	}
	return &Judge0Config{
		BaseURL:   baseURL,
		APIKey:    os.Getenv("JUDGE0_API_KEY"),
		APIKeyHdr: "X-RapidAPI-Key",
		HostHdr:   "X-RapidAPI-Host",
		Host:      os.Getenv("JUDGE0_API_HOST"),
	}
}
