package config

import "os"

type AppConfig struct {
	DebugMode      bool
	GradingConfig  *GradingConfig
	Judge0Config   *Judge0Config
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		GradingConfig:  NewGradingConfig(),
		Judge0Config:   NewJudge0Config(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
	}
}
