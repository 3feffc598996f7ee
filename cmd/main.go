package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codefusion.net/internal/adapter/judge0"
	"gitlab.com/codefusion.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/codefusion.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/codefusion.net/internal/adapter/redis/verdictcache"
	"gitlab.com/codefusion.net/internal/config"
	"gitlab.com/codefusion.net/internal/core/services/grading"
	"gitlab.com/codefusion.net/internal/core/services/problem"
	logger2 "gitlab.com/codefusion.net/internal/global/logger"
	http2 "gitlab.com/codefusion.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting grading service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	judgeClient := judge0.NewClient(sysCfg.Judge0Config, nil, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	problemRepo := problemrepository.NewProblemRepository(db, logger)
	cache := verdictcache.NewVerdictCache(redisClient, logger)

	// services
	gradingSvc := grading.NewGradingService(
		judgeClient,
		submissionRepo,
		cache,
		grading.PolicyFromConfig(sysCfg.GradingConfig),
		logger,
	)
	problemSvc := problem.NewProblemService(problemRepo, gradingSvc, logger)
	serviceProvider := http2.NewServiceProvider(gradingSvc, problemSvc)

	// server
	httpServer := http2.NewServer(8082, "codefusionGrader", *serviceProvider, db, redisClient, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
