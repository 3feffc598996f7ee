package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/services/grading"
	"gitlab.com/codefusion.net/internal/core/services/problem"
	"gitlab.com/codefusion.net/internal/handlers/problems"
	"gitlab.com/codefusion.net/internal/handlers/response"
	"gitlab.com/codefusion.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	gradingService grading.IGradingService
	problemService problem.IProblemService
}

func NewServiceProvider(
	gradingService grading.IGradingService,
	problemService problem.IProblemService,
) *ServiceProvider {
	return &ServiceProvider{
		gradingService: gradingService,
		problemService: problemService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
	db              *sqlx.DB
	redisClient     *redis.Client
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, db *sqlx.DB, redisClient *redis.Client, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
		db:              db,
		redisClient:     redisClient,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	submissions.
		NewSubmissionHandler(s.ServiceProvider.gradingService, s.logger).
		RegisterRoutes(r)
	problems.
		NewProblemHandler(s.ServiceProvider.problemService, s.logger).
		RegisterRoutes(r)
	r.HandleFunc("/healthz", s.Healthz).Methods("GET")
	s.router = r
	return nil
}

// Healthz reports whether the storage collaborators are reachable.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			response.WriteError(w, response.ErrorMessage{
				Message:    "database unreachable",
				StatusCode: http.StatusServiceUnavailable,
			})
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()).Err(); err != nil {
			response.WriteError(w, response.ErrorMessage{
				Message:    "redis unreachable",
				StatusCode: http.StatusServiceUnavailable,
			})
			return
		}
	}
	response.WriteSuccess(w, map[string]string{"status": "ok"})
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		// Grading holds the connection through the judge poll loop.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
