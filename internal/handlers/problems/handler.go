package problems

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/services/problem"
	"gitlab.com/codefusion.net/internal/domain"
	"gitlab.com/codefusion.net/internal/handlers/response"
)

// ProblemRequest represents a problem create or update payload.
type ProblemRequest struct {
	Title              string                   `json:"title"`
	Description        string                   `json:"description"`
	Difficulty         string                   `json:"difficulty"`
	TestCases          []domain.ProblemTestCase `json:"testCases"`
	ReferenceSolutions map[string]string        `json:"referenceSolutions"`
}

// ProblemHandler handles problem API requests.
type ProblemHandler struct {
	problemService problem.IProblemService
	logger         primary.Logger
}

// NewProblemHandler creates a new problem handler.
func NewProblemHandler(problemService problem.IProblemService, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		problemService: problemService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for ProblemHandler.
func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems/{problemId}", h.CreateProblem).Methods("POST")
	router.HandleFunc("/api/problems/{problemId}", h.UpdateProblem).Methods("PUT")
	router.HandleFunc("/api/problems/{problemId}", h.GetProblem).Methods("GET")
}

// CreateProblem handles problem creation requests. Reference solutions
// are validated against the test cases before anything is written.
func (h *ProblemHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	h.saveProblem(w, r, h.problemService.CreateProblem)
}

// UpdateProblem handles problem update requests with the same
// reference-solution gate as creation.
func (h *ProblemHandler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	h.saveProblem(w, r, h.problemService.UpdateProblem)
}

// GetProblem handles problem retrieval requests.
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	problemID := vars["problemId"]

	p, err := h.problemService.GetProblem(r.Context(), problemID)
	if err != nil {
		h.logger.Error("Failed to get problem", "problemId", problemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, p)
}

func (h *ProblemHandler) saveProblem(w http.ResponseWriter, r *http.Request, save func(ctx context.Context, p *domain.Problem) error) {
	vars := mux.Vars(r)
	problemID := vars["problemId"]

	var req ProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "invalid request body",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	p := &domain.Problem{
		ID:                 problemID,
		Title:              req.Title,
		Description:        req.Description,
		Difficulty:         req.Difficulty,
		TestCases:          req.TestCases,
		ReferenceSolutions: req.ReferenceSolutions,
	}

	if err := save(r.Context(), p); err != nil {
		h.logger.Error("Failed to save problem", "problemId", problemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, map[string]string{"problemId": problemID})
}
