package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/services/grading"
	"gitlab.com/codefusion.net/internal/domain"
	"gitlab.com/codefusion.net/internal/handlers/response"
	"gitlab.com/codefusion.net/internal/static/errs"
)

// SubmissionHandler handles submission grading API requests.
type SubmissionHandler struct {
	gradingService grading.IGradingService
	logger         primary.Logger
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(gradingService grading.IGradingService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		gradingService: gradingService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler.
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems/{problemId}/submissions", h.GradeSubmission).Methods("POST")
	router.HandleFunc("/api/submissions/{submissionId}", h.GetSubmission).Methods("GET")
	router.HandleFunc("/api/submissions/{submissionId}/result", h.GetGradingResult).Methods("GET")
	router.HandleFunc("/api/users/{userId}/solved", h.GetSolvedProblems).Methods("GET")
}

// GradeSubmission handles grading requests. A wrong answer is still a
// successful grading run; only pipeline failures produce error responses.
func (h *SubmissionHandler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	problemID := vars["problemId"]

	var req GradeSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "invalid request body",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	result, err := h.gradingService.GradeSubmission(r.Context(), &domain.GradeRequest{
		UserID:             req.UserID,
		ProblemID:          problemID,
		SourceCode:         req.SourceCode,
		LanguageID:         req.LanguageID,
		StdinList:          req.StdinList,
		ExpectedOutputList: req.ExpectedOutputList,
		Persist:            req.Persist,
	})

	if err != nil && !errors.Is(err, errs.PersistenceFailure) {
		h.logger.Error("Grading failed", "problemId", problemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	resp := GradeSubmissionResponse{
		SubmissionID: result.SubmissionID,
		Verdict:      result.Verdict,
		Reports:      result.Reports,
		Saved:        result.Saved,
	}
	if err != nil {
		// Graded but not saved; report the failure without masking the verdict.
		resp.Error = err.Error()
	}
	response.WriteSuccess(w, resp)
}

// GetSubmission handles submission retrieval requests.
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseSubmissionID(w, r)
	if !ok {
		return
	}

	sub, err := h.gradingService.GetSubmission(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get submission", "submissionId", id, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, sub)
}

// GetGradingResult handles compact result retrieval requests.
func (h *SubmissionHandler) GetGradingResult(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseSubmissionID(w, r)
	if !ok {
		return
	}

	result, err := h.gradingService.GetGradingResult(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get grading result", "submissionId", id, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, result)
}

// GetSolvedProblems handles solved-problem listing requests.
func (h *SubmissionHandler) GetSolvedProblems(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	solved, err := h.gradingService.GetSolvedProblems(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get solved problems", "userId", userID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}
	if solved == nil {
		solved = []string{}
	}
	response.WriteSuccess(w, map[string][]string{"solved": solved})
}

func (h *SubmissionHandler) parseSubmissionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	idStr := vars["submissionId"]

	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Error("Invalid submission ID", "id", idStr)
		response.WriteError(w, response.ErrorMessage{
			Message:    "invalid submission ID",
			StatusCode: http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return id, true
}
