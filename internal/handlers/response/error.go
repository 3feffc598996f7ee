package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/codefusion.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// FromError maps the grading error taxonomy to HTTP responses. Client
// mistakes come back 4xx; pipeline failures surface as gateway errors so
// callers can tell "your code is wrong" from "grading is down".
func FromError(err error) ErrorMessage {
	var status int
	switch {
	case errors.Is(err, errs.InvalidRequest), errors.Is(err, errs.UnsupportedLanguage):
		status = http.StatusBadRequest
	case errors.Is(err, errs.SubmissionNotFound), errors.Is(err, errs.ProblemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ReferenceSolutionRejected):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.JudgeUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, errs.PollTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, errs.Cancelled):
		status = 499
	default:
		status = http.StatusInternalServerError
	}
	return ErrorMessage{Message: err.Error(), StatusCode: status}
}
