package submissions

import (
	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/domain"
)

// GradeSubmissionRequest represents a request to grade a submission.
type GradeSubmissionRequest struct {
	UserID             string   `json:"userId"`
	SourceCode         string   `json:"sourceCode"`
	LanguageID         int      `json:"languageId"`
	StdinList          []string `json:"stdin"`
	ExpectedOutputList []string `json:"expectedOutputs"`
	Persist            bool     `json:"persist"`
}

// GradeSubmissionResponse represents the grading outcome. Error carries
// the persistence failure when the verdict was computed but not saved.
type GradeSubmissionResponse struct {
	SubmissionID uuid.UUID               `json:"submissionId"`
	Verdict      domain.Verdict          `json:"verdict"`
	Reports      []domain.TestCaseReport `json:"testCaseReports"`
	Saved        bool                    `json:"saved"`
	Error        string                  `json:"error,omitempty"`
}
