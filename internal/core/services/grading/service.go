package grading

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/domain"
)

// IGradingService runs the batch grading workflow: submit the test cases
// to the judge as one batch, poll until every result is terminal,
// aggregate a verdict and optionally persist the outcome.
type IGradingService interface {
	// GradeSubmission grades one submission. When req.Persist is set the
	// outcome is recorded; a persistence failure is reported through the
	// returned error while the grading result is still returned.
	GradeSubmission(ctx context.Context, req *domain.GradeRequest) (*domain.GradingResult, error)

	// RunTestCases executes the submit-poll-aggregate pipeline without
	// touching storage. Used by callers that only need the verdict, such
	// as reference solution validation.
	RunTestCases(ctx context.Context, sourceCode string, languageID int, stdinList, expectedOutputList []string) (domain.Verdict, []domain.TestCaseReport, error)

	// GetSubmission returns a previously persisted submission with its
	// test-case rows.
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// GetGradingResult returns the compact result view of a persisted
	// submission, served from the verdict cache when possible.
	GetGradingResult(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error)

	// GetSolvedProblems returns the ids of problems the user has solved.
	GetSolvedProblems(ctx context.Context, userID string) ([]string, error)
}
