package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/domain"
)

// SubmissionRepository persists graded submissions.
type SubmissionRepository interface {
	// RecordSubmission writes the submission row, its per-test-case rows
	// and, when the verdict is ACCEPTED, the (user, problem) solved
	// marker, all in one transaction.
	RecordSubmission(ctx context.Context, sub *domain.Submission) error

	// GetSubmission loads a submission with its test-case rows.
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// GetSolvedProblems returns the problem ids a user has solved.
	GetSolvedProblems(ctx context.Context, userID string) ([]string, error)
}
