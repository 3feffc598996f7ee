package secondary

import (
	"context"

	"gitlab.com/codefusion.net/internal/domain"
)

// ProblemRepository stores problems with their test cases and
// reference solutions.
type ProblemRepository interface {
	SaveProblem(ctx context.Context, problem *domain.Problem) error
	GetProblem(ctx context.Context, id string) (*domain.Problem, error)
}
