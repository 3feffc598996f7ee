package problem

import (
	"context"

	"gitlab.com/codefusion.net/internal/domain"
)

// IProblemService manages problems and gates create/update on every
// reference solution passing the problem's own test cases.
type IProblemService interface {
	CreateProblem(ctx context.Context, p *domain.Problem) error
	UpdateProblem(ctx context.Context, p *domain.Problem) error
	GetProblem(ctx context.Context, id string) (*domain.Problem, error)
}
