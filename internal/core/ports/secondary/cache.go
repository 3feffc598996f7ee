package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/domain"
)

// VerdictCache keeps recently graded results and per-user solved sets
// for fast read paths. A cache miss is reported as (nil, nil) / (nil, nil)
// rather than an error.
type VerdictCache interface {
	PutResult(ctx context.Context, userID string, result *domain.GradingResult) error
	GetResult(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error)

	AddSolved(ctx context.Context, userID, problemID string) error
	GetSolved(ctx context.Context, userID string) ([]string, error)
}
