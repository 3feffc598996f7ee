package secondary

import (
	"context"

	"gitlab.com/codefusion.net/internal/domain"
)

// JudgeClient talks to the remote code-execution judge.
type JudgeClient interface {
	// SubmitBatch submits all units of one grading request as a single
	// batch call and returns one opaque token per unit, index-aligned
	// with the input.
	SubmitBatch(ctx context.Context, units []domain.SubmissionUnit) ([]string, error)

	// FetchBatchResults fetches the current result for every token,
	// index-aligned with the token list. Results may still be in a
	// non-terminal state.
	FetchBatchResults(ctx context.Context, tokens []string) ([]domain.JudgeResult, error)
}
