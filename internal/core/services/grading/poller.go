package grading

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/codefusion.net/internal/config"
	"gitlab.com/codefusion.net/internal/core/ports/secondary"
	"gitlab.com/codefusion.net/internal/domain"
	"gitlab.com/codefusion.net/internal/static/errs"
)

// PollPolicy bounds the result poll loop. Interval grows by BackoffFactor
// after every poll that still has pending tokens, capped at MaxInterval.
type PollPolicy struct {
	MaxAttempts   int
	Interval      time.Duration
	BackoffFactor float64
	MaxInterval   time.Duration
}

// PolicyFromConfig builds a PollPolicy from the grading configuration.
func PolicyFromConfig(cfg *config.GradingConfig) PollPolicy {
	return PollPolicy{
		MaxAttempts:   cfg.PollMaxAttempts,
		Interval:      cfg.PollInterval,
		BackoffFactor: cfg.BackoffFactor,
		MaxInterval:   cfg.MaxInterval,
	}
}

// pollBatch polls the judge until every token reaches a terminal state,
// returning the results in token order. It never returns a partial
// result set: the outcome is all-terminal results, PollTimeout once the
// attempt budget is spent, or Cancelled when the context expires.
func pollBatch(ctx context.Context, judge secondary.JudgeClient, tokens []string, policy PollPolicy) ([]domain.JudgeResult, error) {
	interval := policy.Interval

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		results, err := judge.FetchBatchResults(ctx, tokens)
		if err != nil {
			return nil, err
		}

		if allTerminal(results) {
			return results, nil
		}

		if attempt == policy.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", errs.Cancelled, ctx.Err())
		case <-time.After(interval):
		}

		if policy.BackoffFactor > 1 {
			interval = time.Duration(float64(interval) * policy.BackoffFactor)
			if policy.MaxInterval > 0 && interval > policy.MaxInterval {
				interval = policy.MaxInterval
			}
		}
	}

	return nil, fmt.Errorf("%w: not all of %d tokens terminal after %d attempts",
		errs.PollTimeout, len(tokens), policy.MaxAttempts)
}

func allTerminal(results []domain.JudgeResult) bool {
	for _, r := range results {
		if !r.Status.Terminal() {
			return false
		}
	}
	return true
}
