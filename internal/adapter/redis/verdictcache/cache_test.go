package verdictcache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestCache(t *testing.T) *VerdictCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewVerdictCache(client, nopLogger{})
}

func TestResultRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	result := &domain.GradingResult{
		SubmissionID: uuid.New(),
		Verdict:      domain.VerdictAccepted,
		Reports: []domain.TestCaseReport{
			{Index: 0, Passed: true, ActualOutput: "5\n", ExpectedOutput: "5", Status: domain.JudgeStatusAccepted},
		},
		Saved: true,
	}

	if err := cache.PutResult(ctx, "user-1", result); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := cache.GetResult(ctx, result.SubmissionID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected cache hit")
	}
	if got.Verdict != domain.VerdictAccepted || len(got.Reports) != 1 || !got.Reports[0].Passed {
		t.Fatalf("cached result does not round trip: %+v", got)
	}
}

func TestGetResultMiss(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.GetResult(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("a miss must not be an error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}
}

func TestSolvedSetIdempotent(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.AddSolved(ctx, "user-1", "two-sum"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cache.AddSolved(ctx, "user-1", "two-sum"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	solved, err := cache.GetSolved(ctx, "user-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(solved) != 1 || solved[0] != "two-sum" {
		t.Fatalf("solving twice must keep exactly one record, got %v", solved)
	}
}

func TestGetSolvedEmptySignalsFallback(t *testing.T) {
	cache := newTestCache(t)

	solved, err := cache.GetSolved(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if solved != nil {
		t.Fatalf("an unpopulated set must come back nil, got %v", solved)
	}
}
