package verdictcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/ports/secondary"
	"gitlab.com/codefusion.net/internal/domain"
)

const (
	resultKeyPrefix  = "verdict:"
	solvedKeyPrefix  = "solved:"
	resultExpiration = 30 * time.Minute
)

var _ secondary.VerdictCache = (*VerdictCache)(nil)

// VerdictCache implements the VerdictCache interface with Redis. Grading
// results live under a TTL; solved sets are unbounded and kept in sync
// with the storage markers.
type VerdictCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewVerdictCache creates a new Redis verdict cache.
func NewVerdictCache(redisClient *redis.Client, logger primary.Logger) *VerdictCache {
	return &VerdictCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// PutResult caches a grading result by submission id.
func (c *VerdictCache) PutResult(ctx context.Context, userID string, result *domain.GradingResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Error("Failed to marshal grading result", "error", err)
		return fmt.Errorf("failed to marshal grading result: %w", err)
	}

	key := resultKeyPrefix + result.SubmissionID.String()
	if err := c.redisClient.Set(ctx, key, data, resultExpiration).Err(); err != nil {
		return fmt.Errorf("failed to cache grading result: %w", err)
	}
	return nil
}

// GetResult returns a cached grading result, or nil on a miss.
func (c *VerdictCache) GetResult(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error) {
	data, err := c.redisClient.Get(ctx, resultKeyPrefix+id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached result: %w", err)
	}

	var result domain.GradingResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}
	return &result, nil
}

// AddSolved adds a problem to the user's solved set. Adding the same
// problem twice is a no-op at the set level.
func (c *VerdictCache) AddSolved(ctx context.Context, userID, problemID string) error {
	if err := c.redisClient.SAdd(ctx, solvedKeyPrefix+userID, problemID).Err(); err != nil {
		return fmt.Errorf("failed to update solved set: %w", err)
	}
	return nil
}

// GetSolved returns the user's solved problem ids, or nil when the set
// has never been populated so callers fall back to storage.
func (c *VerdictCache) GetSolved(ctx context.Context, userID string) ([]string, error) {
	members, err := c.redisClient.SMembers(ctx, solvedKeyPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read solved set: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}
	return members, nil
}
