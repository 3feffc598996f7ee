// package problemrepository contains the PostgreSQL implementation of the
// problem store.
package problemrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/ports/secondary"
	"gitlab.com/codefusion.net/internal/domain"
)

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

// ProblemRepository implements the ProblemRepository interface with
// PostgreSQL. Test cases and reference solutions are stored as JSON
// columns on the problem row.
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewProblemRepository creates a new PostgreSQL problem repository.
func NewProblemRepository(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

// SaveProblem inserts or updates a problem.
func (r *ProblemRepository) SaveProblem(ctx context.Context, problem *domain.Problem) error {
	testCases, err := json.Marshal(problem.TestCases)
	if err != nil {
		return fmt.Errorf("failed to marshal test cases: %w", err)
	}
	refSolutions, err := json.Marshal(problem.ReferenceSolutions)
	if err != nil {
		return fmt.Errorf("failed to marshal reference solutions: %w", err)
	}

	query := `
		INSERT INTO problems (
			id, title, description, difficulty, test_cases,
			reference_solutions, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			difficulty = EXCLUDED.difficulty,
			test_cases = EXCLUDED.test_cases,
			reference_solutions = EXCLUDED.reference_solutions,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		problem.ID,
		problem.Title,
		problem.Description,
		problem.Difficulty,
		testCases,
		refSolutions,
		time.Now(),
	)
	if err != nil {
		r.logger.Error("Failed to save problem", "problemId", problem.ID, "error", err)
		return fmt.Errorf("failed to save problem: %w", err)
	}
	return nil
}

// GetProblem retrieves a problem by id, or nil when it does not exist.
func (r *ProblemRepository) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	query := `
		SELECT id, title, description, difficulty, test_cases,
			   reference_solutions, created_at, updated_at
		FROM problems
		WHERE id = $1
	`

	var problem domain.Problem
	var testCases, refSolutions []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&problem.ID,
		&problem.Title,
		&problem.Description,
		&problem.Difficulty,
		&testCases,
		&refSolutions,
		&problem.CreatedAt,
		&problem.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "problemId", id, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	if len(testCases) > 0 {
		if err := json.Unmarshal(testCases, &problem.TestCases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test cases: %w", err)
		}
	}
	if len(refSolutions) > 0 {
		if err := json.Unmarshal(refSolutions, &problem.ReferenceSolutions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reference solutions: %w", err)
		}
	}

	return &problem, nil
}
