// package submissionrepository contains the PostgreSQL implementation of
// the submission store.
package submissionrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/ports/secondary"
	"gitlab.com/codefusion.net/internal/domain"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with
// PostgreSQL.
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository.
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// RecordSubmission writes the submission row, its test-case rows and the
// solved marker in one transaction so a failure leaves no partial record.
func (r *SubmissionRepository) RecordSubmission(ctx context.Context, sub *domain.Submission) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := r.insertSubmission(ctx, tx, sub); err != nil {
		return err
	}
	if err := r.insertTestCaseRows(ctx, tx, sub); err != nil {
		return err
	}
	if sub.Verdict == domain.VerdictAccepted {
		if err := r.markSolved(ctx, tx, sub.UserID, sub.ProblemID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit submission", "submissionId", sub.ID, "error", err)
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) insertSubmission(ctx context.Context, tx *sqlx.Tx, sub *domain.Submission) error {
	stdin, err := marshalSeq(sub.StdinList)
	if err != nil {
		return err
	}
	stdout, err := marshalSeq(sub.StdoutList)
	if err != nil {
		return err
	}
	stderr, err := marshalSeq(sub.StderrList)
	if err != nil {
		return err
	}
	compileOut, err := marshalSeq(sub.CompileOutputs)
	if err != nil {
		return err
	}
	times, err := marshalSeq(sub.TimeList)
	if err != nil {
		return err
	}
	memory, err := marshalSeq(sub.MemoryList)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO submissions (
			id, user_id, problem_id, source_code, language, verdict,
			stdin, stdout, stderr, compile_output, time, memory, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = tx.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.UserID,
		sub.ProblemID,
		sub.SourceCode,
		sub.Language,
		sub.Verdict,
		stdin,
		stdout,
		stderr,
		compileOut,
		times,
		memory,
		time.Now(),
	)
	if err != nil {
		r.logger.Error("Failed to insert submission", "submissionId", sub.ID, "error", err)
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) insertTestCaseRows(ctx context.Context, tx *sqlx.Tx, sub *domain.Submission) error {
	query := `
		INSERT INTO test_case_results (
			submission_id, case_index, passed, actual_output, expected_output,
			stderr, compile_output, status, status_text, time, memory
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, report := range sub.Reports {
		_, err := tx.ExecContext(
			ctx,
			query,
			sub.ID,
			report.Index,
			report.Passed,
			report.ActualOutput,
			report.ExpectedOutput,
			report.Stderr,
			report.CompileOutput,
			report.Status,
			report.StatusText,
			report.Time,
			report.Memory,
		)
		if err != nil {
			r.logger.Error("Failed to insert test case row",
				"submissionId", sub.ID, "index", report.Index, "error", err)
			return fmt.Errorf("failed to insert test case row %d: %w", report.Index, err)
		}
	}
	return nil
}

// markSolved upserts the (user, problem) solved marker. Solving the same
// problem twice must not create a second row.
func (r *SubmissionRepository) markSolved(ctx context.Context, tx *sqlx.Tx, userID, problemID string) error {
	query := `
		INSERT INTO solved_problems (user_id, problem_id, solved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, problem_id) DO NOTHING
	`

	_, err := tx.ExecContext(ctx, query, userID, problemID, time.Now())
	if err != nil {
		r.logger.Error("Failed to mark problem solved",
			"userId", userID, "problemId", problemID, "error", err)
		return fmt.Errorf("failed to mark problem solved: %w", err)
	}
	return nil
}

// GetSubmission retrieves a submission with its test-case rows.
func (r *SubmissionRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := `
		SELECT id, user_id, problem_id, source_code, language, verdict,
			   stdin, stdout, stderr, compile_output, time, memory, created_at
		FROM submissions
		WHERE id = $1
	`

	var sub domain.Submission
	var stdin, stdout, stderr, compileOut, times, memory []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.ProblemID,
		&sub.SourceCode,
		&sub.Language,
		&sub.Verdict,
		&stdin,
		&stdout,
		&stderr,
		&compileOut,
		&times,
		&memory,
		&sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if err := unmarshalSeqs(map[*[]string][]byte{
		&sub.StdinList:      stdin,
		&sub.StdoutList:     stdout,
		&sub.StderrList:     stderr,
		&sub.CompileOutputs: compileOut,
		&sub.TimeList:       times,
	}); err != nil {
		return nil, err
	}
	if len(memory) > 0 {
		if err := json.Unmarshal(memory, &sub.MemoryList); err != nil {
			return nil, fmt.Errorf("failed to unmarshal memory list: %w", err)
		}
	}

	reports, err := r.getTestCaseRows(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.Reports = reports

	return &sub, nil
}

func (r *SubmissionRepository) getTestCaseRows(ctx context.Context, submissionID uuid.UUID) ([]domain.TestCaseReport, error) {
	query := `
		SELECT case_index, passed, actual_output, expected_output,
			   stderr, compile_output, status, status_text, time, memory
		FROM test_case_results
		WHERE submission_id = $1
		ORDER BY case_index
	`

	rows, err := r.db.QueryContext(ctx, query, submissionID)
	if err != nil {
		r.logger.Error("Failed to get test case rows", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get test case rows: %w", err)
	}
	defer rows.Close()

	var reports []domain.TestCaseReport
	for rows.Next() {
		var report domain.TestCaseReport
		if err := rows.Scan(
			&report.Index,
			&report.Passed,
			&report.ActualOutput,
			&report.ExpectedOutput,
			&report.Stderr,
			&report.CompileOutput,
			&report.Status,
			&report.StatusText,
			&report.Time,
			&report.Memory,
		); err != nil {
			return nil, fmt.Errorf("failed to scan test case row: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// GetSolvedProblems returns the problem ids a user has solved, most
// recent first.
func (r *SubmissionRepository) GetSolvedProblems(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT problem_id
		FROM solved_problems
		WHERE user_id = $1
		ORDER BY solved_at DESC
	`

	var problemIDs []string
	if err := r.db.SelectContext(ctx, &problemIDs, query, userID); err != nil {
		r.logger.Error("Failed to get solved problems", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get solved problems: %w", err)
	}
	return problemIDs, nil
}

func marshalSeq(seq interface{}) ([]byte, error) {
	data, err := json.Marshal(seq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sequence: %w", err)
	}
	return data, nil
}

func unmarshalSeqs(fields map[*[]string][]byte) error {
	for dst, raw := range fields {
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("failed to unmarshal sequence: %w", err)
		}
	}
	return nil
}
