package problem

import (
	"context"
	"fmt"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/ports/secondary"
	"gitlab.com/codefusion.net/internal/core/services/grading"
	"gitlab.com/codefusion.net/internal/domain"
	"gitlab.com/codefusion.net/internal/static/errs"
)

var _ IProblemService = (*ProblemService)(nil)

// ProblemService validates reference solutions through the same grading
// pipeline user submissions go through, then persists the problem.
type ProblemService struct {
	repo    secondary.ProblemRepository
	grading grading.IGradingService
	logger  primary.Logger
}

// NewProblemService creates a new problem service.
func NewProblemService(repo secondary.ProblemRepository, gradingSvc grading.IGradingService, logger primary.Logger) *ProblemService {
	return &ProblemService{
		repo:    repo,
		grading: gradingSvc,
		logger:  logger,
	}
}

// CreateProblem validates every reference solution and saves the problem.
func (s *ProblemService) CreateProblem(ctx context.Context, p *domain.Problem) error {
	if err := s.validateReferenceSolutions(ctx, p); err != nil {
		return err
	}
	if err := s.repo.SaveProblem(ctx, p); err != nil {
		s.logger.Error("Failed to save problem", "problemId", p.ID, "error", err)
		return fmt.Errorf("failed to save problem: %w", err)
	}
	return nil
}

// UpdateProblem re-validates reference solutions against the (possibly
// changed) test cases before writing the update.
func (s *ProblemService) UpdateProblem(ctx context.Context, p *domain.Problem) error {
	existing, err := s.repo.GetProblem(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to load problem: %w", err)
	}
	if existing == nil {
		return errs.ProblemNotFound
	}
	if err := s.validateReferenceSolutions(ctx, p); err != nil {
		return err
	}
	if err := s.repo.SaveProblem(ctx, p); err != nil {
		s.logger.Error("Failed to update problem", "problemId", p.ID, "error", err)
		return fmt.Errorf("failed to update problem: %w", err)
	}
	return nil
}

// GetProblem loads a problem by id.
func (s *ProblemService) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	p, err := s.repo.GetProblem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}
	if p == nil {
		return nil, errs.ProblemNotFound
	}
	return p, nil
}

// validateReferenceSolutions runs each stored reference solution through
// the grading pipeline and rejects the problem when any language does
// not come back ACCEPTED. Nothing is persisted by these runs.
func (s *ProblemService) validateReferenceSolutions(ctx context.Context, p *domain.Problem) error {
	if len(p.TestCases) == 0 {
		return fmt.Errorf("%w: problem has no test cases", errs.InvalidRequest)
	}
	if len(p.ReferenceSolutions) == 0 {
		return fmt.Errorf("%w: problem has no reference solutions", errs.InvalidRequest)
	}

	stdinList := make([]string, 0, len(p.TestCases))
	expectedList := make([]string, 0, len(p.TestCases))
	for _, tc := range p.TestCases {
		stdinList = append(stdinList, tc.Input)
		expectedList = append(expectedList, tc.ExpectedOutput)
	}

	for language, source := range p.ReferenceSolutions {
		languageID, err := domain.ResolveLanguageID(language)
		if err != nil {
			return fmt.Errorf("%w: %s", errs.UnsupportedLanguage, language)
		}

		verdict, reports, err := s.grading.RunTestCases(ctx, source, languageID, stdinList, expectedList)
		if err != nil {
			return err
		}
		if verdict != domain.VerdictAccepted {
			failed := firstFailedIndex(reports)
			s.logger.Warn("Reference solution rejected",
				"problemId", p.ID, "language", language, "failedCase", failed)
			return fmt.Errorf("%w: %s failed on test case %d",
				errs.ReferenceSolutionRejected, language, failed)
		}
	}
	return nil
}

func firstFailedIndex(reports []domain.TestCaseReport) int {
	for _, r := range reports {
		if !r.Passed {
			return r.Index
		}
	}
	return -1
}
