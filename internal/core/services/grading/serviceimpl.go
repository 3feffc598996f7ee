package grading

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/ports/secondary"
	"gitlab.com/codefusion.net/internal/domain"
	"gitlab.com/codefusion.net/internal/static/errs"
)

var _ IGradingService = (*GradingService)(nil)

// GradingService implements the grading workflow against an injected
// judge client, submission store and verdict cache.
type GradingService struct {
	judge      secondary.JudgeClient
	store      secondary.SubmissionRepository
	cache      secondary.VerdictCache
	pollPolicy PollPolicy
	logger     primary.Logger
}

// NewGradingService creates a new grading service. The cache may be nil,
// in which case read paths go straight to storage.
func NewGradingService(
	judge secondary.JudgeClient,
	store secondary.SubmissionRepository,
	cache secondary.VerdictCache,
	pollPolicy PollPolicy,
	logger primary.Logger,
) *GradingService {
	return &GradingService{
		judge:      judge,
		store:      store,
		cache:      cache,
		pollPolicy: pollPolicy,
		logger:     logger,
	}
}

// GradeSubmission validates the request, runs the submit-poll-aggregate
// pipeline and optionally records the outcome. A persistence failure is
// surfaced as errs.PersistenceFailure alongside the grading result so
// callers never lose a computed verdict to a storage problem.
func (s *GradingService) GradeSubmission(ctx context.Context, req *domain.GradeRequest) (*domain.GradingResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	language, err := domain.ResolveLanguageName(req.LanguageID)
	if err != nil {
		return nil, fmt.Errorf("%w: language id %d", errs.UnsupportedLanguage, req.LanguageID)
	}

	s.logger.Info("Grading submission",
		"userId", req.UserID,
		"problemId", req.ProblemID,
		"language", language,
		"testCases", len(req.StdinList))

	verdict, reports, err := s.RunTestCases(ctx, req.SourceCode, req.LanguageID, req.StdinList, req.ExpectedOutputList)
	if err != nil {
		return nil, err
	}

	result := &domain.GradingResult{
		SubmissionID: uuid.New(),
		Verdict:      verdict,
		Reports:      reports,
	}

	if !req.Persist {
		return result, nil
	}

	sub := buildSubmission(result.SubmissionID, req, language, verdict, reports)
	if err := s.store.RecordSubmission(ctx, sub); err != nil {
		s.logger.Error("Failed to record submission",
			"submissionId", result.SubmissionID, "error", err)
		return result, fmt.Errorf("%w: %v", errs.PersistenceFailure, err)
	}
	result.Saved = true

	s.cacheOutcome(ctx, req, result)

	return result, nil
}

// RunTestCases runs the core pipeline with no storage side effects.
func (s *GradingService) RunTestCases(ctx context.Context, sourceCode string, languageID int, stdinList, expectedOutputList []string) (domain.Verdict, []domain.TestCaseReport, error) {
	units := make([]domain.SubmissionUnit, 0, len(stdinList))
	for i, stdin := range stdinList {
		units = append(units, domain.SubmissionUnit{
			SourceCode:     sourceCode,
			LanguageID:     languageID,
			Stdin:          stdin,
			ExpectedOutput: expectedOutputList[i],
		})
	}

	tokens, err := s.judge.SubmitBatch(ctx, units)
	if err != nil {
		return "", nil, err
	}

	results, err := pollBatch(ctx, s.judge, tokens, s.pollPolicy)
	if err != nil {
		return "", nil, err
	}

	reports := BuildReports(results, expectedOutputList)
	return AggregateVerdict(reports), reports, nil
}

// GetSubmission loads a persisted submission, trying the verdict cache
// before storage.
func (s *GradingService) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	sub, err := s.store.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, errs.SubmissionNotFound
	}
	return sub, nil
}

// GetGradingResult returns the compact result view of a submission. The
// verdict cache is consulted first; on a miss the submission is loaded
// from storage and reshaped.
func (s *GradingService) GetGradingResult(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error) {
	if s.cache != nil {
		cached, err := s.cache.GetResult(ctx, id)
		if err != nil {
			s.logger.Warn("Verdict cache read failed", "submissionId", id, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	sub, err := s.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.GradingResult{
		SubmissionID: sub.ID,
		Verdict:      sub.Verdict,
		Reports:      sub.Reports,
		Saved:        true,
	}, nil
}

// GetSolvedProblems returns the solved problem ids for a user from the
// cache, falling back to storage on a miss.
func (s *GradingService) GetSolvedProblems(ctx context.Context, userID string) ([]string, error) {
	if s.cache != nil {
		solved, err := s.cache.GetSolved(ctx, userID)
		if err != nil {
			s.logger.Warn("Solved-set cache read failed", "userId", userID, "error", err)
		} else if solved != nil {
			return solved, nil
		}
	}
	return s.store.GetSolvedProblems(ctx, userID)
}

func (s *GradingService) cacheOutcome(ctx context.Context, req *domain.GradeRequest, result *domain.GradingResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.PutResult(ctx, req.UserID, result); err != nil {
		s.logger.Warn("Failed to cache grading result",
			"submissionId", result.SubmissionID, "error", err)
	}
	if result.Verdict == domain.VerdictAccepted {
		if err := s.cache.AddSolved(ctx, req.UserID, req.ProblemID); err != nil {
			s.logger.Warn("Failed to update solved set",
				"userId", req.UserID, "problemId", req.ProblemID, "error", err)
		}
	}
}

func validateRequest(req *domain.GradeRequest) error {
	if req == nil || req.SourceCode == "" {
		return fmt.Errorf("%w: source code is required", errs.InvalidRequest)
	}
	if len(req.StdinList) == 0 {
		return fmt.Errorf("%w: at least one test case is required", errs.InvalidRequest)
	}
	if len(req.StdinList) != len(req.ExpectedOutputList) {
		return fmt.Errorf("%w: %d inputs but %d expected outputs",
			errs.InvalidRequest, len(req.StdinList), len(req.ExpectedOutputList))
	}
	return nil
}

func buildSubmission(id uuid.UUID, req *domain.GradeRequest, language string, verdict domain.Verdict, reports []domain.TestCaseReport) *domain.Submission {
	sub := &domain.Submission{
		ID:         id,
		UserID:     req.UserID,
		ProblemID:  req.ProblemID,
		SourceCode: req.SourceCode,
		Language:   language,
		Verdict:    verdict,
		StdinList:  req.StdinList,
		Reports:    reports,
	}
	for _, r := range reports {
		sub.StdoutList = append(sub.StdoutList, r.ActualOutput)
		sub.StderrList = append(sub.StderrList, r.Stderr)
		sub.CompileOutputs = append(sub.CompileOutputs, r.CompileOutput)
		sub.TimeList = append(sub.TimeList, r.Time)
		sub.MemoryList = append(sub.MemoryList, r.Memory)
	}
	return sub
}
