package problem

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/codefusion.net/internal/domain"
	"gitlab.com/codefusion.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

type fakeRepo struct {
	problems map[string]*domain.Problem
	saves    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{problems: make(map[string]*domain.Problem)}
}

func (f *fakeRepo) SaveProblem(ctx context.Context, p *domain.Problem) error {
	f.saves++
	f.problems[p.ID] = p
	return nil
}

func (f *fakeRepo) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	return f.problems[id], nil
}

// fakeGrading scripts the verdict per source code string.
type fakeGrading struct {
	verdicts map[string]domain.Verdict
	runs     int
}

func (f *fakeGrading) GradeSubmission(ctx context.Context, req *domain.GradeRequest) (*domain.GradingResult, error) {
	panic("not used")
}

func (f *fakeGrading) RunTestCases(ctx context.Context, sourceCode string, languageID int, stdinList, expectedOutputList []string) (domain.Verdict, []domain.TestCaseReport, error) {
	f.runs++
	verdict, ok := f.verdicts[sourceCode]
	if !ok {
		verdict = domain.VerdictAccepted
	}
	reports := make([]domain.TestCaseReport, len(stdinList))
	for i := range reports {
		reports[i] = domain.TestCaseReport{Index: i, Passed: verdict == domain.VerdictAccepted}
	}
	return verdict, reports, nil
}

func (f *fakeGrading) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return nil, errs.SubmissionNotFound
}

func (f *fakeGrading) GetGradingResult(ctx context.Context, id uuid.UUID) (*domain.GradingResult, error) {
	return nil, errs.SubmissionNotFound
}

func (f *fakeGrading) GetSolvedProblems(ctx context.Context, userID string) ([]string, error) {
	return nil, nil
}

func sampleProblem() *domain.Problem {
	return &domain.Problem{
		ID:         "two-sum",
		Title:      "Two Sum",
		Difficulty: "EASY",
		TestCases: []domain.ProblemTestCase{
			{Input: "2 3", ExpectedOutput: "5"},
			{Input: "4 4", ExpectedOutput: "8"},
		},
		ReferenceSolutions: map[string]string{
			"PYTHON": "print(sum(map(int, input().split())))",
		},
	}
}

func TestCreateProblemValidatesAndSaves(t *testing.T) {
	repo := newFakeRepo()
	grading := &fakeGrading{}
	svc := NewProblemService(repo, grading, nopLogger{})

	if err := svc.CreateProblem(context.Background(), sampleProblem()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grading.runs != 1 {
		t.Fatalf("expected one validation run per reference solution, got %d", grading.runs)
	}
	if repo.saves != 1 {
		t.Fatalf("expected problem to be saved once, got %d", repo.saves)
	}
}

func TestCreateProblemRejectsFailingReferenceSolution(t *testing.T) {
	repo := newFakeRepo()
	p := sampleProblem()
	grading := &fakeGrading{verdicts: map[string]domain.Verdict{
		p.ReferenceSolutions["PYTHON"]: domain.VerdictWrongAnswer,
	}}
	svc := NewProblemService(repo, grading, nopLogger{})

	err := svc.CreateProblem(context.Background(), p)
	if !errors.Is(err, errs.ReferenceSolutionRejected) {
		t.Fatalf("expected ReferenceSolutionRejected, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("a rejected problem must not be saved")
	}
}

func TestCreateProblemRejectsUnknownLanguage(t *testing.T) {
	repo := newFakeRepo()
	p := sampleProblem()
	p.ReferenceSolutions = map[string]string{"COBOL": "..."}
	svc := NewProblemService(repo, &fakeGrading{}, nopLogger{})

	err := svc.CreateProblem(context.Background(), p)
	if !errors.Is(err, errs.UnsupportedLanguage) {
		t.Fatalf("expected UnsupportedLanguage, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("problem must not be saved")
	}
}

func TestCreateProblemRequiresTestCasesAndSolutions(t *testing.T) {
	svc := NewProblemService(newFakeRepo(), &fakeGrading{}, nopLogger{})

	p := sampleProblem()
	p.TestCases = nil
	if err := svc.CreateProblem(context.Background(), p); !errors.Is(err, errs.InvalidRequest) {
		t.Fatalf("expected InvalidRequest for missing test cases, got %v", err)
	}

	p = sampleProblem()
	p.ReferenceSolutions = nil
	if err := svc.CreateProblem(context.Background(), p); !errors.Is(err, errs.InvalidRequest) {
		t.Fatalf("expected InvalidRequest for missing solutions, got %v", err)
	}
}

func TestUpdateProblemRevalidates(t *testing.T) {
	repo := newFakeRepo()
	grading := &fakeGrading{}
	svc := NewProblemService(repo, grading, nopLogger{})

	p := sampleProblem()
	if err := svc.CreateProblem(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Break the reference solution on update.
	grading.verdicts = map[string]domain.Verdict{
		p.ReferenceSolutions["PYTHON"]: domain.VerdictWrongAnswer,
	}
	err := svc.UpdateProblem(context.Background(), p)
	if !errors.Is(err, errs.ReferenceSolutionRejected) {
		t.Fatalf("expected ReferenceSolutionRejected on update, got %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("rejected update must not write, saves=%d", repo.saves)
	}
}

func TestUpdateProblemNotFound(t *testing.T) {
	svc := NewProblemService(newFakeRepo(), &fakeGrading{}, nopLogger{})

	err := svc.UpdateProblem(context.Background(), sampleProblem())
	if !errors.Is(err, errs.ProblemNotFound) {
		t.Fatalf("expected ProblemNotFound, got %v", err)
	}
}

func TestGetProblemNotFound(t *testing.T) {
	svc := NewProblemService(newFakeRepo(), &fakeGrading{}, nopLogger{})

	_, err := svc.GetProblem(context.Background(), "missing")
	if !errors.Is(err, errs.ProblemNotFound) {
		t.Fatalf("expected ProblemNotFound, got %v", err)
	}
}
