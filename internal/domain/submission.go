package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the single pass/fail classification for an entire submission.
type Verdict string

const (
	VerdictAccepted    Verdict = "ACCEPTED"
	VerdictWrongAnswer Verdict = "WRONG_ANSWER"
)

// GradeRequest is the transient input to one grading run.
type GradeRequest struct {
	UserID             string
	ProblemID          string
	SourceCode         string
	LanguageID         int
	StdinList          []string
	ExpectedOutputList []string
	Persist            bool
}

// TestCaseReport is the per-input comparison outcome plus judge diagnostics.
type TestCaseReport struct {
	Index          int         `json:"index"`
	Passed         bool        `json:"passed"`
	ActualOutput   string      `json:"actualOutput"`
	ExpectedOutput string      `json:"expectedOutput"`
	Stderr         string      `json:"stderr,omitempty"`
	CompileOutput  string      `json:"compileOutput,omitempty"`
	Status         JudgeStatus `json:"status"`
	StatusText     string      `json:"statusText"`
	Time           string      `json:"time,omitempty"`
	Memory         float64     `json:"memory,omitempty"`
}

// GradingResult is what one grading run returns to the caller. Saved is
// false when persistence was not requested or failed; a persistence
// failure never discards the verdict.
type GradingResult struct {
	SubmissionID uuid.UUID        `json:"submissionId"`
	Verdict      Verdict          `json:"verdict"`
	Reports      []TestCaseReport `json:"testCaseReports"`
	Saved        bool             `json:"saved"`
}

// Submission is the persisted record of a graded submission. The parallel
// per-test-case sequences are index-aligned with the reports.
type Submission struct {
	ID             uuid.UUID `db:"id"`
	UserID         string    `db:"user_id"`
	ProblemID      string    `db:"problem_id"`
	SourceCode     string    `db:"source_code"`
	Language       string    `db:"language"`
	Verdict        Verdict   `db:"verdict"`
	StdinList      []string  `db:"-"`
	StdoutList     []string  `db:"-"`
	StderrList     []string  `db:"-"`
	CompileOutputs []string  `db:"-"`
	TimeList       []string  `db:"-"`
	MemoryList     []float64 `db:"-"`
	CreatedAt      time.Time `db:"created_at"`
	Reports        []TestCaseReport
}

// SolvedProblem marks a problem as solved by a user, keyed by
// (user_id, problem_id).
type SolvedProblem struct {
	UserID    string    `db:"user_id"`
	ProblemID string    `db:"problem_id"`
	SolvedAt  time.Time `db:"solved_at"`
}
