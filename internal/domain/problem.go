package domain

import "time"

// ProblemTestCase is one (input, expected output) pair attached to a problem.
type ProblemTestCase struct {
	Input          string `json:"input" db:"input"`
	ExpectedOutput string `json:"output" db:"expected_output"`
}

// Problem is a coding problem with its test cases and per-language
// reference solutions. Reference solutions must pass every test case
// before the problem is accepted for create or update.
type Problem struct {
	ID                 string            `db:"id"`
	Title              string            `db:"title"`
	Description        string            `db:"description"`
	Difficulty         string            `db:"difficulty"`
	TestCases          []ProblemTestCase `db:"-"`
	ReferenceSolutions map[string]string `db:"-"`
	CreatedAt          time.Time         `db:"created_at"`
	UpdatedAt          time.Time         `db:"updated_at"`
}
