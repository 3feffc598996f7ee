package errs

import "errors"

var (
	InvalidRequest      = errors.New("invalid grading request")
	UnsupportedLanguage = errors.New("unsupported language")
	JudgeUnavailable    = errors.New("judge unavailable")
	PollTimeout         = errors.New("polling budget exhausted")
	Cancelled           = errors.New("grading cancelled")
	PersistenceFailure  = errors.New("failed to persist submission")
)

var (
	SubmissionNotFound        = errors.New("submission not found")
	ProblemNotFound           = errors.New("problem not found")
	ReferenceSolutionRejected = errors.New("reference solution rejected")
)
