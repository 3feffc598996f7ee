package domain

// JudgeStatus is the named execution status reported by the judge for a
// single test case. Raw numeric status ids are mapped to these values at
// the judge client boundary and never compared anywhere else.
type JudgeStatus string

const (
	JudgeStatusInQueue             JudgeStatus = "IN_QUEUE"
	JudgeStatusProcessing          JudgeStatus = "PROCESSING"
	JudgeStatusAccepted            JudgeStatus = "ACCEPTED"
	JudgeStatusWrongAnswer         JudgeStatus = "WRONG_ANSWER"
	JudgeStatusTimeLimitExceeded   JudgeStatus = "TIME_LIMIT_EXCEEDED"
	JudgeStatusCompilationError    JudgeStatus = "COMPILATION_ERROR"
	JudgeStatusRuntimeError        JudgeStatus = "RUNTIME_ERROR"
	JudgeStatusMemoryLimitExceeded JudgeStatus = "MEMORY_LIMIT_EXCEEDED"
	JudgeStatusInternalError       JudgeStatus = "INTERNAL_ERROR"
)

// Terminal reports whether the status will not change on further polling.
func (s JudgeStatus) Terminal() bool {
	return s != JudgeStatusInQueue && s != JudgeStatusProcessing
}

// JudgeResult is the judge's report for one queued execution unit.
// Immutable once the status is terminal.
type JudgeResult struct {
	Token         string
	Status        JudgeStatus
	StatusText    string
	Stdout        string
	Stderr        string
	CompileOutput string
	Time          string
	Memory        float64
}

// SubmissionUnit is one (source, stdin) execution unit sent to the judge
// as part of a batch.
type SubmissionUnit struct {
	SourceCode     string
	LanguageID     int
	Stdin          string
	ExpectedOutput string
}
