package judge0

// Wire shapes for the Judge0 batch API.

type submissionUnit struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output,omitempty"`
}

type batchSubmitRequest struct {
	Submissions []submissionUnit `json:"submissions"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type statusResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type submissionResult struct {
	Token         string         `json:"token"`
	Status        statusResponse `json:"status"`
	Stdout        *string        `json:"stdout"`
	Stderr        *string        `json:"stderr"`
	CompileOutput *string        `json:"compile_output"`
	Time          *string        `json:"time"`
	Memory        *float64       `json:"memory"`
}

type batchResultResponse struct {
	Submissions []submissionResult `json:"submissions"`
}

// Judge0 status id space. Ids at or above statusRuntimeErrorLow and below
// statusInternalError are runtime error variants (SIGSEGV, SIGFPE, NZEC...).
const (
	statusInQueue           = 1
	statusProcessing        = 2
	statusAccepted          = 3
	statusWrongAnswer       = 4
	statusTimeLimitExceeded = 5
	statusCompilationError  = 6
	statusRuntimeErrorLow   = 7
	statusInternalError     = 13
)
