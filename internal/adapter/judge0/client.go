package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gitlab.com/codefusion.net/internal/config"
	"gitlab.com/codefusion.net/internal/core/ports/primary"
	"gitlab.com/codefusion.net/internal/core/ports/secondary"
	"gitlab.com/codefusion.net/internal/domain"
	"gitlab.com/codefusion.net/internal/static/errs"
)

var _ secondary.JudgeClient = (*Client)(nil)

// Client implements the JudgeClient interface against a Judge0-compatible
// HTTP API. The http.Client is injected so tests can point it at a stub
// server.
type Client struct {
	httpClient *http.Client
	cfg        *config.Judge0Config
	logger     primary.Logger
}

// NewClient creates a new Judge0 client. A nil httpClient falls back to a
// client with a sane request timeout.
func NewClient(cfg *config.Judge0Config, httpClient *http.Client, logger primary.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

// SubmitBatch submits all units as one batch call and returns the ordered
// token list. Any transport failure or non-2xx response aborts the whole
// grading request.
func (c *Client) SubmitBatch(ctx context.Context, units []domain.SubmissionUnit) ([]string, error) {
	payload := batchSubmitRequest{
		Submissions: make([]submissionUnit, 0, len(units)),
	}
	for _, u := range units {
		payload.Submissions = append(payload.Submissions, submissionUnit{
			SourceCode:     u.SourceCode,
			LanguageID:     u.LanguageID,
			Stdin:          u.Stdin,
			ExpectedOutput: u.ExpectedOutput,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch payload: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/submissions/batch?base64_encoded=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build batch submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	var tokens []tokenResponse
	if err := c.do(req, &tokens); err != nil {
		return nil, err
	}

	if len(tokens) != len(units) {
		return nil, fmt.Errorf("%w: judge returned %d tokens for %d units",
			errs.JudgeUnavailable, len(tokens), len(units))
	}

	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Token)
	}
	return out, nil
}

// FetchBatchResults fetches the current result for every token. The judge
// returns results in the order the tokens are listed in the query string,
// which preserves the original submission order.
func (c *Client) FetchBatchResults(ctx context.Context, tokens []string) ([]domain.JudgeResult, error) {
	query := url.Values{}
	query.Set("tokens", strings.Join(tokens, ","))
	query.Set("base64_encoded", "false")
	query.Set("fields", "token,status,stdout,stderr,compile_output,time,memory")

	endpoint := c.cfg.BaseURL + "/submissions/batch?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build batch fetch request: %w", err)
	}
	c.setAuthHeaders(req)

	var resp batchResultResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Submissions) != len(tokens) {
		return nil, fmt.Errorf("%w: judge returned %d results for %d tokens",
			errs.JudgeUnavailable, len(resp.Submissions), len(tokens))
	}

	results := make([]domain.JudgeResult, 0, len(resp.Submissions))
	for _, sub := range resp.Submissions {
		results = append(results, toDomainResult(sub))
	}
	return results, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return fmt.Errorf("%w: %v", errs.Cancelled, req.Context().Err())
		}
		c.logger.Error("Judge request failed", "url", req.URL.Path, "error", err)
		return fmt.Errorf("%w: %v", errs.JudgeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Judge returned error status",
			"url", req.URL.Path, "status", resp.StatusCode, "body", string(snippet))
		return fmt.Errorf("%w: judge responded with status %d", errs.JudgeUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode judge response: %v", errs.JudgeUnavailable, err)
	}
	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	if c.cfg.APIKey != "" {
		req.Header.Set(c.cfg.APIKeyHdr, c.cfg.APIKey)
	}
	if c.cfg.Host != "" {
		req.Header.Set(c.cfg.HostHdr, c.cfg.Host)
	}
}

// toDomainResult maps a raw Judge0 result to the domain type. Numeric
// status ids are translated here and nowhere else.
func toDomainResult(sub submissionResult) domain.JudgeResult {
	r := domain.JudgeResult{
		Token:      sub.Token,
		Status:     mapStatus(sub.Status.ID),
		StatusText: sub.Status.Description,
	}
	if sub.Stdout != nil {
		r.Stdout = *sub.Stdout
	}
	if sub.Stderr != nil {
		r.Stderr = *sub.Stderr
	}
	if sub.CompileOutput != nil {
		r.CompileOutput = *sub.CompileOutput
	}
	if sub.Time != nil {
		r.Time = *sub.Time
	}
	if sub.Memory != nil {
		r.Memory = *sub.Memory
	}
	return r
}

func mapStatus(id int) domain.JudgeStatus {
	switch {
	case id == statusInQueue:
		return domain.JudgeStatusInQueue
	case id == statusProcessing:
		return domain.JudgeStatusProcessing
	case id == statusAccepted:
		return domain.JudgeStatusAccepted
	case id == statusWrongAnswer:
		return domain.JudgeStatusWrongAnswer
	case id == statusTimeLimitExceeded:
		return domain.JudgeStatusTimeLimitExceeded
	case id == statusCompilationError:
		return domain.JudgeStatusCompilationError
	case id >= statusRuntimeErrorLow && id < statusInternalError:
		return domain.JudgeStatusRuntimeError
	default:
		return domain.JudgeStatusInternalError
	}
}
