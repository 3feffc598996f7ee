package grading

import (
	"strings"

	"gitlab.com/codefusion.net/internal/domain"
)

// BuildReports zips terminal judge results against the expected outputs
// into per-test-case reports. A case passes only when the trimmed actual
// output equals the trimmed expected output and the judge accepted the
// run; the judge status is kept on the report either way for diagnostics.
func BuildReports(results []domain.JudgeResult, expectedOutputs []string) []domain.TestCaseReport {
	reports := make([]domain.TestCaseReport, 0, len(results))
	for i, res := range results {
		expected := ""
		if i < len(expectedOutputs) {
			expected = expectedOutputs[i]
		}
		passed := strings.TrimSpace(res.Stdout) == strings.TrimSpace(expected) &&
			res.Status == domain.JudgeStatusAccepted
		reports = append(reports, domain.TestCaseReport{
			Index:          i,
			Passed:         passed,
			ActualOutput:   res.Stdout,
			ExpectedOutput: expected,
			Stderr:         res.Stderr,
			CompileOutput:  res.CompileOutput,
			Status:         res.Status,
			StatusText:     res.StatusText,
			Time:           res.Time,
			Memory:         res.Memory,
		})
	}
	return reports
}

// AggregateVerdict collapses the reports into the submission verdict:
// ACCEPTED iff every case passed, WRONG_ANSWER otherwise. Compile and
// runtime failures deliberately fold into WRONG_ANSWER at this level;
// the per-case reports carry the finer-grained status.
func AggregateVerdict(reports []domain.TestCaseReport) domain.Verdict {
	for _, r := range reports {
		if !r.Passed {
			return domain.VerdictWrongAnswer
		}
	}
	return domain.VerdictAccepted
}
