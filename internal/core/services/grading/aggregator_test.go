package grading

import (
	"testing"

	"gitlab.com/codefusion.net/internal/domain"
)

func accepted(stdout string) domain.JudgeResult {
	return domain.JudgeResult{
		Status:     domain.JudgeStatusAccepted,
		StatusText: "Accepted",
		Stdout:     stdout,
	}
}

func TestBuildReportsTrimsBeforeComparing(t *testing.T) {
	reports := BuildReports([]domain.JudgeResult{accepted("42\n")}, []string{"42"})
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if !reports[0].Passed {
		t.Fatalf("expected trailing newline to be trimmed before comparison")
	}
}

func TestBuildReportsIsCaseSensitive(t *testing.T) {
	reports := BuildReports([]domain.JudgeResult{accepted("Hello")}, []string{"hello"})
	if reports[0].Passed {
		t.Fatalf("comparison must be case-sensitive")
	}
}

func TestBuildReportsDoesNotCollapseInnerWhitespace(t *testing.T) {
	reports := BuildReports([]domain.JudgeResult{accepted("1  2")}, []string{"1 2"})
	if reports[0].Passed {
		t.Fatalf("inner whitespace must not be normalized")
	}
}

func TestBuildReportsRequiresAcceptedStatus(t *testing.T) {
	// Output matches but the judge flagged the run; status wins.
	res := domain.JudgeResult{
		Status:     domain.JudgeStatusTimeLimitExceeded,
		StatusText: "Time Limit Exceeded",
		Stdout:     "5\n",
	}
	reports := BuildReports([]domain.JudgeResult{res}, []string{"5"})
	if reports[0].Passed {
		t.Fatalf("a non-accepted judge status must fail the case")
	}
	if reports[0].Status != domain.JudgeStatusTimeLimitExceeded {
		t.Fatalf("judge status must be preserved on the report")
	}
}

func TestBuildReportsIndexAlignment(t *testing.T) {
	results := []domain.JudgeResult{accepted("5\n"), accepted("9\n")}
	reports := BuildReports(results, []string{"5", "8"})

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if !reports[0].Passed || reports[0].Index != 0 {
		t.Fatalf("first case should pass at index 0: %+v", reports[0])
	}
	if reports[1].Passed || reports[1].Index != 1 {
		t.Fatalf("second case should fail at index 1: %+v", reports[1])
	}
	if reports[1].ExpectedOutput != "8" || reports[1].ActualOutput != "9\n" {
		t.Fatalf("report must carry raw actual and expected outputs: %+v", reports[1])
	}
}

func TestAggregateVerdict(t *testing.T) {
	tests := []struct {
		name    string
		passed  []bool
		verdict domain.Verdict
	}{
		{name: "all pass", passed: []bool{true, true, true}, verdict: domain.VerdictAccepted},
		{name: "single case pass", passed: []bool{true}, verdict: domain.VerdictAccepted},
		{name: "one failure", passed: []bool{true, false, true}, verdict: domain.VerdictWrongAnswer},
		{name: "all fail", passed: []bool{false, false}, verdict: domain.VerdictWrongAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := make([]domain.TestCaseReport, len(tt.passed))
			for i, p := range tt.passed {
				reports[i] = domain.TestCaseReport{Index: i, Passed: p}
			}
			if got := AggregateVerdict(reports); got != tt.verdict {
				t.Fatalf("expected %s, got %s", tt.verdict, got)
			}
		})
	}
}

func TestAggregateVerdictCollapsesFailureClasses(t *testing.T) {
	// Compile errors do not get their own aggregate verdict.
	reports := []domain.TestCaseReport{
		{Index: 0, Passed: false, Status: domain.JudgeStatusCompilationError},
	}
	if got := AggregateVerdict(reports); got != domain.VerdictWrongAnswer {
		t.Fatalf("expected WRONG_ANSWER, got %s", got)
	}
}
