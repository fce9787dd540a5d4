package fuzzlog

import (
	"fmt"
	"strings"

	"github.com/Adirelle/fuzzlog/pkg/utils"
)

// Results is the read-only view of a run used to build reports.
type Results interface {
	AllTestCases() []TestCaseID
	Passed() Outcomes
	Failed() Outcomes
	Errors() Outcomes
}

var _ Results = (*Multiplexer)(nil)

// Summary returns a pass/fail/error summary of the run.
// The total counts every opened test case, repeats included; the other
// counts are distinct test case ids.
func Summary(r Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Test Summary: %d tests ran.\n", len(r.AllTestCases()))
	fmt.Fprintf(&b, "PASSED: %d test cases.\n", r.Passed().Len())

	if failed := r.Failed(); failed.Len() > 0 {
		fmt.Fprintf(&b, "FAILED: %d test cases:\n", failed.Len())
		fmt.Fprintf(&b, "%s\n", joinIDs(failed.TestCases()))
	}

	if errored := r.Errors(); errored.Len() > 0 {
		fmt.Fprintf(&b, "Errors on %d test cases:\n", errored.Len())
		b.WriteString(joinIDs(errored.TestCases()))
	}

	return b.String()
}

func joinIDs(ids []TestCaseID) string {
	return strings.Join(utils.MapSlice(ids, TestCaseID.String), "\n")
}
