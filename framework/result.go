package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of tests that ran (excluding skipped ones) and the number skipped.
func (r Results) Counts() (ran, skipped int) {
	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		} else {
			ran++
		}
	}
	return
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Pattern returns a regex that matches this test ID exactly, suitable for the -run parameter.
func (t TestID) Pattern() string {
	return "^" + regexp.QuoteMeta(t.String()) + "$"
}

// PrintResults writes a summary of the test run.
func PrintResults(w io.Writer, results Results) {
	ran, skipped := results.Counts()
	if results.OK() {
		fmt.Fprintf(w, "All tests passed (%d ran, %d skipped)\n", ran, skipped)
		return
	}
	fmt.Fprintf(w, "FAILED TESTS (%d of %d):\n", len(results.Failures), ran)
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  * %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(w, "      %s\n", line)
			}
		}
	}
}
