package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter decides whether a test runs. MustMatch patterns are matched the way "go test -run"
// does it: a pattern is split on "/" and each element is matched against the corresponding
// level of the test path, so that the parents of a selected test also run. MustNotMatch
// patterns are matched against the whole test name.
func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatchPath(id.Path)) &&
		!r.MustNotMatch.AnyMatch(id.String())
}

type RegexList struct {
	patterns []*regexp.Regexp
	levels   [][]*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	var levels []*regexp.Regexp
	for _, part := range strings.Split(value, "/") {
		lrx, err := regexp.Compile(part)
		if err != nil {
			return fmt.Errorf("invalid regex %q in %q: %w", part, value, err)
		}
		levels = append(levels, lrx)
	}
	r.patterns = append(r.patterns, rx)
	r.levels = append(r.levels, levels)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// AnyMatchPath reports whether some pattern matches every level of path that it has an
// element for.
func (r RegexList) AnyMatchPath(path []string) bool {
	for _, levels := range r.levels {
		if matchLevels(levels, path) {
			return true
		}
	}
	return false
}

func matchLevels(levels []*regexp.Regexp, path []string) bool {
	for i, name := range path {
		if i >= len(levels) {
			break
		}
		if !levels[i].MatchString(name) {
			return false
		}
	}
	return true
}

func PrintFilterDescription(w io.Writer, filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(w)
	}
}
