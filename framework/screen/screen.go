package screen

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/frontend-talks/order-request-contract-tests/framework"
)

const (
	DefaultTimeout  = time.Second
	DefaultInterval = time.Millisecond * 50
)

// Options configures a Screen. Zero values select the defaults.
type Options struct {
	Timeout  time.Duration
	Interval time.Duration
	Logger   framework.Logger
}

// Screen locates elements of a Document the way a user would, by label text or by role and
// accessible name, and fires events at them.
type Screen struct {
	doc    Document
	opts   Options
	logger framework.Logger
}

// NameMatcher matches an accessible name. *regexp.Regexp satisfies it.
type NameMatcher interface {
	MatchString(string) bool
	String() string
}

type exactMatcher string

func (m exactMatcher) MatchString(s string) bool { return normalize(s) == string(m) }
func (m exactMatcher) String() string            { return fmt.Sprintf("%q", string(m)) }

// Exact matches a name equal to s after whitespace normalisation.
func Exact(s string) NameMatcher {
	return exactMatcher(normalize(s))
}

// Pattern matches a name against a case-insensitive regular expression.
func Pattern(expr string) NameMatcher {
	return regexp.MustCompile("(?i)" + expr)
}

func New(doc Document, opts Options) *Screen {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Screen{doc: doc, opts: opts, logger: logger}
}

func (s *Screen) Document() Document {
	return s.doc
}

// Debug returns the current accessible tree in printable form.
func (s *Screen) Debug() string {
	return PrettyTree(s.doc.Elements())
}

func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func describeRole(role Role, name NameMatcher) string {
	if name == nil {
		return fmt.Sprintf("with the role %q", role)
	}
	return fmt.Sprintf("with the role %q and name %s", role, name)
}

func describeLabel(label string) string {
	return fmt.Sprintf("with the label text of: %s", label)
}

func (s *Screen) queryAllByLabelText(elements []Element, label string) []Element {
	want := normalize(label)
	var ret []Element
	for _, e := range elements {
		if e.Label != "" && normalize(e.Label) == want {
			ret = append(ret, e)
		}
	}
	return ret
}

func (s *Screen) queryAllByRole(elements []Element, role Role, name NameMatcher) []Element {
	var ret []Element
	for _, e := range elements {
		if e.Role == role && (name == nil || name.MatchString(normalize(e.Name))) {
			ret = append(ret, e)
		}
	}
	return ret
}

// QueryAllByLabelText returns every element whose label text matches exactly.
func (s *Screen) QueryAllByLabelText(label string) []Element {
	return s.queryAllByLabelText(s.doc.Elements(), label)
}

// QueryAllByRole returns every element with the role whose accessible name matches. A nil
// matcher accepts any name.
func (s *Screen) QueryAllByRole(role Role, name NameMatcher) []Element {
	return s.queryAllByRole(s.doc.Elements(), role, name)
}

// GetByLabelText returns the only element with the label, without waiting.
func (s *Screen) GetByLabelText(label string) (Element, error) {
	elements := s.doc.Elements()
	return exactlyOne(s.queryAllByLabelText(elements, label), describeLabel(label), elements)
}

// GetByRole returns the only element with the role and name, without waiting.
func (s *Screen) GetByRole(role Role, name NameMatcher) (Element, error) {
	elements := s.doc.Elements()
	return exactlyOne(s.queryAllByRole(elements, role, name), describeRole(role, name), elements)
}

// FindByLabelText waits until exactly one element has the label.
func (s *Screen) FindByLabelText(label string) (Element, error) {
	var found Element
	err := s.WaitFor(describeLabel(label), func() error {
		e, err := s.GetByLabelText(label)
		found = e
		return err
	})
	return found, err
}

// FindByRole waits until exactly one element has the role and name.
func (s *Screen) FindByRole(role Role, name NameMatcher) (Element, error) {
	var found Element
	err := s.WaitFor("an element "+describeRole(role, name), func() error {
		e, err := s.GetByRole(role, name)
		found = e
		return err
	})
	return found, err
}

// WaitFor calls condition every polling interval until it returns nil. If the timeout passes
// first, it returns a *TimeoutError wrapping the condition's last error.
func (s *Screen) WaitFor(what string, condition func() error) error {
	deadline := time.Now().Add(s.opts.Timeout)
	for {
		err := condition()
		if err == nil {
			return nil
		}
		if !time.Now().Before(deadline) {
			return &TimeoutError{What: what, Timeout: s.opts.Timeout, Cause: err}
		}
		time.Sleep(s.opts.Interval)
	}
}

func exactlyOne(matches []Element, query string, elements []Element) (Element, error) {
	if len(matches) != 1 {
		return Element{}, NewLocatorError(query, len(matches), elements)
	}
	return matches[0], nil
}
