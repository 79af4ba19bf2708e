package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the framework's equivalent of *testing.T. It is not safe to use from more than one
// goroutine, except for Debug and DebugLogger.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
}

// Run runs the top-level test action. The returned Results cover every subtest started with
// Context.Run.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				c.runCleanups()
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		c.runCleanups()
		result := TestResult{TestID: c.id, Errors: c.errors}
		if len(c.id.Path) > 0 { // the root context is not a test of its own, but can still fail
			c.env.results.Tests = append(c.env.results.Tests, result)
		}
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) runCleanups() {
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		c.cleanups[i]()
	}
	c.cleanups = nil
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. Subtests run sequentially, in the same goroutine.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.results.Tests = append(c.env.results.Tests, TestResult{TestID: id, Skipped: true})
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Defer schedules a function to be called when the current test ends, whether it passed, failed,
// or was skipped. Deferred functions run in reverse order of registration.
func (c *Context) Defer(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
