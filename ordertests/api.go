package ordertests

import (
	"github.com/frontend-talks/order-request-contract-tests/config"
	"github.com/frontend-talks/order-request-contract-tests/framework"
)

// Environment holds the settings shared by every test in a run.
type Environment struct {
	Config *config.Config
	// Logger receives messages about the run as a whole. Output of individual tests goes to
	// their own debug loggers.
	Logger framework.Logger
}

// T represents a test or subtest in the order-request suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, and with debug logging that is captured per test. Those
// features are provided by the lower-level framework package.
//
// To make test assertions, use the assert and require packages, passing the *T as if it were
// a *testing.T. Helpers such as NewMockBackend and RenderOrderForm also fail the test
// immediately if something unexpected happens, to keep the scenarios short.
type T struct {
	context *framework.Context
	env     *Environment
}

func newTestScope(context *framework.Context, env *Environment) *T {
	return &T{context: context, env: env}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Defer schedules a function to run when the test ends, even if it failed. Deferred functions
// run in reverse order.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

func (t *T) Config() *config.Config {
	return t.env.Config
}
