package framework

import "strings"

type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

func NullTestLogger() TestLogger { return nullTestLogger{} }

// LogfTestLogger forwards test events to anything with a Logf method, such as *testing.T, so
// that a suite can be run from inside "go test".
type LogfTestLogger struct {
	Target interface {
		Logf(format string, args ...interface{})
	}
	DebugOutputOnFailure bool
}

func (l LogfTestLogger) TestStarted(id TestID) {
	l.Target.Logf("[%s]", id)
}

func (l LogfTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		l.Target.Logf("  %s", line)
	}
}

func (l LogfTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if !failed {
		return
	}
	l.Target.Logf("  FAILED: %s", id)
	if l.DebugOutputOnFailure {
		for _, m := range debugOutput {
			l.Target.Logf("    DEBUG [%s] %s", m.Time.Format(timestampFormat), m.Message)
		}
	}
}

func (l LogfTestLogger) TestSkipped(id TestID, reason string) {
	l.Target.Logf("  SKIPPED: %s (%s)", id, reason)
}
