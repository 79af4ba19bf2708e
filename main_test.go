package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/frontend-talks/order-request-contract-tests/config"
	"github.com/frontend-talks/order-request-contract-tests/framework"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"prog", "-config", "harness.toml", "-run", "^submission", "-skip", "analytics", "-debug"}))
	assert.Equal(t, "harness.toml", p.configPath)
	assert.True(t, p.debug)
	assert.False(t, p.debugAll)
	assert.True(t, p.filters.AsFilter(framework.TestID{Path: []string{"submission"}}))
	assert.False(t, p.filters.AsFilter(framework.TestID{Path: []string{"validation"}}))
}

func TestRerunCommandIsShellQuoted(t *testing.T) {
	p := commandParams{configPath: "my config.toml"}
	id := framework.TestID{Path: []string{"submission", "when all fields are filled out"}}
	assert.Equal(t,
		`./order-request-contract-tests -config 'my config.toml' -run '^submission/when all fields are filled out$' -debug`,
		p.rerunCommand("./order-request-contract-tests", id))
}

func TestConsoleTestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	id := framework.TestID{Path: []string{"a", "b"}}

	l.TestStarted(id)
	l.TestError(id, errors.New("first\nsecond"))
	l.TestFinished(id, true, framework.CapturedOutput{{Message: "detail"}})
	l.TestSkipped(framework.TestID{Path: []string{"c"}}, "excluded")

	out := buf.String()
	assert.Contains(t, out, "[a/b]\n  first\n  second\n")
	assert.Contains(t, out, "FAILED: a/b")
	assert.Contains(t, out, "DEBUG ")
	assert.Contains(t, out, "detail")
	assert.Contains(t, out, "SKIPPED: c (excluded)")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LoggingConfig{Level: "warn", Format: "json"}, false)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger, err = newLogger(config.LoggingConfig{Level: "info", Format: "text"}, true)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	_, err = newLogger(config.LoggingConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
