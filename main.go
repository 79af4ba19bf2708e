package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/frontend-talks/order-request-contract-tests/config"
	"github.com/frontend-talks/order-request-contract-tests/framework"
	"github.com/frontend-talks/order-request-contract-tests/ordertests"

	"github.com/sirupsen/logrus"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	cfg, err := config.Load(params.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if params.market != "" {
		cfg.Market = params.market
	}

	logger, err := newLogger(cfg.Logging, params.debugAll)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.WithFields(logrus.Fields{
		"market":          cfg.Market,
		"userAgent":       cfg.UserAgent,
		"maskUserAgent":   cfg.MaskUserAgent,
		"awaitTimeout":    cfg.AwaitTimeout(),
		"pollingInterval": cfg.PollInterval(),
	}).Debug("Loaded configuration")

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := ordertests.RunTestSuite(ordertests.Environment{Config: cfg, Logger: logger}, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		printRerunCommands(params, results)
		os.Exit(1)
	}
}

func printRerunCommands(params commandParams, results framework.Results) {
	var commands []string
	for _, f := range results.Failures {
		if len(f.TestID.Path) == 0 {
			continue
		}
		commands = append(commands, params.rerunCommand(os.Args[0], f.TestID))
	}
	if len(commands) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("To rerun a failed test with debug output:")
	for _, c := range commands {
		fmt.Printf("  %s\n", c)
	}
}

func newLogger(cfg config.LoggingConfig, debugAll bool) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if debugAll && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
