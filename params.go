package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/frontend-talks/order-request-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	configPath string
	market     string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configPath, "config", "", "configuration file (TOML, YAML or JSON)")
	fs.StringVar(&c.market, "market", "", "market to render the form for, overriding the configuration")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand is a command line that runs only the given test with the same settings.
func (c *commandParams) rerunCommand(program string, id framework.TestID) string {
	var b commandBuilder
	b.add(program)
	if c.configPath != "" {
		b.add("-config", c.configPath)
	}
	if c.market != "" {
		b.add("-market", c.market)
	}
	b.add("-run", id.Pattern(), "-debug")
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
