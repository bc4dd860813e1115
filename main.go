// main.go - top-level process entry point.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
)

// ParseLine splits line the way a shell would and runs
// [*Command.GetMatches] over the result, for REPL-style or
// config-driven command lines.
func (c *Command) ParseLine(line string) (*ArgMatches, error) {
	argv, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("clap: cannot split command line: %w", err)
	}
	return c.GetMatches(argv)
}

// Main runs [*Command.Execute] against env's arguments (skipping argv[0])
// and terminates the process through env.Exit, following the exit-code
// contract: 0 on success or on an explicit --help/--version request
// (after printing the corresponding text to env.Stdout), 1 on any parse,
// validation, or action error (after printing it to env.Stderr).
//
// This is the Go-native glue analogous to the teacher's ExitOnError
// error-handling policy, lifted from FlagSet.Parse to the whole Command
// tree.
func (c *Command) Main(env ExecEnv) {
	args := env.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	matches, err := c.GetMatches(args)
	if err != nil {
		var helpErr *DisplayHelpError
		var versionErr *DisplayVersionError
		switch {
		case asDisplayHelp(err, &helpErr):
			fmt.Fprint(env.Stdout(), helpErr.Text())
			env.Exit(0)
			return
		case asDisplayVersion(err, &versionErr):
			fmt.Fprint(env.Stdout(), versionErr.Text())
			env.Exit(0)
			return
		default:
			fmt.Fprintf(env.Stderr(), "%s: %s\n", c.FullName(), err.Error())
			env.Exit(1)
			return
		}
	}

	if err := c.dispatch(matches); err != nil {
		fmt.Fprintf(env.Stderr(), "%s: %s\n", c.FullName(), err.Error())
		env.Exit(1)
		return
	}
	env.Exit(0)
}

func asDisplayHelp(err error, target **DisplayHelpError) bool {
	if e, ok := err.(*DisplayHelpError); ok {
		*target = e
		return true
	}
	return false
}

func asDisplayVersion(err error, target **DisplayVersionError) bool {
	if e, ok := err.(*DisplayVersionError); ok {
		*target = e
		return true
	}
	return false
}
