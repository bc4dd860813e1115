// errors.go - structured error taxonomy.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError is implemented by every structured error kind this package
// returns, letting callers recover the failing arg id (when any) with
// errors.As without caring about the concrete kind — in the same spirit
// as the teacher's small, typed error values (e.g.
// ErrTooFewPositionalArguments, ErrNoSuchCommand).
type ParseError interface {
	error
	ArgID() string
}

// InvalidValueError reports that a raw token failed the arg's value
// parser. Raised by the parser's flush step, which re-wraps the
// underlying valueparser.InvalidValueError with the owning arg id.
type InvalidValueError struct {
	ID       string
	Raw      string
	Expected string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for argument '%s': expected %s", e.Raw, e.ID, e.Expected)
}

func (e *InvalidValueError) ArgID() string { return e.ID }

// MissingRequiredArgumentError reports a required arg absent after parsing.
type MissingRequiredArgumentError struct {
	ID      string
	Context string
}

func (e *MissingRequiredArgumentError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("required argument '%s' was not provided: %s", e.ID, e.Context)
	}
	return fmt.Sprintf("required argument '%s' was not provided", e.ID)
}

func (e *MissingRequiredArgumentError) ArgID() string { return e.ID }

// TooFewValuesError reports fewer values bound than the arg's num_args.Min.
type TooFewValuesError struct {
	ID     string
	Bound  int
	Actual int
}

func (e *TooFewValuesError) Error() string {
	return fmt.Sprintf("argument '%s' received %d values but requires at least %d", e.ID, e.Actual, e.Bound)
}

func (e *TooFewValuesError) ArgID() string { return e.ID }

// TooManyValuesError reports more values bound than the arg's num_args.Max.
type TooManyValuesError struct {
	ID     string
	Bound  int
	Actual int
}

func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("argument '%s' received %d values but only accepts %d", e.ID, e.Actual, e.Bound)
}

func (e *TooManyValuesError) ArgID() string { return e.ID }

// UnknownArgumentError reports a token that did not match any known
// option, together with up to three "did you mean" suggestions.
type UnknownArgumentError struct {
	Raw         string
	Suggestions []string
}

func (e *UnknownArgumentError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unknown argument '%s'", e.Raw)
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&sb, "\n\n\tDid you mean: %s?", strings.Join(e.Suggestions, ", "))
	}
	return sb.String()
}

func (e *UnknownArgumentError) ArgID() string { return "" }

// ArgumentConflictError reports two mutually exclusive args both present.
type ArgumentConflictError struct {
	A, B string
}

func (e *ArgumentConflictError) Error() string {
	return fmt.Sprintf("argument '%s' cannot be used with '%s'", e.A, e.B)
}

func (e *ArgumentConflictError) ArgID() string { return e.A }

// MissingDependencyError reports that a present arg's required dependency
// is absent.
type MissingDependencyError struct {
	ID, Requires string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("argument '%s' requires '%s' to also be present", e.ID, e.Requires)
}

func (e *MissingDependencyError) ArgID() string { return e.ID }

// InvalidSubcommandError reports an unknown subcommand token.
type InvalidSubcommandError struct {
	Name        string
	Suggestions []string
}

func (e *InvalidSubcommandError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unknown subcommand '%s'", e.Name)
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&sb, "\n\n\tDid you mean: %s?", strings.Join(e.Suggestions, ", "))
	}
	return sb.String()
}

func (e *InvalidSubcommandError) ArgID() string { return "" }

// MissingSubcommandError reports that subcommand_required is set and no
// subcommand was selected.
type MissingSubcommandError struct{}

func (e *MissingSubcommandError) Error() string { return "a subcommand is required but was not provided" }

func (e *MissingSubcommandError) ArgID() string { return "" }

// MissingRequiredGroupError reports a required group with no member present.
type MissingRequiredGroupError struct {
	GroupID string
}

func (e *MissingRequiredGroupError) Error() string {
	return fmt.Sprintf("one argument from group '%s' is required", e.GroupID)
}

func (e *MissingRequiredGroupError) ArgID() string { return "" }

// displayError is the base for DisplayHelp / DisplayVersion: not a
// failure, but a request to print text and stop, exactly like the
// teacher's nflag.ErrHelp sentinel-based flow.
type displayError struct {
	text string
	kind string
}

func (e *displayError) Error() string { return e.text }

// DisplayHelpError carries the rendered help text for the Help action.
type DisplayHelpError struct{ displayError }

// DisplayVersionError carries the version text for the Version action.
type DisplayVersionError struct{ displayError }

// Text returns the payload to print.
func (e *DisplayHelpError) Text() string { return e.text }

// Text returns the payload to print.
func (e *DisplayVersionError) Text() string { return e.text }

func newDisplayHelp(text string) *DisplayHelpError {
	return &DisplayHelpError{displayError{text: text, kind: "help"}}
}

func newDisplayVersion(text string) *DisplayVersionError {
	return &DisplayVersionError{displayError{text: text, kind: "version"}}
}

// ErrHelp and ErrVersion are sentinels callers can match with errors.Is
// regardless of the exact payload, mirroring the teacher's nflag.ErrHelp.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

func (e *DisplayHelpError) Is(target error) bool    { return target == ErrHelp }
func (e *DisplayVersionError) Is(target error) bool { return target == ErrVersion }
