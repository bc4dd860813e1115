// scanner.go - command line scanner.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scanner provides low-level tokenization of command-line
// arguments for the [clap] parser.
//
// [*Scanner.Scan] breaks command-line arguments into [Token] values based
// on configurable option prefixes and a single separator, letting the
// higher-level parser implement the rest of the option-parsing semantics
// (clustering, `=value` splitting, num_args bookkeeping) on top of a
// simple, well-defined token stream.
package scanner

import (
	"errors"
	"sort"
	"strings"
)

// Token is a token produced by [*Scanner.Scan].
type Token interface {
	// String returns the string representation of the token.
	String() string

	// Index returns the position of the token in the original argv.
	Index() int
}

// OptionToken is a [Token] containing an option (e.g. `-v`, `--verbose`).
type OptionToken struct {
	Idx    int
	Prefix string
	Name   string
}

var _ Token = OptionToken{}

func (tk OptionToken) String() string { return tk.Prefix + tk.Name }
func (tk OptionToken) Index() int     { return tk.Idx }

// ArgumentToken is a [Token] containing a positional argument.
type ArgumentToken struct {
	Idx   int
	Value string
}

var _ Token = ArgumentToken{}

func (tk ArgumentToken) String() string { return tk.Value }
func (tk ArgumentToken) Index() int     { return tk.Idx }

// SeparatorToken is a [Token] containing the `--` separator.
type SeparatorToken struct {
	Idx       int
	Separator string
}

var _ Token = SeparatorToken{}

func (tk SeparatorToken) String() string { return tk.Separator }
func (tk SeparatorToken) Index() int     { return tk.Idx }

// ProgramNameToken is the program name [Token].
type ProgramNameToken struct {
	Idx  int
	Name string
}

var _ Token = ProgramNameToken{}

func (tk ProgramNameToken) String() string { return tk.Name }
func (tk ProgramNameToken) Index() int     { return tk.Idx }

// Scanner tokenizes a raw argv into [Token] values.
//
// We check for the separator first, then for prefixes sorted by length
// (longest first), so that `--` is never mistaken for the start of a
// `-` prefixed option.
type Scanner struct {
	// Prefixes contains the prefixes delimiting options (e.g. `-`, `--`).
	Prefixes []string

	// Separator is the token that, once seen, stops option parsing. Empty
	// means the scanner never emits a [SeparatorToken].
	Separator string
}

// ErrMissingProgramName is returned when argv is empty.
var ErrMissingProgramName = errors.New("missing program name")

// Scan tokenizes argv, which MUST include the program name as argv[0].
//
// This method does not mutate [*Scanner] and is safe to call concurrently.
func (sx *Scanner) Scan(argv []string) ([]Token, error) {
	if len(argv) <= 0 {
		return nil, ErrMissingProgramName
	}

	tokens := make([]Token, 0, len(argv))
	tokens = append(tokens, ProgramNameToken{Idx: 0, Name: argv[0]})
	argv = argv[1:]

	prefixes := make([]string, len(sx.Prefixes))
	copy(prefixes, sx.Prefixes)
	sort.SliceStable(prefixes, func(i, j int) bool {
		if len(prefixes[i]) == len(prefixes[j]) {
			return prefixes[i] < prefixes[j]
		}
		return len(prefixes[i]) > len(prefixes[j])
	})

Loop:
	for idx, arg := range argv {
		actual := idx + 1

		if sx.Separator != "" && arg == sx.Separator {
			tokens = append(tokens, SeparatorToken{Idx: actual, Separator: arg})
			continue
		}

		for _, prefix := range prefixes {
			if prefix != "" && strings.HasPrefix(arg, prefix) && arg != prefix {
				tokens = append(tokens, OptionToken{Idx: actual, Prefix: prefix, Name: arg[len(prefix):]})
				continue Loop
			}
		}

		tokens = append(tokens, ArgumentToken{Idx: actual, Value: arg})
	}

	return tokens, nil
}
