// valueparser.go - built-in value parser variants.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package valueparser provides the built-in [clap.ValueParser] variants:
// string, int, float, bool, path, enum, regex, numeric-range, url, and
// custom, plus three Go-native additions (duration, IP, string-slice)
// grounded in the same "parse a raw token into a typed value" idiom.
//
// Each variant is a small, immutable struct satisfying the
// clap.ValueParser interface structurally:
//
//	Parse(raw string) (any, error)
//	TypeName() string
//	PossibleValues() ([]string, bool)
//
// This package intentionally does not import the root clap package, so
// that clap can import valueparser without creating a cycle: the
// interface lives where it is consumed.
package valueparser

import (
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// InvalidValueError reports that a raw token could not be converted to a
// typed value. It never carries the owning arg id: the parser driver
// re-wraps it with the id, keeping its Raw and Expected fields.
type InvalidValueError struct {
	Raw      string
	Expected string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q: expected %s", e.Raw, e.Expected)
}

// --- String ---

type stringParser struct{}

// String accepts any token unchanged.
func String() *stringParser { return &stringParser{} }

func (*stringParser) Parse(raw string) (any, error)            { return raw, nil }
func (*stringParser) TypeName() string                         { return "string" }
func (*stringParser) PossibleValues() ([]string, bool)         { return nil, false }

// --- Int ---

type intParser struct{}

// Int parses a signed decimal integer.
func Int() *intParser { return &intParser{} }

func (*intParser) Parse(raw string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, &InvalidValueError{Raw: raw, Expected: "an integer"}
	}
	return n, nil
}

func (*intParser) TypeName() string                 { return "integer" }
func (*intParser) PossibleValues() ([]string, bool)  { return nil, false }

// --- Float ---

type floatParser struct{}

// Float parses an IEEE-754 double.
func Float() *floatParser { return &floatParser{} }

func (*floatParser) Parse(raw string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, &InvalidValueError{Raw: raw, Expected: "a number"}
	}
	return f, nil
}

func (*floatParser) TypeName() string                { return "float" }
func (*floatParser) PossibleValues() ([]string, bool) { return nil, false }

// --- Bool ---

type boolParser struct{}

// Bool parses a case-insensitive boolean token.
func Bool() *boolParser { return &boolParser{} }

var boolTrue = []string{"true", "yes", "1", "on"}
var boolFalse = []string{"false", "no", "0", "off"}

func (*boolParser) Parse(raw string) (any, error) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, v := range boolTrue {
		if lower == v {
			return true, nil
		}
	}
	for _, v := range boolFalse {
		if lower == v {
			return false, nil
		}
	}
	return nil, &InvalidValueError{Raw: raw, Expected: "a boolean (true/false/yes/no/1/0/on/off)"}
}

func (*boolParser) TypeName() string { return "boolean" }

func (*boolParser) PossibleValues() ([]string, bool) {
	out := make([]string, 0, len(boolTrue)+len(boolFalse))
	out = append(out, boolTrue...)
	out = append(out, boolFalse...)
	return out, true
}

// --- Path ---

type pathParser struct {
	mustExist bool
}

// Path returns a parser that accepts any token as a filesystem path. When
// mustExist is true, the token must name an existing filesystem entry.
func Path(mustExist bool) *pathParser { return &pathParser{mustExist: mustExist} }

func (p *pathParser) Parse(raw string) (any, error) {
	if p.mustExist {
		if _, err := os.Stat(raw); err != nil {
			return nil, &InvalidValueError{Raw: raw, Expected: "a path that exists"}
		}
	}
	return raw, nil
}

func (*pathParser) TypeName() string                { return "path" }
func (*pathParser) PossibleValues() ([]string, bool) { return nil, false }

// --- Enum ---

type enumParser struct {
	values        []string
	caseInsensitive bool
}

// Enum returns a parser that accepts only the given set of values,
// returning the canonical (originally registered) spelling even when
// matched case-insensitively.
func Enum(values []string, caseInsensitive bool) *enumParser {
	return &enumParser{values: values, caseInsensitive: caseInsensitive}
}

func (p *enumParser) Parse(raw string) (any, error) {
	for _, v := range p.values {
		if v == raw {
			return v, nil
		}
	}
	if p.caseInsensitive {
		for _, v := range p.values {
			if strings.EqualFold(v, raw) {
				return v, nil
			}
		}
	}
	return nil, &InvalidValueError{
		Raw:      raw,
		Expected: "one of " + strings.Join(p.values, ", "),
	}
}

func (*enumParser) TypeName() string { return "enum" }

func (p *enumParser) PossibleValues() ([]string, bool) { return p.values, true }

// --- Regex ---

type regexParser struct {
	re *regexp.Regexp
}

// Regex returns a parser that accepts only tokens matching pattern.
func Regex(pattern string) (*regexParser, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}
	return &regexParser{re: re}, nil
}

// MustRegex is like [Regex] but panics on an invalid pattern, for use in
// package-level variable initializers.
func MustRegex(pattern string) *regexParser {
	p, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *regexParser) Parse(raw string) (any, error) {
	if !p.re.MatchString(raw) {
		return nil, &InvalidValueError{Raw: raw, Expected: "matching pattern " + p.re.String()}
	}
	return raw, nil
}

func (*regexParser) TypeName() string                { return "pattern" }
func (*regexParser) PossibleValues() ([]string, bool) { return nil, false }

// --- NumericRange ---

type numericRangeParser struct {
	min, max int64
}

// NumericRange returns a parser that accepts an integer n with min <= n <= max.
func NumericRange(min, max int64) *numericRangeParser {
	return &numericRangeParser{min: min, max: max}
}

func (p *numericRangeParser) Parse(raw string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < p.min || n > p.max {
		return nil, &InvalidValueError{
			Raw:      raw,
			Expected: fmt.Sprintf("an integer between %d and %d", p.min, p.max),
		}
	}
	return n, nil
}

func (*numericRangeParser) TypeName() string                { return "integer" }
func (*numericRangeParser) PossibleValues() ([]string, bool) { return nil, false }

// --- URL ---

type urlParser struct {
	schemes []string
}

// URL returns a parser that accepts tokens shaped scheme://host[/path...]
// for one of the given schemes. An empty schemes list defaults to
// {http, https, ftp}.
func URL(schemes ...string) *urlParser {
	if len(schemes) == 0 {
		schemes = []string{"http", "https", "ftp"}
	}
	return &urlParser{schemes: schemes}
}

func (p *urlParser) Parse(raw string) (any, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || !schemeAllowed(u.Scheme, p.schemes) {
		return nil, &InvalidValueError{
			Raw:      raw,
			Expected: "a URL matching scheme://host[/path…] for scheme in " + strings.Join(p.schemes, ", "),
		}
	}
	return raw, nil
}

func schemeAllowed(scheme string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(scheme, a) {
			return true
		}
	}
	return false
}

func (*urlParser) TypeName() string                { return "URL" }
func (*urlParser) PossibleValues() ([]string, bool) { return nil, false }

// --- Custom ---

// CustomFunc is a user-supplied conversion callback.
//
// Returning the sentinel string "false" signals validation failure.
// Returning "true" means accept the original token unchanged. Any other
// return value replaces the token.
type CustomFunc func(raw string) string

type customParser struct {
	typeName string
	fn       CustomFunc
}

// Custom wraps a user callback as a [clap.ValueParser].
func Custom(typeName string, fn CustomFunc) *customParser {
	return &customParser{typeName: typeName, fn: fn}
}

func (p *customParser) Parse(raw string) (any, error) {
	switch result := p.fn(raw); result {
	case "false":
		return nil, &InvalidValueError{Raw: raw, Expected: p.typeName}
	case "true":
		return raw, nil
	default:
		return result, nil
	}
}

func (p *customParser) TypeName() string                { return p.typeName }
func (*customParser) PossibleValues() ([]string, bool)   { return nil, false }

// --- Duration (Go-native addition) ---

type durationParser struct{}

// Duration parses a Go duration literal such as "250ms" or "2h45m".
func Duration() *durationParser { return &durationParser{} }

func (*durationParser) Parse(raw string) (any, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, &InvalidValueError{Raw: raw, Expected: `a duration (e.g. "250ms", "2h45m")`}
	}
	return d, nil
}

func (*durationParser) TypeName() string                { return "duration" }
func (*durationParser) PossibleValues() ([]string, bool) { return nil, false }

// --- IP (Go-native addition) ---

type ipParser struct{}

// IP parses an IPv4 or IPv6 address.
func IP() *ipParser { return &ipParser{} }

func (*ipParser) Parse(raw string) (any, error) {
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return nil, &InvalidValueError{Raw: raw, Expected: "an IP address"}
	}
	return addr, nil
}

func (*ipParser) TypeName() string                { return "IP address" }
func (*ipParser) PossibleValues() ([]string, bool) { return nil, false }

// --- StringSlice (Go-native addition) ---

type stringSliceParser struct{}

// StringSlice accepts any token unchanged, identical to [String]. It
// exists as its own named constructor because it is the canonical
// parser to pair with an Arg's value_delimiter: naming the intent
// ("this arg's values are meant to be split apart") at the call site,
// even though the conversion itself does nothing beyond what [String]
// already does.
func StringSlice() *stringSliceParser { return &stringSliceParser{} }

func (*stringSliceParser) Parse(raw string) (any, error)    { return raw, nil }
func (*stringSliceParser) TypeName() string                 { return "string" }
func (*stringSliceParser) PossibleValues() ([]string, bool) { return nil, false }
