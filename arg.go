// arg.go - static description of one option or positional argument.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import "github.com/flagforge/clap/valueparser"

// ValueParser transforms a raw argv token into a typed value or fails.
//
// The built-in variants live in package valueparser; user code may supply
// any type satisfying this interface (e.g. valueparser.Custom).
type ValueParser interface {
	// Parse converts raw into a typed value or returns an error. Parsers
	// never know the owning arg id: the parser driver re-wraps any
	// error with the id before surfacing it, keeping the expected text of
	// a valueparser.InvalidValueError and using TypeName for any other error.
	Parse(raw string) (any, error)

	// TypeName names the expected shape, used in error messages (e.g. "integer").
	TypeName() string

	// PossibleValues returns the closed set of acceptable values, if any.
	PossibleValues() ([]string, bool)
}

// Action describes what binding a value, or encountering a flag, does.
type Action int

// The recognized actions. Choosing any of ActionSetTrue, ActionSetFalse,
// ActionCount, ActionHelp, or ActionVersion implicitly forces
// num_args = Zero on the owning [Arg] — enforced by [*Arg.WithAction]
// itself, not re-derived at parse time.
const (
	ActionSet Action = iota
	ActionAppend
	ActionSetTrue
	ActionSetFalse
	ActionCount
	ActionHelp
	ActionVersion
)

// String implements [fmt.Stringer].
func (a Action) String() string {
	switch a {
	case ActionSet:
		return "set"
	case ActionAppend:
		return "append"
	case ActionSetTrue:
		return "set-true"
	case ActionSetFalse:
		return "set-false"
	case ActionCount:
		return "count"
	case ActionHelp:
		return "help"
	case ActionVersion:
		return "version"
	default:
		return "unknown"
	}
}

// isFlagAction reports whether a is one of the zero-value-taking actions.
func (a Action) isFlagAction() bool {
	switch a {
	case ActionSetTrue, ActionSetFalse, ActionCount, ActionHelp, ActionVersion:
		return true
	default:
		return false
	}
}

// ValueHint is a display-only hint about the expected shape of a value,
// consumed by the help formatter.
type ValueHint int

// The recognized value hints.
const (
	ValueHintUnknown ValueHint = iota
	ValueHintString
	ValueHintPath
	ValueHintFilePath
	ValueHintDirPath
	ValueHintURL
	ValueHintHostname
	ValueHintUsername
	ValueHintEmailAddress
)

// requiredIfCond is one (cond_id, cond_value) pair for Arg.requiredIf.
type requiredIfCond struct {
	id    string
	value string
}

// autoIndex is the sentinel meaning "assign the next positional slot on attach".
const autoIndex = -1

// Arg is the static, builder-constructed description of one option or
// positional argument. It is immutable once attached to a [*Command]: the
// fluent setters below only make sense before [*Command.Arg] is called.
//
// The zero value is not useful; construct with [NewArg].
type Arg struct {
	id    string
	short rune
	long  string
	index int

	required bool
	global   bool
	hidden   bool

	defaultValue        *string
	defaultMissingValue *string
	envVar               string

	numArgs        ValueRange
	valueDelimiter rune
	valueNames     []string

	action      Action
	valueParser ValueParser
	valueHint   ValueHint

	conflicts      []string
	requires       []string
	requiredUnless []string
	requiredIf     []requiredIfCond
	groups         []string

	allowMultiple      bool
	hidePossibleValues bool
	hideDefaultValue   bool
}

// NewArg creates a new [*Arg] with the given stable id. Defaults: takes
// exactly one value (num_args = [One]), action [ActionSet], and a
// [valueparser.String] value parser — the common case for a `--name
// value` option.
func NewArg(id string) *Arg {
	return &Arg{
		id:          id,
		short:       0,
		index:       autoIndex,
		numArgs:     One,
		action:      ActionSet,
		valueParser: valueparser.String(),
	}
}

// NewFlag creates a boolean flag: num_args = [Zero], action [ActionSetTrue].
func NewFlag(id string) *Arg {
	return NewArg(id).WithAction(ActionSetTrue)
}

// NewCount creates a counting flag (e.g. `-vvv`): num_args = [Zero],
// action [ActionCount].
func NewCount(id string) *Arg {
	return NewArg(id).WithAction(ActionCount)
}

// NewPositional creates a positional argument bound to the given slot
// index. Pass [autoIndex]-equivalent -1 to auto-assign the next slot on attach.
func NewPositional(id string, index int) *Arg {
	a := NewArg(id)
	a.index = index
	return a
}

// --- fluent setters: each mutates only this Arg's own fields and returns self ---

// WithShort sets the one-character short flag (e.g. 'v' for `-v`).
func (a *Arg) WithShort(r rune) *Arg { a.short = r; return a }

// WithLong sets the long flag name without its leading dashes (e.g. "verbose").
func (a *Arg) WithLong(name string) *Arg { a.long = name; return a }

// WithIndex sets the positional slot. Use -1 to auto-assign on attach.
func (a *Arg) WithIndex(index int) *Arg { a.index = index; return a }

// WithRequired marks the arg as required.
func (a *Arg) WithRequired(v bool) *Arg { a.required = v; return a }

// WithGlobal marks the arg's binding as inherited by subcommand parsers.
func (a *Arg) WithGlobal(v bool) *Arg { a.global = v; return a }

// WithHidden hides the arg from help output.
func (a *Arg) WithHidden(v bool) *Arg { a.hidden = v; return a }

// WithDefault sets the default value used when the arg is otherwise absent.
func (a *Arg) WithDefault(value string) *Arg { a.defaultValue = &value; return a }

// WithDefaultMissingValue sets the value used when the option is given
// with no attached value and no pending tokens. It is used whatever
// num_args.Min is, so such an option never fails with too few values.
func (a *Arg) WithDefaultMissingValue(value string) *Arg {
	a.defaultMissingValue = &value
	return a
}

// WithEnv names an environment variable consulted when the arg is absent
// from the command line.
func (a *Arg) WithEnv(name string) *Arg { a.envVar = name; return a }

// WithNumArgs sets the value-count contract. Calling this after
// [*Arg.WithAction] with a flag action replaces the Zero range that
// WithAction set, but the parser still performs the flag action without
// consuming any value from argv; call order matters.
func (a *Arg) WithNumArgs(r ValueRange) *Arg { a.numArgs = r; return a }

// WithDelimiter splits each bound token on sep before storing, producing
// multiple values per token.
func (a *Arg) WithDelimiter(sep rune) *Arg { a.valueDelimiter = sep; return a }

// WithValueNames sets the display-only value placeholder names.
func (a *Arg) WithValueNames(names ...string) *Arg { a.valueNames = names; return a }

// WithAction sets the action. Choosing a flag action forces num_args =
// [Zero], per the invariant that action determines whether the arg takes
// values at all.
func (a *Arg) WithAction(action Action) *Arg {
	a.action = action
	if action.isFlagAction() {
		a.numArgs = Zero
	}
	return a
}

// WithParser sets the value parser.
func (a *Arg) WithParser(p ValueParser) *Arg { a.valueParser = p; return a }

// WithValueHint sets the display-only value hint.
func (a *Arg) WithValueHint(h ValueHint) *Arg { a.valueHint = h; return a }

// ConflictsWith records ids that must NOT be present alongside this arg.
func (a *Arg) ConflictsWith(ids ...string) *Arg { a.conflicts = append(a.conflicts, ids...); return a }

// Requires records ids that must be present whenever this arg is present.
func (a *Arg) Requires(ids ...string) *Arg { a.requires = append(a.requires, ids...); return a }

// RequiredUnless records ids at least one of which must be present,
// unless this arg itself is present.
func (a *Arg) RequiredUnless(ids ...string) *Arg {
	a.requiredUnless = append(a.requiredUnless, ids...)
	return a
}

// RequiredIf records that this arg becomes required when condID's last
// value equals condValue exactly.
func (a *Arg) RequiredIf(condID, condValue string) *Arg {
	a.requiredIf = append(a.requiredIf, requiredIfCond{id: condID, value: condValue})
	return a
}

// InGroups adds this arg's id to the named groups.
func (a *Arg) InGroups(ids ...string) *Arg { a.groups = append(a.groups, ids...); return a }

// WithAllowMultiple makes a positional arg under a Set action append each
// further positional token instead of advancing to the next slot. It has
// no effect on options.
func (a *Arg) WithAllowMultiple(v bool) *Arg { a.allowMultiple = v; return a }

// WithHidePossibleValues hides the value parser's PossibleValues from help.
func (a *Arg) WithHidePossibleValues(v bool) *Arg { a.hidePossibleValues = v; return a }

// WithHideDefaultValue hides the default value from help.
func (a *Arg) WithHideDefaultValue(v bool) *Arg { a.hideDefaultValue = v; return a }

// --- queries ---

// ID returns the arg's stable id.
func (a *Arg) ID() string { return a.id }

// IsPositional reports whether this is a positional argument: no short or
// long flag, only an index.
func (a *Arg) IsPositional() bool { return a.short == 0 && a.long == "" }

// IsFlag reports whether the arg takes no values.
func (a *Arg) IsFlag() bool { return a.numArgs.IsZero() }

// TakesValue is the complement of [*Arg.IsFlag].
func (a *Arg) TakesValue() bool { return !a.IsFlag() }

// DisplayName returns the long form if set, else the short form, else "<ID>".
func (a *Arg) DisplayName() string {
	switch {
	case a.long != "":
		return "--" + a.long
	case a.short != 0:
		return "-" + string(a.short)
	default:
		return "<" + a.id + ">"
	}
}

// MatchesShort reports whether r is this arg's short flag.
func (a *Arg) MatchesShort(r rune) bool { return a.short != 0 && a.short == r }

// MatchesLong reports whether name is this arg's long flag.
func (a *Arg) MatchesLong(name string) bool { return a.long != "" && a.long == name }

// MatchesName reports whether name matches the arg's id, long, or short form.
func (a *Arg) MatchesName(name string) bool {
	return name == a.id || a.MatchesLong(name) || (len(name) == 1 && a.MatchesShort(rune(name[0])))
}
