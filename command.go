// command.go - command tree node.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import "github.com/flagforge/clap/internal/assert"

// Setting is a recognized [Command]-level behavior toggle, named exactly
// as in the external CLI surface this package describes.
type Setting string

// The full recognized settings vocabulary. The parser and validator
// interpret propagate_version, subcommand_required,
// arg_required_else_help, disable_help_flag, disable_version_flag,
// allow_negative_numbers, infer_long_args and infer_subcommands; the help
// formatter (this package's Go-native addition) interprets hide_author and
// derive_display_order. The rest, hide_possible_values included, are
// accepted and stored but not read.
const (
	SettingPropagateVersion             Setting = "propagate_version"
	SettingSubcommandRequired           Setting = "subcommand_required"
	SettingAllowExternalSubcommands     Setting = "allow_external_subcommands"
	SettingSubcommandPrecedenceOverArg  Setting = "subcommand_precedence_over_arg"
	SettingHideAuthor                   Setting = "hide_author"
	SettingArgRequiredElseHelp          Setting = "arg_required_else_help"
	SettingDisableHelpFlag              Setting = "disable_help_flag"
	SettingDisableVersionFlag           Setting = "disable_version_flag"
	SettingDisableColoredHelp           Setting = "disable_colored_help"
	SettingDeriveDisplayOrder           Setting = "derive_display_order"
	SettingAllowHyphenValues            Setting = "allow_hyphen_values"
	SettingAllowNegativeNumbers         Setting = "allow_negative_numbers"
	SettingIgnoreErrors                 Setting = "ignore_errors"
	SettingFlattenHelp                  Setting = "flatten_help"
	SettingNextLineHelp                 Setting = "next_line_help"
	SettingHidePossibleValues           Setting = "hide_possible_values"
	SettingDontCollapseArgsInUsage      Setting = "dont_collapse_args_in_usage"
	SettingInferLongArgs                Setting = "infer_long_args"
	SettingInferSubcommands             Setting = "infer_subcommands"
)

// Command is a tree node: it owns args, groups, subcommands, settings,
// aliases, and an optional action handler. A single Command may carry
// both subcommands AND an action handler at once — the teacher's
// LeafCommand/DispatcherCommand split collapses here into one type, with
// "has subcommands" as a runtime property rather than a separate type.
//
// Construct with [NewCommand]; configure with the fluent With* setters;
// attach args/groups/subcommands with [*Command.Arg], [*Command.Group],
// and [*Command.Subcommand].
type Command struct {
	name        string
	displayName string
	version     string
	author      string
	about       string
	longAbout   string
	usageOverride string
	beforeHelp  string
	afterHelp   string

	args        []*Arg
	subcommands []*Command
	groups      []*ArgGroup

	aliases       []string
	hiddenAliases []string

	settings map[Setting]bool

	parent *Command

	positionalCounter uint32

	actionHandler func(*ArgMatches) error
}

// NewCommand creates a new, empty [*Command] named name.
func NewCommand(name string) *Command {
	return &Command{
		name:     name,
		settings: map[Setting]bool{},
	}
}

// --- fluent metadata setters ---

func (c *Command) WithDisplayName(v string) *Command { c.displayName = v; return c }
func (c *Command) WithVersion(v string) *Command     { c.version = v; return c }
func (c *Command) WithAuthor(v string) *Command      { c.author = v; return c }
func (c *Command) WithAbout(v string) *Command       { c.about = v; return c }
func (c *Command) WithLongAbout(v string) *Command   { c.longAbout = v; return c }
func (c *Command) WithUsage(v string) *Command       { c.usageOverride = v; return c }
func (c *Command) WithBeforeHelp(v string) *Command  { c.beforeHelp = v; return c }
func (c *Command) WithAfterHelp(v string) *Command   { c.afterHelp = v; return c }

func (c *Command) WithAliases(names ...string) *Command {
	c.aliases = append(c.aliases, names...)
	return c
}

func (c *Command) WithHiddenAliases(names ...string) *Command {
	c.hiddenAliases = append(c.hiddenAliases, names...)
	return c
}

// WithSettings enables the given settings.
func (c *Command) WithSettings(settings ...Setting) *Command {
	for _, s := range settings {
		c.settings[s] = true
	}
	return c
}

// Has reports whether setting is enabled on this command.
func (c *Command) Has(setting Setting) bool { return c.settings[setting] }

// WithAction registers the handler invoked by [*Command.Execute] when
// this command is the deepest one selected by parsing.
func (c *Command) WithAction(handler func(*ArgMatches) error) *Command {
	c.actionHandler = handler
	return c
}

// --- tree construction ---

// Arg attaches a to this command, auto-assigning its positional slot if
// a.index == autoIndex. Panics (a programmer error, not a user input
// error) if id is already used by another arg on this command.
func (c *Command) Arg(a *Arg) *Command {
	assert.NotNil(a, "clap: nil arg attached")
	assert.True(c.FindArg(a.id) == nil, "clap: duplicate arg id "+a.id)
	if a.index == autoIndex {
		a.index = int(c.positionalCounter)
	}
	if a.IsPositional() {
		c.positionalCounter++
	}
	c.args = append(c.args, a)
	return c
}

// Subcommand attaches sub as a child of this command, setting sub's
// parent back-reference. The child is owned by c.subcommands; parent is
// lookup-only and never creates an ownership cycle since subcommands
// never appear in their own ancestor chain.
//
// When [SettingPropagateVersion] is set on c and sub has no version of
// its own, sub inherits c's version string.
func (c *Command) Subcommand(sub *Command) *Command {
	assert.NotNil(sub, "clap: nil subcommand attached")
	sub.parent = c
	if c.Has(SettingPropagateVersion) && sub.version == "" {
		sub.version = c.version
	}
	c.subcommands = append(c.subcommands, sub)
	return c
}

// Group attaches g to this command.
func (c *Command) Group(g *ArgGroup) *Command {
	c.groups = append(c.groups, g)
	return c
}

// --- lookups ---

// FindArg returns the user-declared arg with the given id. It does not
// see the synthesized --help/--version args, which the parser computes
// fresh on every parse rather than caching on the Command — caching them
// here would mean mutating shared state across concurrent GetMatches
// calls on a tree meant to be read-only while parsing is in flight.
func (c *Command) FindArg(id string) *Arg {
	for _, a := range c.args {
		if a.id == id {
			return a
		}
	}
	return nil
}

func (c *Command) findArgByShort(r rune) *Arg {
	for _, a := range c.args {
		if a.MatchesShort(r) {
			return a
		}
	}
	return nil
}

func (c *Command) findArgByLong(name string) *Arg {
	for _, a := range c.args {
		if a.MatchesLong(name) {
			return a
		}
	}
	return nil
}

// longArgsWithPrefix returns every arg whose long flag starts with prefix,
// used by the [SettingInferLongArgs] path.
func (c *Command) longArgsWithPrefix(prefix string) []*Arg {
	var out []*Arg
	for _, a := range c.args {
		if a.long != "" && len(a.long) >= len(prefix) && a.long[:len(prefix)] == prefix {
			out = append(out, a)
		}
	}
	return out
}

// FindSubcommand looks up a subcommand by name or (possibly hidden) alias.
func (c *Command) FindSubcommand(name string) *Command {
	for _, sub := range c.subcommands {
		if sub.name == name {
			return sub
		}
		for _, alias := range sub.aliases {
			if alias == name {
				return sub
			}
		}
		for _, alias := range sub.hiddenAliases {
			if alias == name {
				return sub
			}
		}
	}
	return nil
}

// findSubcommandByPrefix returns the unique subcommand whose name is
// prefixed by name, or nil if there is not exactly one match. Used by
// [SettingInferSubcommands].
func (c *Command) findSubcommandByPrefix(name string) *Command {
	var match *Command
	count := 0
	for _, sub := range c.subcommands {
		if len(sub.name) >= len(name) && sub.name[:len(name)] == name {
			match = sub
			count++
		}
	}
	if count == 1 {
		return match
	}
	return nil
}

// PositionalArgs returns all positional args, sorted by index.
func (c *Command) PositionalArgs() []*Arg {
	var out []*Arg
	for _, a := range c.args {
		if a.IsPositional() {
			out = append(out, a)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].index < out[i].index {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// groupMembers returns the deduplicated union of g's own member list and
// every attached arg that named g.id via [*Arg.InGroups] — membership may
// be declared from either side, group or arg.
func (c *Command) groupMembers(g *ArgGroup) []string {
	seen := map[string]bool{}
	var out []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range g.args {
		add(id)
	}
	for _, a := range c.args {
		for _, gid := range a.groups {
			if gid == g.id {
				add(a.id)
			}
		}
	}
	return out
}

// OptionalArgs returns all non-positional args.
func (c *Command) OptionalArgs() []*Arg {
	var out []*Arg
	for _, a := range c.args {
		if !a.IsPositional() {
			out = append(out, a)
		}
	}
	return out
}

// FullName returns the space-joined chain from the root command to this
// one, preferring each node's display name over its name.
func (c *Command) FullName() string {
	name := c.displayName
	if name == "" {
		name = c.name
	}
	if c.parent == nil {
		return name
	}
	return c.parent.FullName() + " " + name
}

// Name returns the command's bare name (as used for subcommand lookup).
func (c *Command) Name() string { return c.name }

// Version returns the effective version string (after propagate_version
// inheritance, which is resolved at [*Command.Subcommand] time).
func (c *Command) Version() string { return c.version }

// BriefDescription returns the about text, for use by the action runner
// and the help formatter.
func (c *Command) BriefDescription() string { return c.about }

// --- orchestration ---

// GetMatches parses argv (which must NOT include the program name)
// against this command tree and runs the fixed-order validator. It
// returns the populated [*ArgMatches] on success.
func (c *Command) GetMatches(argv []string) (*ArgMatches, error) {
	matches, err := newParserRun(c, nil, nil).parse(argv)
	if err != nil {
		return nil, err
	}
	if err := validate(c, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Execute parses argv and, on success, invokes the action handler of the
// deepest selected subcommand (or this command's own, if none was
// selected), mirroring the teacher's DispatcherCommand recursive dispatch.
func (c *Command) Execute(argv []string) error {
	matches, err := c.GetMatches(argv)
	if err != nil {
		return err
	}
	return c.dispatch(matches)
}

func (c *Command) dispatch(matches *ArgMatches) error {
	if sub, ok := matches.Subcommand(); ok {
		child := c.FindSubcommand(sub.Name)
		if child != nil {
			return child.dispatch(sub.Matches)
		}
	}
	if c.actionHandler != nil {
		return c.actionHandler(matches)
	}
	return nil
}
