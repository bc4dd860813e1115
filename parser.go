// parser.go - the tokenizer state machine.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/flagforge/clap/internal/assert"
	"github.com/flagforge/clap/internal/scanner"
	"github.com/flagforge/clap/internal/suggest"
	"github.com/flagforge/clap/valueparser"
)

// parserRun holds the mutable state of one parser invocation, scoped to
// a single [*Command] (the root or a subcommand reached by recursion).
//
// Mirrors the teacher's layering: a [scanner.Scanner] does the coarse
// token classification, and parserRun interprets that stream against the
// live Command description, exactly as pkg/nflag.FlagSet interprets
// pkg/nparser's Value stream in the teacher.
type parserRun struct {
	cmd     *Command
	matches *ArgMatches

	positionalIdx int
	trailing      bool

	currentArg *Arg
	pending    []string

	// helpArg/versionArg are synthesized fresh for every parse — never
	// cached on the Command — so that concurrent GetMatches calls never
	// mutate shared state (see §5's concurrency model).
	helpArg    *Arg
	versionArg *Arg
}

// newParserRun creates a [*parserRun] for cmd, seeded with values/flags
// inherited from a parent's matches for cmd's global args.
func newParserRun(cmd *Command, inheritedValues map[string][]MatchedValue, inheritedFlags map[string]uint32) *parserRun {
	pr := &parserRun{cmd: cmd, matches: newArgMatches()}
	pr.setupBuiltins()
	pr.applyInherited(inheritedValues, inheritedFlags)
	return pr
}

// setupBuiltins synthesizes --help/-h and --version/-V, steps 1-2 of the
// spec's setup phase.
func (pr *parserRun) setupBuiltins() {
	if !pr.cmd.Has(SettingDisableHelpFlag) && pr.cmd.FindArg("help") == nil {
		pr.helpArg = NewArg("help").WithShort('h').WithLong("help").WithAction(ActionHelp)
	}
	if pr.cmd.version != "" && !pr.cmd.Has(SettingDisableVersionFlag) && pr.cmd.FindArg("version") == nil {
		pr.versionArg = NewArg("version").WithShort('V').WithLong("version").WithAction(ActionVersion)
	}
}

// applyInherited implements setup-phase step 3: inherited values/flags
// always land with source [SourceDefault], even if the parent saw them
// on its own command line — only the subcommand's OWN command line can
// earn a value [SourceCommandLine] tag.
func (pr *parserRun) applyInherited(values map[string][]MatchedValue, flags map[string]uint32) {
	for id, vs := range values {
		for _, v := range vs {
			pr.matches.appendValue(id, v.Value, SourceDefault)
		}
	}
	for id, count := range flags {
		for i := uint32(0); i < count; i++ {
			pr.matches.incrementFlag(id, SourceDefault)
		}
	}
}

// parse runs the full Parser algorithm over argv (which must NOT include
// the program name) and returns the populated matches.
//
// Deviating slightly from the letter of the distilled spec's setup-phase
// ordering (env/default application listed as steps 4-5 "before the
// token walk", which cannot be literally true since they test
// command-line presence): this implementation applies env and defaults
// AFTER the token walk, which is the only ordering that actually realizes
// the documented "command-line > env > default" precedence.
func (pr *parserRun) parse(argv []string) (*ArgMatches, error) {
	argvWithProg := make([]string, 0, len(argv)+1)
	argvWithProg = append(argvWithProg, pr.cmd.name)
	argvWithProg = append(argvWithProg, argv...)

	sc := &scanner.Scanner{Prefixes: []string{"--", "-"}, Separator: "--"}
	tokens, err := sc.Scan(argvWithProg)
	assert.True(err == nil, "scanner requires a non-empty argv")
	tokens = tokens[1:]

	if err := pr.runTokens(tokens); err != nil {
		return nil, err
	}
	pr.applyEnvAndDefaults()
	return pr.matches, nil
}

var negativeNumberPattern = regexp.MustCompile(`^-\d+(\.\d+)?$`)

func isNegativeNumber(token string) bool {
	return negativeNumberPattern.MatchString(token)
}

// runTokens is the token loop described by the spec's §4.5 table.
func (pr *parserRun) runTokens(tokens []scanner.Token) error {
	i := 0
	for i < len(tokens) {
		switch tok := tokens[i].(type) {

		case scanner.ProgramNameToken:
			i++

		case scanner.SeparatorToken:
			if pr.trailing {
				pr.matches.addTrailing([]string{tok.String()})
				i++
				continue
			}
			if err := pr.flush(); err != nil {
				return err
			}
			pr.trailing = true
			i++

		case scanner.OptionToken:
			if pr.trailing {
				pr.matches.addTrailing([]string{tok.String()})
				i++
				continue
			}
			if tok.Prefix == "-" && pr.cmd.Has(SettingAllowNegativeNumbers) && isNegativeNumber(tok.String()) {
				next, err := pr.handlePlainToken(tokens, i, tok.String())
				if err != nil {
					return err
				}
				i = next
				continue
			}
			if err := pr.flush(); err != nil {
				return err
			}
			var err error
			if tok.Prefix == "--" {
				err = pr.handleLong(tok)
			} else {
				err = pr.handleShortCluster(tok)
			}
			if err != nil {
				return err
			}
			i++

		case scanner.ArgumentToken:
			if pr.trailing {
				pr.matches.addTrailing([]string{tok.Value})
				i++
				continue
			}
			next, err := pr.handlePlainToken(tokens, i, tok.Value)
			if err != nil {
				return err
			}
			i = next
		}
	}
	return pr.flush()
}

// handlePlainToken implements the "any, with current_arg set" / "any,
// else" rows: feed the value accumulator, or dispatch positional/subcommand.
func (pr *parserRun) handlePlainToken(tokens []scanner.Token, i int, value string) (int, error) {
	if pr.currentArg != nil {
		pr.pending = append(pr.pending, value)
		if !pr.currentArg.numArgs.IsUnbounded() && len(pr.pending) >= pr.currentArg.numArgs.Max {
			if err := pr.flush(); err != nil {
				return i + 1, err
			}
		}
		return i + 1, nil
	}
	return pr.handlePositionalOrSubcommand(tokens, i, value)
}

// handleLong implements the long-option path for `--X` or `--X=V`.
func (pr *parserRun) handleLong(tok scanner.OptionToken) error {
	name := tok.Name
	var attached string
	hasAttached := false
	if eq := strings.IndexByte(name, '='); eq >= 0 {
		attached = name[eq+1:]
		name = name[:eq]
		hasAttached = true
	}

	arg := pr.cmd.findArgByLong(name)
	if arg == nil {
		switch {
		case name == "help" && pr.helpArg != nil:
			arg = pr.helpArg
		case name == "version" && pr.versionArg != nil:
			arg = pr.versionArg
		}
	}
	if arg == nil && pr.cmd.Has(SettingInferLongArgs) {
		if candidates := pr.cmd.longArgsWithPrefix(name); len(candidates) == 1 {
			arg = candidates[0]
		}
	}
	if arg == nil {
		return &UnknownArgumentError{
			Raw:         "--" + tok.Name,
			Suggestions: suggest.Names("--"+name, pr.longSuggestionPool()),
		}
	}

	if arg.action.isFlagAction() {
		// Open question (spec §9): an attached value on a flag-action
		// long option is silently ignored, never rejected.
		return pr.performAction(arg)
	}

	pr.currentArg = arg
	if hasAttached {
		pr.pending = []string{attached}
		if !arg.numArgs.IsUnbounded() && len(pr.pending) >= arg.numArgs.Max {
			return pr.flush()
		}
		return nil
	}
	pr.pending = nil
	return nil
}

// handleShortCluster implements the short-option cluster path for `-XYZ…`.
func (pr *parserRun) handleShortCluster(tok scanner.OptionToken) error {
	runes := []rune(tok.Name)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		arg := pr.cmd.findArgByShort(r)
		if arg == nil {
			switch {
			case r == 'h' && pr.helpArg != nil:
				arg = pr.helpArg
			case r == 'V' && pr.versionArg != nil:
				arg = pr.versionArg
			}
		}
		if arg == nil {
			return &UnknownArgumentError{
				Raw:         "-" + string(r),
				Suggestions: suggest.Names("-"+string(r), pr.longSuggestionPool()),
			}
		}

		if arg.action.isFlagAction() {
			if err := pr.performAction(arg); err != nil {
				return err
			}
			continue
		}

		pr.currentArg = arg
		if rest := string(runes[i+1:]); rest != "" {
			pr.pending = []string{rest}
			if !arg.numArgs.IsUnbounded() && len(pr.pending) >= arg.numArgs.Max {
				return pr.flush()
			}
			return nil
		}
		pr.pending = nil
		return nil
	}
	return nil
}

// performAction runs a flag-action's effect immediately.
func (pr *parserRun) performAction(arg *Arg) error {
	switch arg.action {
	case ActionHelp:
		return newDisplayHelp(pr.cmd.RenderHelp())
	case ActionVersion:
		v := pr.cmd.version
		if v == "" {
			v = "dev"
		}
		return newDisplayVersion(v + "\n")
	case ActionSetTrue:
		pr.matches.setFlag(arg.id, true, SourceCommandLine)
	case ActionSetFalse:
		pr.matches.setFlag(arg.id, false, SourceCommandLine)
	case ActionCount:
		pr.matches.incrementFlag(arg.id, SourceCommandLine)
	}
	return nil
}

// handlePositionalOrSubcommand implements the positional/subcommand path.
func (pr *parserRun) handlePositionalOrSubcommand(tokens []scanner.Token, i int, value string) (int, error) {
	if len(pr.cmd.subcommands) > 0 {
		sub := pr.cmd.FindSubcommand(value)
		if sub == nil && pr.cmd.Has(SettingInferSubcommands) {
			sub = pr.cmd.findSubcommandByPrefix(value)
		}
		if sub != nil {
			remaining := rawStrings(tokens[i+1:])
			inheritedValues, inheritedFlags := pr.gatherInheritable()
			child := newParserRun(sub, inheritedValues, inheritedFlags)
			childMatches, err := child.parse(remaining)
			if err != nil {
				return len(tokens), err
			}
			pr.matches.setSubcommand(value, childMatches)
			return len(tokens), nil
		}
	}

	positionals := pr.cmd.PositionalArgs()
	if pr.positionalIdx < len(positionals) {
		arg := positionals[pr.positionalIdx]
		v, err := arg.valueParser.Parse(value)
		if err != nil {
			return i + 1, wrapInvalidValue(arg, value, err)
		}
		if arg.action == ActionAppend || arg.allowMultiple {
			pr.matches.appendValue(arg.id, v, SourceCommandLine)
		} else {
			pr.matches.setValue(arg.id, v, SourceCommandLine)
			pr.positionalIdx++
		}
		return i + 1, nil
	}

	if len(pr.cmd.subcommands) > 0 {
		return len(tokens), &InvalidSubcommandError{
			Name:        value,
			Suggestions: suggest.Names(value, pr.subcommandNames()),
		}
	}
	return len(tokens), &UnknownArgumentError{
		Raw:         value,
		Suggestions: suggest.Names(value, pr.longSuggestionPool()),
	}
}

// gatherInheritable collects values/flags for every global arg on pr.cmd,
// to seed a child subcommand parser.
func (pr *parserRun) gatherInheritable() (map[string][]MatchedValue, map[string]uint32) {
	values := map[string][]MatchedValue{}
	flags := map[string]uint32{}
	for _, a := range pr.cmd.args {
		if !a.global {
			continue
		}
		if vs := pr.matches.GetRaw(a.id); len(vs) > 0 {
			values[a.id] = vs
		}
		if c := pr.matches.GetCount(a.id); c > 0 {
			flags[a.id] = c
		}
	}
	return values, flags
}

// flush implements the spec's flush algorithm.
func (pr *parserRun) flush() error {
	arg := pr.currentArg
	if arg == nil {
		return nil
	}
	pending := pr.pending
	pr.currentArg, pr.pending = nil, nil

	if len(pending) == 0 {
		switch {
		case arg.defaultMissingValue != nil:
			pending = []string{*arg.defaultMissingValue}
		case arg.numArgs.Min > 0:
			return &TooFewValuesError{ID: arg.id, Bound: arg.numArgs.Min, Actual: 0}
		default:
			return nil
		}
	}

	// value_delimiter is applied to the raw token BEFORE parsing (spec
	// §9's recommended resolution of its own open question).
	raw := pending
	if arg.valueDelimiter != 0 {
		raw = nil
		for _, p := range pending {
			raw = append(raw, strings.Split(p, string(arg.valueDelimiter))...)
		}
	}

	values := make([]any, 0, len(raw))
	for _, token := range raw {
		v, err := arg.valueParser.Parse(token)
		if err != nil {
			return wrapInvalidValue(arg, token, err)
		}
		values = append(values, v)
	}

	switch arg.action {
	case ActionAppend:
		for _, v := range values {
			pr.matches.appendValue(arg.id, v, SourceCommandLine)
		}
	default:
		// ActionSet: last-wins, per spec §9's documented Open Question.
		for _, v := range values {
			pr.matches.setValue(arg.id, v, SourceCommandLine)
		}
	}
	return nil
}

// applyEnvAndDefaults implements setup-phase steps 4-5, run after the
// token walk so that "not already present" correctly means "not bound by
// the command line" (see [*parserRun.parse]'s doc comment).
func (pr *parserRun) applyEnvAndDefaults() {
	for _, a := range pr.cmd.args {
		if a.envVar == "" || pr.matches.Contains(a.id) {
			continue
		}
		raw, ok := os.LookupEnv(a.envVar)
		if !ok || raw == "" {
			continue
		}
		if v, err := a.valueParser.Parse(raw); err == nil {
			pr.matches.setValue(a.id, v, SourceEnv)
		}
	}
	for _, a := range pr.cmd.args {
		if a.defaultValue == nil || pr.matches.Contains(a.id) {
			continue
		}
		v, err := a.valueParser.Parse(*a.defaultValue)
		if err != nil {
			v = *a.defaultValue
		}
		pr.matches.setValue(a.id, v, SourceDefault)
	}
}

func (pr *parserRun) longSuggestionPool() []string {
	var out []string
	for _, a := range pr.cmd.args {
		if a.hidden {
			continue
		}
		out = append(out, a.DisplayName())
	}
	if pr.helpArg != nil {
		out = append(out, pr.helpArg.DisplayName())
	}
	if pr.versionArg != nil {
		out = append(out, pr.versionArg.DisplayName())
	}
	return out
}

func (pr *parserRun) subcommandNames() []string {
	out := make([]string, 0, len(pr.cmd.subcommands))
	for _, sub := range pr.cmd.subcommands {
		out = append(out, sub.name)
	}
	return out
}

func rawStrings(tokens []scanner.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.String())
	}
	return out
}

func wrapInvalidValue(arg *Arg, raw string, err error) error {
	var ive *valueparser.InvalidValueError
	if errors.As(err, &ive) {
		return &InvalidValueError{ID: arg.id, Raw: ive.Raw, Expected: ive.Expected}
	}
	return &InvalidValueError{ID: arg.id, Raw: raw, Expected: arg.valueParser.TypeName()}
}
