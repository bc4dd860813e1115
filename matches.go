// matches.go - structured, source-tagged parse result.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

// ValueSource tags where a bound value came from.
type ValueSource int

// The recognized value sources, declared in precedence order from low to
// high: CommandLine beats Env beats Default.
const (
	SourceDefault ValueSource = iota
	SourceEnv
	SourceCommandLine
)

// String implements [fmt.Stringer].
func (s ValueSource) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceEnv:
		return "env"
	case SourceCommandLine:
		return "command-line"
	default:
		return "none"
	}
}

// MatchedValue is one value bound to an arg, tagged with its provenance.
type MatchedValue struct {
	Value  any
	Source ValueSource
}

// SubcommandMatch pairs a selected subcommand's name with its own matches.
type SubcommandMatch struct {
	Name    string
	Matches *ArgMatches
}

// ArgMatches is the structured result of a successful parse. It is
// created empty by the parser, populated monotonically while parsing
// and validating, and never mutated again once [*Command.GetMatches]
// returns it to the caller.
type ArgMatches struct {
	values  map[string][]MatchedValue
	flags   map[string]uint32
	present map[string]struct{}

	subcommand *SubcommandMatch
	trailing   []string
}

// newArgMatches returns an empty, ready-to-populate [*ArgMatches].
func newArgMatches() *ArgMatches {
	return &ArgMatches{
		values:  map[string][]MatchedValue{},
		flags:   map[string]uint32{},
		present: map[string]struct{}{},
	}
}

// --- read API ---

// GetOne returns the last bound value for id, if any.
func (m *ArgMatches) GetOne(id string) (any, bool) {
	vs, ok := m.values[id]
	if !ok || len(vs) == 0 {
		return nil, false
	}
	return vs[len(vs)-1].Value, true
}

// GetOneOr is like [*ArgMatches.GetOne] but returns def when absent.
func (m *ArgMatches) GetOneOr(id string, def any) any {
	if v, ok := m.GetOne(id); ok {
		return v
	}
	return def
}

// GetOneString is a convenience wrapper around [*ArgMatches.GetOne] for
// the common case of a string-valued arg.
func (m *ArgMatches) GetOneString(id string) (string, bool) {
	v, ok := m.GetOne(id)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetMany returns all values bound to id, in insertion order (across
// repeated occurrences and across delimiter splits).
func (m *ArgMatches) GetMany(id string) []any {
	vs, ok := m.values[id]
	if !ok {
		return nil
	}
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Value)
	}
	return out
}

// GetCount returns the occurrence count recorded for Count/SetTrue/SetFalse
// actions.
func (m *ArgMatches) GetCount(id string) uint32 { return m.flags[id] }

// Flag reports whether id's occurrence count is greater than zero.
func (m *ArgMatches) Flag(id string) bool { return m.flags[id] > 0 }

// Contains reports whether id is present: it has bound values, a nonzero
// flag count, or was explicitly toggled (e.g. SetFalse).
func (m *ArgMatches) Contains(id string) bool {
	_, ok := m.present[id]
	return ok
}

// ValueSource returns the provenance of id's last-bound value, or
// (_, false) if id is absent.
func (m *ArgMatches) ValueSource(id string) (ValueSource, bool) {
	vs, ok := m.values[id]
	if !ok || len(vs) == 0 {
		return SourceDefault, false
	}
	return vs[len(vs)-1].Source, true
}

// Subcommand returns the selected subcommand's name and matches, if any.
func (m *ArgMatches) Subcommand() (*SubcommandMatch, bool) {
	if m.subcommand == nil {
		return nil, false
	}
	return m.subcommand, true
}

// SubcommandName returns the selected subcommand's name, or "".
func (m *ArgMatches) SubcommandName() string {
	if m.subcommand == nil {
		return ""
	}
	return m.subcommand.Name
}

// SubcommandMatches returns the matches for the subcommand named name, or
// for whichever subcommand was selected if name is "".
func (m *ArgMatches) SubcommandMatches(name string) (*ArgMatches, bool) {
	if m.subcommand == nil {
		return nil, false
	}
	if name != "" && m.subcommand.Name != name {
		return nil, false
	}
	return m.subcommand.Matches, true
}

// GetRaw returns the raw, source-tagged values bound to id.
func (m *ArgMatches) GetRaw(id string) []MatchedValue { return m.values[id] }

// IDs returns the ids with any recorded presence (values or flag counts).
func (m *ArgMatches) IDs() []string {
	out := make([]string, 0, len(m.present))
	for id := range m.present {
		out = append(out, id)
	}
	return out
}

// Empty reports whether nothing at all was bound.
func (m *ArgMatches) Empty() bool {
	return len(m.present) == 0 && m.subcommand == nil && len(m.trailing) == 0
}

// Trailing returns the tokens that appeared after a `--` separator.
func (m *ArgMatches) Trailing() []string { return m.trailing }

// --- write API (parser/validator internal) ---

func (m *ArgMatches) setValue(id string, v any, src ValueSource) {
	m.values[id] = []MatchedValue{{Value: v, Source: src}}
	m.markPresent(id)
}

func (m *ArgMatches) appendValue(id string, v any, src ValueSource) {
	m.values[id] = append(m.values[id], MatchedValue{Value: v, Source: src})
	m.markPresent(id)
}

func (m *ArgMatches) setValues(id string, vs []any, src ValueSource) {
	out := make([]MatchedValue, 0, len(vs))
	for _, v := range vs {
		out = append(out, MatchedValue{Value: v, Source: src})
	}
	m.values[id] = out
	m.markPresent(id)
}

func (m *ArgMatches) incrementFlag(id string, src ValueSource) {
	m.flags[id]++
	m.markPresent(id)
	_ = src // occurrence count alone suffices for Count; no typed value stored.
}

// setFlag records a SetTrue/SetFalse toggle: it stores the boolean as a
// typed value (so GetOne(id) returns a bool) and bumps the occurrence
// counter only when v is true, matching the spec's description of
// SetFalse as something that can leave the counter at zero while still
// marking the arg present.
func (m *ArgMatches) setFlag(id string, v bool, src ValueSource) {
	if v {
		m.flags[id]++
	}
	m.values[id] = []MatchedValue{{Value: v, Source: src}}
	m.markPresent(id)
}

func (m *ArgMatches) setSubcommand(name string, matches *ArgMatches) {
	m.subcommand = &SubcommandMatch{Name: name, Matches: matches}
}

func (m *ArgMatches) addTrailing(vs []string) {
	m.trailing = append(m.trailing, vs...)
}

func (m *ArgMatches) markPresent(id string) {
	m.present[id] = struct{}{}
}
