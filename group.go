// group.go - named group of arg ids with joint required/exclusive semantics.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

// ArgGroup is a named set of arg ids with group-level required and
// exclusivity semantics, validated by the validator after a successful
// parse.
type ArgGroup struct {
	id       string
	args     []string
	required bool
	multiple bool

	conflictsWith []string
	requires      []string
}

// NewGroup creates a new [*ArgGroup] with the given id.
func NewGroup(id string) *ArgGroup {
	return &ArgGroup{id: id}
}

// ID returns the group's id.
func (g *ArgGroup) ID() string { return g.id }

// WithArgs appends arg ids to the group.
func (g *ArgGroup) WithArgs(ids ...string) *ArgGroup {
	g.args = append(g.args, ids...)
	return g
}

// WithRequired marks the group as requiring at least one present member.
func (g *ArgGroup) WithRequired(v bool) *ArgGroup { g.required = v; return g }

// WithMultiple controls exclusivity: when false (the default), the
// group's members are mutually exclusive — at most one may be present.
func (g *ArgGroup) WithMultiple(v bool) *ArgGroup { g.multiple = v; return g }

// ConflictsWith records ids that must not be present alongside any member
// of this group.
func (g *ArgGroup) ConflictsWith(ids ...string) *ArgGroup {
	g.conflictsWith = append(g.conflictsWith, ids...)
	return g
}

// Requires records ids that must be present whenever any member of this
// group is present.
func (g *ArgGroup) Requires(ids ...string) *ArgGroup {
	g.requires = append(g.requires, ids...)
	return g
}

// Args returns the group's member arg ids.
func (g *ArgGroup) Args() []string { return g.args }

// IsExclusive reports whether at most one member may be present.
func (g *ArgGroup) IsExclusive() bool { return !g.multiple }
