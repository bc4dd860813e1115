// validator.go - fixed-order post-parse validation.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import "fmt"

// validate runs the fixed ten-step validation order against matches,
// then recurses into the selected subcommand's own matches, if any.
// [*Command.GetMatches] calls this once the [Parser] has returned
// successfully.
func validate(cmd *Command, matches *ArgMatches) error {
	// 1. required args
	for _, a := range cmd.args {
		if a.required && !matches.Contains(a.id) {
			return &MissingRequiredArgumentError{ID: a.id}
		}
	}

	// 2. required groups
	for _, g := range cmd.groups {
		if !g.required {
			continue
		}
		satisfied := false
		for _, id := range cmd.groupMembers(g) {
			if matches.Contains(id) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return &MissingRequiredGroupError{GroupID: g.id}
		}
	}

	// 3. conflicts
	for _, a := range cmd.args {
		if !matches.Contains(a.id) {
			continue
		}
		for _, other := range a.conflicts {
			if matches.Contains(other) {
				return &ArgumentConflictError{A: a.id, B: other}
			}
		}
	}

	// 4. requires
	for _, a := range cmd.args {
		if !matches.Contains(a.id) {
			continue
		}
		for _, other := range a.requires {
			if !matches.Contains(other) {
				return &MissingDependencyError{ID: a.id, Requires: other}
			}
		}
	}

	// 5. group conflicts/requires
	for _, g := range cmd.groups {
		members := cmd.groupMembers(g)
		present := false
		for _, id := range members {
			if matches.Contains(id) {
				present = true
				break
			}
		}
		if !present {
			continue
		}
		for _, other := range g.conflictsWith {
			if matches.Contains(other) {
				return &ArgumentConflictError{A: g.id, B: other}
			}
		}
		for _, other := range g.requires {
			if !matches.Contains(other) {
				return &MissingDependencyError{ID: g.id, Requires: other}
			}
		}
	}

	// 6. conditional required_if
	for _, a := range cmd.args {
		for _, cond := range a.requiredIf {
			if !matches.Contains(cond.id) {
				continue
			}
			v, _ := matches.GetOne(cond.id)
			if fmt.Sprint(v) != cond.value {
				continue
			}
			if !matches.Contains(a.id) {
				return &MissingRequiredArgumentError{
					ID:      a.id,
					Context: fmt.Sprintf("required because '%s' is '%s'", cond.id, cond.value),
				}
			}
		}
	}

	// 7. required_unless
	for _, a := range cmd.args {
		if len(a.requiredUnless) == 0 || matches.Contains(a.id) {
			continue
		}
		satisfied := false
		for _, other := range a.requiredUnless {
			if matches.Contains(other) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return &MissingRequiredArgumentError{ID: a.id}
		}
	}

	// 8. value counts
	for _, a := range cmd.args {
		if a.IsFlag() || !matches.Contains(a.id) {
			continue
		}
		n := len(matches.GetRaw(a.id))
		if n < a.numArgs.Min {
			return &TooFewValuesError{ID: a.id, Bound: a.numArgs.Min, Actual: n}
		}
		if !a.numArgs.IsUnbounded() && n > a.numArgs.Max {
			return &TooManyValuesError{ID: a.id, Bound: a.numArgs.Max, Actual: n}
		}
	}

	// 9. group exclusivity
	for _, g := range cmd.groups {
		if !g.IsExclusive() {
			continue
		}
		var present []string
		for _, id := range cmd.groupMembers(g) {
			if matches.Contains(id) {
				present = append(present, id)
			}
		}
		if len(present) > 1 {
			return &ArgumentConflictError{A: present[0], B: present[1]}
		}
	}

	// 10. subcommand requirement
	if cmd.Has(SettingSubcommandRequired) && len(cmd.subcommands) > 0 {
		if _, ok := matches.Subcommand(); !ok {
			if cmd.Has(SettingArgRequiredElseHelp) && matches.Empty() {
				return newDisplayHelp(cmd.RenderHelp())
			}
			return &MissingSubcommandError{}
		}
	}

	if sub, ok := matches.Subcommand(); ok {
		if child := cmd.FindSubcommand(sub.Name); child != nil {
			return validate(child, sub.Matches)
		}
	}
	return nil
}
