// help.go - usage/help text rendering.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import (
	"fmt"
	"strings"

	"github.com/bassosimone/textwrap"
)

const helpWrapWidth = 80

// RenderHelp renders the usage/help text for this command, in the style
// of a clap-like derive(Parser) tool: a Usage line, then Arguments and
// Options sections, then Commands if any subcommands are attached.
func (c *Command) RenderHelp() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Usage: %s", c.FullName())
	if len(c.OptionalArgs()) > 0 {
		fmt.Fprint(&sb, " [OPTIONS]")
	}
	for _, a := range c.PositionalArgs() {
		fmt.Fprintf(&sb, " %s", positionalPlaceholder(a))
	}
	if len(c.subcommands) > 0 {
		fmt.Fprint(&sb, " [COMMAND]")
	}
	fmt.Fprint(&sb, "\n")

	if c.about != "" {
		fmt.Fprintf(&sb, "\n%s\n", textwrap.Do(c.about, helpWrapWidth, ""))
	}

	if c.beforeHelp != "" {
		fmt.Fprintf(&sb, "\n%s\n", textwrap.Do(c.beforeHelp, helpWrapWidth, ""))
	}

	if positionals := c.PositionalArgs(); len(positionals) > 0 {
		fmt.Fprint(&sb, "\nArguments:\n")
		for _, a := range positionals {
			if a.hidden {
				continue
			}
			writeHelpEntry(&sb, positionalPlaceholder(a), a)
		}
	}

	if opts := c.helpOrderedOptions(); len(opts) > 0 {
		fmt.Fprint(&sb, "\nOptions:\n")
		for _, a := range opts {
			if a.hidden {
				continue
			}
			writeHelpEntry(&sb, optionHeading(a), a)
		}
	}

	if subs := c.subcommands; len(subs) > 0 {
		fmt.Fprint(&sb, "\nCommands:\n")
		for _, sub := range subs {
			fmt.Fprintf(&sb, "  %-20s %s\n", sub.name, sub.about)
		}
	}

	if c.afterHelp != "" {
		fmt.Fprintf(&sb, "\n%s\n", textwrap.Do(c.afterHelp, helpWrapWidth, ""))
	}

	if !c.Has(SettingHideAuthor) && c.author != "" {
		fmt.Fprintf(&sb, "\nAuthor: %s\n", c.author)
	}

	return sb.String()
}

// helpOrderedOptions returns the command's optional args, sorted
// alphabetically by display name unless [SettingDeriveDisplayOrder] is
// set, in which case they keep declaration order.
func (c *Command) helpOrderedOptions() []*Arg {
	opts := c.OptionalArgs()
	if c.Has(SettingDeriveDisplayOrder) {
		return opts
	}
	out := append([]*Arg(nil), opts...)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].DisplayName() < out[i].DisplayName() {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func positionalPlaceholder(a *Arg) string {
	name := a.id
	if len(a.valueNames) > 0 {
		name = a.valueNames[0]
	}
	if a.required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

func optionHeading(a *Arg) string {
	var parts []string
	if a.short != 0 {
		parts = append(parts, "-"+string(a.short))
	}
	if a.long != "" {
		parts = append(parts, "--"+a.long)
	}
	heading := strings.Join(parts, ", ")
	if a.TakesValue() {
		name := a.id
		if len(a.valueNames) > 0 {
			name = a.valueNames[0]
		}
		heading += " <" + name + ">"
	}
	return heading
}

func writeHelpEntry(sb *strings.Builder, heading string, a *Arg) {
	fmt.Fprintf(sb, "  %-24s", heading)
	desc := helpDescription(a)
	if desc == "" {
		fmt.Fprint(sb, "\n")
		return
	}
	if len(heading) >= 24 {
		fmt.Fprintf(sb, "\n%s", textwrap.Do(desc, helpWrapWidth, "    "))
		fmt.Fprint(sb, "\n")
		return
	}
	fmt.Fprintf(sb, " %s\n", desc)
}

func helpDescription(a *Arg) string {
	var parts []string
	if !a.hidePossibleValues {
		if values, ok := a.valueParser.PossibleValues(); ok && len(values) > 0 {
			parts = append(parts, "["+strings.Join(values, ", ")+"]")
		}
	}
	if !a.hideDefaultValue && a.defaultValue != nil {
		parts = append(parts, fmt.Sprintf("[default: %s]", *a.defaultValue))
	}
	if a.envVar != "" {
		parts = append(parts, fmt.Sprintf("[env: %s]", a.envVar))
	}
	return strings.Join(parts, " ")
}
