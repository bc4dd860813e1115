// help_test.go - help rendering tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import "testing"

func TestRenderHelpIncludesUsageAndSections(t *testing.T) {
	cmd := NewCommand("greet").
		WithAbout("Greets someone by name.").
		Arg(NewArg("name").WithLong("name").WithShort('n').WithDefault("world")).
		Arg(NewPositional("target", autoIndex).WithRequired(true)).
		Subcommand(NewCommand("hello").WithAbout("say hello"))

	out := cmd.RenderHelp()

	for _, want := range []string{
		"Usage: greet",
		"Greets someone by name.",
		"Options:",
		"-n, --name",
		"[default: world]",
		"Arguments:",
		"<target>",
		"Commands:",
		"hello",
	} {
		if !contains(out, want) {
			t.Errorf("RenderHelp() missing %q, got:\n%s", want, out)
		}
	}
}

func TestRenderHelpHidesHiddenArgs(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("secret").WithLong("secret").WithHidden(true))
	out := cmd.RenderHelp()
	if contains(out, "secret") {
		t.Errorf("RenderHelp() should not mention hidden arg, got:\n%s", out)
	}
}

func TestRenderHelpOptionOrder(t *testing.T) {
	build := func(settings ...Setting) *Command {
		cmd := NewCommand("x").
			Arg(NewFlag("zebra").WithLong("zebra")).
			Arg(NewFlag("alpha").WithLong("alpha"))
		if len(settings) > 0 {
			cmd.WithSettings(settings...)
		}
		return cmd
	}

	t.Run("alphabetical by default", func(t *testing.T) {
		out := build().RenderHelp()
		if indexOf(out, "--alpha") > indexOf(out, "--zebra") {
			t.Errorf("expected --alpha before --zebra, got:\n%s", out)
		}
	})

	t.Run("declaration order with derive_display_order", func(t *testing.T) {
		out := build(SettingDeriveDisplayOrder).RenderHelp()
		if indexOf(out, "--zebra") > indexOf(out, "--alpha") {
			t.Errorf("expected --zebra before --alpha (declaration order), got:\n%s", out)
		}
	})
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
