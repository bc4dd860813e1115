// parser_test.go - end-to-end parsing scenarios.
// SPDX-License-Identifier: GPL-3.0-or-later

package clap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetMatchesBasicSetAndFlag(t *testing.T) {
	cmd := NewCommand("greet").
		Arg(NewArg("name").WithLong("name").WithShort('n')).
		Arg(NewFlag("loud").WithLong("loud"))

	matches, err := cmd.GetMatches([]string{"--name", "world", "--loud"})
	if err != nil {
		t.Fatal(err)
	}

	name, _ := matches.GetOneString("name")
	if name != "world" {
		t.Errorf("name = %q, want %q", name, "world")
	}
	if !matches.Flag("loud") {
		t.Error("loud flag not set")
	}
	if src, _ := matches.ValueSource("name"); src != SourceCommandLine {
		t.Errorf("ValueSource(name) = %v, want SourceCommandLine", src)
	}
}

func TestGetMatchesAttachedLongValue(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("name").WithLong("name"))
	matches, err := cmd.GetMatches([]string{"--name=bob"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := matches.GetOneString("name"); got != "bob" {
		t.Errorf("name = %q, want bob", got)
	}
}

func TestGetMatchesShortCluster(t *testing.T) {
	cmd := NewCommand("x").
		Arg(NewFlag("verbose").WithShort('v')).
		Arg(NewFlag("all").WithShort('a')).
		Arg(NewArg("out").WithShort('o'))

	matches, err := cmd.GetMatches([]string{"-vao", "dest"})
	if err != nil {
		t.Fatal(err)
	}
	if !matches.Flag("verbose") || !matches.Flag("all") {
		t.Error("expected both -v and -a set from cluster")
	}
	if got, _ := matches.GetOneString("out"); got != "dest" {
		t.Errorf("out = %q, want dest", got)
	}
}

func TestGetMatchesShortClusterAttachedValue(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("out").WithShort('o'))
	matches, err := cmd.GetMatches([]string{"-odest"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := matches.GetOneString("out"); got != "dest" {
		t.Errorf("out = %q, want dest", got)
	}
}

func TestGetMatchesRequiredMissing(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("name").WithLong("name").WithRequired(true))
	_, err := cmd.GetMatches(nil)
	var want *MissingRequiredArgumentError
	if !errors.As(err, &want) {
		t.Fatalf("err = %v, want *MissingRequiredArgumentError", err)
	}
}

func TestGetMatchesConflict(t *testing.T) {
	cmd := NewCommand("x").
		Arg(NewFlag("a").WithLong("a").ConflictsWith("b")).
		Arg(NewFlag("b").WithLong("b"))

	_, err := cmd.GetMatches([]string{"--a", "--b"})
	var want *ArgumentConflictError
	if !errors.As(err, &want) {
		t.Fatalf("err = %v, want *ArgumentConflictError", err)
	}
}

func TestGetMatchesUnknownArgumentSuggestsClosest(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("name").WithLong("name"))
	_, err := cmd.GetMatches([]string{"--nmae", "bob"})

	var unknown *UnknownArgumentError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *UnknownArgumentError", err)
	}
	if diff := cmp.Diff([]string{"--name"}, unknown.Suggestions); diff != "" {
		t.Errorf("Suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMatchesTrailingArgs(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("name").WithLong("name"))
	matches, err := cmd.GetMatches([]string{"--name", "x", "--", "--verbose", "rest"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"--verbose", "rest"}, matches.Trailing()); diff != "" {
		t.Errorf("Trailing mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMatchesEnvFallback(t *testing.T) {
	t.Setenv("GREET_NAME", "from-env")
	cmd := NewCommand("x").Arg(NewArg("name").WithLong("name").WithEnv("GREET_NAME"))
	matches, err := cmd.GetMatches(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := matches.GetOneString("name"); got != "from-env" {
		t.Errorf("name = %q, want from-env", got)
	}
	if src, _ := matches.ValueSource("name"); src != SourceEnv {
		t.Errorf("ValueSource(name) = %v, want SourceEnv", src)
	}
}

func TestGetMatchesCommandLineBeatsEnvBeatsDefault(t *testing.T) {
	t.Setenv("GREET_NAME", "from-env")
	cmd := NewCommand("x").Arg(NewArg("name").WithLong("name").WithEnv("GREET_NAME").WithDefault("from-default"))

	matches, err := cmd.GetMatches([]string{"--name", "from-cli"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := matches.GetOneString("name"); got != "from-cli" {
		t.Errorf("name = %q, want from-cli", got)
	}

	matches, err = cmd.GetMatches(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := matches.GetOneString("name"); got != "from-env" {
		t.Errorf("name = %q, want from-env", got)
	}
}

func TestGetMatchesValueDelimiter(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("tags").WithLong("tags").WithDelimiter(',').WithNumArgs(Any))
	matches, err := cmd.GetMatches([]string{"--tags", "a,b,c"})
	if err != nil {
		t.Fatal(err)
	}
	// The token is split into "a", "b", "c" before parsing; under the
	// default Set action each piece replaces the previous one (last-wins),
	// so only the final piece is kept.
	want := []any{"c"}
	if diff := cmp.Diff(want, matches.GetMany("tags")); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMatchesAppendAction(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("tag").WithLong("tag").WithAction(ActionAppend))
	matches, err := cmd.GetMatches([]string{"--tag", "a", "--tag", "b"})
	if err != nil {
		t.Fatal(err)
	}
	want := []any{"a", "b"}
	if diff := cmp.Diff(want, matches.GetMany("tag")); diff != "" {
		t.Errorf("tag mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMatchesCountAction(t *testing.T) {
	cmd := NewCommand("x").Arg(NewCount("verbose").WithShort('v'))
	matches, err := cmd.GetMatches([]string{"-vvv"})
	if err != nil {
		t.Fatal(err)
	}
	if matches.GetCount("verbose") != 3 {
		t.Errorf("GetCount(verbose) = %d, want 3", matches.GetCount("verbose"))
	}
}

func TestGetMatchesSubcommandGlobalInheritance(t *testing.T) {
	cmd := NewCommand("git").
		Arg(NewArg("config").WithLong("config").WithGlobal(true)).
		Subcommand(NewCommand("commit").Arg(NewArg("message").WithLong("message").WithShort('m')))

	matches, err := cmd.GetMatches([]string{"--config", "x.cfg", "commit", "-m", "hello"})
	if err != nil {
		t.Fatal(err)
	}

	sub, ok := matches.SubcommandMatches("commit")
	if !ok {
		t.Fatal("expected commit subcommand to be selected")
	}
	if got, _ := sub.GetOneString("config"); got != "x.cfg" {
		t.Errorf("inherited config = %q, want x.cfg", got)
	}
	if src, _ := sub.ValueSource("config"); src != SourceDefault {
		t.Errorf("inherited config source = %v, want SourceDefault", src)
	}
	if got, _ := sub.GetOneString("message"); got != "hello" {
		t.Errorf("message = %q, want hello", got)
	}
}

func TestGetMatchesSubcommandRequiredMissing(t *testing.T) {
	cmd := NewCommand("git").
		WithSettings(SettingSubcommandRequired).
		Subcommand(NewCommand("commit"))

	_, err := cmd.GetMatches(nil)
	var want *MissingSubcommandError
	if !errors.As(err, &want) {
		t.Fatalf("err = %v, want *MissingSubcommandError", err)
	}
}

func TestGetMatchesHelpShortCircuits(t *testing.T) {
	cmd := NewCommand("x").
		Arg(NewArg("name").WithLong("name").WithRequired(true))

	_, err := cmd.GetMatches([]string{"--help"})
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("err = %v, want ErrHelp", err)
	}
}

func TestGetMatchesVersionShortCircuits(t *testing.T) {
	cmd := NewCommand("x").WithVersion("1.2.3")
	_, err := cmd.GetMatches([]string{"--version"})
	if !errors.Is(err, ErrVersion) {
		t.Fatalf("err = %v, want ErrVersion", err)
	}
	var ve *DisplayVersionError
	errors.As(err, &ve)
	if ve.Text() != "1.2.3\n" {
		t.Errorf("Text() = %q, want %q", ve.Text(), "1.2.3\n")
	}
}

func TestGetMatchesNegativeNumberException(t *testing.T) {
	cmd := NewCommand("x").
		WithSettings(SettingAllowNegativeNumbers).
		Arg(NewPositional("n", autoIndex))

	matches, err := cmd.GetMatches([]string{"-5"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := matches.GetOneString("n"); got != "-5" {
		t.Errorf("n = %q, want -5", got)
	}
}

func TestParseLineSplitsLikeAShell(t *testing.T) {
	cmd := NewCommand("x").Arg(NewArg("name").WithLong("name"))
	matches, err := cmd.ParseLine(`--name "jane doe"`)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := matches.GetOneString("name"); got != "jane doe" {
		t.Errorf("name = %q, want %q", got, "jane doe")
	}
}
