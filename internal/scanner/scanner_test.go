// scanner_test.go - tokenizer tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanClassifiesTokens(t *testing.T) {
	sx := &Scanner{Prefixes: []string{"--", "-"}, Separator: "--"}

	// "--" is both a separator literal and a "--" prefix; Separator wins.
	// The scanner has no notion of "trailing mode" after the separator —
	// that's the parser's job — so a later "-5" is still classified as an
	// OptionToken on its own terms.
	got, err := sx.Scan([]string{"prog", "--verbose", "-o", "out", "--", "-5"})
	if err != nil {
		t.Fatal(err)
	}

	want := []Token{
		ProgramNameToken{Idx: 0, Name: "prog"},
		OptionToken{Idx: 1, Prefix: "--", Name: "verbose"},
		OptionToken{Idx: 2, Prefix: "-", Name: "o"},
		ArgumentToken{Idx: 3, Value: "out"},
		SeparatorToken{Idx: 4, Separator: "--"},
		OptionToken{Idx: 5, Prefix: "-", Name: "5"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanMissingProgramName(t *testing.T) {
	sx := &Scanner{Prefixes: []string{"-"}}
	if _, err := sx.Scan(nil); err != ErrMissingProgramName {
		t.Fatalf("err = %v, want ErrMissingProgramName", err)
	}
}

func TestScanBareDashIsArgument(t *testing.T) {
	sx := &Scanner{Prefixes: []string{"--", "-"}}
	got, err := sx.Scan([]string{"prog", "-"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got[1].(ArgumentToken); !ok {
		t.Errorf("bare \"-\" classified as %T, want ArgumentToken", got[1])
	}
}
