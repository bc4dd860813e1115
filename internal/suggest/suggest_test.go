// suggest_test.go - "did you mean" suggestion tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package suggest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNamesRanksByDistance(t *testing.T) {
	got := Names("--confi", []string{"--config", "--confirm", "--verbose"})
	want := []string{"--config", "--confirm"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestNamesExcludesFarCandidates(t *testing.T) {
	got := Names("--zzzzzzzz", []string{"--config"})
	if len(got) != 0 {
		t.Errorf("Names = %v, want empty", got)
	}
}

func TestNamesCapsAtThree(t *testing.T) {
	got := Names("cat", []string{"bat", "hat", "cot", "car", "can"})
	if len(got) > 3 {
		t.Errorf("Names returned %d candidates, want at most 3", len(got))
	}
}
