// valueparser_test.go - built-in value parser tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package valueparser

import (
	"errors"
	"testing"
)

func TestIntParser(t *testing.T) {
	p := Int()
	v, err := p.Parse("42")
	if err != nil || v != int64(42) {
		t.Fatalf("Parse(42) = %v, %v", v, err)
	}
	if _, err := p.Parse("nope"); err == nil {
		t.Fatal("Parse(nope) should fail")
	}
}

func TestBoolParserAcceptsAliases(t *testing.T) {
	p := Bool()
	for _, raw := range []string{"true", "yes", "1", "on", "TRUE"} {
		v, err := p.Parse(raw)
		if err != nil || v != true {
			t.Errorf("Parse(%q) = %v, %v, want true", raw, v, err)
		}
	}
	for _, raw := range []string{"false", "no", "0", "off"} {
		v, err := p.Parse(raw)
		if err != nil || v != false {
			t.Errorf("Parse(%q) = %v, %v, want false", raw, v, err)
		}
	}
	if _, err := p.Parse("maybe"); err == nil {
		t.Fatal("Parse(maybe) should fail")
	}
}

func TestEnumParserCaseInsensitiveCanonicalizes(t *testing.T) {
	p := Enum([]string{"Red", "Green", "Blue"}, true)
	v, err := p.Parse("red")
	if err != nil || v != "Red" {
		t.Fatalf("Parse(red) = %v, %v, want Red", v, err)
	}
	if _, err := p.Parse("Purple"); err == nil {
		t.Fatal("Parse(Purple) should fail")
	}
}

func TestNumericRangeParser(t *testing.T) {
	p := NumericRange(1, 10)
	if _, err := p.Parse("5"); err != nil {
		t.Fatalf("Parse(5) failed: %v", err)
	}
	if _, err := p.Parse("11"); err == nil {
		t.Fatal("Parse(11) should fail, out of range")
	}
}

func TestURLParserRejectsDisallowedScheme(t *testing.T) {
	p := URL("https")
	if _, err := p.Parse("https://example.com"); err != nil {
		t.Fatalf("Parse(https) failed: %v", err)
	}
	if _, err := p.Parse("ftp://example.com"); err == nil {
		t.Fatal("Parse(ftp) should fail, scheme not allowed")
	}
}

func TestCustomParserSentinels(t *testing.T) {
	p := Custom("even number", func(raw string) string {
		if raw == "2" {
			return "true"
		}
		return "false"
	})
	if v, err := p.Parse("2"); err != nil || v != "2" {
		t.Fatalf("Parse(2) = %v, %v", v, err)
	}
	if _, err := p.Parse("3"); err == nil {
		t.Fatal("Parse(3) should fail")
	}
}

func TestDurationParser(t *testing.T) {
	if _, err := Duration().Parse("250ms"); err != nil {
		t.Fatalf("Parse(250ms) failed: %v", err)
	}
	if _, err := Duration().Parse("nope"); err == nil {
		t.Fatal("Parse(nope) should fail")
	}
}

func TestIPParser(t *testing.T) {
	if _, err := IP().Parse("127.0.0.1"); err != nil {
		t.Fatalf("Parse(127.0.0.1) failed: %v", err)
	}
	if _, err := IP().Parse("not-an-ip"); err == nil {
		t.Fatal("Parse(not-an-ip) should fail")
	}
}

func TestStringSliceParserAcceptsAnyToken(t *testing.T) {
	p := StringSlice()
	v, err := p.Parse("a,b,c")
	if err != nil || v != "a,b,c" {
		t.Fatalf("Parse(a,b,c) = %v, %v, want \"a,b,c\", nil", v, err)
	}
	if p.TypeName() != "string" {
		t.Errorf("TypeName() = %q, want %q", p.TypeName(), "string")
	}
}

func TestInvalidValueErrorIsUnwrappable(t *testing.T) {
	_, err := Int().Parse("abc")
	var ive *InvalidValueError
	if !errors.As(err, &ive) {
		t.Fatalf("errors.As failed on %v", err)
	}
	if ive.Raw != "abc" {
		t.Errorf("Raw = %q, want abc", ive.Raw)
	}
}
