package validate

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestQTrimsAndCaps(t *testing.T) {
	if got := Q("  ssd  "); got != "ssd" {
		t.Fatalf("want trimmed query, got %q", got)
	}
	long := strings.Repeat("a", 100)
	if got := Q(long); len(got) != 64 {
		t.Fatalf("want 64-byte cap, got %d bytes", len(got))
	}
}

func TestQCutsOnRuneBoundary(t *testing.T) {
	// "t" plus 32 two-byte runes is 65 bytes; a blind 64-byte cut lands
	// inside the final rune.
	s := "t" + strings.Repeat("é", 32)
	got := Q(s)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if want := "t" + strings.Repeat("é", 31); got != want {
		t.Fatalf("want %d runes kept, got %d", utf8.RuneCountInString(want), utf8.RuneCountInString(got))
	}

	// an exact boundary keeps the full 64 bytes
	if got := Q(strings.Repeat("é", 40)); got != strings.Repeat("é", 32) {
		t.Fatalf("even cut must keep 32 runes, got %d", utf8.RuneCountInString(got))
	}
}

func TestIDRejectsUnsafeValues(t *testing.T) {
	for _, bad := range []string{"", "a b", "x/../y", strings.Repeat("a", 65)} {
		if _, ok := ID(bad); ok {
			t.Errorf("ID(%q) must be rejected", bad)
		}
	}
	if _, ok := ID("ssd-870-evo"); !ok {
		t.Error("plain product ids must pass")
	}
}

func TestPhoneOptional(t *testing.T) {
	if _, ok := Phone(""); !ok {
		t.Error("empty phone is allowed")
	}
	if _, ok := Phone("+33 6 12 34 56 78"); !ok {
		t.Error("french mobile notation must pass")
	}
	if _, ok := Phone("call me"); ok {
		t.Error("free text must be rejected")
	}
}
