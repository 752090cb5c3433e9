package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9 .()-]{6,20}$`)
	reCond  = regexp.MustCompile(`^(Neuf|Occasion)$`)
	reSort  = regexp.MustCompile(`^(price-asc|price-desc|rating|newest)$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 64 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q normalizes a search query: trimmed, length-capped. Any text is
// allowed; matching is a plain substring test.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 64 {
		// Back up to a rune start so a multibyte character is never
		// cut in half.
		cut := 64
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// ID validates a simple resource identifier (product ids, tokens).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Condition validates allowed condition enums.
func Condition(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reCond.MatchString(s)
}

// SortKey validates a catalog sort option.
func SortKey(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSort.MatchString(s)
}

// Name validates a displayable name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}

// Phone accepts common phone notations; empty is fine (optional field).
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, rePhone.MatchString(s)
}

// Message requires a minimal length so the relay gets something useful.
func Message(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 10 || len(s) > 2000 {
		return "", false
	}
	return s, true
}

// Price parses a non-negative decimal amount.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Password enforces the sign-up strength rule: at least 6 characters.
func Password(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}
