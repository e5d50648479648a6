package domain

import "strings"

// zeroDuration is the provider's literal zero-duration token.
const zeroDuration = "PT0M"

// ParseISODuration converts a compact ISO-8601 time span ("PT2H30M", "PT45M",
// "PT3H") into total minutes. Empty input and the zero token yield 0.
//
// Parsing is deliberately lenient: a malformed numeric component counts as 0
// for that component instead of failing the whole value. Upstream offer data
// occasionally carries truncated duration strings and callers prefer a
// degraded duration over a rejected offer.
func ParseISODuration(s string) int {
	if s == "" || s == zeroDuration {
		return 0
	}

	s = strings.TrimPrefix(s, "PT")

	hours := 0
	minutes := 0

	if idx := strings.Index(s, "H"); idx >= 0 {
		hours = parseComponent(s[:idx])
		s = s[idx+1:]
	}

	if idx := strings.Index(s, "M"); idx >= 0 {
		minutes = parseComponent(s[:idx])
	}

	return hours*60 + minutes
}

// parseComponent parses a digit run, returning 0 for anything non-numeric.
func parseComponent(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// FormatMinutes renders a minute count as a human-readable duration ("2h 30m").
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return itoa(hours) + "h " + itoa(mins) + "m"
	case hours > 0:
		return itoa(hours) + "h"
	default:
		return itoa(mins) + "m"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
