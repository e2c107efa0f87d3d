package utils

import (
	"fmt"
	"strings"
)

// allowedCountryCodes are the E.164 country prefixes invitations may be
// sent to. Gulf states plus Egypt, Jordan and Lebanon, matching the
// platform's market.
var allowedCountryCodes = []string{
	"+966", // Saudi Arabia
	"+971", // UAE
	"+974", // Qatar
	"+973", // Bahrain
	"+965", // Kuwait
	"+968", // Oman
	"+20",  // Egypt
	"+962", // Jordan
	"+961", // Lebanon
}

// NormalizePhone converts common local spellings (spaces, dashes, the
// 00 international prefix) into canonical E.164 form.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators dropped
		default:
			// anything else invalidates the number; keep it so
			// validation fails loudly rather than silently fixing
			b.WriteRune(r)
		}
	}
	s := b.String()
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	}
	return s
}

// ValidatePhone checks a normalized number against E.164 shape and the
// country allow-list. Returns the matched country code on success.
func ValidatePhone(phone string) (string, error) {
	if !strings.HasPrefix(phone, "+") {
		return "", fmt.Errorf("phone must start with a country code, e.g. +966")
	}
	digits := phone[1:]
	if len(digits) < 8 || len(digits) > 15 {
		return "", fmt.Errorf("phone must contain 8 to 15 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("phone contains non-digit characters")
		}
	}
	for _, cc := range allowedCountryCodes {
		if strings.HasPrefix(phone, cc) {
			return cc, nil
		}
	}
	return "", fmt.Errorf("country code not supported for WhatsApp invitations")
}
