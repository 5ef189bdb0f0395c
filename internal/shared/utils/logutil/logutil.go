// Package logutil shortens and masks values before they reach the logs.
package logutil

import "strings"

// TruncateForLog keeps at most maxLen runes of s and marks the cut with "...".
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 1 {
		return local + "***@" + parts[1]
	}
	return string(local[0]) + "***@" + parts[1]
}

// MaskToken keeps the first two characters of a portal token. Tokens are
// capabilities and never logged in full.
func MaskToken(token string) string {
	if len(token) <= 2 {
		return "***"
	}
	return token[:2] + "***"
}
