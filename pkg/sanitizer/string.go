package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeName normalizes a display name. The field delimiter is stripped
// because names are persisted into comma-delimited table rows.
func NormalizeName(name string) string {
	return TrimAndNormalize(strings.ReplaceAll(name, ",", " "))
}

// NormalizeCode normalizes flight, route, and seat identifiers: uppercase
// with all whitespace removed. "ai-101" becomes "AI-101", " 3 c " becomes "3C".
func NormalizeCode(code string) string {
	normalized := TrimAndNormalize(code)
	normalized = strings.ReplaceAll(normalized, " ", "")
	return strings.ToUpper(normalized)
}

// NormalizeUsername lowercases and strips whitespace so lookups are
// case-insensitive at registration and login.
func NormalizeUsername(username string) string {
	normalized := TrimAndNormalize(username)
	normalized = strings.ReplaceAll(normalized, " ", "")
	return strings.ToLower(normalized)
}
