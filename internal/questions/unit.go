package questions

import (
	"strconv"
	"strings"
)

// NormalizeUnit extracts the first integer substring from a raw unit
// field and returns it without leading zeros: "Unit 07", "7", and
// "unit_id: 7" all normalize to "7". Returns "" when no digit is found.
// Normalization is idempotent.
func NormalizeUnit(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return ""
	}
	return strconv.Itoa(n)
}
