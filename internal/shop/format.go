package shop

import "strings"

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber keeps the first 16 digits of value grouped in fours.
// Input with fewer than 4 digits is returned unchanged.
func FormatCardNumber(value string) string {
	v := digitsOnly(value)
	if len(v) < 4 {
		return value
	}
	if len(v) > 16 {
		v = v[:16]
	}

	parts := make([]string, 0, 4)
	for i := 0; i < len(v); i += 4 {
		end := i + 4
		if end > len(v) {
			end = len(v)
		}
		parts = append(parts, v[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiryDate turns digits into MM/YY once the month is complete.
func FormatExpiryDate(value string) string {
	v := digitsOnly(value)
	if len(v) < 2 {
		return v
	}
	if len(v) > 4 {
		v = v[:4]
	}
	return v[:2] + "/" + v[2:]
}

// MaskCardNumber hides all but the last four digits.
func MaskCardNumber(value string) string {
	v := digitsOnly(value)
	if len(v) > 4 {
		v = v[len(v)-4:]
	}
	return "•••• " + v
}
