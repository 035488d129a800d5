package shop

import "fmt"

// FormatCents renders cents as dollars, e.g. 18497 as "$184.97".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
