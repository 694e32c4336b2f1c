package quiz

import "strings"

// DayKey derives the cooldown key for a day from its display title by
// keeping only ASCII letters and digits. "Day 3: Pointers & Arrays"
// and a retitled "Day 3 - Pointers Arrays" collapse to the same key,
// so cosmetic title changes never reset a cooldown.
func DayKey(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
