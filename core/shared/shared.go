package shared

import "unicode"

// ToTitle upper-cases the first letter of every run of letters and lower-cases
// the rest, so "responsive_design" becomes "Responsive_Design".
func ToTitle(s string) string {
	out := make([]rune, 0, len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		out = append(out, r)
	}
	return string(out)
}
