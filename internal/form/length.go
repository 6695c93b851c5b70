package form

import "unicode/utf16"

// Length counts s in UTF-16 code units. Browsers measure an input's length,
// minlength and maxlength in the same unit, so a character outside the Basic
// Multilingual Plane counts as two.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
