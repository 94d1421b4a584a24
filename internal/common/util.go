// Package common contains small helpers shared across NusaView client layers.
package common

import "strconv"

// FilterDigits returns s with every non-digit rune removed.
// Price prompts that filter input live run user text through this
// before parsing, so "12a3" becomes "123".
func FilterDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}

// ParsePrice converts raw price input to an int, falling back to 0 when the
// text is not a clean number. Variants without live digit filtering rely on
// this fallback.
func ParsePrice(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// WipeByteArray zeroes the buffer in place. Callers use it to scrub
// passwords once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
