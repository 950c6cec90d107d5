package textsurface

import "github.com/unilibs/uniwidth"

// runeWidth is the display width of r: 0 for combining marks and other
// zero-width runes, 2 for wide East Asian runes and emoji, 1 otherwise.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the display width a terminal would give s.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// ConsoleCells returns how many cells s occupies when written to a Console
// as plain text. Zero-width runes are dropped and wide runes take one cell.
func ConsoleCells(s string) int {
	n := 0
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if runeWidth(r) > 0 {
			n++
		}
	}
	return n
}
