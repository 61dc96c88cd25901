package smartcalc

import (
	"strings"
	"unicode"
)

// normalize collapses every run of + and - signs into a single sign in one
// left-to-right pass. A run becomes - if it contains an odd number of minus
// signs and + otherwise, so "--" is "+", "+-" is "-", and "5-+-2" is "5+2".
// Whitespace between the signs of a run is dropped. A doubled * or / is an
// error rather than an operator, reported at the position of its first rune
// in the normalized line.
func normalize(line string) (string, error) {
	var b strings.Builder
	b.Grow(len(line))
	var (
		prev     rune
		col      int // runes written so far
		run, neg bool
	)
	for _, r := range line {
		switch {
		case r == '+' || r == '-':
			if !run {
				run, neg = true, false
			}
			if r == '-' {
				neg = !neg
			}
			prev = r
			continue
		case run && unicode.IsSpace(r):
			continue
		case (r == '*' || r == '/') && prev == r:
			// The first of the pair is the last rune written.
			return "", &OperatorError{Col: col, Operator: string([]rune{r, r})}
		}
		if run {
			b.WriteByte(sign(neg))
			col++
			run = false
		}
		b.WriteRune(r)
		col++
		prev = r
	}
	if run {
		b.WriteByte(sign(neg))
	}
	return b.String(), nil
}

func sign(neg bool) byte {
	if neg {
		return '-'
	}
	return '+'
}
