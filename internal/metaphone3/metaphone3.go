// Package metaphone3 implements a Metaphone-3-style phonetic encoder: a
// primary and secondary key per input word, built on the same acoustic
// groupings (silent letter detection, digraph collapsing, consonant
// clusters reduced to one representative code) as the classic Metaphone /
// Double Metaphone family of algorithms.
//
// No third-party Go implementation of this algorithm exists in the
// available dependency surface, so this is a hand-rolled port. The
// secondary key in this port is
// the primary key unless a rule explicitly produces an alternate reading;
// in practice only a handful of digraphs (soft C, soft G) do.
package metaphone3

import "strings"

// Encode returns the primary and secondary phonetic keys for word. Either
// may be empty if word contains no encodable letters.
func Encode(word string) (primary, secondary string) {
	letters := onlyLetters(strings.ToUpper(word))
	if letters == "" {
		return "", ""
	}

	p, s := encodeOne(letters)
	return p, s
}

func onlyLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}

// encodeOne runs the main encoding pass once. Both returned keys share the
// same cursor logic; secondary only diverges at soft C/G.
func encodeOne(w string) (string, string) {
	n := len(w)
	var primary, secondary strings.Builder
	i := 0

	switch {
	case hasPrefixAny(w, "GN", "KN", "PN", "WR", "PS"):
		i = 1
	case w[0] == 'X':
		primary.WriteByte('S')
		secondary.WriteByte('S')
		i = 1
	case hasPrefixAny(w, "WH"):
		primary.WriteByte('W')
		secondary.WriteByte('W')
		i = 2
	}

	if i == 0 && isVowel(w[0]) {
		primary.WriteByte('A')
		secondary.WriteByte('A')
		i = 1
	}

	for i < n {
		c := w[i]

		if isVowel(c) {
			i++
			continue
		}

		switch c {
		case 'B':
			primary.WriteByte('B')
			secondary.WriteByte('B')
			i++
			i = skipDoubled(w, i, 'B')
		case 'C':
			switch {
			case i+1 < n && w[i+1] == 'H':
				primary.WriteByte('X')
				secondary.WriteByte('X')
				i += 2
			case i+1 < n && (w[i+1] == 'I' || w[i+1] == 'E' || w[i+1] == 'Y'):
				primary.WriteByte('S')
				secondary.WriteByte('X')
				i++
			default:
				primary.WriteByte('K')
				secondary.WriteByte('K')
				i++
			}
		case 'D':
			if i+2 < n && (w[i+1:i+3] == "GE" || w[i+1:i+3] == "GY" || w[i+1:i+3] == "GI") {
				primary.WriteByte('J')
				secondary.WriteByte('J')
				i += 3
			} else {
				primary.WriteByte('D')
				secondary.WriteByte('D')
				i++
				i = skipDoubled(w, i, 'D')
			}
		case 'F':
			primary.WriteByte('F')
			secondary.WriteByte('F')
			i++
			i = skipDoubled(w, i, 'F')
		case 'G':
			switch {
			case i+1 < n && w[i+1] == 'H':
				if i > 0 && isVowel(w[i-1]) {
					primary.WriteByte('F')
					secondary.WriteByte('F')
				}
				i += 2
			case i+1 < n && (w[i+1] == 'I' || w[i+1] == 'E' || w[i+1] == 'Y'):
				primary.WriteByte('J')
				secondary.WriteByte('K')
				i++
			default:
				primary.WriteByte('K')
				secondary.WriteByte('K')
				i++
				i = skipDoubled(w, i, 'G')
			}
		case 'H':
			switch {
			case i > 0 && isVowel(w[i-1]) && i+1 < n && isVowel(w[i+1]):
				i++
			case i+1 < n && isVowel(w[i+1]):
				primary.WriteByte('H')
				secondary.WriteByte('H')
				i++
			default:
				i++
			}
		case 'J':
			primary.WriteByte('J')
			secondary.WriteByte('J')
			i++
		case 'K':
			if i > 0 && w[i-1] == 'C' {
				i++
			} else {
				primary.WriteByte('K')
				secondary.WriteByte('K')
				i++
			}
		case 'L':
			primary.WriteByte('L')
			secondary.WriteByte('L')
			i++
			i = skipDoubled(w, i, 'L')
		case 'M':
			primary.WriteByte('M')
			secondary.WriteByte('M')
			i++
			i = skipDoubled(w, i, 'M')
		case 'N':
			primary.WriteByte('N')
			secondary.WriteByte('N')
			i++
			i = skipDoubled(w, i, 'N')
		case 'P':
			if i+1 < n && w[i+1] == 'H' {
				primary.WriteByte('F')
				secondary.WriteByte('F')
				i += 2
			} else {
				primary.WriteByte('P')
				secondary.WriteByte('P')
				i++
				i = skipDoubled(w, i, 'P')
			}
		case 'Q':
			primary.WriteByte('K')
			secondary.WriteByte('K')
			i++
		case 'R':
			primary.WriteByte('R')
			secondary.WriteByte('R')
			i++
			i = skipDoubled(w, i, 'R')
		case 'S':
			switch {
			case i+2 < n && (w[i:i+3] == "SIO" || w[i:i+3] == "SIA"):
				primary.WriteByte('X')
				secondary.WriteByte('X')
				i += 3
			case i+1 < n && w[i+1] == 'H':
				primary.WriteByte('X')
				secondary.WriteByte('X')
				i += 2
			default:
				primary.WriteByte('S')
				secondary.WriteByte('S')
				i++
				i = skipDoubled(w, i, 'S')
			}
		case 'T':
			if i+1 < n && w[i+1] == 'H' {
				primary.WriteByte('0')
				secondary.WriteByte('0')
				i += 2
			} else {
				primary.WriteByte('T')
				secondary.WriteByte('T')
				i++
				i = skipDoubled(w, i, 'T')
			}
		case 'V':
			primary.WriteByte('F')
			secondary.WriteByte('F')
			i++
			i = skipDoubled(w, i, 'V')
		case 'W':
			if i+1 < n && isVowel(w[i+1]) {
				primary.WriteByte('W')
				secondary.WriteByte('W')
			}
			i++
		case 'X':
			primary.WriteString("KS")
			secondary.WriteString("KS")
			i++
		case 'Y':
			if i+1 < n && isVowel(w[i+1]) {
				primary.WriteByte('Y')
				secondary.WriteByte('Y')
			}
			i++
		case 'Z':
			primary.WriteByte('S')
			secondary.WriteByte('S')
			i++
			i = skipDoubled(w, i, 'Z')
		default:
			i++
		}
	}

	return primary.String(), secondary.String()
}

func hasPrefixAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// skipDoubled advances past a repeated consonant (e.g. the second 'L' in
// "HELLO") so it is coded once.
func skipDoubled(w string, i int, c byte) int {
	if i < len(w) && w[i] == c {
		return i + 1
	}
	return i
}
