package encryptor

import (
	"strings"
	"unicode/utf8"
)

const (
	defaultShift = 12
	alphabetLen  = 26
)

// Caesar shifts ASCII letters within their case's 26-letter alphabet and
// copies every other character unchanged. Non-ASCII letters such as 'é' are
// not shifted.
//
// The wrap arithmetic is not reduced modulo 26. Shifts from 0 to 26 behave
// as a standard Caesar rotation; larger encode shifts can land outside the
// alphabet.
type Caesar struct{}

var _ Codec = Caesar{}

// Kind returns KindCaesar.
func (Caesar) Kind() Kind { return KindCaesar }

func (Caesar) sealed() {}

func normalizeShift(shift int) int {
	if shift < 0 {
		return defaultShift
	}
	return shift
}

// Encode shifts every ASCII letter in text forward by shift.
func (Caesar) Encode(text string, shift int) (string, error) {
	return shiftLetters(text, normalizeShift(shift)), nil
}

// Decode applies the complementary shift of shift. Shifts above 26 are
// reduced modulo 26 first; shifts up to 26 are complemented directly, so a
// shift of 0 decodes with an effective 26 and a shift of 26 with 0.
func (Caesar) Decode(text string, shift int) (string, error) {
	shift = normalizeShift(shift)
	var effective int
	if shift > alphabetLen {
		effective = alphabetLen - shift%alphabetLen
	} else {
		effective = alphabetLen - shift
	}
	return shiftLetters(text, effective), nil
}

func shiftLetters(text string, shift int) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		base, ok := alphabetBase(r)
		if !ok {
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(shiftLetter(r, base, shift))
	}
	return sb.String()
}

// shiftLetter moves r by shift. Positions past the last letter wrap to
// base + pos mod (base+25) - 1, and the result is truncated to a 16-bit
// code unit.
func shiftLetter(r, base rune, shift int) rune {
	pos := int(r) + shift
	last := int(base) + alphabetLen - 1
	if pos > last {
		pos = int(base) + pos%last - 1
	}
	out := rune(uint16(pos))
	if !utf8.ValidRune(out) {
		return utf8.RuneError
	}
	return out
}

func alphabetBase(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return 'A', true
	case r >= 'a' && r <= 'z':
		return 'a', true
	default:
		return 0, false
	}
}
