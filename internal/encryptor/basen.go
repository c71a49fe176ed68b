package encryptor

import (
	"strconv"
	"strings"
)

const (
	defaultBase  = 16
	binaryWidth  = 8
	hexWidth     = 2
	binaryBase   = 2
	hexBase      = 16
	uint32BitLen = 32
)

// BaseN renders each code point as a fixed-width group of binary (8 digit)
// or hexadecimal (2 digit) digits.
//
// Code points that need more digits than the group width are written in
// full, which breaks the framing; such output does not decode back to the
// original text.
type BaseN struct{}

var _ Codec = BaseN{}

// Kind returns KindBaseN.
func (BaseN) Kind() Kind { return KindBaseN }

func (BaseN) sealed() {}

// normalizeBase maps anything other than 2 or 16 to 16.
func normalizeBase(base int) int {
	if base != binaryBase && base != hexBase {
		return defaultBase
	}
	return base
}

func groupWidth(base int) int {
	if base == binaryBase {
		return binaryWidth
	}
	return hexWidth
}

// Encode concatenates the zero-padded digit groups of every code point in text.
func (BaseN) Encode(text string, base int) (string, error) {
	base = normalizeBase(base)
	width := groupWidth(base)

	var sb strings.Builder
	sb.Grow(len(text) * width)
	for _, r := range text {
		digits := strconv.FormatInt(int64(r), base)
		for i := len(digits); i < width; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(digits)
	}
	return sb.String(), nil
}

// Decode parses text as consecutive digit groups and maps each group back to
// a code point. A trailing group shorter than the group width is dropped.
func (BaseN) Decode(text string, base int) (string, error) {
	base = normalizeBase(base)
	width := groupWidth(base)
	runes := []rune(text)
	full := len(runes) - len(runes)%width

	var sb strings.Builder
	sb.Grow(full / width)
	for i := 0; i < full; i += width {
		group := string(runes[i : i+width])
		value, err := strconv.ParseUint(group, base, uint32BitLen)
		if err != nil {
			return "", &InvalidDigitsError{Group: group, Offset: i, Base: base, Err: err}
		}
		sb.WriteRune(rune(value))
	}
	return sb.String(), nil
}

// PartialGroupLength returns how many trailing code points of text Decode
// would drop because they do not fill a whole group for base.
func PartialGroupLength(text string, base int) int {
	width := groupWidth(normalizeBase(base))
	return len([]rune(text)) % width
}
