// Package encryptor implements the text encoder engine: three reversible
// transform schemes (base-N digit expansion, Caesar letter shift and
// fixed-size block rotation) and the per-scheme usage counters shared by
// every engine built from the same Counters value.
//
// None of the schemes provides confidentiality. They are obfuscation
// transforms whose only guarantee is that Decode inverts Encode for inputs
// in each scheme's round-trip domain.
package encryptor

import "fmt"

// Kind identifies one of the supported transform schemes.
type Kind int

const (
	// KindBaseN renders each code point as fixed-width base-2 or base-16 digits.
	KindBaseN Kind = iota
	// KindCaesar shifts ASCII letters within their case's alphabet.
	KindCaesar
	// KindRotate rotates characters within five-character blocks.
	KindRotate

	numKinds
)

var kindNames = [numKinds]string{
	KindBaseN:  "basen",
	KindCaesar: "caesar",
	KindRotate: "rotate",
}

// Kinds returns every supported kind in reporting order.
func Kinds() []Kind {
	return []Kind{KindBaseN, KindCaesar, KindRotate}
}

// ParseKind maps a scheme name as typed in the shell ("basen", "caesar",
// "rotate") to its Kind. Matching is case-sensitive.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// String returns the shell name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}
