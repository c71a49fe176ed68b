package encryptor

const (
	blockSize       = 5
	defaultRotation = 3
)

// Rotate splits text into blocks of five code points, plus a shorter final
// block for the remainder, and rotates positions within each block.
type Rotate struct{}

var _ Codec = Rotate{}

// Kind returns KindRotate.
func (Rotate) Kind() Kind { return KindRotate }

func (Rotate) sealed() {}

func normalizeRotation(rotation int) int {
	if rotation < 0 {
		return defaultRotation
	}
	return rotation
}

// Encode moves the character at block position k to (k+rotation) mod n,
// where n is the block length.
func (Rotate) Encode(text string, rotation int) (string, error) {
	rotation = normalizeRotation(rotation)
	return rotateBlocks(text, func(int) int { return rotation }), nil
}

// Decode rotates every block forward by the complement of rotation for that
// block's length, which undoes Encode.
func (Rotate) Decode(text string, rotation int) (string, error) {
	rotation = normalizeRotation(rotation)
	return rotateBlocks(text, func(n int) int { return inverseRotation(rotation, n) }), nil
}

func inverseRotation(rotation, n int) int {
	if rotation > n {
		return n - rotation%n
	}
	return n - rotation
}

// rotateBlocks applies the forward rotation rule to each block, asking
// rotationFor for the amount to use given the block length.
func rotateBlocks(text string, rotationFor func(n int) int) string {
	runes := []rune(text)
	out := make([]rune, len(runes))

	for start := 0; start < len(runes); start += blockSize {
		end := min(start+blockSize, len(runes))
		rotateBlock(out[start:end], runes[start:end], rotationFor(end-start))
	}

	return string(out)
}

// rotateBlock reduces rotation before adding so large rotations cannot
// overflow the index.
func rotateBlock(dst, src []rune, rotation int) {
	n := len(src)
	shift := rotation % n
	for k, r := range src {
		dst[(k+shift)%n] = r
	}
}
