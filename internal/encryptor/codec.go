package encryptor

// Codec is one transform scheme's encode/decode pair. The set of codecs is
// closed: every implementation lives in this package, one per Kind.
//
// Implementations are stateless and safe for concurrent use. They never
// touch the usage counters; counting is the Engine's job.
type Codec interface {
	// Kind reports which scheme the codec implements.
	Kind() Kind
	// Encode transforms text using the scheme parameter.
	Encode(text string, param int) (string, error)
	// Decode inverts Encode for the same parameter.
	Decode(text string, param int) (string, error)

	sealed()
}

// CodecFor returns the codec implementing kind.
func CodecFor(kind Kind) (Codec, error) {
	switch kind {
	case KindBaseN:
		return BaseN{}, nil
	case KindCaesar:
		return Caesar{}, nil
	case KindRotate:
		return Rotate{}, nil
	default:
		return nil, ErrUnknownKind
	}
}
