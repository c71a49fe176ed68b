package encryptor

// Engine runs one scheme's codec and records every completed call in the
// shared Counters. The scheme is fixed at construction.
type Engine struct {
	codec    Codec
	counters *Counters
}

// New returns an engine for kind that reports to counters. A nil counters
// gives the engine a private set.
func New(kind Kind, counters *Counters) (*Engine, error) {
	codec, err := CodecFor(kind)
	if err != nil {
		return nil, err
	}
	if counters == nil {
		counters = NewCounters()
	}
	return &Engine{codec: codec, counters: counters}, nil
}

// Kind returns the engine's scheme.
func (e *Engine) Kind() Kind {
	return e.codec.Kind()
}

// Encode transforms text with the engine's scheme. The scheme's counter is
// incremented only when encoding succeeds.
func (e *Engine) Encode(text string, param int) (string, error) {
	out, err := e.codec.Encode(text, param)
	if err != nil {
		return "", err
	}
	e.counters.Increment(e.codec.Kind())
	return out, nil
}

// Decode inverts Encode for the same parameter. The scheme's counter is
// incremented only when decoding succeeds.
func (e *Engine) Decode(text string, param int) (string, error) {
	out, err := e.codec.Decode(text, param)
	if err != nil {
		return "", err
	}
	e.counters.Increment(e.codec.Kind())
	return out, nil
}
