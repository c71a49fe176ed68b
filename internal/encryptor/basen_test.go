package encryptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseN_Encode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  int
		want  string
	}{
		{name: "binary single letter", input: "A", base: 2, want: "01000001"},
		{name: "hex single letter", input: "A", base: 16, want: "41"},
		{name: "binary pads to eight digits", input: "Hi", base: 2, want: "0100100001101001"},
		{name: "hex pads and uses lowercase", input: "\n\xdf", base: 16, want: "0afffd"},
		{name: "unsupported base falls back to hex", input: "A", base: 7, want: "41"},
		{name: "negative base falls back to hex", input: "A", base: -2, want: "41"},
		{name: "zero base falls back to hex", input: "ok", base: 0, want: "6f6b"},
		{name: "empty input", input: "", base: 2, want: ""},
		{name: "code point beyond hex width is not truncated", input: "Ā", base: 16, want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseN{}.Encode(tt.input, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseN_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  int
		want  string
	}{
		{name: "binary single letter", input: "01000001", base: 2, want: "A"},
		{name: "hex two letters", input: "4142", base: 16, want: "AB"},
		{name: "hex accepts uppercase digits", input: "4A4a", base: 16, want: "JJ"},
		{name: "trailing partial hex group dropped", input: "414", base: 16, want: "A"},
		{name: "trailing partial binary group dropped", input: "010000010100", base: 2, want: "A"},
		{name: "input shorter than one group", input: "0100", base: 2, want: ""},
		{name: "unsupported base decodes as hex", input: "4142", base: 3, want: "AB"},
		{name: "empty input", input: "", base: 16, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseN{}.Decode(tt.input, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseN_DecodeInvalidDigits(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		base       int
		wantGroup  string
		wantOffset int
	}{
		{name: "non-hex letters", input: "zz", base: 16, wantGroup: "zz", wantOffset: 0},
		{name: "binary digit out of range", input: "0100000101000002", base: 2, wantGroup: "01000002", wantOffset: 8},
		{name: "leading minus sign", input: "41-1", base: 16, wantGroup: "-1", wantOffset: 2},
		{name: "leading plus sign", input: "+1", base: 16, wantGroup: "+1", wantOffset: 0},
		{name: "whitespace inside group", input: "4 ", base: 16, wantGroup: "4 ", wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseN{}.Decode(tt.input, tt.base)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrInvalidBaseDigits))

			var digitsErr *InvalidDigitsError
			require.True(t, errors.As(err, &digitsErr))
			assert.Equal(t, tt.wantGroup, digitsErr.Group)
			assert.Equal(t, tt.wantOffset, digitsErr.Offset)
			assert.Equal(t, tt.base, digitsErr.Base)
			assert.Contains(t, err.Error(), tt.wantGroup)
		})
	}
}

func TestBaseN_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"A",
		"hello world",
		"my encryption string",
		"Zebra! 123 ~{}",
		"\x00\x7féÿ",
	}

	for _, base := range []int{2, 16} {
		for _, input := range inputs {
			encoded, err := BaseN{}.Encode(input, base)
			require.NoError(t, err)
			decoded, err := BaseN{}.Decode(encoded, base)
			require.NoError(t, err)
			assert.Equal(t, input, decoded, "base %d input %q", base, input)
		}
	}
}

func TestBaseN_WideCodePointsDoNotRoundTrip(t *testing.T) {
	// Code points that need more digits than the group width corrupt the
	// fixed-width framing. This is a documented limitation.
	for _, base := range []int{2, 16} {
		encoded, err := BaseN{}.Encode("ĀA", base)
		require.NoError(t, err)
		decoded, err := BaseN{}.Decode(encoded, base)
		if err == nil {
			assert.NotEqual(t, "ĀA", decoded, "base %d", base)
		}
	}
}

func TestPartialGroupLength(t *testing.T) {
	tests := []struct {
		input string
		base  int
		want  int
	}{
		{input: "", base: 16, want: 0},
		{input: "41", base: 16, want: 0},
		{input: "414", base: 16, want: 1},
		{input: "414", base: 5, want: 1},
		{input: "01000001", base: 2, want: 0},
		{input: "0100000101", base: 2, want: 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PartialGroupLength(tt.input, tt.base), "input %q base %d", tt.input, tt.base)
	}
}
