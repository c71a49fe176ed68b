// Package shell implements the encryptor's interactive command loop:
//
//	encode <scheme> <parameter> [text]
//	decode <scheme> <parameter> [text]
//	stats
//	exit
//
// Each encode or decode runs on a fresh engine that reports to the
// session's shared counters.
package shell

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/isseis/go-text-encryptor/internal/encryptor"
)

// Op is the command verb.
type Op int

const (
	// OpEncode encodes text with a scheme
	OpEncode Op = iota
	// OpDecode decodes text with a scheme
	OpDecode
	// OpStats prints the usage counters
	OpStats
	// OpExit ends the session
	OpExit
)

var opNames = [...]string{
	OpEncode: "encode",
	OpDecode: "decode",
	OpStats:  "stats",
	OpExit:   "exit",
}

// String returns the verb as typed.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

func parseOp(verb string) (Op, bool) {
	for op, name := range opNames {
		if name == verb {
			return Op(op), true
		}
	}
	return 0, false
}

// Command is a parsed command line.
type Command struct {
	Op    Op
	Kind  encryptor.Kind
	Param int
	// Text is the trimmed remainder of the line after the parameter.
	// HasText is false when the line ended at the parameter.
	Text    string
	HasText bool
}

// Parse validates a non-blank command line. Checks run in a fixed order
// (verb, scheme, parameter, base) and the first failure is returned.
// Tokens after "stats" and "exit" are ignored.
func Parse(line string) (Command, error) {
	verb, rest := nextField(line)
	op, ok := parseOp(verb)
	if !ok {
		return Command{}, ErrInvalidCommand
	}
	if op == OpStats || op == OpExit {
		return Command{Op: op}, nil
	}

	scheme, rest := nextField(rest)
	if scheme == "" {
		return Command{}, ErrMissingScheme
	}
	kind, err := encryptor.ParseKind(scheme)
	if err != nil {
		return Command{}, ErrInvalidScheme
	}

	paramField, rest := nextField(rest)
	if paramField == "" {
		return Command{}, ErrMissingParameter
	}
	param, err := strconv.ParseInt(paramField, 10, 32)
	if err != nil {
		return Command{}, ErrParameterNotInt
	}
	if param < 0 {
		return Command{}, ErrNegativeParameter
	}
	if kind == encryptor.KindBaseN && param != 2 && param != 16 {
		return Command{}, ErrUnsupportedBase
	}

	text := strings.TrimSpace(rest)
	return Command{
		Op:      op,
		Kind:    kind,
		Param:   int(param),
		Text:    text,
		HasText: text != "",
	}, nil
}

// nextField splits off the first whitespace-delimited field of s. The rest
// keeps its leading whitespace so inner spacing of the text survives.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
