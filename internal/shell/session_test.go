package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/isseis/go-text-encryptor/internal/color"
	"github.com/isseis/go-text-encryptor/internal/encryptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errReadFailed = errors.New("read failed")

func newTestSession(opts Options) *Session {
	if opts.DefaultText == "" {
		opts.DefaultText = "my encryption string"
	}
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	return NewSession(opts)
}

// runTranscript feeds lines to a fresh non-interactive session.
func runTranscript(t *testing.T, session *Session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	err := session.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, err)
	return out.String()
}

func TestSession_EncodeDecodeStatsExit(t *testing.T) {
	session := newTestSession(Options{})

	out := runTranscript(t, session,
		"encode caesar 1 abc",
		"decode caesar 1",
		"stats",
		"exit",
		"encode caesar 1 never reached",
	)

	assert.Equal(t, "bcd\n"+
		"abc\n"+
		"Base-n count: 0\nCaesar count: 2\nBlock rotation count: 0\n"+
		"Goodbye!\n", out)
	assert.Equal(t, "abc", session.Previous())
}

func TestSession_DefaultAndPreviousText(t *testing.T) {
	session := newTestSession(Options{})

	out := runTranscript(t, session,
		"encode caesar 1",
		"encode rotate 1 my encryption string",
		"decode rotate 1",
	)

	assert.Equal(t, "nz fodszqujpo tusjoh\n"+
		"nmy etcrypsion gtrin\n"+
		"my encryption string\n", out)
}

func TestSession_EmptyResultFallsBackToDefault(t *testing.T) {
	session := newTestSession(Options{DefaultText: "abc"})

	out := runTranscript(t, session,
		"decode basen 16 4",
		"encode caesar 1",
	)

	assert.Equal(t, "\nbcd\n", out)
}

func TestSession_ErrorMessages(t *testing.T) {
	session := newTestSession(Options{})

	out := runTranscript(t, session,
		"hello",
		"encode",
		"encode base64 1",
		"encode caesar",
		"encode caesar x",
		"encode caesar -1",
		"encode basen 8",
		"decode basen 16 zz",
	)

	assert.Equal(t, "Error: Invalid command\n"+
		"Error: Missing encryption scheme\n"+
		"Error: Invalid scheme\n"+
		"Error: Missing parameter\n"+
		"Error: Parameter must be an integer\n"+
		"Error: Parameter must be non-negative\n"+
		"Error: Base-n scheme only supports base 2 or base 16\n"+
		"Error: Invalid base digits: group \"zz\" at offset 0 is not a base-16 number\n", out)
	assert.Equal(t, "Base-n count: 0\nCaesar count: 0\nBlock rotation count: 0", session.Counters().Report())
}

func TestSession_FailedDecodeKeepsPrevious(t *testing.T) {
	session := newTestSession(Options{})

	out := runTranscript(t, session,
		"encode caesar 1 abc",
		"decode basen 16 zz",
		"decode caesar 1",
	)

	assert.Equal(t, "bcd\n"+
		"Error: Invalid base digits: group \"zz\" at offset 0 is not a base-16 number\n"+
		"abc\n", out)
	assert.Equal(t, int64(0), session.Counters().Count(encryptor.KindBaseN))
	assert.Equal(t, int64(2), session.Counters().Count(encryptor.KindCaesar))
}

func TestSession_BlankLinesAndWhitespace(t *testing.T) {
	session := newTestSession(Options{})

	out := runTranscript(t, session,
		"",
		"   ",
		"  encode rotate 0   hello   world  ",
		"\tstats extra",
	)

	assert.Equal(t, "hello   world\n"+
		"Base-n count: 0\nCaesar count: 0\nBlock rotation count: 1\n", out)
}

func TestSession_BaseNRoundTrip(t *testing.T) {
	session := newTestSession(Options{})

	out := runTranscript(t, session,
		"encode basen 2 Hi",
		"decode basen 2",
		"encode basen 16",
		"decode basen 16",
	)

	assert.Equal(t, "0100100001101001\nHi\n4869\nHi\n", out)
	assert.Equal(t, int64(4), session.Counters().Count(encryptor.KindBaseN))
}

func TestSession_SharedCounters(t *testing.T) {
	counters := encryptor.NewCounters()
	first := newTestSession(Options{Counters: counters})
	second := newTestSession(Options{Counters: counters})

	runTranscript(t, first, "encode caesar 1 a")
	out := runTranscript(t, second, "encode rotate 1 ab", "stats")

	assert.Equal(t, "ba\nBase-n count: 0\nCaesar count: 1\nBlock rotation count: 1\n", out)
}

func TestSession_Interactive(t *testing.T) {
	session := newTestSession(Options{Interactive: true, Banner: true, Prompt: "enc> "})

	var out bytes.Buffer
	err := session.Run(context.Background(), strings.NewReader("encode caesar 1 abc\nexit\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "Get Started with the Encryption Tool!\n"+
		"Available Commands:\n"+
		"encode <scheme> <parameter> [target text]\n"+
		"decode <scheme> <parameter> [target text]\n"+
		"stats\n"+
		"exit\n"+
		"enc> bcd\n"+
		"enc> Goodbye!\n", out.String())
}

func TestSession_InteractiveWithoutBanner(t *testing.T) {
	session := newTestSession(Options{Interactive: true, Banner: false})

	var out bytes.Buffer
	require.NoError(t, session.Run(context.Background(), strings.NewReader(""), &out))
	assert.Equal(t, "> ", out.String())
}

func TestSession_ColoredOutput(t *testing.T) {
	session := newTestSession(Options{Palette: color.NewPalette(true)})

	out := runTranscript(t, session, "encode caesar 1 a", "nope", "exit")

	assert.Equal(t, color.Green("b")+"\n"+
		color.Red("Error: Invalid command")+"\n"+
		color.Gray("Goodbye!")+"\n", out)
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newTestSession(Options{}).Run(ctx, strings.NewReader("stats\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSession_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	session := newTestSession(Options{})
	errCh := make(chan error, 1)
	go func() { errCh <- session.Run(ctx, pr, &out) }()

	// The write returns once the reader has consumed the line, so Run is
	// up and waiting for the next one.
	_, err := io.WriteString(pw, "encode caesar 1 abc\n")
	require.NoError(t, err)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation while waiting for input")
	}
}

func TestSession_ReadErrors(t *testing.T) {
	t.Run("reader failure", func(t *testing.T) {
		var out bytes.Buffer
		err := newTestSession(Options{}).Run(context.Background(), iotest.ErrReader(errReadFailed), &out)
		assert.ErrorIs(t, err, errReadFailed)
	})

	t.Run("line too long", func(t *testing.T) {
		var out bytes.Buffer
		line := "encode caesar 1 " + strings.Repeat("a", maxLineBytes+1)
		err := newTestSession(Options{}).Run(context.Background(), strings.NewReader(line), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read command")
	})
}

func TestSession_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	session := newTestSession(Options{Logger: logger})

	runTranscript(t, session,
		"encode caesar 3 hello",
		"decode basen 16 414",
		"bogus",
	)

	text := logs.String()
	assert.Contains(t, text, "msg=\"Session started\"")
	assert.Contains(t, text, "msg=\"Command executed\" command=encode scheme=caesar parameter=3 text_source=argument input_length=5 output_length=5")
	assert.Contains(t, text, "msg=\"Trailing partial group dropped\" dropped=1 parameter=16")
	assert.Contains(t, text, "msg=\"Command rejected\" error=\"invalid command\"")
	assert.Contains(t, text, "msg=\"Session ended\" basen_count=1 caesar_count=1 rotate_count=0")
}
