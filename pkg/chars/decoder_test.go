package chars

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/H2NCH2COOH/feng/pkg/lerr"
)

func TestDecoderValidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"ascii", "abc", []rune("abc")},
		{"two byte", "café", []rune("café")},
		{"three byte", "日本語", []rune("日本語")},
		{"four byte", "𝄞clef", []rune("𝄞clef")},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewDecoder(strings.NewReader(tt.input))
			var got []rune
			for {
				r, err := dec.Next()
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				got = append(got, r)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecoderInvalidLeadByte(t *testing.T) {
	dec := NewDecoder(strings.NewReader("a\x80b"))

	r, err := dec.Next()
	require.NoError(t, err)
	require.Equal(t, 'a', r)

	_, err = dec.Next()
	var lerrErr *lerr.Error
	require.True(t, errors.As(err, &lerrErr))
	require.Equal(t, lerr.KindUTF8, lerrErr.Kind)
	require.Equal(t, []byte{0x80}, lerrErr.Bytes)

	// The stream terminates after the first error.
	_, err = dec.Next()
	require.Equal(t, io.EOF, err)
}

func TestDecoderTruncatedSequence(t *testing.T) {
	// 0xE4 0xBD starts a 3-byte sequence that the input cuts short.
	dec := NewDecoder(strings.NewReader("\xe4\xbd"))

	_, err := dec.Next()
	var lerrErr *lerr.Error
	require.True(t, errors.As(err, &lerrErr))
	require.Equal(t, lerr.KindUTF8, lerrErr.Kind)
	require.Equal(t, []byte{0xe4, 0xbd}, lerrErr.Bytes)
}

func TestDecoderBadContinuationByte(t *testing.T) {
	dec := NewDecoder(strings.NewReader("\xe4\x20\xbd"))

	_, err := dec.Next()
	var lerrErr *lerr.Error
	require.True(t, errors.As(err, &lerrErr))
	require.Equal(t, lerr.KindUTF8, lerrErr.Kind)
	require.Equal(t, []byte{0xe4, 0x20}, lerrErr.Bytes)
}

type errReader struct{ err error }

func (r *errReader) ReadByte() (byte, error) { return 0, r.err }

func TestDecoderUpstreamIOError(t *testing.T) {
	boom := errors.New("boom")
	dec := NewDecoder(&errReader{err: boom})

	_, err := dec.Next()
	var lerrErr *lerr.Error
	require.True(t, errors.As(err, &lerrErr))
	require.Equal(t, lerr.KindIO, lerrErr.Kind)
	require.ErrorIs(t, err, boom)

	_, err = dec.Next()
	require.Equal(t, io.EOF, err)
}
