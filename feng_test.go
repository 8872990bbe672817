package feng

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/H2NCH2COOH/feng/pkg/eval"
)

func TestParseEvalPrintRoundTrip(t *testing.T) {
	prog, err := Parse("test", strings.NewReader("(cons a (list b c))"))
	require.NoError(t, err)
	require.Len(t, prog, 1)

	result, err := EvalProgram(prog)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Print(&out, result))
	require.Equal(t, "(a b c)", out.String())
}

func TestEvalProgramWithCustomEvaluatorCapturesPuts(t *testing.T) {
	prog, err := Parse("test", strings.NewReader("(puts hello world)"))
	require.NoError(t, err)

	var out bytes.Buffer
	ev := NewEvaluator(&eval.Config{Out: &out})
	_, err = ev.EvalProgram(prog)
	require.NoError(t, err)
	require.Equal(t, "hello\nworld\n", out.String())
}

func TestParseRejectsMalformedUTF8(t *testing.T) {
	_, err := Parse("test", bytes.NewReader([]byte{'a', 0x80}))
	require.Error(t, err)
}

func TestEmptyProgramPrintsEmptyList(t *testing.T) {
	prog, err := Parse("test", strings.NewReader(""))
	require.NoError(t, err)
	require.Len(t, prog, 0)

	result, err := EvalProgram(prog)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Print(&out, result))
	require.Equal(t, "()", out.String())
}
