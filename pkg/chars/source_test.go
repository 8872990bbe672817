package chars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceTracksLineAndColumn(t *testing.T) {
	src, err := NewSource("test", NewDecoder(strings.NewReader("ab\ncd")))
	require.NoError(t, err)

	type pos struct {
		r    rune
		line int
		col  int
	}
	var got []pos
	for {
		c, ok := src.Current()
		if !ok {
			break
		}
		loc := src.Location()
		got = append(got, pos{c, loc.Line, loc.Column})
		require.NoError(t, src.Advance())
	}

	require.Equal(t, []pos{
		{'a', 1, 0},
		{'b', 1, 1},
		{'\n', 1, 2},
		{'c', 2, 0},
		{'d', 2, 1},
	}, got)
}

func TestSourceEmptyInput(t *testing.T) {
	src, err := NewSource("test", NewDecoder(strings.NewReader("")))
	require.NoError(t, err)

	_, ok := src.Current()
	require.False(t, ok)
}

func TestSourceLocationName(t *testing.T) {
	src, err := NewSource("myfile", NewDecoder(strings.NewReader("x")))
	require.NoError(t, err)
	require.Equal(t, "myfile", src.Location().Name)
}
