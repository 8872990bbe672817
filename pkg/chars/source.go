package chars

import (
	"io"

	"github.com/H2NCH2COOH/feng/pkg/lerr"
)

// Source wraps a Decoder, tracking the current character and its
// 1-based line / 0-based column within a named source.
type Source struct {
	name string
	dec  *Decoder

	cur    rune
	atEnd  bool
	primed bool

	line   int
	column int
}

// NewSource creates a character source bound to name, priming the first
// character from dec. name is attached to every location it reports.
func NewSource(name string, dec *Decoder) (*Source, error) {
	s := &Source{name: name, dec: dec, line: 1, column: 0}
	if err := s.Advance(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the current character and true, or (0, false) at
// end of stream.
func (s *Source) Current() (rune, bool) {
	if s.atEnd {
		return 0, false
	}
	return s.cur, true
}

// Location returns a snapshot of the current position.
func (s *Source) Location() lerr.Location {
	return lerr.Location{Name: s.name, Line: s.line, Column: s.column}
}

// Advance consumes the current character and reads the next one,
// updating line/column. '\n' starts a new line at column 0; any other
// character advances the column by one. The very first call (made by
// NewSource to prime the stream) leaves line/column untouched.
func (s *Source) Advance() error {
	wasNewline := s.primed && !s.atEnd && s.cur == '\n'

	r, err := s.dec.Next()
	if err == io.EOF {
		s.atEnd = true
		s.cur = 0
	} else if err != nil {
		s.atEnd = true
		s.cur = 0
		return err
	} else {
		s.cur = r
	}

	if wasNewline {
		s.line++
		s.column = 0
	} else if s.primed {
		s.column++
	}
	s.primed = true

	return nil
}
