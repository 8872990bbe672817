// Package chars turns a fallible byte stream into a fallible rune stream,
// then tracks line/column position over that stream. It sits at the
// front of the pipeline: byte source → UTF-8 decoder → character
// source → parser.
package chars

import (
	"io"

	"github.com/H2NCH2COOH/feng/pkg/lerr"
)

// Decoder decodes UTF-8 one rune at a time from an io.ByteReader, the
// standard-library shape for "a finite sequence producing 8-bit values
// with per-item failure".
type Decoder struct {
	src  io.ByteReader
	done bool
}

// NewDecoder wraps a byte source in a UTF-8 decoder.
func NewDecoder(src io.ByteReader) *Decoder {
	return &Decoder{src: src}
}

// Next returns the next decoded rune, io.EOF at the end of the stream, or
// a *lerr.Error (wrapping KindIO or KindUTF8) on failure. Once an error
// has been reported, every subsequent call returns io.EOF.
func (d *Decoder) Next() (rune, error) {
	if d.done {
		return 0, io.EOF
	}

	lead, err := d.src.ReadByte()
	if err == io.EOF {
		d.done = true
		return 0, io.EOF
	}
	if err != nil {
		d.done = true
		return 0, lerr.IO(err)
	}

	var need int
	var r rune
	switch {
	case lead&0x80 == 0x00:
		return rune(lead), nil
	case lead&0xE0 == 0xC0:
		need = 1
		r = rune(lead & 0x1F)
	case lead&0xF0 == 0xE0:
		need = 2
		r = rune(lead & 0x0F)
	case lead&0xF8 == 0xF0:
		need = 3
		r = rune(lead & 0x07)
	default:
		d.done = true
		return 0, lerr.UTF8([]byte{lead})
	}

	buf := []byte{lead}
	for i := 0; i < need; i++ {
		b, err := d.src.ReadByte()
		if err == io.EOF {
			d.done = true
			return 0, lerr.UTF8(buf)
		}
		if err != nil {
			d.done = true
			return 0, lerr.IO(err)
		}
		if b&0xC0 != 0x80 {
			d.done = true
			return 0, lerr.UTF8(append(buf, b))
		}
		buf = append(buf, b)
		r = (r << 6) | rune(b&0x3F)
	}

	return r, nil
}
