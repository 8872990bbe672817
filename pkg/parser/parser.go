// Package parser implements feng's grammar:
//
//	program := value*
//	value   := atom | list
//	list    := '(' value* ')'
//	atom    := ( anyChar \ whitespace \ '(' \ ')' | '\' anyChar )+
//
// It consumes a chars.Source and produces a flat, ordered slice of
// top-level value.Value (each a *value.SourceAtom or *value.SourceList).
package parser

import (
	"io"
	"strings"
	"unicode"

	"github.com/H2NCH2COOH/feng/pkg/chars"
	"github.com/H2NCH2COOH/feng/pkg/lerr"
	"github.com/H2NCH2COOH/feng/pkg/value"
)

// Parse reads a full program from src (an io.ByteReader, the stdlib
// shape for a fallible byte sequence), attaching name to every location
// it produces.
func Parse(name string, src io.ByteReader) ([]value.Value, error) {
	dec := chars.NewDecoder(src)
	cs, err := chars.NewSource(name, dec)
	if err != nil {
		return nil, err
	}
	p := &parser{src: cs}
	return p.parseProgram()
}

type parser struct {
	src *chars.Source
}

func (p *parser) parseProgram() ([]value.Value, error) {
	var result []value.Value
	for {
		if err := p.skipWhitespace(); err != nil {
			return nil, err
		}
		c, ok := p.src.Current()
		if !ok {
			break
		}
		if c == ')' {
			return nil, lerr.Syntax(p.src.Location(), "unexpected ')'")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (p *parser) skipWhitespace() error {
	for {
		c, ok := p.src.Current()
		if !ok || !unicode.IsSpace(c) {
			return nil
		}
		if err := p.src.Advance(); err != nil {
			return err
		}
	}
}

// parseValue assumes whitespace has already been skipped and the
// current character is neither end-of-stream nor ')'.
func (p *parser) parseValue() (value.Value, error) {
	c, _ := p.src.Current()
	if c == '(' {
		return p.parseList()
	}
	return p.parseAtom()
}

func (p *parser) parseList() (value.Value, error) {
	loc := p.src.Location()
	if err := p.src.Advance(); err != nil { // skip '('
		return nil, err
	}

	var children []value.Value
	for {
		if err := p.skipWhitespace(); err != nil {
			return nil, err
		}
		c, ok := p.src.Current()
		if !ok {
			return nil, lerr.Syntax(loc, "expected ')', found end of stream")
		}
		if c == ')' {
			if err := p.src.Advance(); err != nil { // skip ')'
				return nil, err
			}
			break
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}

	return &value.SourceList{Children: children, Loc: loc}, nil
}

func (p *parser) parseAtom() (value.Value, error) {
	loc := p.src.Location()
	var b strings.Builder

	for {
		c, ok := p.src.Current()
		if !ok {
			break
		}
		if unicode.IsSpace(c) || c == ')' {
			break
		}
		if c == '(' {
			return nil, lerr.Syntax(p.src.Location(), "invalid '(' inside atom")
		}
		if c == '\\' {
			if err := p.src.Advance(); err != nil { // skip '\'
				return nil, err
			}
			ec, ok := p.src.Current()
			if !ok {
				return nil, lerr.Syntax(p.src.Location(), "escape at end of stream")
			}
			b.WriteRune(ec)
			if err := p.src.Advance(); err != nil {
				return nil, err
			}
			continue
		}
		b.WriteRune(c)
		if err := p.src.Advance(); err != nil {
			return nil, err
		}
	}

	return &value.SourceAtom{Name: b.String(), Loc: loc}, nil
}
