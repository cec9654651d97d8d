// Package parser provides the cursor primitives that drive the
// grammar walk over a token chain.
package parser

import (
	"minicc/pkg/compiler/lexer"
	"minicc/pkg/diag"
)

// Parser holds the current position in a token chain. The cursor only
// moves forward; it starts at the first token and the grammar walk
// leaves it on the end-of-input token.
type Parser struct {
	src string
	tok *lexer.Token
}

// New creates a Parser over the chain produced by tokenizing src.
func New(src string, tok *lexer.Token) *Parser {
	return &Parser{src: src, tok: tok}
}

// Consume advances past the current token if it is the punctuator op
// and reports whether it did.
func (p *Parser) Consume(op byte) bool {
	if p.tok.Kind != lexer.KindPunct || p.tok.Len != 1 || p.src[p.tok.Loc] != op {
		return false
	}
	p.tok = p.tok.Next
	return true
}

// Expect advances past the current token if it is the punctuator op,
// and fails otherwise.
func (p *Parser) Expect(op byte) error {
	if p.tok.Kind != lexer.KindPunct || p.tok.Len != 1 || p.src[p.tok.Loc] != op {
		return diag.Errorf(diag.Syntax, p.src, p.tok.Loc, "expected '%c'", op)
	}
	p.tok = p.tok.Next
	return nil
}

// ExpectNumber advances past the current token and returns its value
// if it is a numeric literal, and fails otherwise.
func (p *Parser) ExpectNumber() (int, error) {
	if p.tok.Kind != lexer.KindNum {
		return 0, diag.Errorf(diag.Syntax, p.src, p.tok.Loc, "expected a number")
	}
	val := p.tok.Val
	p.tok = p.tok.Next
	return val, nil
}

// AtEnd reports whether the cursor has reached the end-of-input token.
func (p *Parser) AtEnd() bool {
	return p.tok.Kind == lexer.KindEOF
}
