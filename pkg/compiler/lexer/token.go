package lexer

// Kind represents the type of a token.
type Kind int

const (
	KindPunct Kind = iota // Punctuators
	KindNum               // Numeric literals
	KindEOF               // End-of-input marker
)

// Token is one lexical unit. Tokens form a singly-linked chain ending
// in exactly one KindEOF token; Loc and Len index into the source
// string the chain was built from.
type Token struct {
	Kind Kind
	Next *Token
	Val  int // if Kind is KindNum, its value
	Loc  int // byte offset of the token's first character
	Len  int // length of the token's source text
}

func newToken(kind Kind, loc, length int) *Token {
	return &Token{
		Kind: kind,
		Loc:  loc,
		Len:  length,
	}
}
