// Package diag carries positional compile diagnostics as values.
//
// Errors are created where they are detected and travel up as ordinary
// error returns; rendering and process termination belong to the caller.
package diag

import (
	"fmt"
	"io"
)

// ErrKind classifies a diagnostic.
type ErrKind int

const (
	Lex    ErrKind = iota // input character matches no token rule
	Syntax                // token stream violates the grammar
)

// Error is a diagnostic pointing at one position in the source string.
type Error struct {
	Kind ErrKind
	Src  string // the full input line, kept for rendering
	Pos  int    // byte offset of the offending character
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Errorf creates an Error at pos in src.
func Errorf(kind ErrKind, src string, pos int, format string, a ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Src:  src,
		Pos:  pos,
		Msg:  fmt.Sprintf(format, a...),
	}
}

// Render writes the source line followed by a caret line pointing at
// Pos, then the message:
//
//	1+foo
//	  ^ cannot tokenize
func (e *Error) Render(w io.Writer) {
	fmt.Fprintln(w, e.Src)
	fmt.Fprintf(w, "%*s^ %s\n", e.Pos, "", e.Msg)
}
