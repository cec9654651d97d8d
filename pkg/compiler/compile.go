// Package compiler wires the lexer, parser and code generator into
// the full expression-to-assembly pipeline.
package compiler

import (
	"io"

	"minicc/pkg/compiler/codegen"
	"minicc/pkg/compiler/lexer"
	"minicc/pkg/compiler/parser"
)

// Compile translates the expression src into an assembly listing
// written to w. The program computes the expression left to right and
// returns its value as the process exit status.
func Compile(src string, w io.Writer) error {
	tok, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	return codegen.Gen(w, parser.New(src, tok))
}
