// Package codegen emits x86-64 assembly for an additive expression.
package codegen

import (
	"fmt"
	"io"

	"minicc/pkg/compiler/parser"
)

// Gen consumes the whole token stream through p and writes the
// assembly listing to w. Emission is streamed, so on a grammar error
// the lines written so far remain in w; callers must treat any
// non-nil error as "no usable assembly".
func Gen(w io.Writer, p *parser.Parser) error {
	fmt.Fprintf(w, ".intel_syntax noprefix\n")
	fmt.Fprintf(w, ".globl main\n")
	fmt.Fprintf(w, "main:\n")

	// The first token must be a number.
	n, err := p.ExpectNumber()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  mov rax, %d\n", n)

	// ... followed by either `+ <number>` or `- <number>`.
	for !p.AtEnd() {
		if p.Consume('+') {
			n, err := p.ExpectNumber()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  add rax, %d\n", n)
			continue
		}

		if err := p.Expect('-'); err != nil {
			return err
		}
		n, err := p.ExpectNumber()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  sub rax, %d\n", n)
	}

	fmt.Fprintf(w, "  ret\n")
	return nil
}
