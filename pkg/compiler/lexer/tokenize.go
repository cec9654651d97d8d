package lexer

import (
	"strconv"
	"unicode"

	"minicc/pkg/diag"
)

// Tokenize scans src left to right and returns the token chain.
// Whitespace separates tokens and produces none. The chain always ends
// in a KindEOF token whose Loc is len(src).
func Tokenize(src string) (*Token, error) {
	head := Token{}
	cur := &head

	idx := 0
	for idx < len(src) {
		// Skip whitespace characters.
		if unicode.IsSpace(rune(src[idx])) {
			idx++
			continue
		}

		// Numeric literal
		if unicode.IsDigit(rune(src[idx])) {
			end := idx
			for end < len(src) && unicode.IsDigit(rune(src[end])) {
				end++
			}
			// A maximal digit run only fails conversion by
			// exceeding the int range.
			val, err := strconv.Atoi(src[idx:end])
			if err != nil {
				return nil, diag.Errorf(diag.Lex, src, idx, "number literal out of range")
			}
			cur.Next = newToken(KindNum, idx, end-idx)
			cur = cur.Next
			cur.Val = val
			idx = end
			continue
		}

		// Punctuator
		if src[idx] == '+' || src[idx] == '-' {
			cur.Next = newToken(KindPunct, idx, 1)
			cur = cur.Next
			idx++
			continue
		}

		return nil, diag.Errorf(diag.Lex, src, idx, "cannot tokenize")
	}

	cur.Next = newToken(KindEOF, idx, 0)
	return head.Next, nil
}
