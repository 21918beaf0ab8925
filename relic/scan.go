package relic

import (
	"strconv"
	"unicode/utf8"
)

// ============================================================
// Body scanning
// ============================================================
//
// One hand-written pass over the body, one state step per token. The
// escape rules make counts context-dependent (a digit is a literal right
// after '#', a count otherwise), so the body is scanned rather than
// pattern-matched.

// Tokens validates stream and returns its body as a token list. It runs
// the same single-pass grammar as Decode: a stream tokenizes exactly when
// it decodes. The bare header yields an empty list.
func Tokens(stream string) ([]Token, error) {
	if err := checkStream(stream); err != nil {
		return nil, err
	}
	var tokens []Token
	pos := len(Header)
	for pos < len(stream) {
		tok, next, err := readToken(stream, pos)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		pos = next
	}
	return tokens, nil
}

// readToken reads the token starting at byte offset pos, which must lie
// inside stream, and returns it together with the offset just past it.
// Offsets index the full stream so errors point at the exact byte.
func readToken(stream string, pos int) (Token, int, error) {
	tok := Token{Offset: pos}

	r, size := utf8.DecodeRuneInString(stream[pos:])
	switch {
	case r == Escape:
		if pos+size == len(stream) {
			return tok, pos, syntaxErr(CodeDanglingEscape, pos, "dangling escape at end of stream")
		}
		next, nextSize := utf8.DecodeRuneInString(stream[pos+size:])
		if next != Escape && !isASCIIDigit(next) {
			return tok, pos, syntaxErr(CodeInvalidEscape, pos, "invalid escape %q", string(r)+string(next))
		}
		tok.Literal = next
		tok.Escaped = true
		pos += size + nextSize
	case isASCIIDigit(r):
		// Counts bind greedily to the previous token, so a digit can only
		// start a token at the very beginning of the body.
		return tok, pos, syntaxErr(CodeMalformedCount, pos, "count %q has no literal to repeat", string(r))
	default:
		tok.Literal = r
		pos += size
	}

	count, end, err := readCount(stream, pos)
	if err != nil {
		return tok, pos, err
	}
	tok.Count = count
	return tok, end, nil
}

// readCount reads the longest run of ASCII digits at pos. No digits means
// a count of 1 with pos unmoved. Leading zeros are rejected, not shortened
// into a smaller count.
func readCount(stream string, pos int) (int, int, error) {
	end := pos
	for end < len(stream) && stream[end] >= '0' && stream[end] <= '9' {
		end++
	}
	if end == pos {
		return 1, pos, nil
	}
	digits := stream[pos:end]
	if digits[0] == '0' {
		if digits == "0" {
			return 0, pos, syntaxErr(CodeMalformedCount, pos, "count cannot be zero")
		}
		return 0, pos, syntaxErr(CodeMalformedCount, pos, "count %q has a leading zero", digits)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, pos, syntaxErr(CodeMalformedCount, pos, "count %q is out of range", digits)
	}
	return n, end, nil
}
