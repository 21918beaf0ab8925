package relic

import (
	"errors"
	"fmt"
)

// Input policy errors, reported before any scanning happens.
var (
	// ErrEmptyInput rejects encoding the empty string. The header alone
	// could represent it, but an empty subject is treated as caller error.
	ErrEmptyInput = errors.New("relic: empty input")

	// ErrNotText rejects input that is not valid UTF-8. The codec works on
	// code points; passing invalid bytes through a rune scan would corrupt
	// the round trip silently.
	ErrNotText = errors.New("relic: input is not valid UTF-8 text")

	// ErrNotAlphabetic rejects non-letter input to the alpha variant.
	ErrNotAlphabetic = errors.New("relic: alpha input must be ASCII letters only")
)

// SyntaxCode classifies a stream syntax failure.
type SyntaxCode string

// Syntax error codes.
const (
	CodeMissingHeader  SyntaxCode = "MISSING_HEADER"
	CodeDanglingEscape SyntaxCode = "DANGLING_ESCAPE"
	CodeInvalidEscape  SyntaxCode = "INVALID_ESCAPE"
	CodeMalformedCount SyntaxCode = "MALFORMED_COUNT"

	// CodeInvalidLiteral is reported by the alpha variant for a token that
	// is not an ASCII letter. The escaped codec has no invalid literals.
	CodeInvalidLiteral SyntaxCode = "INVALID_LITERAL"
)

// SyntaxError reports where and how a stream violates the body grammar.
type SyntaxError struct {
	Code   SyntaxCode // failure class
	Offset int        // byte offset into the stream
	Detail string     // human-readable description
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("relic: %s: %s at offset %d", e.Code, e.Detail, e.Offset)
}

func syntaxErr(code SyntaxCode, offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Code:   code,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}
