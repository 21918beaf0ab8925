package relic

import (
	"strings"
	"unicode/utf8"
)

// Decode parses an encoded stream back into the original text.
//
// The stream must begin with the exact Header. The body is consumed in a
// single left-to-right pass, one token per step; each token appends its
// literal repeated count times. A stream consisting of only the header
// decodes to the empty string. Syntax violations come back as *SyntaxError
// with the byte offset of the fault; they are detected immediately and
// deterministically, so retrying the same input always fails the same way.
func Decode(stream string) (string, error) {
	if err := checkStream(stream); err != nil {
		return "", err
	}

	var sb strings.Builder
	pos := len(Header)
	for pos < len(stream) {
		tok, next, err := readToken(stream, pos)
		if err != nil {
			return "", err
		}
		for i := 0; i < tok.Count; i++ {
			sb.WriteRune(tok.Literal)
		}
		pos = next
	}
	return sb.String(), nil
}

// checkStream rejects what can be rejected before scanning the body.
func checkStream(stream string) error {
	if !utf8.ValidString(stream) {
		return ErrNotText
	}
	if !IsEncoded(stream) {
		return syntaxErr(CodeMissingHeader, 0, "stream must begin with %q", Header)
	}
	return nil
}

// Convert dispatches s by header: a string carrying the header is decoded,
// anything else is encoded. The returned Mode reports which ran.
func Convert(s string) (string, Mode, error) {
	switch mode := DetectMode(s); mode {
	case ModeDecode:
		out, err := Decode(s)
		return out, mode, err
	default:
		out, err := Encode(s)
		return out, mode, err
	}
}
