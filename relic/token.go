package relic

import "strings"

// Format constants.
const (
	// Header prefixes every encoded stream. It is structural metadata:
	// always exactly these 4 characters, significant only at position 0,
	// and never subject to run grouping.
	Header = "##00"

	// Escape introduces a two-character escape sequence: "##" for a
	// literal '#', or '#' followed by an ASCII digit for a literal digit.
	Escape = '#'
)

// Token is one run of an encoded body: a literal code point and how many
// times it repeats consecutively in the original text.
type Token struct {
	Literal rune // the repeated code point
	Count   int  // repetitions, always >= 1
	Escaped bool // literal needed escape form ('#' or an ASCII digit)
	Offset  int  // byte offset of the token in the encoded stream
}

// String returns the wire form of the token.
func (t Token) String() string {
	var sb strings.Builder
	appendRun(&sb, t.Literal, t.Count)
	return sb.String()
}

// Text returns the run expanded back to plain text.
func (t Token) Text() string {
	return strings.Repeat(string(t.Literal), t.Count)
}

// Mode is the direction of a conversion.
type Mode uint8

const (
	ModeEncode Mode = iota
	ModeDecode
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// IsEncoded reports whether s carries the stream header. The header must
// match byte for byte and only counts at position 0.
func IsEncoded(s string) bool {
	return strings.HasPrefix(s, Header)
}

// DetectMode picks the conversion direction for s: decode when s carries
// the header, encode otherwise.
func DetectMode(s string) Mode {
	if IsEncoded(s) {
		return ModeDecode
	}
	return ModeEncode
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
