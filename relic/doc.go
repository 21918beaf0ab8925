// Package relic implements RELIC, an escaped run-length encoding for text.
//
// RELIC represents any Unicode string as a reversible token stream,
// including strings containing digits and the escape character itself:
//
//	Encode("AAAAB#12")        -> "##00A4B###1#2"
//	Decode("##00A4B###1#2")   -> "AAAAB#12"
//
// # Wire format
//
// A stream is the 4-character header "##00" followed by a body of tokens:
//
//	Stream  := "##00" Body
//	Body    := Token*
//	Token   := Plain | Escaped
//	Plain   := LETTER COUNT?
//	Escaped := ("##" | "#" DIGIT) COUNT?
//	COUNT   := [1-9][0-9]*
//
// DIGIT is an ASCII digit; LETTER is any code point except '#' and ASCII
// digits. A token is one maximal run of the original text: the literal,
// escaped as "##" or "#digit" where it would otherwise be ambiguous, then
// the run length when above 1. Escaping is what keeps digits in the data
// from ever being misread as counts, and counts never carry leading
// zeros, so "A01" in a body is a syntax error rather than a short count.
//
// # Round trip
//
// Decode(Encode(s)) == s for every non-empty valid-UTF-8 s. The decoder
// also accepts grammatical streams the encoder never emits: an explicit
// count of 1 ("##00A1"), and the bare header, which decodes to "".
//
// # Errors
//
// Input policy failures are sentinel errors (ErrEmptyInput, ErrNotText,
// ErrNotAlphabetic); body violations are *SyntaxError values carrying a
// code and the byte offset of the fault. Both operations are pure: no
// logging, no shared state, safe for concurrent use.
//
// # Alpha variant
//
// EncodeAlpha and DecodeAlpha carry the legacy letters-only codec (no
// header, no escaping) for compatibility with streams that predate the
// escaped format. ConvertAlpha dispatches by digit sniffing the way the
// legacy tools did.
package relic
