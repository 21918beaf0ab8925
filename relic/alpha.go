package relic

import (
	"strconv"
	"strings"
)

// ============================================================
// Alpha variant
// ============================================================
//
// The alpha variant is the restricted legacy codec this format grew out
// of: ASCII letters only, no header, no escaping. A token is a letter
// optionally followed by its run length:
//
//	AAABCC -> A3BC2
//
// With no header to dispatch on, direction is decided by digit sniffing:
// the presence of any ASCII digit marks a stream as encoded.

// EncodeAlpha run-length encodes text consisting of ASCII letters only.
// Any other character fails with ErrNotAlphabetic.
func EncodeAlpha(text string) (string, error) {
	out, _, err := EncodeAlphaWithStats(text)
	return out, err
}

// EncodeAlphaWithStats is EncodeAlpha plus statistics about the produced
// stream. Alpha tokens have no escape form, so EscapedRuns stays 0.
func EncodeAlphaWithStats(text string) (string, Stats, error) {
	var stats Stats
	if text == "" {
		return "", stats, ErrEmptyInput
	}
	var sb strings.Builder
	sb.Grow(len(text))

	var run byte
	n := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isASCIILetter(c) {
			return "", Stats{}, ErrNotAlphabetic
		}
		if n > 0 && c == run {
			n++
			continue
		}
		if n > 0 {
			flushAlphaRun(&sb, &stats, run, n)
		}
		run, n = c, 1
	}
	flushAlphaRun(&sb, &stats, run, n)

	stats.OriginalBytes = len(text)
	stats.EncodedBytes = sb.Len()
	stats.BytesSaved = stats.OriginalBytes - stats.EncodedBytes
	stats.SavingsPercent = float64(stats.BytesSaved) / float64(stats.OriginalBytes) * 100.0
	return sb.String(), stats, nil
}

// DecodeAlpha expands an alpha stream back to plain text. The stream must
// match (LETTER COUNT?)* with at least one token; counts follow the same
// no-leading-zero rule as the escaped codec.
func DecodeAlpha(stream string) (string, error) {
	if stream == "" {
		return "", ErrEmptyInput
	}
	var sb strings.Builder
	pos := 0
	for pos < len(stream) {
		c := stream[pos]
		if !isASCIILetter(c) {
			if c >= '0' && c <= '9' {
				return "", syntaxErr(CodeMalformedCount, pos, "count %q has no literal to repeat", string(c))
			}
			return "", syntaxErr(CodeInvalidLiteral, pos, "literal %q is not an ASCII letter", string(c))
		}
		pos++
		count, next, err := readCount(stream, pos)
		if err != nil {
			return "", err
		}
		for i := 0; i < count; i++ {
			sb.WriteByte(c)
		}
		pos = next
	}
	return sb.String(), nil
}

// IsAlphaEncoded reports whether s looks like an alpha stream. The variant
// has no header, so any ASCII digit means run counts are present.
func IsAlphaEncoded(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// ConvertAlpha dispatches s by digit sniffing, the alpha analogue of
// Convert.
func ConvertAlpha(s string) (string, Mode, error) {
	if IsAlphaEncoded(s) {
		out, err := DecodeAlpha(s)
		return out, ModeDecode, err
	}
	out, err := EncodeAlpha(s)
	return out, ModeEncode, err
}

// flushAlphaRun emits one run as a token and folds it into the stats.
func flushAlphaRun(sb *strings.Builder, stats *Stats, c byte, count int) {
	appendAlphaRun(sb, c, count)
	stats.Runs++
	if count > stats.LongestRun {
		stats.LongestRun = count
	}
}

func appendAlphaRun(sb *strings.Builder, c byte, count int) {
	sb.WriteByte(c)
	if count > 1 {
		sb.WriteString(strconv.Itoa(count))
	}
}

func isASCIILetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
