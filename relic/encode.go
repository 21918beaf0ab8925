package relic

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Stats describes one encoding: sizes on both sides and the run structure
// of the produced stream.
type Stats struct {
	OriginalBytes  int     // input size
	EncodedBytes   int     // output size, header included
	BytesSaved     int     // OriginalBytes - EncodedBytes, negative on expansion
	SavingsPercent float64 // BytesSaved relative to OriginalBytes
	Runs           int     // tokens emitted
	EscapedRuns    int     // tokens that needed escape form
	LongestRun     int     // length of the longest maximal run
}

// Encode turns text into an escaped run-length stream prefixed by Header.
//
// The text is scanned left to right, grouping maximal runs of identical
// code points. Each run becomes one token: the literal in its token
// representation ('#' becomes "##", an ASCII digit d becomes "#d", any
// other code point stands for itself), followed by the decimal run length
// when it exceeds 1. Empty input and invalid UTF-8 are rejected; every
// other string encodes, and Decode inverts the result exactly.
func Encode(text string) (string, error) {
	out, _, err := EncodeWithStats(text)
	return out, err
}

// EncodeWithStats is Encode plus statistics about the produced stream.
func EncodeWithStats(text string) (string, Stats, error) {
	var stats Stats
	if text == "" {
		return "", stats, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return "", stats, ErrNotText
	}

	var sb strings.Builder
	sb.Grow(len(Header) + len(text))
	sb.WriteString(Header)

	var run rune
	n := 0
	for _, r := range text {
		if n > 0 && r == run {
			n++
			continue
		}
		if n > 0 {
			flushRun(&sb, &stats, run, n)
		}
		run, n = r, 1
	}
	flushRun(&sb, &stats, run, n)

	stats.OriginalBytes = len(text)
	stats.EncodedBytes = sb.Len()
	stats.BytesSaved = stats.OriginalBytes - stats.EncodedBytes
	stats.SavingsPercent = float64(stats.BytesSaved) / float64(stats.OriginalBytes) * 100.0
	return sb.String(), stats, nil
}

// flushRun emits one run as a token and folds it into the stats.
func flushRun(sb *strings.Builder, stats *Stats, r rune, count int) {
	appendRun(sb, r, count)
	stats.Runs++
	if r == Escape || isASCIIDigit(r) {
		stats.EscapedRuns++
	}
	if count > stats.LongestRun {
		stats.LongestRun = count
	}
}

// appendRun writes the wire form of one run: the literal's token
// representation, then the decimal count when above 1.
func appendRun(sb *strings.Builder, r rune, count int) {
	switch {
	case r == Escape:
		sb.WriteByte(Escape)
		sb.WriteByte(Escape)
	case isASCIIDigit(r):
		sb.WriteByte(Escape)
		sb.WriteByte(byte(r))
	default:
		sb.WriteRune(r)
	}
	if count > 1 {
		sb.WriteString(strconv.Itoa(count))
	}
}
