package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeCmd(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "encode", "AAAAB#12")
	require.Equal(t, "##00A4B###1#2\n", out)
}

func TestEncodeCmd_Stdin(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, strings.NewReader("AAAAB#12\n"), "encode")
	require.Equal(t, "##00A4B###1#2\n", out)
}

func TestEncodeCmd_Stats(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "encode", "--stats", "AAAAB#12")
	require.Contains(t, out, "##00A4B###1#2\n")
	require.Contains(t, out, "--- Run Stats ---")
	require.Contains(t, out, "Original size: 8 bytes")
	require.Contains(t, out, "Encoded size: 13 bytes")
	require.Contains(t, out, "Savings: -5 bytes (-62.5%)")
	require.Contains(t, out, "Runs: 5 (3 escaped)")
	require.Contains(t, out, "Longest run: 4")
}

func TestEncodeCmd_EmptyInput(t *testing.T) {
	isolateEnv(t)

	_, err := runCmdAllowFail(t, nil, "encode", "")
	require.ErrorContains(t, err, "empty")
}

func TestDecodeCmd(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "decode", "##00A4B###1#2")
	require.Equal(t, "AAAAB#12\n", out)
}

func TestDecodeCmd_SyntaxErrors(t *testing.T) {
	isolateEnv(t)

	_, err := runCmdAllowFail(t, nil, "decode", "AAAA")
	require.ErrorContains(t, err, "MISSING_HEADER")

	_, err = runCmdAllowFail(t, nil, "decode", "##00#")
	require.ErrorContains(t, err, "DANGLING_ESCAPE")

	_, err = runCmdAllowFail(t, nil, "decode", "##00A01")
	require.ErrorContains(t, err, "MALFORMED_COUNT")
}

func TestConvertCmd(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "convert", "AAAAB")
	require.Equal(t, "##00A5B\n", out)

	out = runCmd(t, nil, "convert", "##00A5B")
	require.Equal(t, "AAAAB\n", out)
}

func TestCodecFlag_Alpha(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "-c", "alpha", "encode", "AAABCC")
	require.Equal(t, "A3BC2\n", out)

	out = runCmd(t, nil, "-c", "alpha", "decode", "A3BC2")
	require.Equal(t, "AAABCC\n", out)

	out = runCmd(t, nil, "-c", "alpha", "convert", "AAAB")
	require.Equal(t, "A3B\n", out)
}

func TestCodecFlag_Unknown(t *testing.T) {
	isolateEnv(t)

	_, err := runCmdAllowFail(t, nil, "-c", "zip", "encode", "AAAA")
	require.ErrorContains(t, err, "unknown codec")
}

func TestTokensCmd(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "tokens", "##00A4#12")
	require.Contains(t, out, `"literal"`)
	require.Contains(t, out, `"A"`)
	require.Contains(t, out, `"1"`)
	require.Contains(t, out, `"offset"`)
	require.Contains(t, out, `"escaped"`)
}

func TestTokensCmd_AlphaRejected(t *testing.T) {
	isolateEnv(t)

	_, err := runCmdAllowFail(t, nil, "-c", "alpha", "tokens", "A3")
	require.ErrorContains(t, err, "escaped")
}

func TestTokensCmd_BadStream(t *testing.T) {
	isolateEnv(t)

	_, err := runCmdAllowFail(t, nil, "tokens", "##00#q")
	require.ErrorContains(t, err, "INVALID_ESCAPE")
}

func TestVersionCmd(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "version")
	require.Equal(t, "relic latest (HEAD)\n", out)
}
