package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Neumenon/relic/config"
)

// isolateEnv points the default config location at a fresh HOME so tests
// cannot see each other's configuration.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

// resetFlags restores flag-bound package state. Flag values are sticky
// across Execute calls within one process, so every invocation must start
// from the defaults rather than inherit the previous run's flags.
func resetFlags() {
	cfgFile = ""
	profileOverride = ""
	codecFlag = ""
	verbose = false
	showStats = false
	addProfileCodec = config.CodecEscaped
	addProfileStats = false
}

func runCmd(t *testing.T, in io.Reader, args ...string) string {
	t.Helper()

	out, err := runCmdAllowFail(t, in, args...)
	if err != nil {
		t.Logf("Command failed: %v\nArgs: %v\nOutput: %s", err, args, out)
		t.FailNow()
	}
	return out
}

// runCmdAllowFail runs a relic command and allows it to fail, returning
// the combined output and the error.
func runCmdAllowFail(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	if in == nil {
		in = bytes.NewReader(nil)
	}
	b := bytes.NewBufferString("")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetIn(in)

	err := rootCmd.Execute()

	bs, readErr := io.ReadAll(b)
	require.NoError(t, readErr)

	return string(bs), err
}
