package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigCommands(t *testing.T) {
	isolateEnv(t)

	out := runCmd(t, nil, "config", "add-profile", "terse", "--codec", "alpha")
	require.Contains(t, out, "Added profile.")

	out = runCmd(t, nil, "config", "use-profile", "terse")
	require.Contains(t, out, `Switched to profile "terse".`)

	out = runCmd(t, nil, "config", "view")
	require.Contains(t, out, "* terse")
	require.Contains(t, out, "alpha")

	// The current profile drives the codec.
	out = runCmd(t, nil, "encode", "AAABCC")
	require.Equal(t, "A3BC2\n", out)

	out = runCmd(t, nil, "config", "remove-profile", "terse")
	require.Contains(t, out, "Removed profile.")

	_, err := runCmdAllowFail(t, nil, "config", "use-profile", "terse")
	require.Error(t, err)
}

func TestConfigAddProfile_Duplicate(t *testing.T) {
	isolateEnv(t)

	runCmd(t, nil, "config", "add-profile", "dup")
	_, err := runCmdAllowFail(t, nil, "config", "add-profile", "dup")
	require.ErrorContains(t, err, "already exists")
}

func TestConfigProfile_ShowStats(t *testing.T) {
	isolateEnv(t)

	runCmd(t, nil, "config", "add-profile", "chatty", "--stats")
	runCmd(t, nil, "config", "use-profile", "chatty")

	out := runCmd(t, nil, "encode", "AAAA")
	require.Contains(t, out, "##00A4\n")
	require.Contains(t, out, "--- Run Stats ---")
}

func TestProfileOverrideFlag(t *testing.T) {
	isolateEnv(t)

	runCmd(t, nil, "config", "add-profile", "plain")
	runCmd(t, nil, "config", "add-profile", "short", "--codec", "alpha")
	runCmd(t, nil, "config", "use-profile", "plain")

	// The override applies to this run only.
	out := runCmd(t, nil, "-p", "short", "encode", "AAABCC")
	require.Equal(t, "A3BC2\n", out)

	out = runCmd(t, nil, "encode", "AAABCC")
	require.Equal(t, "##00A3BC2\n", out)
}

func TestProfileOverrideFlag_NotFound(t *testing.T) {
	isolateEnv(t)

	_, err := runCmdAllowFail(t, nil, "-p", "missing", "encode", "AAAA")
	require.ErrorContains(t, err, "not found")
}

func TestConfigFileFlag(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(`current-profile: a
profiles:
  - name: a
    codec: alpha
`), 0644))

	out := runCmd(t, nil, "--config", path, "encode", "AAABCC")
	require.Equal(t, "A3BC2\n", out)
}

func TestConfigFileFlag_Missing(t *testing.T) {
	isolateEnv(t)

	_, err := runCmdAllowFail(t, nil, "--config", filepath.Join(t.TempDir(), "nope"), "encode", "A")
	require.ErrorContains(t, err, "does not exist")
}

func TestCodecFlagBeatsProfile(t *testing.T) {
	isolateEnv(t)

	runCmd(t, nil, "config", "add-profile", "short", "--codec", "alpha")
	runCmd(t, nil, "config", "use-profile", "short")

	out := runCmd(t, nil, "-c", "escaped", "encode", "AAABCC")
	require.Equal(t, "##00A3BC2\n", out)
}
