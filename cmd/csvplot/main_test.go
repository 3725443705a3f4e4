package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot_SelfTestFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--test"})

	require.NoError(t, cmd.Execute(), out.String())
	require.Contains(t, out.String(), "checks passed")
}

func TestRoot_HeadlessWithOutFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	outPath := filepath.Join("artifacts", "out.png")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--out", outPath})

	require.NoError(t, cmd.Execute(), out.String())
	require.Contains(t, out.String(), "Saved:")

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRoot_EnvOutRunsHeadless(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CSVPLOT_OUT", "env-out.png")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	// An output path from the environment is a headless signal; the
	// dashboard must not start.
	require.NoError(t, cmd.Execute(), out.String())
	require.Contains(t, out.String(), "Saved:")
	require.NotContains(t, out.String(), "Dashboard:")
	require.FileExists(t, "env-out.png")
}

func TestRoot_HeadlessUnknownColumnFails(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--x", "nope", "--y", "x", "--out", "out.png"})

	require.Error(t, cmd.Execute())
}
