package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--serve", "", "--log-level", "warn"))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEpitaxyCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strain.png")
	_, err := run(t, "epitaxy", "--out", path)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestLinerCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "liner.png")
	_, err := run(t, "liner", "-o", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestMosfetFramesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	_, err := run(t, "mosfet", "--frames-dir", dir, "--frames", "2")
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "frame_000000.png", entries[0].Name())
}

func TestMosfetMissingEncoder(t *testing.T) {
	_, err := run(t, "mosfet", "--ffmpeg", "semiplot-no-such-encoder", "--frames", "1",
		"--out", filepath.Join(t.TempDir(), "iv.mp4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "semiplot-no-such-encoder")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device:\n  vtp: 1.0\n"), 0o644))
	_, err := run(t, "epitaxy", "--config", path, "--out", filepath.Join(t.TempDir(), "x.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VTP")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "semiplot version")
}
