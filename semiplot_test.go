package semiplot

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"semiplot/config"
	"semiplot/internal/logging"
	"semiplot/preview"
	"semiplot/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	cfg.Animation.Frames = 3
	cfg.Animation.DPI = 10
	cfg.Output.FramesDir = filepath.Join(t.TempDir(), "frames")
	return cfg
}

func TestAnimate(t *testing.T) {
	cfg := testConfig(t)
	enc, err := NewEncoder(context.Background(), cfg)
	require.NoError(t, err)
	rec := preview.NewRecord("MOSFET", 0)
	require.NoError(t, Animate(context.Background(), cfg, enc, rec, logging.NewNop()))

	require.Equal(t, 3, rec.Len())
	for i, f := range rec.Frames {
		assert.Equal(t, i, f.Index)
		assert.Len(t, f.Panels, 4)
	}
	assert.Equal(t, 66*time.Millisecond, rec.Frames[2].Time)

	entries, err := os.ReadDir(cfg.Output.FramesDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	var buf bytes.Buffer
	require.NoError(t, FrameImages(rec, FrameSize(cfg))(&buf, 1))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	assert.Error(t, FrameImages(rec, FrameSize(cfg))(&buf, 3))
}

func TestStaticRenders(t *testing.T) {
	dir := t.TempDir()
	size := render.ChartSize
	size.DPI = 20
	for name, fn := range map[string]func(io.Writer, render.Size) error{
		"strain.png": Epitaxy,
		"liner.png":  Liner,
	} {
		path := filepath.Join(dir, "nested", name)
		require.NoError(t, WriteFile(path, func(w io.Writer) error { return fn(w, size) }))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), name)
	}
}

func TestEpitaxyRecord(t *testing.T) {
	rec := EpitaxyRecord()
	require.Equal(t, 1, rec.Len())
	f, _ := rec.Frame(0)
	require.Len(t, f.Panels, 1)
	assert.Equal(t, "Induced Strain", f.Panels[0].Curves[0].Label)
}
