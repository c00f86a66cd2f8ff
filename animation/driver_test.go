package animation

import (
	"context"
	"errors"
	"image"
	"os"
	"testing"

	"semiplot/render"
	"semiplot/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

var testSize = render.Size{Width: 4 * vg.Inch, Height: 3 * vg.Inch, DPI: 20}

type memEncoder struct {
	frames []image.Image
	closed bool
	fail   int
}

func (m *memEncoder) WriteFrame(img image.Image) error {
	if m.fail > 0 && len(m.frames) == m.fail {
		return errors.New("disk full")
	}
	m.frames = append(m.frames, img)
	return nil
}

func (m *memEncoder) Close() error {
	m.closed = true
	return nil
}

func newDriver(frames int) *Driver {
	return &Driver{
		Renderer: render.NewRenderer(types.DefaultDevice, types.FrameInterval),
		Frames:   frames,
		Size:     testSize,
	}
}

func TestDriverRunsFramesInOrder(t *testing.T) {
	d := newDriver(5)
	var seen []int
	d.OnFrame = func(f types.Frame) {
		seen = append(seen, f.Index)
		assert.GreaterOrEqual(t, f.CurveCount, types.MinCurves)
		assert.LessOrEqual(t, f.CurveCount, types.MaxCurves)
	}
	enc := &memEncoder{}
	require.NoError(t, d.Run(context.Background(), enc))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Len(t, enc.frames, 5)
	assert.True(t, enc.closed)
	b := enc.frames[0].Bounds()
	assert.Equal(t, 80, b.Dx())
	assert.Equal(t, 60, b.Dy())
}

func TestDriverStopsOnEncoderError(t *testing.T) {
	d := newDriver(5)
	enc := &memEncoder{fail: 2}
	err := d.Run(context.Background(), enc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, enc.frames, 2)
	assert.True(t, enc.closed, "失败时也要关闭编码器")
}

func TestDriverCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := newDriver(10)
	d.OnFrame = func(f types.Frame) {
		if f.Index == 1 {
			cancel()
		}
	}
	enc := &memEncoder{}
	err := d.Run(ctx, enc)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, enc.frames, 2)
}

func TestFrameDir(t *testing.T) {
	dir := t.TempDir()
	enc, err := NewFrameDir(dir)
	require.NoError(t, err)
	require.NoError(t, newDriver(3).Run(context.Background(), enc))
	assert.Equal(t, 3, enc.Frames())
	for i := 0; i < 3; i++ {
		info, err := os.Stat(enc.FramePath(i))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	_, err = os.Stat(enc.FramePath(3))
	assert.True(t, os.IsNotExist(err))
}

func TestFFmpegArgs(t *testing.T) {
	o := FFmpegOptions{Output: "out.mp4", FPS: types.FrameRate, Bitrate: types.Bitrate}
	args := o.Args()
	assert.Contains(t, args, "30")
	assert.Contains(t, args, "2000k")
	assert.Equal(t, "out.mp4", args[len(args)-1])
}

func TestFFmpegMissingBinary(t *testing.T) {
	_, err := NewFFmpeg(context.Background(), FFmpegOptions{
		Binary: "semiplot-no-such-encoder",
		Output: t.TempDir() + "/out.mp4",
		FPS:    30,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "semiplot-no-such-encoder")
}
