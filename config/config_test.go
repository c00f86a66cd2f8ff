package config

import (
	"os"
	"path/filepath"
	"testing"

	"semiplot/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultDevice, cfg.Device)
	assert.Equal(t, types.NumFrames, cfg.Animation.Frames)
	assert.Equal(t, 33, cfg.Animation.IntervalMS)
	assert.Equal(t, types.FrameRate, cfg.Animation.FPS)
	assert.Equal(t, types.Bitrate, cfg.Animation.Bitrate)
	assert.Equal(t, types.DefaultVideoFile, cfg.Output.Video)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "semiplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
device:
  kn: 0.8
animation:
  frames: 60
output:
  video: out/iv.mp4
`), 0o644))
	t.Setenv("SEMIPLOT_ANIMATION_FPS", "24")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, cfg.Device.KN)
	assert.Equal(t, types.DefaultDevice.VTP, cfg.Device.VTP)
	assert.Equal(t, 60, cfg.Animation.Frames)
	assert.Equal(t, 24, cfg.Animation.FPS)
	assert.Equal(t, "out/iv.mp4", cfg.Output.Video)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"正阈值 PMOS": func(c *Config) { c.Device.VTP = 0.5 },
		"负阈值 NMOS": func(c *Config) { c.Device.VTN = -1 },
		"零帧":       func(c *Config) { c.Animation.Frames = 0 },
		"未知日志级别":   func(c *Config) { c.Log.Level = "loud" },
		"空输出":      func(c *Config) { c.Output.Video = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(New(), "")
			require.NoError(t, err)
			mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
