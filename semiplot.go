package semiplot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"semiplot/animation"
	"semiplot/config"
	"semiplot/epitaxy"
	"semiplot/liner"
	"semiplot/preview"
	"semiplot/render"
	"semiplot/types"
)

// Version 版本号
const Version = "0.1.0"

// Credit 示意图署名
const Credit = "Samuel Olowosile"

// FrameSize 按配置的 DPI 得到动画帧尺寸
func FrameSize(cfg *config.Config) render.Size {
	s := render.FrameSize
	s.DPI = cfg.Animation.DPI
	return s
}

// ChartSize 按配置的 DPI 得到单图尺寸
func ChartSize(cfg *config.Config) render.Size {
	s := render.ChartSize
	s.DPI = cfg.Animation.DPI
	return s
}

// NewEncoder 按配置选择编码器，设置了帧目录时逐帧输出 PNG，否则调用 ffmpeg
func NewEncoder(ctx context.Context, cfg *config.Config) (animation.Encoder, error) {
	if cfg.Output.FramesDir != "" {
		dir, err := animation.NewFrameDir(cfg.Output.FramesDir)
		if err != nil {
			return nil, err
		}
		return dir, nil
	}
	f, err := animation.NewFFmpeg(ctx, animation.FFmpegOptions{
		Binary:  cfg.Animation.FFmpeg,
		Output:  cfg.Output.Video,
		FPS:     cfg.Animation.FPS,
		Bitrate: cfg.Animation.Bitrate,
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Animate 渲染 MOSFET 特性曲线动画，每帧同时记入 rec
func Animate(ctx context.Context, cfg *config.Config, enc animation.Encoder, rec *preview.Record, log *slog.Logger) error {
	interval := time.Duration(cfg.Animation.IntervalMS) * time.Millisecond
	d := &animation.Driver{
		Renderer: render.NewRenderer(cfg.Device, interval),
		Frames:   cfg.Animation.Frames,
		Size:     FrameSize(cfg),
		Logger:   log,
	}
	if rec != nil {
		d.OnFrame = rec.Update
	}
	return d.Run(ctx, enc)
}

// FrameImages 预览用的逐帧 PNG
func FrameImages(rec *preview.Record, size render.Size) preview.ImageFunc {
	return func(w io.Writer, index int) error {
		frame, ok := rec.Frame(index)
		if !ok {
			return fmt.Errorf("帧 %d 不存在", index)
		}
		c, err := render.FrameImage(frame, size)
		if err != nil {
			return err
		}
		return render.WritePNG(w, c)
	}
}

// EpitaxyRecord 晶格失配应变图，作为单帧记录
func EpitaxyRecord() *preview.Record {
	rec := preview.NewRecord("Epitaxial Growth", 0)
	rec.Update(types.Frame{Panels: []types.Panel{epitaxy.Panel()}})
	return rec
}

// Epitaxy 输出晶格失配应变图
func Epitaxy(w io.Writer, size render.Size) error {
	c, err := render.Image([]types.Panel{epitaxy.Panel()}, size)
	if err != nil {
		return err
	}
	return render.WritePNG(w, c)
}

// Liner 输出应力衬垫示意图
func Liner(w io.Writer, size render.Size) error {
	c, err := liner.Default(Credit).Image(size)
	if err != nil {
		return err
	}
	return render.WritePNG(w, c)
}

// WriteFile 创建文件并写入
func WriteFile(path string, write func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("无法创建目录: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := write(bw); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
