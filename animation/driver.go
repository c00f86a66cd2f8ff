package animation

import (
	"context"
	"fmt"
	"log/slog"

	"semiplot/render"
	"semiplot/types"
)

// Driver 动画驱动，按顺序逐帧渲染并交给编码器
type Driver struct {
	Renderer *render.Renderer
	Frames   int                     // 帧数
	Size     render.Size             // 画布尺寸
	Logger   *slog.Logger            // 为空时不输出日志
	OnFrame  func(frame types.Frame) // 每帧渲染完成后的回调
}

// Run 渲染 [0, Frames) 全部帧，任意一帧失败即中止
func (d *Driver) Run(ctx context.Context, enc Encoder) (err error) {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	defer func() {
		if cerr := enc.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	for i := 0; i < d.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("渲染在第 %d 帧中断: %w", i, err)
		}
		frame := d.Renderer.BuildFrame(i)
		c, err := render.FrameImage(frame, d.Size)
		if err != nil {
			return err
		}
		if err := enc.WriteFrame(c.Image()); err != nil {
			return err
		}
		if d.OnFrame != nil {
			d.OnFrame(frame)
		}
		log.Debug("frame rendered", "index", i, "curves", frame.CurveCount)
	}
	log.Info("animation rendered", "frames", d.Frames)
	return nil
}
