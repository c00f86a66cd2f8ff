package animation

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Encoder 帧序列输出
type Encoder interface {
	WriteFrame(img image.Image) error
	Close() error
}

// FFmpegOptions ffmpeg 编码参数
type FFmpegOptions struct {
	Binary  string // ffmpeg 可执行文件，为空时查找 PATH
	Output  string // 输出视频文件
	FPS     int    // 帧率
	Bitrate int    // 码率 kbit/s
}

// Args 编码命令行参数，帧以 PNG 流从标准输入读入
func (o FFmpegOptions) Args() []string {
	return []string{
		"-y",
		"-loglevel", "error",
		"-f", "image2pipe",
		"-framerate", strconv.Itoa(o.FPS),
		"-c:v", "png",
		"-i", "-",
		"-c:v", "libx264",
		"-b:v", strconv.Itoa(o.Bitrate) + "k",
		"-pix_fmt", "yuv420p",
		o.Output,
	}
}

// FFmpeg 通过管道调用 ffmpeg 编码
type FFmpeg struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	buf    *bufio.Writer
	stderr bytes.Buffer
	frames int
}

// NewFFmpeg 启动 ffmpeg 进程，找不到 ffmpeg 或无法启动时返回错误
func NewFFmpeg(ctx context.Context, o FFmpegOptions) (*FFmpeg, error) {
	bin := o.Binary
	if bin == "" {
		bin = "ffmpeg"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("找不到视频编码器 %s: %w", bin, err)
	}
	if dir := filepath.Dir(o.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("无法创建输出目录: %w", err)
		}
	}
	f := &FFmpeg{cmd: exec.CommandContext(ctx, path, o.Args()...)}
	f.cmd.Stderr = &f.stderr
	if f.stdin, err = f.cmd.StdinPipe(); err != nil {
		return nil, err
	}
	if err := f.cmd.Start(); err != nil {
		return nil, fmt.Errorf("启动 ffmpeg 失败: %w", err)
	}
	f.buf = bufio.NewWriterSize(f.stdin, 1<<20)
	return f, nil
}

// WriteFrame 写入一帧
func (f *FFmpeg) WriteFrame(img image.Image) error {
	if err := png.Encode(f.buf, img); err != nil {
		return fmt.Errorf("ffmpeg 写入第 %d 帧失败: %w%s", f.frames, err, f.diagnostic())
	}
	f.frames++
	return nil
}

// Close 结束输入并等待编码完成
func (f *FFmpeg) Close() error {
	ferr := f.buf.Flush()
	cerr := f.stdin.Close()
	if err := f.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg 编码失败: %w%s", err, f.diagnostic())
	}
	if ferr != nil {
		return ferr
	}
	return cerr
}

func (f *FFmpeg) diagnostic() string {
	if f.stderr.Len() == 0 {
		return ""
	}
	return ": " + string(bytes.TrimSpace(f.stderr.Bytes()))
}

// FrameDir 把每帧写成 frame_%06d.png
type FrameDir struct {
	Dir    string
	frames int
}

// NewFrameDir 创建帧目录
func NewFrameDir(dir string) (*FrameDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("无法创建帧目录: %w", err)
	}
	return &FrameDir{Dir: dir}, nil
}

// FramePath 第 i 帧的文件路径
func (d *FrameDir) FramePath(i int) string {
	return filepath.Join(d.Dir, fmt.Sprintf("frame_%06d.png", i))
}

// WriteFrame 写入一帧
func (d *FrameDir) WriteFrame(img image.Image) error {
	file, err := os.Create(d.FramePath(d.frames))
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("写入第 %d 帧失败: %w", d.frames, err)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	d.frames++
	return nil
}

// Frames 已写入帧数
func (d *FrameDir) Frames() int { return d.frames }

// Close 帧目录无需收尾
func (d *FrameDir) Close() error { return nil }
