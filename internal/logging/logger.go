package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New 创建程序日志，输出到 Stderr，"error" 键统一为 "err"
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter 输出到指定 writer
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop 不输出的日志
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel 解析日志级别名称
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("未知日志级别 %q", s)
	}
	return level, nil
}
