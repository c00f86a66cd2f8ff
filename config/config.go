package config

import (
	"errors"
	"fmt"
	"strings"

	"semiplot/types"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config 程序配置，默认值即原始常量
type Config struct {
	Device    types.DeviceConstants `mapstructure:"device"`
	Animation AnimationConfig       `mapstructure:"animation"`
	Output    OutputConfig          `mapstructure:"output"`
	Preview   PreviewConfig         `mapstructure:"preview"`
	Log       LogConfig             `mapstructure:"log"`
}

// AnimationConfig 动画与编码参数
type AnimationConfig struct {
	Frames     int    `mapstructure:"frames" validate:"gt=0"`
	IntervalMS int    `mapstructure:"interval_ms" validate:"gt=0"`
	FPS        int    `mapstructure:"fps" validate:"gt=0"`
	Bitrate    int    `mapstructure:"bitrate" validate:"gt=0"`
	DPI        int    `mapstructure:"dpi" validate:"gt=0,lte=600"`
	FFmpeg     string `mapstructure:"ffmpeg"`
}

// OutputConfig 输出文件
type OutputConfig struct {
	Video     string `mapstructure:"video" validate:"required"`
	FramesDir string `mapstructure:"frames_dir"` // 不为空时逐帧输出 PNG 而不调用 ffmpeg
	Epitaxy   string `mapstructure:"epitaxy" validate:"required"`
	Liner     string `mapstructure:"liner" validate:"required"`
}

// PreviewConfig 预览服务，地址为空时不启动
type PreviewConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

// LogConfig 日志
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SetDefaults 写入默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("device.kn", types.DefaultDevice.KN)
	v.SetDefault("device.kp", types.DefaultDevice.KP)
	v.SetDefault("device.vtn", types.DefaultDevice.VTN)
	v.SetDefault("device.vtp", types.DefaultDevice.VTP)
	v.SetDefault("animation.frames", types.NumFrames)
	v.SetDefault("animation.interval_ms", int(types.FrameInterval.Milliseconds()))
	v.SetDefault("animation.fps", types.FrameRate)
	v.SetDefault("animation.bitrate", types.Bitrate)
	v.SetDefault("animation.dpi", 100)
	v.SetDefault("animation.ffmpeg", "")
	v.SetDefault("output.video", types.DefaultVideoFile)
	v.SetDefault("output.frames_dir", "")
	v.SetDefault("output.epitaxy", types.DefaultEpitaxyFile)
	v.SetDefault("output.liner", types.DefaultLinerFile)
	v.SetDefault("preview.addr", "localhost:8080")
	v.SetDefault("log.level", "info")
}

// New 创建带默认值和环境变量(SEMIPLOT_ 前缀)的 viper 实例
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("SEMIPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 读取配置，path 为空时只用默认值和环境变量
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验配置
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, e := range verrs {
			msgs[i] = fmt.Sprintf("%s 不满足 %s", e.Namespace(), e.Tag())
		}
		return fmt.Errorf("配置无效: %s", strings.Join(msgs, "; "))
	}
	return err
}
