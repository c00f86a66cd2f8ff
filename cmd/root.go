package main

import (
	"context"
	"log/slog"
	"net/http"

	"semiplot/config"
	"semiplot/internal/logging"
	"semiplot/preview"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app 命令行共享状态
type app struct {
	v       *viper.Viper
	cfgFile string
}

// newRootCmd 创建根命令及全部子命令
func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:           "semiplot",
		Short:         "Semiconductor device physics plots",
		Long:          `semiplot renders strain vs lattice mismatch, animated MOSFET I-V curves and a stress liner schematic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Optional config file (yaml, json or toml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("serve", "localhost:8080", `Preview address served after rendering; "" disables it`)
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("preview.addr", flags.Lookup("serve"))

	root.AddCommand(
		newMosfetCmd(a),
		newEpitaxyCmd(a),
		newLinerCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup 读取配置并创建日志
func (a *app) setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(level), nil
}

// serve 渲染完成后提供预览，地址为空时直接返回
func serve(ctx context.Context, cfg *config.Config, handler http.Handler, log *slog.Logger) error {
	if cfg.Preview.Addr == "" {
		return nil
	}
	return preview.Serve(ctx, cfg.Preview.Addr, handler, log)
}
