package main

import (
	"time"

	"semiplot"
	"semiplot/preview"

	"github.com/spf13/cobra"
)

func newMosfetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mosfet",
		Short: "Render the animated NMOS/PMOS I-V curves to a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			enc, err := semiplot.NewEncoder(ctx, cfg)
			if err != nil {
				return err
			}
			rec := preview.NewRecord("MOSFET I-V", time.Duration(cfg.Animation.IntervalMS)*time.Millisecond)
			if err := semiplot.Animate(ctx, cfg, enc, rec, log); err != nil {
				return err
			}
			if cfg.Output.FramesDir != "" {
				log.Info("frames written", "dir", cfg.Output.FramesDir)
			} else {
				log.Info("video written", "file", cfg.Output.Video)
			}
			handler := preview.NewHandler(rec, semiplot.FrameImages(rec, semiplot.FrameSize(cfg)), log)
			return serve(ctx, cfg, handler, log)
		},
	}
	flags := cmd.Flags()
	flags.StringP("out", "o", "", "Output video file")
	flags.String("frames-dir", "", "Write PNG frames to this directory instead of encoding a video")
	flags.Int("frames", 0, "Number of frames")
	flags.String("ffmpeg", "", "ffmpeg binary")
	_ = a.v.BindPFlag("output.video", flags.Lookup("out"))
	_ = a.v.BindPFlag("output.frames_dir", flags.Lookup("frames-dir"))
	_ = a.v.BindPFlag("animation.frames", flags.Lookup("frames"))
	_ = a.v.BindPFlag("animation.ffmpeg", flags.Lookup("ffmpeg"))
	return cmd
}
