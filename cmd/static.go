package main

import (
	"io"

	"semiplot"
	"semiplot/preview"

	"github.com/spf13/cobra"
)

func newEpitaxyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epitaxy",
		Short: "Plot strain induced by lattice mismatch in epitaxial growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup()
			if err != nil {
				return err
			}
			size := semiplot.ChartSize(cfg)
			if err := semiplot.WriteFile(cfg.Output.Epitaxy, func(w io.Writer) error {
				return semiplot.Epitaxy(w, size)
			}); err != nil {
				return err
			}
			log.Info("chart written", "file", cfg.Output.Epitaxy)
			rec := semiplot.EpitaxyRecord()
			handler := preview.NewHandler(rec, func(w io.Writer, _ int) error {
				return semiplot.Epitaxy(w, size)
			}, log)
			return serve(cmd.Context(), cfg, handler, log)
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output PNG file")
	_ = a.v.BindPFlag("output.epitaxy", cmd.Flags().Lookup("out"))
	return cmd
}

func newLinerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liner",
		Short: "Draw the stress liner schematic of a transistor channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup()
			if err != nil {
				return err
			}
			size := semiplot.ChartSize(cfg)
			if err := semiplot.WriteFile(cfg.Output.Liner, func(w io.Writer) error {
				return semiplot.Liner(w, size)
			}); err != nil {
				return err
			}
			log.Info("schematic written", "file", cfg.Output.Liner)
			handler := preview.NewHandler(preview.NewRecord("Stress Liners", 0), func(w io.Writer, _ int) error {
				return semiplot.Liner(w, size)
			}, log)
			return serve(cmd.Context(), cfg, handler, log)
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output PNG file")
	_ = a.v.BindPFlag("output.liner", cmd.Flags().Lookup("out"))
	return cmd
}
