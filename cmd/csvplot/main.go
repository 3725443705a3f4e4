package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leengari/csvplot/internal/config"
	"github.com/leengari/csvplot/internal/dashboard"
	"github.com/leengari/csvplot/internal/logging"
	"github.com/leengari/csvplot/internal/runner"
	"github.com/leengari/csvplot/internal/selftest"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		csvPath  string
		xColumn  string
		yColumn  string
		runTests bool
	)

	cmd := &cobra.Command{
		Use:          "csvplot",
		Short:        "CSV scatter plotter with a local dashboard and a headless mode",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logger, closeFn := logging.SetupLogger(cfg.SeqURL)
			defer closeFn()
			slog.SetDefault(logger)

			if runTests {
				return selftest.Run(cmd.OutOrStdout())
			}

			// Any headless argument means headless, dashboard or not.
			// The output path may be customized through the config file
			// or environment as well as the flag.
			headless := csvPath != "" || xColumn != "" || yColumn != "" ||
				cmd.Flags().Changed("out") || cfg.Out != config.DefaultOut

			if !headless {
				srv := dashboard.New(cfg.DPI, cfg.PreviewRows)
				if err := srv.Bind(cfg.Listen); err != nil {
					slog.Warn("dashboard unavailable, running headless", "error", err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Dashboard: http://%s\n", srv.Addr())
					return srv.Serve()
				}
			}

			out, err := runner.Headless(runner.Options{
				CSVPath: csvPath,
				XColumn: xColumn,
				YColumn: yColumn,
				OutPath: cfg.Out,
				DPI:     cfg.DPI,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", color.GreenString(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to a CSV file (omit for sample data)")
	cmd.Flags().StringVar(&xColumn, "x", "", "X column name")
	cmd.Flags().StringVar(&yColumn, "y", "", "Y column name")
	cmd.Flags().String("out", config.DefaultOut, "output PNG path for headless mode")
	cmd.Flags().String("listen", config.DefaultListen, "dashboard listen address")
	cmd.Flags().BoolVar(&runTests, "test", false, "run built-in regression checks and exit")

	return cmd
}
