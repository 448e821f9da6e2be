package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	pipeline "github.com/rotscan/linkrot/pkg"
	"github.com/rotscan/linkrot/pkg/config"
	"github.com/rotscan/linkrot/pkg/logger"
)

func main() {
	if err := newApp().Execute(); err != nil {
		slog.Error("fatal", slog.Any("err", err))
		os.Exit(1)
	}
}

func newApp() *cobra.Command {
	var (
		configPath string
		root       string
		ext        string
		timeout    time.Duration
		workers    int
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "linkrot",
		Short: "Scan markdown files under a directory and check every link",
		Long: `linkrot walks a directory tree, extracts the targets of markdown
inline links ([label](target)) from every matching file, issues one HEAD
request per target, and reports each link as valid, invalid, or
unresolvable.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags win over the config file, which wins over defaults.
			flags := cmd.Flags()
			if flags.Changed("root") {
				cfg.Scanner.Root = root
			}
			if flags.Changed("ext") {
				cfg.Scanner.Ext = ext
			}
			if flags.Changed("timeout") {
				cfg.Checker.Timeout = timeout.String()
			}
			if flags.Changed("workers") {
				cfg.Checker.Workers = workers
			}
			if flags.Changed("strict") {
				cfg.Report.Strict = strict
			}

			logger.InitLogger(cfg)

			totals, err := pipeline.Run(cmd.Context(), cfg, os.Stdout)
			if err != nil {
				return err
			}

			if cfg.Report.Strict && totals.Failures() > 0 {
				return fmt.Errorf("%d of the checked links failed", totals.Failures())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "linkrot.toml", "TOML config file (skipped if absent)")
	cmd.Flags().StringVar(&root, "root", ".", "directory to scan")
	cmd.Flags().StringVar(&ext, "ext", ".md", "file extension to scan")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request HTTP timeout")
	cmd.Flags().IntVar(&workers, "workers", 1, "validation workers (1 = sequential)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any link is invalid or unresolvable")

	return cmd
}
