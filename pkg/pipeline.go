package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rotscan/linkrot/pkg/checker"
	"github.com/rotscan/linkrot/pkg/config"
	"github.com/rotscan/linkrot/pkg/process"
	"github.com/rotscan/linkrot/pkg/report"
)

// Run executes the scan: discover files, extract link targets, check each
// over HTTP, report to out. The link list flows between stages as a value.
//
// Filesystem and decode errors abort the run; network failures are per-link
// results and never do.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) (report.Totals, error) {
	start := time.Now()

	files, err := process.Discover(cfg.Scanner.Root, cfg.Scanner.Ext)
	if err != nil {
		return report.Totals{}, err
	}

	var links []checker.Link
	for _, file := range files {
		report.Progress(out, file)

		text, err := process.ReadDocument(file)
		if err != nil {
			return report.Totals{}, err
		}

		for _, target := range process.ExtractTargets(text) {
			links = append(links, checker.Link{Target: target, File: file})
		}
	}

	report.Links(out, links)

	chk := checker.New(cfg.Checker.GetTimeout(), cfg.Checker.UserAgent)
	results := chk.CheckAll(ctx, links, cfg.Checker.Workers)

	totals := report.Results(out, results)

	slog.Info("scan complete",
		slog.Int("files", len(files)),
		slog.Int("links", len(links)),
		slog.Int("valid", totals.Valid),
		slog.Int("invalid", totals.Invalid),
		slog.Int("unresolvable", totals.Unresolvable),
		slog.Duration("elapsed", time.Since(start)),
	)

	return totals, nil
}
