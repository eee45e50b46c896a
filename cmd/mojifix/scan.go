package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/mojifix"
)

type scanResult struct {
	path     string
	encoding mojifix.Encoding
	strings  int
	flagged  int
	err      error
}

func newScanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [flags] <file.json>...",
		Short: "Count strings that look corrupted without changing anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScan(cmd, args)
		},
	}
	cmd.Flags().IntP("jobs", "j", -1, "files processed in parallel (default from config, 0 = GOMAXPROCS)")
	return cmd
}

func (a *app) runScan(cmd *cobra.Command, args []string) error {
	jobs := a.cfg.Jobs
	if n, _ := cmd.Flags().GetInt("jobs"); n >= 0 {
		jobs = n
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns its slot
	results := make([]scanResult, len(args))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))
	for i, path := range args {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.scanFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			a.logger.Error("Scan failed", zap.String("input", r.path), zap.Error(r.err))
			fmt.Fprintf(out, "%s: error: %v\n", r.path, r.err)
			continue
		}
		fmt.Fprintf(out, "%s: %d of %d strings flagged (%s)\n", r.path, r.flagged, r.strings, r.encoding)
	}
	if failed > 0 {
		return fmt.Errorf("scan: %d of %d files failed", failed, len(args))
	}
	return nil
}

func (a *app) scanFile(path string) scanResult {
	res, err := mojifix.LoadFile(path, a.cfg.LoadOpt())
	if err != nil {
		return scanResult{path: path, err: err}
	}
	r := scanResult{
		path:     path,
		encoding: res.Encoding,
		strings:  countStrings(res.Value),
		flagged:  a.repairer.CountFlagged(res.Value),
	}
	a.logger.Debug("Scanned", zap.String("input", path), zap.Int("flagged", r.flagged))
	return r
}

func countStrings(v mojifix.Value) int {
	switch v.Kind() {
	case mojifix.KindString:
		return 1
	case mojifix.KindArray:
		n := 0
		for _, e := range v.Elems() {
			n += countStrings(e)
		}
		return n
	case mojifix.KindObject:
		n := 0
		for _, m := range v.Members() {
			n += countStrings(m.Value)
		}
		return n
	}
	return 0
}
