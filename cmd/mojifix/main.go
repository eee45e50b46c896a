package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/reoring/mojifix"
	"github.com/reoring/mojifix/config"
	"github.com/reoring/mojifix/internal/report"
	"github.com/reoring/mojifix/source"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	repairer *mojifix.Repairer
	color    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mojifix",
		Short:         "Repair mojibake and double-encoded emoji in exported JSON",
		Long:          "mojifix repairs strings in JSON exports whose emoji were mangled by Latin-1 mis-decoding or left as literal \\u escapes.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().String("config", "", "config file (default ./"+config.DefaultFile+" when present)")
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().String("driver", "", "json driver (gojson|encoding/json)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(newFixCmd(a), newScanCmd(a), newSelftestCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if v, _ := flags.GetString("color"); v != "" {
		cfg.Report.Color = v
	}
	if v, _ := flags.GetString("driver"); v != "" {
		cfg.Driver = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	verbose, _ := flags.GetBool("verbose")

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if err := source.Use(cfg.Driver); err != nil {
		return err
	}
	rep, err := cfg.Repairer()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.repairer = rep
	a.color = colorEnabled(cfg.Report.Color, cmd.OutOrStdout())
	logger.Debug("Configuration loaded",
		zap.String("driver", mojifix.CurrentJSONDriver().Name()),
		zap.Int("markers", rep.Markers().Len()),
		zap.Bool("color", a.color))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

func (a *app) reportOptions() report.Options {
	return report.Options{
		MaxExamples:  a.cfg.Report.MaxExamples,
		PreviewWidth: a.cfg.Report.PreviewWidth,
		Color:        a.color,
	}
}

func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
