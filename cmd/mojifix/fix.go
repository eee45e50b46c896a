package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/mojifix"
	"github.com/reoring/mojifix/internal/report"
)

func newFixCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [flags] <input.json> [output.json]",
		Short: "Repair a JSON export and report the changed strings",
		Long: "Load a JSON document, repair every string leaf, write the result and print examples of the fixes.\n" +
			"Without an output path the result is written next to the input as <name>_fixed.json.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFix(cmd, args)
		},
	}
	cmd.Flags().Bool("in-place", false, "overwrite the input file")
	cmd.Flags().Bool("dry-run", false, "report fixes without writing anything")
	cmd.Flags().Bool("json", false, "print the report as JSON")
	cmd.Flags().Int("max-examples", -1, "number of fixes to show (default from config)")
	cmd.Flags().Int("preview-width", -1, "display columns per preview (default from config)")
	return cmd
}

func (a *app) runFix(cmd *cobra.Command, args []string) error {
	input := args[0]
	inPlace, _ := cmd.Flags().GetBool("in-place")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	asJSON, _ := cmd.Flags().GetBool("json")
	if inPlace && len(args) == 2 {
		return fmt.Errorf("--in-place cannot be combined with an output path")
	}

	opts := a.reportOptions()
	if n, _ := cmd.Flags().GetInt("max-examples"); n >= 0 {
		opts.MaxExamples = n
	}
	if n, _ := cmd.Flags().GetInt("preview-width"); n >= 0 {
		opts.PreviewWidth = n
	}

	output := ""
	switch {
	case dryRun:
	case inPlace:
		output = input
	case len(args) == 2:
		output = args[1]
	default:
		output = defaultOutputPath(input, a.cfg.OutputSuffix)
	}

	a.logger.Debug("Loading document", zap.String("input", input))
	res, err := mojifix.LoadFile(input, a.cfg.LoadOpt())
	if err != nil {
		return fmt.Errorf("fix: load %s: %w", input, err)
	}
	if res.Encoding != mojifix.EncodingUTF8 {
		a.logger.Warn("Input was not valid UTF-8, read as Latin-1", zap.String("input", input))
	}

	flagged := a.repairer.CountFlagged(res.Value)
	fixed := a.repairer.Walk(res.Value)
	fixes := mojifix.Diff(res.Value, fixed)
	a.logger.Info("Document repaired",
		zap.String("input", input),
		zap.Int("flagged", flagged),
		zap.Int("fixed", len(fixes)))

	if output != "" {
		if err := writeDocument(output, fixed, a.cfg.Indent); err != nil {
			return fmt.Errorf("fix: write %s: %w", output, err)
		}
		a.logger.Debug("Document written", zap.String("output", output))
	}

	summary := report.Summary{
		Input:    input,
		Output:   output,
		Encoding: res.Encoding,
		Flagged:  flagged,
		Fixes:    fixes,
		Warnings: res.Warnings,
	}
	if asJSON {
		return report.WriteJSON(cmd.OutOrStdout(), summary)
	}
	return report.WriteText(cmd.OutOrStdout(), summary, opts)
}

// defaultOutputPath turns dir/message_1.json into dir/message_1_fixed.json.
func defaultOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix + ext
}

// writeDocument replaces path atomically.
func writeDocument(path string, v mojifix.Value, indent string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = mojifix.EncodeIndent(tmp, v, indent); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err = tmp.WriteString("\n"); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
