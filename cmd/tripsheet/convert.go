package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/output"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/parser"
)

type convertFlags struct {
	outputPath string
	outputDir  string
	asJSON     bool
	pretty     bool
	timeout    time.Duration
	format     string
	inputSheet string
	sheet      string
	jobs       int
}

func newConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [input...]",
		Short: "Convert trip files to xlsx trip sheets",
		Long: `Converts one or more trip export files. A single input is written to
--output (default converted-trip-file.xlsx); several inputs are converted
concurrently and written to --output-dir, one workbook per input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path for a single input (default: "+output.DefaultFileName+")")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Directory for per-input output files")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Write JSON instead of xlsx")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", tripsheet.DefaultTimeout, "Maximum time to read each input")
	cmd.Flags().StringVar(&flags.format, "format", "", "Input format: csv, xlsx or xls (default: from extension)")
	cmd.Flags().StringVar(&flags.inputSheet, "input-sheet", "", "Sheet to read from workbook inputs (default: first)")
	cmd.Flags().StringVar(&flags.sheet, "sheet", output.DefaultSheetName, "Output sheet name")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 4, "Maximum concurrent conversions")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, flags convertFlags) error {
	format, ok := parser.ParseFormat(flags.format)
	if !ok {
		return fmt.Errorf("invalid format: %s (must be csv, xlsx, or xls)", flags.format)
	}
	if len(args) > 1 && flags.outputPath != "" {
		return fmt.Errorf("--output takes a single input; use --output-dir for %d inputs", len(args))
	}

	paths, err := outputPaths(args, flags)
	if err != nil {
		return err
	}

	opts := tripsheet.Options{
		Timeout:     flags.timeout,
		Format:      format,
		SheetName:   flags.inputSheet,
		OutputSheet: flags.sheet,
	}

	start := time.Now()
	results, err := tripsheet.ConvertAll(cmd.Context(), args, opts, flags.jobs)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	logger.Debug("converted inputs",
		zap.Int("files", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if flags.outputDir != "" {
		if err := os.MkdirAll(flags.outputDir, 0755); err != nil {
			return err
		}
	}

	for i, c := range results {
		path := paths[i]
		if err := writeResult(path, c, flags); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("wrote trip sheet",
			zap.String("input", args[i]),
			zap.String("output", path),
			zap.Int("records", c.Records),
		)
	}
	return nil
}

// outputPaths picks the output path of every input. Two inputs that would
// write the same file are an error.
func outputPaths(inputs []string, flags convertFlags) ([]string, error) {
	paths := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, input := range inputs {
		path := outputPathFor(input, flags)
		if prev, ok := seen[path]; ok && path != "" {
			return nil, fmt.Errorf("inputs %s and %s both write %s", prev, input, path)
		}
		seen[path] = input
		paths[i] = path
	}
	return paths, nil
}

// outputPathFor picks where the result for input is written.
func outputPathFor(input string, flags convertFlags) string {
	ext := ".xlsx"
	if flags.asJSON {
		ext = ".json"
	}
	if flags.outputDir != "" {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return filepath.Join(flags.outputDir, base+ext)
	}
	if flags.outputPath != "" {
		return flags.outputPath
	}
	if flags.asJSON {
		return ""
	}
	return output.DefaultFileName
}

func writeResult(path string, c *models.Conversion, flags convertFlags) error {
	if !flags.asJSON {
		return output.SaveXLSX(path, c.Matrix, c.SheetName)
	}

	jsonData, err := output.ToJSON(c, flags.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if path == "" {
		fmt.Println(string(jsonData))
		return nil
	}
	return os.WriteFile(path, jsonData, 0644)
}
