// Package main provides the CLI entry point for textgrid.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ukaji3/textgrid-go/pkg/textgrid"
	"github.com/ukaji3/textgrid-go/pkg/textgrid/xlsxgrid"
)

var (
	outputPath string
	sheetName  string
	cellRange  string
	printArea  bool
	noTrim     bool
	align      string
	style      string
	format     string
	saveXLSX   string
	rows       int
	cols       int
	verbose    bool
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textgrid [input.xlsx]",
		Short: "Render spreadsheet cells as a bordered text table",
		Long: `textgrid loads a worksheet (or creates an empty grid with --rows/--cols)
and prints it as a column-aligned table with borders, or as CSV.`,
		Args:             cobra.MaximumNArgs(1),
		SilenceUsage:     true,
		PersistentPreRun: setupLogging,
		RunE:             run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet)")
	flags.StringVar(&cellRange, "range", "", "Cell range to load, e.g. A1:D10")
	flags.BoolVar(&printArea, "print-area", false, "Load the sheet's print area")
	flags.BoolVar(&noTrim, "no-trim", false, "Keep leading empty rows and columns")
	flags.StringVar(&align, "align", "left", "Cell alignment: left, right, center (or Left/L, Right/R, Center/C)")
	flags.StringVar(&style, "style", "ascii", "Border style: ascii, box, auto")
	flags.StringVar(&format, "format", "table", "Output format: table, csv")
	flags.StringVar(&saveXLSX, "save-xlsx", "", "Also write the grid to this xlsx file")
	flags.IntVar(&rows, "rows", 0, "Rows of an empty grid (no input file)")
	flags.IntVar(&cols, "cols", 0, "Columns of an empty grid (no input file)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) {
	log.SetOutput(cmd.ErrOrStderr())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

func run(cmd *cobra.Command, args []string) error {
	alignment, err := parseAlign(align)
	if err != nil {
		return err
	}

	if format != "table" && format != "csv" {
		return fmt.Errorf("invalid format: %s (must be table or csv)", format)
	}

	g, err := loadGrid(args)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"rows": g.Height(), "columns": g.Width()}).Debug("grid loaded")

	var text string
	if format == "csv" {
		text, err = g.CSV()
	} else {
		var border textgrid.Border
		border, err = parseStyle(style, outputPath == "" && isTerminal(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		text, err = g.Render(textgrid.Options{Alignment: alignment, Border: border})
	}
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if saveXLSX != "" {
		if err := xlsxgrid.Save(g, saveXLSX, sheetName); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
		log.WithField("path", saveXLSX).Debug("workbook saved")
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(text+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.WithField("path", outputPath).Debug("output written")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func loadGrid(args []string) (*textgrid.Grid, error) {
	if len(args) == 0 {
		if rows == 0 && cols == 0 {
			return nil, errors.New("an input file or --rows/--cols is required")
		}
		g, err := textgrid.New(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("creating grid: %w", err)
		}
		return g, nil
	}

	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	opts := xlsxgrid.LoadOptions{
		Sheet:     sheetName,
		Range:     cellRange,
		PrintArea: printArea,
		Trim:      !noTrim,
	}
	log.WithFields(logrus.Fields{"path": inputPath, "sheet": sheetName, "range": cellRange}).Debug("loading workbook")

	g, err := xlsxgrid.Load(inputPath, opts)
	if err != nil {
		return nil, fmt.Errorf("loading failed: %w", err)
	}
	return g, nil
}

// parseAlign maps the lowercase flag spellings onto the library constants and
// otherwise defers to textgrid.ParseAlignment (Left, L, Right, R, Center, C).
func parseAlign(s string) (textgrid.Alignment, error) {
	switch s {
	case "left":
		return textgrid.AlignLeft, nil
	case "right":
		return textgrid.AlignRight, nil
	case "center":
		return textgrid.AlignCenter, nil
	}
	a, err := textgrid.ParseAlignment(s)
	if err != nil {
		return "", fmt.Errorf("invalid align: %s (must be left, right, center, L, R, or C)", s)
	}
	return a, nil
}

func parseStyle(s string, tty bool) (textgrid.Border, error) {
	switch s {
	case "ascii":
		return textgrid.BorderASCII, nil
	case "box":
		return textgrid.BorderBox, nil
	case "auto":
		if tty {
			return textgrid.BorderBox, nil
		}
		return textgrid.BorderASCII, nil
	}
	return "", fmt.Errorf("invalid style: %s (must be ascii, box, or auto)", s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
