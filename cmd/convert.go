// The convert command orchestrates the pipeline: read the input, optionally
// extract the main content, convert to Markdown, format, write. It handles
// flag validation, engine and formatter selection, and the stdout or
// --output_dir output modes.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/htmldown/core"
	"github.com/gaurav-prasanna/htmldown/core/engine"
	"github.com/gaurav-prasanna/htmldown/core/extract"
	"github.com/gaurav-prasanna/htmldown/core/format"
	"github.com/gaurav-prasanna/htmldown/core/output"
)

// Flag variables.
var (
	flagExtract   bool
	flagEngine    string
	flagMarkdown  bool
	flagJSON      bool
	flagPDF       bool
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert an HTML file to the specified output format",
	Long: `Convert reads an HTML document, converts it to Markdown, and emits it in
the specified output format (Markdown by default, or JSON or PDF).

The default engine is the strict native pipeline; structurally broken markup
fails the conversion. Use --engine commonmark for lenient conversion of
real-world pages, and --extract to isolate the main content first.

Examples:
  htmldown convert page.html
  htmldown convert page.html --json --output_dir ./out
  htmldown convert page.html --extract --engine commonmark
  htmldown convert page.html --pdf --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&flagExtract, "extract", false, "Isolate main content before converting")
	convertCmd.Flags().StringVar(&flagEngine, "engine", "native", "Conversion engine: native or commonmark")

	// Output format flags (mutually exclusive; markdown is the default).
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown (default)")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	formatter, err := selectFormatter()
	if err != nil {
		return err
	}
	eng, err := selectEngine()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	source := string(raw)

	if flagExtract {
		extractor := extract.New()
		source, err = extractor.Extract(source)
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}
	}

	markdown, err := eng.Convert(source)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	meta := buildMetadata(inputPath, markdown, eng.Name())

	data, err := formatter.Format(markdown, meta)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(inputPath, data, formatter.Extension())
	if err != nil {
		return err
	}
	if path != "-" {
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}
	return nil
}

// firstHeading matches the first Markdown heading line.
var firstHeading = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

// buildMetadata constructs DocMetadata from the input path and the
// converted Markdown. The title is the first heading, or the file stem.
func buildMetadata(inputPath, markdown, engineName string) core.DocMetadata {
	title := ""
	if m := firstHeading.FindStringSubmatch(markdown); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if title == "" {
		base := filepath.Base(inputPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return core.DocMetadata{
		Source:      inputPath,
		Title:       title,
		Engine:      engineName,
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// selectFormatter checks that at most one output format is chosen and
// returns it, Markdown being the default.
func selectFormatter() (core.Formatter, error) {
	count := 0
	for _, set := range []bool{flagMarkdown, flagJSON, flagPDF} {
		if set {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagJSON:
		return format.NewJSON(), nil
	case flagPDF:
		return format.NewPDF(), nil
	default:
		return format.NewMarkdown(), nil
	}
}

// selectEngine creates the appropriate Engine based on --engine.
func selectEngine() (core.Engine, error) {
	switch flagEngine {
	case "native":
		return engine.NewNative(), nil
	case "commonmark":
		return engine.NewCommonmark(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want native or commonmark)", flagEngine)
	}
}
