package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/atomicfile"
	"github.com/aidanlsb/querykit/internal/report"
	"github.com/aidanlsb/querykit/internal/ui"
)

var (
	demoFormat     string
	demoMinAge     int
	demoSort       sortValue
	demoOutput     string
	demoAllowEmpty bool
	demoRaw        bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every query operation over the dataset",
	Long: `Runs the full sequence of query operations over the dataset and prints
each result: projection to contacts, filter and order, aggregates over ages,
distinct numbers, a generated range, squares and grouping by parity.

Formats:
  text      Tables for the terminal (default)
  markdown  Markdown, rendered for the terminal unless --raw or --output
  html      Standalone HTML fragment with a table of contents
  json      The report as a JSON document

Examples:
  qk demo
  qk demo --min-age 20 --sort -age,first_name
  qk demo --format html --output report.html
  qk demo --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd)
		if err != nil {
			return err
		}

		ds, err := loadDataset()
		if err != nil {
			return err
		}

		start := time.Now()
		opts := report.DefaultOptions()
		opts.MinAge = demoMinAge
		opts.SortFields = demoSort.Fields()
		opts.AllowEmpty = demoAllowEmpty

		r, err := report.Build(ds.Source, ds.People, ds.Numbers, opts)
		if err != nil {
			return handleQueryError(err, ErrInternal)
		}
		elapsed := elapsedMs("demo", start)

		if demoRaw && format != "markdown" {
			fmt.Fprintln(os.Stderr, ui.Warningf("--raw only applies to markdown output"))
		}

		if demoOutput != "" {
			return writeReport(r, format, demoOutput)
		}

		if isJSONOutput() || format == "json" {
			outputSuccess(r, &Meta{Count: len(r.Filtered), Source: r.Source, QueryTimeMs: elapsed})
			return nil
		}

		switch format {
		case "markdown":
			md := report.Markdown(r)
			if demoRaw {
				outf("%s", md)
				return nil
			}
			rendered, err := ui.RenderMarkdown(md, ui.NewDisplayContext().WrapWidth(), ui.ColorEnabled())
			if err != nil {
				return handleError(ErrInternal, err, "Use --raw to print the markdown source")
			}
			outf("%s", rendered)
		case "html":
			page, err := report.HTML(r)
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			outf("%s", page)
		default:
			if err := report.Text(stdout, r); err != nil {
				return handleError(ErrInternal, err, "")
			}
		}
		return nil
	},
}

// renderReport renders r in format for writing to a file.
func renderReport(r *report.Report, format string) ([]byte, error) {
	switch format {
	case "markdown":
		return []byte(report.Markdown(r)), nil
	case "html":
		return report.HTML(r)
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		if err := report.Text(&buf, r); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

func writeReport(r *report.Report, format, path string) error {
	data, err := renderReport(r, format)
	if err != nil {
		return handleError(ErrInternal, err, "")
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return handleError(ErrFileWriteError, err, "Check that the directory exists and is writable")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"path":   path,
			"format": format,
			"bytes":  len(data),
		}, &Meta{Source: r.Source})
		return nil
	}
	out(ui.Successf("Wrote %s report to %s", format, path))
	return nil
}

func init() {
	demoCmd.Flags().StringVarP(&demoFormat, "format", "f", "text", "Output format: text, markdown, html, json")
	demoCmd.Flags().IntVar(&demoMinAge, "min-age", 30, "Keep people strictly older than this")
	demoCmd.Flags().Var(&demoSort, "sort", "Sort fields, e.g. age,-first_name (default age,first_name)")
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Write the report to a file instead of stdout")
	demoCmd.Flags().BoolVar(&demoAllowEmpty, "allow-empty", false, "Omit average, max and min instead of failing when nobody matches")
	demoCmd.Flags().BoolVar(&demoRaw, "raw", false, "Print markdown source instead of rendering it")
	rootCmd.AddCommand(demoCmd)
}
