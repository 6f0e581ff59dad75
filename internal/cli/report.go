package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/bpmlens/internal/quality"
	"github.com/raphaelgruber/bpmlens/internal/report"
)

var (
	reportKind   string
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report <file.bpmn>...",
	Short: "Render an analysis report",
	Long: `Report analyzes the given BPMN files and renders a shareable report.

Markdown reports come in several kinds: full, tasks, summary, issues,
faq, docs, and tools. CSV exports the flat task table; JSON exports the
complete analysis including quality findings.

Examples:
  bpmlens report process.bpmn
  bpmlens report process.bpmn --kind issues --out issues.md
  bpmlens report exports/*.bpmn --format csv --out tasks.csv
  bpmlens report process.bpmn --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportKind, "kind", "k", "full", "markdown report kind (full, tasks, summary, issues, faq, docs, tools)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "md", "output format (md, csv, json)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output path (default: stdout)")
}

func runReport(cmd *cobra.Command, args []string) error {
	lr, err := loadFiles(args)
	if err != nil {
		return err
	}
	r := lr.merged
	qr := quality.Check(r.Tasks)
	now := time.Now()

	out, cleanup, err := openOutput(reportOut)
	if err != nil {
		return err
	}
	defer cleanup()

	switch reportFormat {
	case "md":
		md, err := report.Render(report.Kind(reportKind), r, qr, now)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, md); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	case "csv":
		if err := report.WriteCSV(out, report.TaskRows(r.Tasks)); err != nil {
			return err
		}
	case "json":
		if err := report.WriteJSON(out, r, qr, now); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (expected md, csv, or json)", reportFormat)
	}

	if reportOut != "" {
		fmt.Printf("Wrote %s\n", reportOut)
	}
	return nil
}

// openOutput resolves the report destination: stdout for a blank path,
// otherwise a file under the configured report directory.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.ReportDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
