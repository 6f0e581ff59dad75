package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/bpmlens/internal/analysis"
	"github.com/raphaelgruber/bpmlens/internal/models"
	"github.com/raphaelgruber/bpmlens/internal/quality"
	"github.com/raphaelgruber/bpmlens/internal/report"
)

var (
	analyzeSave bool
	analyzeName string
	analyzeJSON string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.bpmn>...",
	Short: "Analyze BPMN files and show aggregated business metrics",
	Long: `Analyze parses one or more BPMN files, extracts the business metadata
attached to each task, and prints cost and time rollups per department,
owner, status, and tool. Results from multiple files are merged.

Examples:
  bpmlens analyze process.bpmn
  bpmlens analyze exports/*.bpmn --save --name "Q3 review"
  bpmlens analyze process.bpmn --json analysis.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "persist this run to the database")
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "run name used when saving")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "also write the full analysis as JSON to this path")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	started := time.Now()

	lr, err := loadFiles(args)
	if err != nil {
		return err
	}
	r := lr.merged
	qr := quality.Check(r.Tasks)

	printSummary(r, lr.stubCount, qr)
	printDimension("Departments", "Department", r.Swimlanes)
	printDimension("Owners", "Owner", r.Owners)
	printDimension("Statuses", "Status", r.Statuses)
	printDimension("Documentation", "Status", r.DocStatuses)
	printDimension("Tools", "Tool", r.Tools)

	if verbose {
		printMetrics(lr)
	}

	if analyzeJSON != "" {
		f, err := os.Create(analyzeJSON)
		if err != nil {
			return fmt.Errorf("create %s: %w", analyzeJSON, err)
		}
		defer f.Close()
		if err := report.WriteJSON(f, r, qr, time.Now()); err != nil {
			return err
		}
		fmt.Printf("\nWrote %s\n", analyzeJSON)
	}

	if analyzeSave {
		if err := saveRun(cmdContext(cmd), args, r, qr, time.Since(started)); err != nil {
			return err
		}
	}

	return nil
}

func saveRun(ctx context.Context, files []string, r *analysis.Result, qr quality.Report, elapsed time.Duration) error {
	client, err := getStore(ctx)
	if err != nil {
		return err
	}

	name := analyzeName
	if name == "" {
		name = models.Slugify(strings.TrimSuffix(filepath.Base(files[0]), filepath.Ext(files[0])))
	}

	saved, err := client.QuerySaveRun(ctx, models.Run{
		Name:             name,
		Files:            files,
		DurationMs:       elapsed.Milliseconds(),
		TaskCount:        r.Summary.TaskCount,
		StubCount:        countStubs(r),
		TotalCost:        r.Summary.TotalCost,
		TotalTimeHours:   r.Summary.TotalTimeHours,
		Currencies:       r.Summary.Currencies,
		CriticalFindings: qr.CriticalCount,
		Analysis:         r,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nSaved run %q as %s\n", name, models.MustRecordIDString(saved.ID))
	return nil
}

func countStubs(r *analysis.Result) int {
	n := 0
	for _, task := range r.Tasks {
		if task.IsStub() {
			n++
		}
	}
	return n
}

func printSummary(r *analysis.Result, stubs int, qr quality.Report) {
	title := defaultTheme.completedStyle().Render("Analysis Summary")
	fmt.Printf("%s\n\n", title)
	fmt.Printf("  Tasks:          %d\n", r.Summary.TaskCount)
	fmt.Printf("  Processes:      %d\n", r.Summary.ProcessCount)
	fmt.Printf("  Collaborations: %d\n", r.Summary.CollaborationCount)
	fmt.Printf("  Total cost:     %.2f\n", r.Summary.TotalCost)
	fmt.Printf("  Total time:     %.2f hours\n", r.Summary.TotalTimeHours)
	if len(r.Summary.Currencies) > 0 {
		fmt.Printf("  Currencies:     %s\n", strings.Join(r.Summary.Currencies, ", "))
	}
	if stubs > 0 {
		fmt.Println(defaultTheme.warningStyle().Render(
			fmt.Sprintf("  %d task(s) failed extraction and were replaced by defaults", stubs)))
	}
	if qr.CriticalCount > 0 {
		fmt.Println(defaultTheme.warningStyle().Render(
			fmt.Sprintf("  %d critical quality finding(s); run 'bpmlens quality' for details", qr.CriticalCount)))
	}
}

func printDimension(title, dimension string, table analysis.Table) {
	if len(table) == 0 {
		return
	}

	keys := table.SortedKeys()
	keyWidth := len(dimension)
	for _, k := range keys {
		if len(k) > keyWidth {
			keyWidth = len(k)
		}
	}

	fmt.Printf("\n%s\n", defaultTheme.statusStyle().Render(title))
	fmt.Printf("  %-*s  %5s  %12s  %10s\n", keyWidth, dimension, "Tasks", "Cost", "Hours")
	for _, k := range keys {
		agg := table[k]
		fmt.Printf("  %-*s  %5d  %12.2f  %10.2f\n",
			keyWidth, k, agg.TaskCount, agg.TotalCost, agg.TotalTimeHours())
	}
}

func printMetrics(lr *loadResult) {
	snap := lr.collector.Snapshot()
	fmt.Printf("\n%s\n", defaultTheme.hintStyle().Render("Pipeline timings"))
	if snap.Parse != nil {
		fmt.Printf("  parse:   %d file(s), avg %.1fms", snap.Parse.Count, snap.Parse.AvgTimeMs)
		if snap.Parse.TotalTasks != nil {
			fmt.Printf(", %d task(s)", *snap.Parse.TotalTasks)
		}
		if snap.Parse.TotalStubs != nil && *snap.Parse.TotalStubs > 0 {
			fmt.Printf(", %d stub(s)", *snap.Parse.TotalStubs)
		}
		fmt.Println()
	}
	if snap.Analyze != nil {
		fmt.Printf("  analyze: %d pass(es), avg %.1fms\n", snap.Analyze.Count, snap.Analyze.AvgTimeMs)
	}
}
