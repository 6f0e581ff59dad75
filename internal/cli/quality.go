package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/raphaelgruber/bpmlens/internal/quality"
)

var qualityStrict bool

var qualityCmd = &cobra.Command{
	Use:   "quality <file.bpmn>...",
	Short: "Check tasks for missing business metadata",
	Long: `Quality inspects every extracted task for incomplete metadata and
reports findings by severity.

Critical findings break cost and time attribution (missing swimlane,
owner, time estimate, or hourly rate). Warnings flag documentation and
compliance gaps. Info findings point at uncaptured knowledge.

Examples:
  bpmlens quality process.bpmn
  bpmlens quality exports/*.bpmn --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuality,
}

func init() {
	qualityCmd.Flags().BoolVar(&qualityStrict, "strict", false, "exit with an error when critical findings exist")
}

func runQuality(cmd *cobra.Command, args []string) error {
	lr, err := loadFiles(args)
	if err != nil {
		return err
	}

	qr := quality.Check(lr.merged.Tasks)

	fmt.Printf("Checked %d task(s): %d with findings (%d critical, %d warning, %d info)\n",
		qr.TasksChecked, qr.TasksWithIssues, qr.CriticalCount, qr.WarningCount, qr.InfoCount)

	if len(qr.Findings) == 0 {
		fmt.Println(defaultTheme.completedStyle().Render("All tasks meet the metadata standards."))
		return nil
	}

	for _, sev := range []quality.Severity{quality.SeverityCritical, quality.SeverityWarning, quality.SeverityInfo} {
		printed := false
		for _, f := range qr.Findings {
			if f.Severity != sev {
				continue
			}
			if !printed {
				fmt.Printf("\n%s\n", severityStyle(sev).Render(string(sev)))
				printed = true
			}
			fmt.Printf("  %s (%s, %s): %s\n", f.TaskName, f.Swimlane, f.Owner, f.Message)
		}
	}

	if qualityStrict && qr.CriticalCount > 0 {
		return fmt.Errorf("%d critical quality finding(s)", qr.CriticalCount)
	}
	return nil
}

func severityStyle(sev quality.Severity) lipgloss.Style {
	switch sev {
	case quality.SeverityCritical:
		return defaultTheme.errorStyle()
	case quality.SeverityWarning:
		return defaultTheme.warningStyle()
	default:
		return defaultTheme.hintStyle()
	}
}
