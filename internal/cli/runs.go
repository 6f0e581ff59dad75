package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/bpmlens/internal/models"
	"github.com/raphaelgruber/bpmlens/internal/store"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List and inspect saved analysis runs",
	Long: `Runs manages analysis runs persisted with 'analyze --save'.

Subcommands:
  list    List recent runs (default)
  show    Show one run including its aggregation tables
  delete  Delete a run

Examples:
  bpmlens runs
  bpmlens runs show 5f6d…
  bpmlens runs delete 5f6d…`,
	RunE: runRunsList,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsCmd.PersistentFlags().IntVarP(&runsLimit, "limit", "n", 20, "max runs to list")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	client, err := getStore(ctx)
	if err != nil {
		return err
	}

	runs, err := client.QueryListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No saved runs.")
		return nil
	}

	fmt.Printf("Runs (%d):\n\n", len(runs))
	for _, run := range runs {
		fmt.Printf("- %s  %s\n", models.MustRecordIDString(run.ID), run.Name)
		fmt.Printf("  %s  %d task(s), %.2f total cost, %.2f hours\n",
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.TaskCount, run.TotalCost, run.TotalTimeHours)
		if run.CriticalFindings > 0 {
			fmt.Println(defaultTheme.warningStyle().Render(
				fmt.Sprintf("  %d critical quality finding(s)", run.CriticalFindings)))
		}
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	client, err := getStore(ctx)
	if err != nil {
		return err
	}

	run, err := client.QueryGetRun(ctx, args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no run with ID %q", args[0])
		}
		return err
	}

	fmt.Printf("%s\n\n", defaultTheme.completedStyle().Render(run.Name))
	fmt.Printf("  ID:        %s\n", models.MustRecordIDString(run.ID))
	fmt.Printf("  Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Files:     %v\n", run.Files)
	fmt.Printf("  Duration:  %dms\n", run.DurationMs)
	fmt.Printf("  Tasks:     %d (%d stub)\n", run.TaskCount, run.StubCount)
	fmt.Printf("  Cost:      %.2f\n", run.TotalCost)
	fmt.Printf("  Time:      %.2f hours\n", run.TotalTimeHours)

	if run.Analysis != nil {
		printDimension("Departments", "Department", run.Analysis.Swimlanes)
		printDimension("Owners", "Owner", run.Analysis.Owners)
		printDimension("Statuses", "Status", run.Analysis.Statuses)
		printDimension("Tools", "Tool", run.Analysis.Tools)
	}
	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	client, err := getStore(ctx)
	if err != nil {
		return err
	}

	deleted, err := client.QueryDeleteRun(ctx, args[0])
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no run with ID %q", args[0])
	}

	fmt.Printf("Deleted run %s\n", args[0])
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
