package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/raphaelgruber/bpmlens/internal/analysis"
	"github.com/raphaelgruber/bpmlens/internal/bpmn"
)

// TaskRows flattens tasks into CSV rows, header first.
func TaskRows(tasks []bpmn.Task) [][]string {
	rows := [][]string{{
		"task_id", "task_name", "swimlane", "task_type", "owner",
		"time_display", "time_minutes", "cost_per_hour", "currency",
		"other_costs", "labor_cost", "total_cost", "status", "doc_status",
		"doc_url", "tools_used", "opportunities", "issues_text",
		"issues_priority", "industry", "process_ref",
	}}
	for _, t := range tasks {
		rows = append(rows, []string{
			t.ID, t.Name, t.Swimlane, t.Type, t.Owner,
			t.TimeDisplay, fmt.Sprintf("%d", t.TimeMinutes),
			fmt.Sprintf("%.2f", t.CostPerHour), t.Currency,
			fmt.Sprintf("%.2f", t.OtherCosts),
			fmt.Sprintf("%.2f", t.LaborCost),
			fmt.Sprintf("%.2f", t.TotalCost),
			t.Status, t.DocStatus, t.DocURL, t.ToolsUsed,
			t.Opportunities, t.IssuesText, t.IssuesPriority,
			t.Industry, t.ProcessRef,
		})
	}
	return rows
}

// AggregateRows flattens one dimension table into CSV rows, header first,
// keys in lexical order.
func AggregateRows(dimension string, table analysis.Table) [][]string {
	rows := [][]string{{dimension, "task_count", "total_cost", "total_time_minutes", "total_time_hours"}}
	for _, key := range table.SortedKeys() {
		agg := table[key]
		rows = append(rows, []string{
			key,
			fmt.Sprintf("%d", agg.TaskCount),
			fmt.Sprintf("%.2f", agg.TotalCost),
			fmt.Sprintf("%d", agg.TotalTimeMinutes),
			fmt.Sprintf("%.2f", agg.TotalTimeHours()),
		})
	}
	return rows
}

// WriteCSV writes rows to w in RFC 4180 form.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
