// Package analysis aggregates extracted BPMN tasks into cross-cutting
// business views: per-dimension rollups, document summaries, and
// opportunity/issue categorization.
package analysis

import (
	"sort"

	"github.com/raphaelgruber/bpmlens/internal/bpmn"
)

// Aggregate is one row of a dimension table: the rollup for a single
// distinct value of the grouping dimension.
type Aggregate struct {
	Key              string  `json:"key"`
	TaskCount        int     `json:"task_count"`
	TotalCost        float64 `json:"total_cost"`
	TotalTimeMinutes int     `json:"total_time_minutes"`
}

// TotalTimeHours derives hours from the rolled-up minutes.
func (a Aggregate) TotalTimeHours() float64 {
	return float64(a.TotalTimeMinutes) / 60
}

// Table maps a dimension value to its rollup. Keys are unordered; callers
// needing a stable order sort on presentation.
type Table map[string]Aggregate

// add accumulates one task's contribution under key.
func (t Table) add(key string, task bpmn.Task) {
	agg := t[key]
	agg.Key = key
	agg.TaskCount++
	agg.TotalCost += task.TotalCost
	agg.TotalTimeMinutes += task.TimeMinutes
	t[key] = agg
}

// SortedKeys returns the table's keys in lexical order.
func (t Table) SortedKeys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summary holds the top-level totals for one analysis.
type Summary struct {
	TaskCount          int     `json:"task_count"`
	ProcessCount       int     `json:"process_count"`
	CollaborationCount int     `json:"collaboration_count"`
	TotalCost          float64 `json:"total_cost"`
	TotalTimeMinutes   int     `json:"total_time_minutes"`
	// TotalTimeHours is the sum of each task's precomputed hours, not a
	// re-derivation from minutes, so it always agrees with per-task display.
	TotalTimeHours float64  `json:"total_time_hours"`
	Currencies     []string `json:"currencies"`
}

// Result is the full output of analyzing one or more documents: the flat
// task list and the six dimension tables. Collaborators treat it as a
// read-only snapshot.
type Result struct {
	Summary     Summary     `json:"summary"`
	Swimlanes   Table       `json:"swimlanes"`
	Owners      Table       `json:"owners"`
	Statuses    Table       `json:"statuses"`
	Priorities  Table       `json:"priorities"`
	DocStatuses Table       `json:"doc_statuses"`
	Tools       Table       `json:"tools"`
	Tasks       []bpmn.Task `json:"tasks"`
}

func newResult() *Result {
	return &Result{
		Swimlanes:   make(Table),
		Owners:      make(Table),
		Statuses:    make(Table),
		Priorities:  make(Table),
		DocStatuses: make(Table),
		Tools:       make(Table),
	}
}

// Analyze aggregates one parsed document.
func Analyze(doc *bpmn.Document) *Result {
	r := AnalyzeTasks(doc.Tasks)
	r.Summary.ProcessCount = len(doc.Processes)
	r.Summary.CollaborationCount = len(doc.Collaborations)
	return r
}

// AnalyzeTasks aggregates a flat task list (possibly spanning documents)
// into all six dimension tables and the top-level summary. Single pass per
// dimension; the input slice is not mutated.
func AnalyzeTasks(tasks []bpmn.Task) *Result {
	r := newResult()
	r.Tasks = tasks

	currencies := make(map[string]struct{})
	for _, task := range tasks {
		r.Summary.TaskCount++
		r.Summary.TotalCost += task.TotalCost
		r.Summary.TotalTimeMinutes += task.TimeMinutes
		r.Summary.TotalTimeHours += task.TimeHours
		if task.Currency != "" && task.Currency != "Unknown" {
			currencies[task.Currency] = struct{}{}
		}

		r.Swimlanes.add(task.Swimlane, task)
		r.Owners.add(task.Owner, task)
		// Status-like dimensions collapse blank/"0"/"unknown" spellings
		// before grouping so counts never split across variants.
		r.Statuses.add(bpmn.NormalizeStatus(task.Status), task)
		r.DocStatuses.add(bpmn.NormalizeStatus(task.DocStatus), task)
		r.Priorities.add(task.IssuesPriority, task)

		// A task contributes once per distinct tool it uses; tasks without
		// tools are absent from this table, so its counts do not reconcile
		// against the task list the way the other five do.
		for _, tool := range bpmn.SplitTools(task.ToolsUsed) {
			r.Tools.add(tool, task)
		}
	}

	r.Summary.Currencies = sortedSet(currencies)
	return r
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
