// Package report renders analysis results as markdown, CSV, and JSON
// documents suitable for sharing outside the tool.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/raphaelgruber/bpmlens/internal/analysis"
	"github.com/raphaelgruber/bpmlens/internal/bpmn"
	"github.com/raphaelgruber/bpmlens/internal/quality"
)

// Kind selects which markdown report to render.
type Kind string

const (
	KindFull          Kind = "full"
	KindTasks         Kind = "tasks"
	KindSummary       Kind = "summary"
	KindIssues        Kind = "issues"
	KindFAQ           Kind = "faq"
	KindDocumentation Kind = "docs"
	KindTools         Kind = "tools"
)

// Kinds lists every supported markdown report kind.
func Kinds() []Kind {
	return []Kind{KindFull, KindTasks, KindSummary, KindIssues, KindFAQ, KindDocumentation, KindTools}
}

// Render produces the markdown report of the given kind.
func Render(kind Kind, r *analysis.Result, qr quality.Report, now time.Time) (string, error) {
	switch kind {
	case KindFull:
		return Full(r, qr, now), nil
	case KindTasks:
		return Tasks(r, now), nil
	case KindSummary:
		return Summary(r, now), nil
	case KindIssues:
		return IssuesOpportunities(r, now), nil
	case KindFAQ:
		return FAQ(r, now), nil
	case KindDocumentation:
		return DocumentationStatus(r, now), nil
	case KindTools:
		return ToolsUsage(r, now), nil
	default:
		return "", fmt.Errorf("unknown report kind %q", kind)
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func hours(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func header(b *strings.Builder, title string, now time.Time) {
	fmt.Fprintf(b, "# %s\n", title)
	fmt.Fprintf(b, "*Generated on %s*\n\n", now.Format("2006-01-02 15:04:05"))
}

func footer(b *strings.Builder, label string, taskCount int) {
	fmt.Fprintf(b, "\n---\n*%s generated by bpmlens*\n*Total tasks analyzed: %d*\n", label, taskCount)
}

func dimensionTable(b *strings.Builder, table analysis.Table, dimension string, withAvg bool) {
	if withAvg {
		fmt.Fprintf(b, "| %s | Task Count | Total Cost | Total Time (hrs) | Avg Cost per Task |\n", dimension)
		b.WriteString("|---|---|---|---|---|\n")
	} else {
		fmt.Fprintf(b, "| %s | Task Count | Total Cost | Total Time (hrs) |\n", dimension)
		b.WriteString("|---|---|---|---|\n")
	}
	for _, key := range table.SortedKeys() {
		agg := table[key]
		if withAvg {
			avg := 0.0
			if agg.TaskCount > 0 {
				avg = agg.TotalCost / float64(agg.TaskCount)
			}
			fmt.Fprintf(b, "| %s | %d | %s | %s | %s |\n",
				key, agg.TaskCount, money(agg.TotalCost), hours(agg.TotalTimeHours()), money(avg))
		} else {
			fmt.Fprintf(b, "| %s | %d | %s | %s |\n",
				key, agg.TaskCount, money(agg.TotalCost), hours(agg.TotalTimeHours()))
		}
	}
}

// Full renders the comprehensive report: executive summary, every
// dimension table, narratives, quality findings, and the task list.
func Full(r *analysis.Result, qr quality.Report, now time.Time) string {
	var b strings.Builder
	header(&b, "BPMN Analysis Report", now)

	b.WriteString("## Executive Summary\n\n### Key Metrics\n")
	fmt.Fprintf(&b, "- **Total Tasks**: %d\n", r.Summary.TaskCount)
	fmt.Fprintf(&b, "- **Total Cost**: %s\n", money(r.Summary.TotalCost))
	fmt.Fprintf(&b, "- **Total Time**: %s hours\n", hours(r.Summary.TotalTimeHours))
	fmt.Fprintf(&b, "- **Departments**: %d\n", len(r.Swimlanes))
	fmt.Fprintf(&b, "- **Task Owners**: %d\n", len(r.Owners))

	b.WriteString("\n### Currency Distribution\n")
	currencies := currencyTable(r.Tasks)
	for _, key := range currencies.SortedKeys() {
		agg := currencies[key]
		fmt.Fprintf(&b, "- **%s**: %s (%d tasks)\n", key, money(agg.TotalCost), agg.TaskCount)
	}

	b.WriteString("\n### Industry Distribution\n")
	industries := industryTable(r.Tasks)
	for _, key := range industries.SortedKeys() {
		agg := industries[key]
		fmt.Fprintf(&b, "- **%s**: %d tasks (%s)\n", key, agg.TaskCount, money(agg.TotalCost))
	}

	b.WriteString("\n## Department (Swimlane) Analysis\n\n")
	dimensionTable(&b, r.Swimlanes, "Department", true)

	b.WriteString("\n## Task Owner Analysis\n\n")
	dimensionTable(&b, r.Owners, "Owner", true)

	b.WriteString("\n## Status Analysis\n\n")
	dimensionTable(&b, r.Statuses, "Status", false)

	b.WriteString("\n## Documentation Status Analysis\n\n")
	dimensionTable(&b, r.DocStatuses, "Status", false)

	b.WriteString("\n## Tools Analysis\n\n")
	dimensionTable(&b, r.Tools, "Tool", false)

	b.WriteString("\n## Opportunities & Improvement Ideas\n\n")
	writeOpportunities(&b, r.Tasks, false)

	b.WriteString("\n## Issues & Risks Analysis\n\n")
	writeIssues(&b, r.Tasks, false)

	b.WriteString("\n## FAQ Knowledge Capture\n\n")
	writeFAQ(&b, r.Tasks)

	b.WriteString("\n## Quality Control Summary\n\n")
	if len(qr.Findings) == 0 {
		b.WriteString("*No quality issues found.*\n")
	} else {
		fmt.Fprintf(&b, "**Total Quality Findings**: %d (%d critical, %d warning, %d info)\n\n",
			len(qr.Findings), qr.CriticalCount, qr.WarningCount, qr.InfoCount)
		b.WriteString("| Task | Department | Owner | Severity | Finding |\n|---|---|---|---|---|\n")
		for _, f := range qr.Findings {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				f.TaskName, f.Swimlane, f.Owner, f.Severity, f.Message)
		}
	}

	b.WriteString("\n## Detailed Task List\n\n")
	b.WriteString("| Task Name | Department | Owner | Time | Cost | Status | Tools |\n|---|---|---|---|---|---|---|\n")
	for _, task := range r.Tasks {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			task.Name, task.Swimlane, task.Owner, task.TimeDisplay,
			money(task.TotalCost), task.Status, orNA(task.ToolsUsed))
	}

	footer(&b, "Report", r.Summary.TaskCount)
	return b.String()
}

// Tasks renders the flat per-task detail table.
func Tasks(r *analysis.Result, now time.Time) string {
	var b strings.Builder
	header(&b, "BPMN Tasks Report", now)

	b.WriteString("## Task Summary\n")
	fmt.Fprintf(&b, "- **Total Tasks**: %d\n", r.Summary.TaskCount)
	fmt.Fprintf(&b, "- **Departments**: %d\n", len(r.Swimlanes))
	fmt.Fprintf(&b, "- **Task Owners**: %d\n", len(r.Owners))

	b.WriteString("\n## Task Details\n\n")
	b.WriteString("| Task Name | Department | Owner | Time | Cost | Currency | Status | Documentation | Tools | Opportunities | Issues |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|---|---|\n")
	for _, task := range r.Tasks {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			task.Name, task.Swimlane, task.Owner, task.TimeDisplay,
			money(task.TotalCost), task.Currency, task.Status, task.DocStatus,
			orNA(task.ToolsUsed), orNA(task.Opportunities), orNA(task.IssuesText))
	}

	footer(&b, "Tasks report", r.Summary.TaskCount)
	return b.String()
}

// Summary renders the key-metrics overview without per-task detail.
func Summary(r *analysis.Result, now time.Time) string {
	var b strings.Builder
	header(&b, "BPMN Analysis Summary", now)

	b.WriteString("## Key Performance Indicators\n")
	fmt.Fprintf(&b, "- **Total Tasks**: %d\n", r.Summary.TaskCount)
	fmt.Fprintf(&b, "- **Total Cost**: %s\n", money(r.Summary.TotalCost))
	fmt.Fprintf(&b, "- **Total Time**: %s hours\n", hours(r.Summary.TotalTimeHours))
	fmt.Fprintf(&b, "- **Departments**: %d\n", len(r.Swimlanes))
	fmt.Fprintf(&b, "- **Task Owners**: %d\n", len(r.Owners))
	if len(r.Summary.Currencies) > 0 {
		fmt.Fprintf(&b, "- **Currencies**: %s\n", strings.Join(r.Summary.Currencies, ", "))
	}

	b.WriteString("\n### Cost Distribution by Department\n")
	for _, key := range r.Swimlanes.SortedKeys() {
		agg := r.Swimlanes[key]
		fmt.Fprintf(&b, "- **%s**: %s (%d tasks)\n", key, money(agg.TotalCost), agg.TaskCount)
	}

	b.WriteString("\n### Workload Distribution by Owner\n")
	for _, key := range r.Owners.SortedKeys() {
		agg := r.Owners[key]
		fmt.Fprintf(&b, "- **%s**: %d tasks (%s)\n", key, agg.TaskCount, money(agg.TotalCost))
	}

	b.WriteString("\n### Status Overview\n")
	for _, key := range r.Statuses.SortedKeys() {
		fmt.Fprintf(&b, "- **%s**: %d tasks\n", key, r.Statuses[key].TaskCount)
	}

	footer(&b, "Summary report", r.Summary.TaskCount)
	return b.String()
}

// IssuesOpportunities renders the captured improvement ideas and risks,
// each tagged with its taxonomy category.
func IssuesOpportunities(r *analysis.Result, now time.Time) string {
	var b strings.Builder
	header(&b, "Issues & Opportunities Report", now)

	b.WriteString("## Report Summary\n")
	fmt.Fprintf(&b, "- **Total Tasks Analyzed**: %d\n", r.Summary.TaskCount)
	b.WriteString("- **Focus**: Issues, Risks, and Improvement Opportunities\n")

	b.WriteString("\n## Opportunities & Improvement Ideas\n\n")
	writeOpportunities(&b, r.Tasks, true)

	b.WriteString("\n## Issues & Risks Analysis\n\n")
	writeIssues(&b, r.Tasks, true)

	b.WriteString("\n## Summary Table\n\n")
	b.WriteString("| Type | Task Name | Department | Owner | Priority | Category | Current Cost | Current Time |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, task := range r.Tasks {
		if strings.TrimSpace(task.Opportunities) != "" {
			fmt.Fprintf(&b, "| Opportunity | %s | %s | %s | - | %s | %s | %sh |\n",
				task.Name, task.Swimlane, task.Owner,
				analysis.CategorizeOpportunity(task.Opportunities),
				money(task.TotalCost), hours(task.TimeHours))
		}
		if strings.TrimSpace(task.IssuesText) != "" {
			fmt.Fprintf(&b, "| Issue | %s | %s | %s | %s | %s | %s | %sh |\n",
				task.Name, task.Swimlane, task.Owner, orNA(task.IssuesPriority),
				analysis.CategorizeIssue(task.IssuesText),
				money(task.TotalCost), hours(task.TimeHours))
		}
	}

	footer(&b, "Issues & Opportunities report", r.Summary.TaskCount)
	return b.String()
}

// FAQ renders the captured question/answer knowledge base.
func FAQ(r *analysis.Result, now time.Time) string {
	var b strings.Builder
	header(&b, "FAQ Knowledge Report", now)

	b.WriteString("## Report Summary\n")
	fmt.Fprintf(&b, "- **Total Tasks Analyzed**: %d\n", r.Summary.TaskCount)
	b.WriteString("- **Focus**: Frequently Asked Questions and Knowledge Capture\n")

	b.WriteString("\n## FAQ Knowledge Base\n\n")
	writeFAQ(&b, r.Tasks)

	b.WriteString("\n## FAQ Summary Table\n\n")
	b.WriteString("| Task Name | Department | Owner | FAQ # | Question | Answer |\n|---|---|---|---|---|---|\n")
	for _, task := range r.Tasks {
		for i, qa := range task.FAQ {
			if strings.TrimSpace(qa.Question) == "" || strings.TrimSpace(qa.Answer) == "" {
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s |\n",
				task.Name, task.Swimlane, task.Owner, i+1,
				truncate(qa.Question, 50), truncate(qa.Answer, 50))
		}
	}

	footer(&b, "FAQ Knowledge report", r.Summary.TaskCount)
	return b.String()
}

// DocumentationStatus renders documentation compliance per task.
func DocumentationStatus(r *analysis.Result, now time.Time) string {
	var b strings.Builder
	header(&b, "Documentation Status Report", now)

	b.WriteString("## Report Summary\n")
	fmt.Fprintf(&b, "- **Total Tasks Analyzed**: %d\n", r.Summary.TaskCount)
	b.WriteString("- **Focus**: Documentation Compliance and Status\n")

	b.WriteString("\n## Documentation Status Breakdown\n\n")
	b.WriteString("| Status | Count | Percentage |\n|---|---|---|\n")
	for _, key := range r.DocStatuses.SortedKeys() {
		agg := r.DocStatuses[key]
		pct := 0.0
		if r.Summary.TaskCount > 0 {
			pct = float64(agg.TaskCount) / float64(r.Summary.TaskCount) * 100
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", key, agg.TaskCount, pct)
	}

	b.WriteString("\n## Detailed Documentation Status\n\n")
	b.WriteString("| Task Name | Department | Owner | Doc Status | Doc URL | Current Cost | Current Time |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, task := range r.Tasks {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %sh |\n",
			task.Name, task.Swimlane, task.Owner, task.DocStatus,
			orNA(task.DocURL), money(task.TotalCost), hours(task.TimeHours))
	}

	footer(&b, "Documentation Status report", r.Summary.TaskCount)
	return b.String()
}

// ToolsUsage renders which tools back which tasks, one row per
// task/tool pair.
func ToolsUsage(r *analysis.Result, now time.Time) string {
	var b strings.Builder
	header(&b, "Tools Analysis Report", now)

	b.WriteString("## Report Summary\n")
	fmt.Fprintf(&b, "- **Total Tasks Analyzed**: %d\n", r.Summary.TaskCount)
	b.WriteString("- **Focus**: Tools Usage and Standardization Opportunities\n")

	b.WriteString("\n## Tools Usage Summary\n\n")
	dimensionTable(&b, r.Tools, "Tool", false)

	b.WriteString("\n## Detailed Tools Usage\n\n")
	b.WriteString("| Task Name | Department | Owner | Tool Used | Original Tools Field | Current Cost | Current Time |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, task := range r.Tasks {
		tools := bpmn.SplitTools(task.ToolsUsed)
		if len(tools) == 0 {
			fmt.Fprintf(&b, "| %s | %s | %s | No tools specified | N/A | %s | %sh |\n",
				task.Name, task.Swimlane, task.Owner, money(task.TotalCost), hours(task.TimeHours))
			continue
		}
		for _, tool := range tools {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %sh |\n",
				task.Name, task.Swimlane, task.Owner, tool, task.ToolsUsed,
				money(task.TotalCost), hours(task.TimeHours))
		}
	}

	footer(&b, "Tools Analysis report", r.Summary.TaskCount)
	return b.String()
}

func writeOpportunities(b *strings.Builder, tasks []bpmn.Task, categorized bool) {
	found := false
	for _, task := range tasks {
		if strings.TrimSpace(task.Opportunities) == "" {
			continue
		}
		found = true
		fmt.Fprintf(b, "### %s\n", task.Name)
		fmt.Fprintf(b, "**Department**: %s\n", task.Swimlane)
		fmt.Fprintf(b, "**Owner**: %s\n", task.Owner)
		if categorized {
			fmt.Fprintf(b, "**Category**: %s\n", analysis.CategorizeOpportunity(task.Opportunities))
		}
		fmt.Fprintf(b, "**Current Cost**: %s\n", money(task.TotalCost))
		fmt.Fprintf(b, "**Current Time**: %s hours\n\n", hours(task.TimeHours))
		fmt.Fprintf(b, "**Opportunity**: %s\n\n---\n\n", task.Opportunities)
	}
	if !found {
		b.WriteString("*No opportunities captured in the current data.*\n")
	}
}

func writeIssues(b *strings.Builder, tasks []bpmn.Task, categorized bool) {
	found := false
	for _, task := range tasks {
		if strings.TrimSpace(task.IssuesText) == "" {
			continue
		}
		found = true
		fmt.Fprintf(b, "### %s\n", task.Name)
		fmt.Fprintf(b, "**Department**: %s\n", task.Swimlane)
		fmt.Fprintf(b, "**Owner**: %s\n", task.Owner)
		fmt.Fprintf(b, "**Priority**: %s\n", orNA(task.IssuesPriority))
		if categorized {
			fmt.Fprintf(b, "**Category**: %s\n", analysis.CategorizeIssue(task.IssuesText))
		}
		fmt.Fprintf(b, "**Current Cost**: %s\n\n", money(task.TotalCost))
		fmt.Fprintf(b, "**Issue/Risk**: %s\n\n---\n\n", task.IssuesText)
	}
	if !found {
		b.WriteString("*No issues captured in the current data.*\n")
	}
}

func writeFAQ(b *strings.Builder, tasks []bpmn.Task) {
	found := false
	for _, task := range tasks {
		taskHeader := false
		for i, qa := range task.FAQ {
			if strings.TrimSpace(qa.Question) == "" || strings.TrimSpace(qa.Answer) == "" {
				continue
			}
			if !taskHeader {
				fmt.Fprintf(b, "### %s\n", task.Name)
				fmt.Fprintf(b, "**Department**: %s\n", task.Swimlane)
				fmt.Fprintf(b, "**Owner**: %s\n\n", task.Owner)
				taskHeader = true
			}
			fmt.Fprintf(b, "**Q%d**: %s\n", i+1, qa.Question)
			fmt.Fprintf(b, "**A%d**: %s\n\n", i+1, qa.Answer)
			found = true
		}
		if taskHeader {
			b.WriteString("---\n\n")
		}
	}
	if !found {
		b.WriteString("*No FAQs captured in the current data.*\n")
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// groupTasks builds an ad-hoc rollup over a task attribute that is not
// one of the standard analysis dimensions.
func groupTasks(tasks []bpmn.Task, keyOf func(bpmn.Task) string) analysis.Table {
	t := make(analysis.Table)
	for _, task := range tasks {
		key := keyOf(task)
		if key == "" {
			key = "Unknown"
		}
		agg := t[key]
		agg.Key = key
		agg.TaskCount++
		agg.TotalCost += task.TotalCost
		agg.TotalTimeMinutes += task.TimeMinutes
		t[key] = agg
	}
	return t
}

func currencyTable(tasks []bpmn.Task) analysis.Table {
	return groupTasks(tasks, func(t bpmn.Task) string { return t.Currency })
}

func industryTable(tasks []bpmn.Task) analysis.Table {
	return groupTasks(tasks, func(t bpmn.Task) string { return t.Industry })
}
