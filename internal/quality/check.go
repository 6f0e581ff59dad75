// Package quality inspects extracted tasks for incomplete business
// metadata and reports per-task completeness findings.
package quality

import (
	"fmt"

	"github.com/raphaelgruber/bpmlens/internal/bpmn"
)

// Severity ranks how much a missing field hurts the analysis.
type Severity string

const (
	// SeverityCritical marks gaps that break cost/time attribution.
	SeverityCritical Severity = "critical"
	// SeverityWarning marks gaps that hurt compliance and documentation.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks missed knowledge-capture opportunities.
	SeverityInfo Severity = "info"
)

// Finding is one completeness gap on one task.
type Finding struct {
	TaskID   string   `json:"task_id"`
	TaskName string   `json:"task_name"`
	Swimlane string   `json:"swimlane"`
	Owner    string   `json:"owner"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report rolls up the findings of one check pass.
type Report struct {
	Findings        []Finding `json:"findings"`
	CriticalCount   int       `json:"critical_count"`
	WarningCount    int       `json:"warning_count"`
	InfoCount       int       `json:"info_count"`
	TasksWithIssues int       `json:"tasks_with_issues"`
	TasksChecked    int       `json:"tasks_checked"`
}

// docStatusNeedsURL reports whether a documentation status implies a
// documentation link should exist.
func docStatusNeedsURL(status string) bool {
	s := bpmn.NormalizeStatus(status)
	return s != "Unknown" && s != "Documentation Not Needed"
}

// Check runs all completeness rules over the task list.
func Check(tasks []bpmn.Task) Report {
	report := Report{TasksChecked: len(tasks)}

	for _, task := range tasks {
		findings := checkTask(task)
		if len(findings) == 0 {
			continue
		}
		report.TasksWithIssues++
		for _, f := range findings {
			switch f.Severity {
			case SeverityCritical:
				report.CriticalCount++
			case SeverityWarning:
				report.WarningCount++
			case SeverityInfo:
				report.InfoCount++
			}
		}
		report.Findings = append(report.Findings, findings...)
	}
	return report
}

func checkTask(task bpmn.Task) []Finding {
	var findings []Finding
	add := func(sev Severity, msg string) {
		findings = append(findings, Finding{
			TaskID:   task.ID,
			TaskName: task.Name,
			Swimlane: task.Swimlane,
			Owner:    task.Owner,
			Severity: sev,
			Message:  msg,
		})
	}

	// Critical: these gaps break cost and department attribution.
	if task.Swimlane == "" || task.Swimlane == "Unknown" {
		add(SeverityCritical, "missing or invalid swimlane")
	}
	if task.Owner == "" || task.Owner == "Unknown" {
		add(SeverityCritical, "missing task owner")
	}
	if task.TimeMinutes == 0 {
		add(SeverityCritical, "missing time estimate")
	}
	// A deliberate zero rate is valid; only an absent property is a gap.
	if !task.HasCostPerHour {
		add(SeverityCritical, "missing cost per hour")
	}

	// Warning: compliance and documentation gaps.
	if bpmn.NormalizeStatus(task.Status) == "Unknown" {
		add(SeverityWarning, "missing task status")
	}
	if bpmn.NormalizeStatus(task.DocStatus) == "Unknown" {
		add(SeverityWarning, "missing documentation status")
	}
	if docStatusNeedsURL(task.DocStatus) && task.DocURL == "" {
		add(SeverityWarning, "missing documentation URL")
	}
	if task.Description == "" {
		add(SeverityWarning, "missing task description")
	}

	// Info: knowledge capture left on the table.
	if task.ToolsUsed == "" {
		add(SeverityInfo, "missing tools information")
	}
	if task.Opportunities == "" {
		add(SeverityInfo, "missing opportunities")
	}
	if task.IssuesText == "" {
		add(SeverityInfo, "missing issues information")
	}
	if task.Industry == "" {
		add(SeverityInfo, "missing industry context")
	}

	hasAnyFAQ := false
	for _, qa := range task.FAQ {
		if qa.Question != "" || qa.Answer != "" {
			hasAnyFAQ = true
			break
		}
	}
	if !hasAnyFAQ {
		add(SeverityInfo, "no FAQ knowledge captured")
	} else {
		for i, qa := range task.FAQ {
			if qa.Question != "" && qa.Answer == "" {
				add(SeverityInfo, fmt.Sprintf("incomplete FAQ %d (missing answer)", i+1))
			}
			if qa.Answer != "" && qa.Question == "" {
				add(SeverityInfo, fmt.Sprintf("incomplete FAQ %d (missing question)", i+1))
			}
		}
	}

	return findings
}
