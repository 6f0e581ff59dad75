package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/bpmlens/internal/bpmn"
)

func completeTask() bpmn.Task {
	return bpmn.Task{
		ID:             "Task_1",
		Name:           "Approve invoice",
		Swimlane:       "Finance",
		Owner:          "Alice",
		TimeMinutes:    90,
		HasCostPerHour: true,
		CostPerHour:    45,
		Status:         "Completed",
		DocStatus:      "Documented",
		DocURL:         "https://wiki.example.com/invoices",
		Description:    "Checks totals against the PO",
		ToolsUsed:      "Excel",
		Opportunities:  "Automate the matching step",
		IssuesText:     "PO numbers are sometimes missing",
		Industry:       "Manufacturing",
		FAQ: [3]bpmn.QA{
			{Question: "What if the PO is missing?", Answer: "Ask purchasing"},
		},
	}
}

func messagesBySeverity(findings []Finding, sev Severity) []string {
	var msgs []string
	for _, f := range findings {
		if f.Severity == sev {
			msgs = append(msgs, f.Message)
		}
	}
	return msgs
}

func TestCheck_CompleteTaskHasNoFindings(t *testing.T) {
	report := Check([]bpmn.Task{completeTask()})

	assert.Empty(t, report.Findings)
	assert.Equal(t, 1, report.TasksChecked)
	assert.Zero(t, report.TasksWithIssues)
}

func TestCheck_CriticalGaps(t *testing.T) {
	task := completeTask()
	task.Swimlane = "Unknown"
	task.Owner = ""
	task.TimeMinutes = 0
	task.HasCostPerHour = false

	report := Check([]bpmn.Task{task})

	assert.Equal(t, 4, report.CriticalCount)
	assert.ElementsMatch(t, []string{
		"missing or invalid swimlane",
		"missing task owner",
		"missing time estimate",
		"missing cost per hour",
	}, messagesBySeverity(report.Findings, SeverityCritical))
}

func TestCheck_ZeroRateIsNotAGap(t *testing.T) {
	task := completeTask()
	task.CostPerHour = 0
	task.HasCostPerHour = true

	report := Check([]bpmn.Task{task})
	assert.Zero(t, report.CriticalCount)
}

func TestCheck_DocURLOnlyRequiredWhenDocumented(t *testing.T) {
	needsURL := completeTask()
	needsURL.DocURL = ""

	notNeeded := completeTask()
	notNeeded.DocStatus = "Documentation Not Needed"
	notNeeded.DocURL = ""

	withURL := Check([]bpmn.Task{needsURL})
	assert.Contains(t, messagesBySeverity(withURL.Findings, SeverityWarning), "missing documentation URL")

	withoutURL := Check([]bpmn.Task{notNeeded})
	assert.NotContains(t, messagesBySeverity(withoutURL.Findings, SeverityWarning), "missing documentation URL")
}

func TestCheck_StatusNormalizedBeforeChecking(t *testing.T) {
	task := completeTask()
	task.Status = "0"

	report := Check([]bpmn.Task{task})
	assert.Contains(t, messagesBySeverity(report.Findings, SeverityWarning), "missing task status")
}

func TestCheck_FAQFindings(t *testing.T) {
	noFAQ := completeTask()
	noFAQ.FAQ = [3]bpmn.QA{}

	report := Check([]bpmn.Task{noFAQ})
	assert.Contains(t, messagesBySeverity(report.Findings, SeverityInfo), "no FAQ knowledge captured")

	partial := completeTask()
	partial.FAQ = [3]bpmn.QA{
		{Question: "How do I escalate?"},
		{Answer: "Check the shared drive"},
	}

	report = Check([]bpmn.Task{partial})
	msgs := messagesBySeverity(report.Findings, SeverityInfo)
	assert.Contains(t, msgs, "incomplete FAQ 1 (missing answer)")
	assert.Contains(t, msgs, "incomplete FAQ 2 (missing question)")
	assert.NotContains(t, msgs, "no FAQ knowledge captured")
}

func TestCheck_Rollup(t *testing.T) {
	broken := bpmn.Task{ID: "Task_2", Name: "Unknown", Swimlane: "Unknown", Owner: "Unknown"}

	report := Check([]bpmn.Task{completeTask(), broken})

	require.NotEmpty(t, report.Findings)
	assert.Equal(t, 2, report.TasksChecked)
	assert.Equal(t, 1, report.TasksWithIssues)
	assert.Equal(t, 4, report.CriticalCount)
	assert.Equal(t,
		report.CriticalCount+report.WarningCount+report.InfoCount,
		len(report.Findings))

	for _, f := range report.Findings {
		assert.Equal(t, "Task_2", f.TaskID)
	}
}
