package bpmn

import (
	"fmt"
	"log/slog"
	"strings"
)

// QA is one FAQ question/answer pair captured on a task.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Task is the canonical unit of analysis, one per BPMN task-like element.
// Every field carries a stable default ("Unknown" for status-like strings,
// zero for numerics, "" for free text) so downstream aggregation never
// null-checks.
type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Swimlane string `json:"swimlane"`
	// Type is the BPMN subtype with the namespace prefix stripped:
	// "task", "sendTask", "manualTask".
	Type string `json:"type"`

	// TimeRaw is the original time_hhmm property ("1:30" or bare hours "6").
	TimeRaw     string  `json:"time_raw"`
	TimeDisplay string  `json:"time_display"`
	TimeMinutes int     `json:"time_minutes"`
	TimeHours   float64 `json:"time_hours"`

	CostPerHour float64 `json:"cost_per_hour"`
	// HasCostPerHour records whether the cost_per_hour property was present
	// at all; a deliberate zero rate and a missing one both normalize to 0.
	HasCostPerHour bool    `json:"has_cost_per_hour"`
	Currency       string  `json:"currency"`
	OtherCosts     float64 `json:"other_costs"`
	LaborCost      float64 `json:"labor_cost"`
	TotalCost      float64 `json:"total_cost"`

	Owner          string `json:"owner"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	DocStatus      string `json:"doc_status"`
	ToolsUsed      string `json:"tools_used"`
	Opportunities  string `json:"opportunities"`
	IssuesText     string `json:"issues_text"`
	IssuesPriority string `json:"issues_priority"`
	FAQ            [3]QA  `json:"faq"`
	Industry       string `json:"industry"`
	DocURL         string `json:"doc_url"`

	// ProcessRef is the id of the owning bpmn:process element.
	ProcessRef string `json:"process_ref"`
}

// IsStub reports whether this task is the default stub substituted for a
// task whose extraction failed.
func (t Task) IsStub() bool {
	return t.ID == "Unknown" && t.Name == "Unknown" && !t.HasCostPerHour && t.TimeMinutes == 0
}

// parseTask builds a Task from one decoded task element. It never returns an
// error: any failure (a non-numeric cost, an unexpectedly shaped property
// bag) is logged and degrades to the default stub so one corrupt task cannot
// abort extraction of its siblings.
func parseTask(el map[string]any, swimlane, taskType, processID string, log *slog.Logger) Task {
	if el == nil {
		return defaultTask(swimlane, taskType, processID)
	}

	props := extensionProperties(el)

	costPerHour, err := parseAmount(props["cost_per_hour"])
	if err == nil {
		var otherCosts float64
		otherCosts, err = parseAmount(props["other_costs"])
		if err == nil {
			return buildTask(el, props, swimlane, taskType, processID, costPerHour, otherCosts)
		}
	}

	log.Warn("task extraction failed, substituting default stub",
		"task_id", Attr(el, "id", "Unknown"),
		"process", processID,
		"error", err)
	return defaultTask(swimlane, taskType, processID)
}

func buildTask(el map[string]any, props map[string]string, swimlane, taskType, processID string, costPerHour, otherCosts float64) Task {
	timeRaw := props["time_hhmm"]
	if timeRaw == "" {
		timeRaw = "00:00"
	}
	timeMinutes := ParseMinutes(timeRaw)
	timeHours := 0.0
	if timeMinutes > 0 {
		timeHours = float64(timeMinutes) / 60
	}
	laborCost := timeHours * costPerHour

	_, hasCost := props["cost_per_hour"]

	t := Task{
		ID:             Attr(el, "id", "Unknown"),
		Name:           Attr(el, "name", "Unknown"),
		Swimlane:       swimlane,
		Type:           stripNamespace(taskType),
		TimeRaw:        timeRaw,
		TimeDisplay:    FormatClock(timeRaw),
		TimeMinutes:    timeMinutes,
		TimeHours:      timeHours,
		CostPerHour:    costPerHour,
		HasCostPerHour: hasCost,
		Currency:       propOr(props, "currency", "Unknown"),
		OtherCosts:     otherCosts,
		LaborCost:      laborCost,
		TotalCost:      laborCost + otherCosts,
		Owner:          propOr(props, "task_owner", "Unknown"),
		Description:    props["task_description"],
		Status:         propOr(props, "task_status", "Unknown"),
		DocStatus:      propOr(props, "doc_status", "Unknown"),
		ToolsUsed:      props["tools_used"],
		Opportunities:  props["opportunities"],
		IssuesText:     props["issues_text"],
		IssuesPriority: props["issues_priority"],
		Industry:       props["task_industry"],
		DocURL:         NormalizeDocURL(props["doc_url"]),
		ProcessRef:     processID,
	}
	for i := 0; i < 3; i++ {
		t.FAQ[i] = QA{
			Question: props[fmt.Sprintf("faq_q%d", i+1)],
			Answer:   props[fmt.Sprintf("faq_a%d", i+1)],
		}
	}
	return t
}

// defaultTask is the safe stub substituted when single-task extraction fails.
// It carries the correct swimlane, subtype, and process reference so list
// length and grouping invariants hold.
func defaultTask(swimlane, taskType, processID string) Task {
	return Task{
		ID:          "Unknown",
		Name:        "Unknown",
		Swimlane:    swimlane,
		Type:        stripNamespace(taskType),
		TimeRaw:     "00:00",
		TimeDisplay: "00:00",
		Currency:    "Unknown",
		Owner:       "Unknown",
		Status:      "Unknown",
		DocStatus:   "Unknown",
		ProcessRef:  processID,
	}
}

// extensionProperties flattens the Camunda property bag under
// bpmn:extensionElements into a name -> value map. A missing container or an
// empty bag yields an empty map.
func extensionProperties(el map[string]any) map[string]string {
	props := make(map[string]string)
	ext := AsMap(Child(el, "bpmn:extensionElements"))
	bag := AsMap(Child(ext, "camunda:properties"))
	for _, v := range AsList(Child(bag, "camunda:property")) {
		prop := AsMap(v)
		if prop == nil {
			continue
		}
		name := Attr(prop, "name", "")
		if name == "" {
			continue
		}
		props[name] = Attr(prop, "value", "")
	}
	return props
}

func propOr(props map[string]string, name, def string) string {
	if v, ok := props[name]; ok && v != "" {
		return v
	}
	return def
}

func stripNamespace(tag string) string {
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		return tag[i+1:]
	}
	return tag
}
