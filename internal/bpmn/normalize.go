package bpmn

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMinutes converts a raw time string into minutes. A bare number is a
// count of hours ("6" -> 360); "H:M" is hours and minutes with blank sides
// read as zero. Empty or unparseable input yields 0, never an error.
func ParseMinutes(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if !strings.Contains(s, ":") {
		hours, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return int(hours * 60)
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}
	hours, err := atoiOrZero(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := atoiOrZero(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// FormatClock renders a raw time string as zero-padded "HH:MM" regardless of
// the input shape: "6" -> "06:00", "1:5" -> "01:05". Unparseable input
// renders as "00:00".
func FormatClock(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "00:00"
	}
	if !strings.Contains(s, ":") {
		hours, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "00:00"
		}
		return fmt.Sprintf("%02d:00", int(hours))
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "00:00"
	}
	hours, err := atoiOrZero(parts[0])
	if err != nil {
		return "00:00"
	}
	minutes, err := atoiOrZero(parts[1])
	if err != nil {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// parseAmount reads a monetary property. Blank values mean zero; a non-empty
// value that does not parse is an extraction failure for the whole task.
func parseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return v, nil
}

// NormalizeStatus collapses the empty/zero/"unknown" variants that appear in
// status-like properties to the canonical "Unknown". Applied both during
// aggregation and wherever a status is displayed, so counts never split
// across spellings.
func NormalizeStatus(status string) string {
	s := strings.TrimSpace(status)
	if s == "" || s == "0" || strings.EqualFold(s, "unknown") {
		return "Unknown"
	}
	return s
}

// urlPlaceholders are the values process authors type when a task has no
// documentation link.
var urlPlaceholders = map[string]struct{}{
	"":        {},
	"nr":      {},
	"no url":  {},
	"nourl":   {},
	"unknown": {},
}

// NormalizeDocURL trims the documentation URL and suppresses the known
// "no URL" placeholders, returning an empty string for them.
func NormalizeDocURL(raw string) string {
	s := strings.TrimSpace(raw)
	if _, placeholder := urlPlaceholders[strings.ToLower(s)]; placeholder {
		return ""
	}
	return s
}

// toolAliases maps lowercase tool spellings to their canonical names.
var toolAliases = map[string]string{
	"teams":                "Teams",
	"microsoft teams":      "Teams",
	"ms teams":             "Teams",
	"excel":                "Excel",
	"microsoft excel":      "Excel",
	"ms excel":             "Excel",
	"outlook":              "Outlook",
	"microsoft outlook":    "Outlook",
	"ms outlook":           "Outlook",
	"word":                 "Word",
	"microsoft word":       "Word",
	"ms word":              "Word",
	"powerpoint":           "PowerPoint",
	"microsoft powerpoint": "PowerPoint",
	"ms powerpoint":        "PowerPoint",
	"planner":              "Planner",
	"microsoft planner":    "Planner",
	"ms planner":           "Planner",
}

// SplitTools breaks a raw tools_used property into individual tool names.
// Semicolons win over commas as the delimiter; " et " joins French compound
// entries ("Outlook et Prextra"); vendor prefixes are stripped and common
// Office tools are canonicalized. Order is preserved, duplicates removed.
func SplitTools(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}

	var tools []string
	seen := make(map[string]struct{})
	add := func(name string) {
		name = strings.Join(strings.Fields(name), " ")
		if name == "" {
			return
		}
		if canonical, ok := toolAliases[strings.ToLower(name)]; ok {
			name = canonical
		} else {
			name = strings.TrimPrefix(name, "Microsoft ")
			name = strings.TrimPrefix(name, "MS ")
			name = strings.TrimPrefix(name, "Office ")
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		tools = append(tools, name)
	}

	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, " et ") {
			for _, sub := range strings.Split(part, " et ") {
				add(strings.TrimSpace(sub))
			}
			continue
		}
		add(part)
	}
	return tools
}
