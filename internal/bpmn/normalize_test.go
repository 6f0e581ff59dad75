package bpmn

import (
	"reflect"
	"testing"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "bare number is hours", raw: "6", want: 360},
		{name: "hours and minutes", raw: "1:30", want: 90},
		{name: "two hours", raw: "2:00", want: 120},
		{name: "empty", raw: "", want: 0},
		{name: "whitespace only", raw: "   ", want: 0},
		{name: "non-numeric", raw: "abc", want: 0},
		{name: "blank hours side", raw: ":30", want: 30},
		{name: "blank minutes side", raw: "2:", want: 120},
		{name: "fractional hours", raw: "1.5", want: 90},
		{name: "too many separators", raw: "1:2:3", want: 0},
		{name: "non-numeric minutes", raw: "1:xx", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMinutes(tt.raw); got != tt.want {
				t.Errorf("ParseMinutes(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "6", want: "06:00"},
		{raw: "1:5", want: "01:05"},
		{raw: "1:30", want: "01:30"},
		{raw: "", want: "00:00"},
		{raw: "abc", want: "00:00"},
		{raw: "12:05", want: "12:05"},
		{raw: ":45", want: "00:45"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := FormatClock(tt.raw); got != tt.want {
				t.Errorf("FormatClock(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	for _, raw := range []string{"0", "", "   ", "Unknown", "unknown", "UNKNOWN"} {
		if got := NormalizeStatus(raw); got != "Unknown" {
			t.Errorf("NormalizeStatus(%q) = %q, want Unknown", raw, got)
		}
	}

	if got := NormalizeStatus("Requires Attention"); got != "Requires Attention" {
		t.Errorf("NormalizeStatus passthrough = %q", got)
	}
	if got := NormalizeStatus("  In Progress  "); got != "In Progress" {
		t.Errorf("NormalizeStatus should trim, got %q", got)
	}
}

func TestNormalizeDocURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "NR", want: ""},
		{raw: "No URL", want: ""},
		{raw: "NOURL", want: ""},
		{raw: "unknown", want: ""},
		{raw: "", want: ""},
		{raw: "  https://x.io  ", want: "https://x.io"},
		{raw: "https://wiki.example.com/proc", want: "https://wiki.example.com/proc"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeDocURL(tt.raw); got != tt.want {
				t.Errorf("NormalizeDocURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitTools(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "Excel", want: []string{"Excel"}},
		{name: "comma separated", raw: "Excel, Outlook", want: []string{"Excel", "Outlook"}},
		{
			name: "semicolon wins over comma",
			raw:  "Excel; Prextra, Inc.",
			want: []string{"Excel", "Prextra, Inc."},
		},
		{name: "french compound", raw: "Outlook et Prextra", want: []string{"Outlook", "Prextra"}},
		{
			name: "vendor prefixes and aliases",
			raw:  "Microsoft Teams, MS Excel, Microsoft Dynamics",
			want: []string{"Teams", "Excel", "Dynamics"},
		},
		{name: "duplicates removed", raw: "Excel, excel, Microsoft Excel", want: []string{"Excel"}},
		{name: "blank entries skipped", raw: "Excel, , Outlook", want: []string{"Excel", "Outlook"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitTools(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTools(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
