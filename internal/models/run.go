// Package models defines data structures for persisted analysis runs.
package models

import (
	"time"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/raphaelgruber/bpmlens/internal/analysis"
)

// Run is one persisted analysis run: which files were processed, the
// headline totals, and the full aggregation snapshot.
type Run struct {
	ID         surrealmodels.RecordID `json:"id"`
	Name       string                 `json:"name"`
	Files      []string               `json:"files"`
	CreatedAt  time.Time              `json:"created_at"`
	DurationMs int64                  `json:"duration_ms"`

	TaskCount        int      `json:"task_count"`
	StubCount        int      `json:"stub_count"`
	TotalCost        float64  `json:"total_cost"`
	TotalTimeHours   float64  `json:"total_time_hours"`
	Currencies       []string `json:"currencies,omitempty"`
	CriticalFindings int      `json:"critical_findings"`

	// Analysis is omitted from list queries; only single-run fetches
	// load the full snapshot.
	Analysis *analysis.Result `json:"analysis,omitempty"`
}
