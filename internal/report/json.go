package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/raphaelgruber/bpmlens/internal/analysis"
	"github.com/raphaelgruber/bpmlens/internal/quality"
)

// Export is the machine-readable form of one analysis run.
type Export struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Analysis    *analysis.Result `json:"analysis"`
	Quality     quality.Report   `json:"quality"`
}

// WriteJSON writes the full analysis as indented JSON.
func WriteJSON(w io.Writer, r *analysis.Result, qr quality.Report, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export{GeneratedAt: now, Analysis: r, Quality: qr}); err != nil {
		return fmt.Errorf("encode analysis json: %w", err)
	}
	return nil
}
