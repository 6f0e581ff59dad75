package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"

	"github.com/raphaelgruber/bpmlens/internal/models"
)

// QuerySaveRun persists one analysis run. A blank ID gets a fresh UUID;
// saving an existing ID fails with ErrRunAlreadyExists.
func (c *Client) QuerySaveRun(ctx context.Context, run models.Run) (*models.Run, error) {
	id, _ := run.ID.ID.(string)
	if id == "" {
		id = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	sql := `
		CREATE type::record("run", $id) CONTENT {
			name: $name,
			files: $files,
			created_at: $created_at,
			duration_ms: $duration_ms,
			task_count: $task_count,
			stub_count: $stub_count,
			total_cost: $total_cost,
			total_time_hours: $total_time_hours,
			currencies: $currencies,
			critical_findings: $critical_findings,
			analysis: $analysis
		}
	`

	results, err := surrealdb.Query[[]models.Run](ctx, c.db, sql, map[string]any{
		"id":                id,
		"name":              run.Name,
		"files":             run.Files,
		"created_at":        run.CreatedAt,
		"duration_ms":       run.DurationMs,
		"task_count":        run.TaskCount,
		"stub_count":        run.StubCount,
		"total_cost":        run.TotalCost,
		"total_time_hours":  run.TotalTimeHours,
		"currencies":        run.Currencies,
		"critical_findings": run.CriticalFindings,
		"analysis":          run.Analysis,
	})
	if err != nil {
		return nil, fmt.Errorf("save run: %w", wrapQueryError(err))
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, fmt.Errorf("save run: no result returned")
	}
	return &(*results)[0].Result[0], nil
}

// QueryListRuns returns recent runs, newest first, without the full
// analysis snapshot. limit <= 0 means no limit.
func (c *Client) QueryListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	sql := `SELECT * OMIT analysis FROM run ORDER BY created_at DESC`
	vars := map[string]any{}
	if limit > 0 {
		sql += ` LIMIT $limit`
		vars["limit"] = limit
	}

	results, err := surrealdb.Query[[]models.Run](ctx, c.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return []models.Run{}, nil
	}
	return (*results)[0].Result, nil
}

// QueryGetRun retrieves a run by ID, including the analysis snapshot.
// Returns ErrNotFound if no run has that ID.
func (c *Client) QueryGetRun(ctx context.Context, id string) (*models.Run, error) {
	results, err := surrealdb.Query[[]models.Run](ctx, c.db, `
		SELECT * FROM type::record("run", $id)
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}

	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, fmt.Errorf("get run %q: %w", id, ErrNotFound)
	}
	return &(*results)[0].Result[0], nil
}

// QueryDeleteRun deletes a run by ID. Returns false if nothing was deleted.
func (c *Client) QueryDeleteRun(ctx context.Context, id string) (bool, error) {
	results, err := surrealdb.Query[[]models.Run](ctx, c.db, `
		DELETE type::record("run", $id) RETURN BEFORE
	`, map[string]any{"id": id})
	if err != nil {
		return false, fmt.Errorf("delete run: %w", err)
	}

	if results == nil || len(*results) == 0 {
		return false, nil
	}
	return len((*results)[0].Result) > 0, nil
}
