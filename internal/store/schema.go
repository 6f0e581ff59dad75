package store

// SchemaSQL contains the database schema initialization SQL.
const SchemaSQL = `
    -- ==========================================================================
    -- RUN TABLE (persisted analysis runs)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS run SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON run TYPE string;
    DEFINE FIELD IF NOT EXISTS files ON run TYPE array<string>;
    DEFINE FIELD IF NOT EXISTS created_at ON run TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS duration_ms ON run TYPE int DEFAULT 0;
    DEFINE FIELD IF NOT EXISTS task_count ON run TYPE int DEFAULT 0;
    DEFINE FIELD IF NOT EXISTS stub_count ON run TYPE int DEFAULT 0;
    DEFINE FIELD IF NOT EXISTS total_cost ON run TYPE float DEFAULT 0.0;
    DEFINE FIELD IF NOT EXISTS total_time_hours ON run TYPE float DEFAULT 0.0;
    DEFINE FIELD IF NOT EXISTS currencies ON run TYPE option<array<string>>;
    DEFINE FIELD IF NOT EXISTS critical_findings ON run TYPE int DEFAULT 0;
    -- Full aggregation snapshot; shape is owned by the analysis package.
    DEFINE FIELD IF NOT EXISTS analysis ON run TYPE option<object> FLEXIBLE;

    DEFINE INDEX IF NOT EXISTS run_name ON run FIELDS name;
    DEFINE INDEX IF NOT EXISTS run_created_at ON run FIELDS created_at;
`
