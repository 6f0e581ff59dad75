// Package metrics provides in-memory pipeline statistics collection.
package metrics

import (
	"math"
	"sync"
	"time"
)

// OperationMetrics holds aggregated metrics for a single operation type.
type OperationMetrics struct {
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration

	// Volume metrics (only for parse operations)
	TotalTasks int64
	TotalStubs int64
	MinTasks   int64
	MaxTasks   int64
}

// OperationSnapshot provides computed stats from raw metrics.
type OperationSnapshot struct {
	Count       int64
	TotalTimeMs int64
	AvgTimeMs   float64
	MinTimeMs   int64
	MaxTimeMs   int64

	// Volume stats (nil if not applicable)
	TotalTasks *int64
	TotalStubs *int64
	AvgTasks   *float64
	MinTasks   *int64
	MaxTasks   *int64
}

// Snapshot represents the full pipeline statistics at a point in time.
type Snapshot struct {
	UptimeSeconds float64
	Parse         *OperationSnapshot
	Analyze       *OperationSnapshot
	Report        *OperationSnapshot
	Save          *OperationSnapshot
}

// Operation names for the collector.
const (
	OpParse   = "parse"
	OpAnalyze = "analyze"
	OpReport  = "report"
	OpSave    = "save"
)

// Collector aggregates in-memory pipeline statistics.
// All methods are thread-safe.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	ops       map[string]*OperationMetrics
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		ops:       make(map[string]*OperationMetrics),
	}
}

// getOrCreate returns existing metrics or creates new ones for an operation.
// Caller must hold write lock.
func (c *Collector) getOrCreate(op string) *OperationMetrics {
	m, ok := c.ops[op]
	if !ok {
		m = &OperationMetrics{
			MinTime:  time.Duration(math.MaxInt64),
			MinTasks: math.MaxInt64,
		}
		c.ops[op] = m
	}
	return m
}

// RecordTiming records timing for an operation.
func (c *Collector) RecordTiming(op string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(op)
	m.Count++
	m.TotalTime += duration

	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
}

// RecordParse records timing and extraction volume for one parsed document.
// stubs counts tasks that fell back to the default stub.
func (c *Collector) RecordParse(duration time.Duration, tasks, stubs int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(OpParse)
	m.Count++
	m.TotalTime += duration

	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}

	m.TotalTasks += tasks
	m.TotalStubs += stubs

	if tasks < m.MinTasks {
		m.MinTasks = tasks
	}
	if tasks > m.MaxTasks {
		m.MaxTasks = tasks
	}
}

// snapshotOp creates a snapshot for an operation, returning nil if no data.
func snapshotOp(m *OperationMetrics, includeVolume bool) *OperationSnapshot {
	if m == nil || m.Count == 0 {
		return nil
	}

	snap := &OperationSnapshot{
		Count:       m.Count,
		TotalTimeMs: m.TotalTime.Milliseconds(),
		AvgTimeMs:   float64(m.TotalTime.Milliseconds()) / float64(m.Count),
		MinTimeMs:   m.MinTime.Milliseconds(),
		MaxTimeMs:   m.MaxTime.Milliseconds(),
	}

	if includeVolume {
		totalTasks := m.TotalTasks
		totalStubs := m.TotalStubs
		avgTasks := float64(m.TotalTasks) / float64(m.Count)
		minTasks := m.MinTasks
		maxTasks := m.MaxTasks

		// Reset sentinel values for display
		if minTasks == math.MaxInt64 {
			minTasks = 0
		}

		snap.TotalTasks = &totalTasks
		snap.TotalStubs = &totalStubs
		snap.AvgTasks = &avgTasks
		snap.MinTasks = &minTasks
		snap.MaxTasks = &maxTasks
	}

	return snap
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		UptimeSeconds: time.Since(c.startTime).Seconds(),
		Parse:         snapshotOp(c.ops[OpParse], true),
		Analyze:       snapshotOp(c.ops[OpAnalyze], false),
		Report:        snapshotOp(c.ops[OpReport], false),
		Save:          snapshotOp(c.ops[OpSave], false),
	}
}
