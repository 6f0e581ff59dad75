package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/raphaelgruber/bpmlens/internal/analysis"
	"github.com/raphaelgruber/bpmlens/internal/bpmn"
	"github.com/raphaelgruber/bpmlens/internal/metrics"
)

// loadResult bundles everything one pipeline pass produces.
type loadResult struct {
	merged    *analysis.Result
	stubCount int
	collector *metrics.Collector
}

// loadFiles parses and analyzes every file, merging per-document results.
// With a terminal attached and more than one file, a progress bar is shown.
func loadFiles(files []string) (*loadResult, error) {
	collector := metrics.NewCollector()

	var mu sync.Mutex
	var results []*analysis.Result
	stubs := 0

	process := func(file string) error {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		start := time.Now()
		doc, err := bpmn.ParseDocument(data, logger)
		if err != nil {
			return fmt.Errorf("parse %s: %w", file, err)
		}

		fileStubs := 0
		for _, task := range doc.Tasks {
			if task.IsStub() {
				fileStubs++
			}
		}
		collector.RecordParse(time.Since(start), int64(len(doc.Tasks)), int64(fileStubs))

		start = time.Now()
		result := analysis.Analyze(doc)
		collector.RecordTiming(metrics.OpAnalyze, time.Since(start))

		mu.Lock()
		results = append(results, result)
		stubs += fileStubs
		mu.Unlock()
		return nil
	}

	if showProgress(len(files)) {
		if err := runWithProgress(files, process); err != nil {
			return nil, err
		}
	} else {
		for _, file := range files {
			if err := process(file); err != nil {
				return nil, err
			}
		}
	}

	return &loadResult{
		merged:    analysis.Merge(results...),
		stubCount: stubs,
		collector: collector,
	}, nil
}

func showProgress(fileCount int) bool {
	return fileCount > 1 && term.IsTerminal(int(os.Stdout.Fd()))
}
