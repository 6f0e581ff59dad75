package analysis

// Merge combines per-document results into one. Aggregates sharing a key
// are summed componentwise, never averaged; keys unique to one input carry
// over unchanged. The operation is associative and commutative and never
// mutates its inputs: all accumulation happens in a fresh Result.
func Merge(results ...*Result) *Result {
	merged := newResult()

	currencies := make(map[string]struct{})
	for _, r := range results {
		if r == nil {
			continue
		}
		merged.Tasks = append(merged.Tasks, r.Tasks...)

		merged.Summary.TaskCount += r.Summary.TaskCount
		merged.Summary.ProcessCount += r.Summary.ProcessCount
		merged.Summary.CollaborationCount += r.Summary.CollaborationCount
		merged.Summary.TotalCost += r.Summary.TotalCost
		merged.Summary.TotalTimeMinutes += r.Summary.TotalTimeMinutes
		merged.Summary.TotalTimeHours += r.Summary.TotalTimeHours
		for _, c := range r.Summary.Currencies {
			currencies[c] = struct{}{}
		}

		mergeTable(merged.Swimlanes, r.Swimlanes)
		mergeTable(merged.Owners, r.Owners)
		mergeTable(merged.Statuses, r.Statuses)
		mergeTable(merged.Priorities, r.Priorities)
		mergeTable(merged.DocStatuses, r.DocStatuses)
		mergeTable(merged.Tools, r.Tools)
	}

	merged.Summary.Currencies = sortedSet(currencies)
	return merged
}

func mergeTable(dst, src Table) {
	for key, in := range src {
		agg := dst[key]
		agg.Key = key
		agg.TaskCount += in.TaskCount
		agg.TotalCost += in.TotalCost
		agg.TotalTimeMinutes += in.TotalTimeMinutes
		dst[key] = agg
	}
}
