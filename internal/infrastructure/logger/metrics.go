package logger

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Provider call counters keyed by call name, guarded by metricsMu.
type callStats struct {
	total   int64
	failed  int64
	elapsed time.Duration
}

var (
	metricsMu sync.Mutex
	calls     = map[string]*callStats{}
)

type OperationStats struct {
	Operation    string
	Total        int64
	Failed       int64
	AvgLatencyMs float64
}

func RecordOperation(operation string, err error, duration time.Duration) {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	s, ok := calls[operation]
	if !ok {
		s = &callStats{}
		calls[operation] = s
	}
	s.total++
	s.elapsed += duration
	if err != nil {
		s.failed++
	}
}

// GetMetrics returns one entry per operation, sorted by name.
func GetMetrics() []OperationStats {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	result := make([]OperationStats, 0, len(calls))
	for op, s := range calls {
		stats := OperationStats{Operation: op, Total: s.total, Failed: s.failed}
		if s.total > 0 {
			stats.AvgLatencyMs = float64(s.elapsed) / float64(s.total) / 1e6
		}
		result = append(result, stats)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Operation < result[j].Operation })
	return result
}

func TimedOperation(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	log := FromContext(ctx).With("call", operation)
	log.Debug("calling provider")

	err := fn()
	duration := time.Since(start)

	RecordOperation(operation, err, duration)

	if err != nil {
		log.Debug("provider call failed", "error", err, "duration", duration)
	} else {
		log.Debug("provider call completed", "duration", duration)
	}

	return err
}

func ResetMetrics() {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	calls = map[string]*callStats{}
}
