package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds application counters. Atomic fields are updated lock-free;
// the status map takes its own mutex.
type Metrics struct {
	RequestCount        int64
	ErrorCount          int64
	CacheHits           int64
	CacheMisses         int64
	ScoreCalls          int64
	GenerateCalls       int64
	AnalyzeCalls        int64
	RateLimitBlocks     int64
	RateLimitRedisError int64
	AverageResponseTime int64 // nanoseconds
	StartTime           time.Time

	RequestCountByStatus map[int]int64
	statusMutex          sync.RWMutex
}

// NewMetrics creates a metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime:            time.Now(),
		RequestCountByStatus: make(map[int]int64),
	}
}

func (m *Metrics) IncrementRequest()        { atomic.AddInt64(&m.RequestCount, 1) }
func (m *Metrics) IncrementError()          { atomic.AddInt64(&m.ErrorCount, 1) }
func (m *Metrics) IncrementCacheHit()       { atomic.AddInt64(&m.CacheHits, 1) }
func (m *Metrics) IncrementCacheMiss()      { atomic.AddInt64(&m.CacheMisses, 1) }
func (m *Metrics) IncrementScoreCalls()     { atomic.AddInt64(&m.ScoreCalls, 1) }
func (m *Metrics) IncrementGenerateCalls()  { atomic.AddInt64(&m.GenerateCalls, 1) }
func (m *Metrics) IncrementAnalyzeCalls()   { atomic.AddInt64(&m.AnalyzeCalls, 1) }
func (m *Metrics) IncrementRateLimitBlock() { atomic.AddInt64(&m.RateLimitBlocks, 1) }

// IncrementRateLimitRedisError counts Redis failures that fell back to the
// in-memory limiter.
func (m *Metrics) IncrementRateLimitRedisError() { atomic.AddInt64(&m.RateLimitRedisError, 1) }

// RecordResponseTime folds a response time into the running average.
func (m *Metrics) RecordResponseTime(duration time.Duration) {
	current := atomic.LoadInt64(&m.AverageResponseTime)
	newAverage := (current + duration.Nanoseconds()) / 2
	atomic.StoreInt64(&m.AverageResponseTime, newAverage)
}

// RecordRequestByStatus tracks response status codes.
func (m *Metrics) RecordRequestByStatus(statusCode int) {
	m.statusMutex.Lock()
	defer m.statusMutex.Unlock()
	m.RequestCountByStatus[statusCode]++
}

// GetStats returns a snapshot of all counters for the metrics endpoint.
func (m *Metrics) GetStats() map[string]interface{} {
	m.statusMutex.RLock()
	byStatus := make(map[int]int64, len(m.RequestCountByStatus))
	for k, v := range m.RequestCountByStatus {
		byStatus[k] = v
	}
	m.statusMutex.RUnlock()

	return map[string]interface{}{
		"request_count":            atomic.LoadInt64(&m.RequestCount),
		"error_count":              atomic.LoadInt64(&m.ErrorCount),
		"cache_hits":               atomic.LoadInt64(&m.CacheHits),
		"cache_misses":             atomic.LoadInt64(&m.CacheMisses),
		"score_calls":              atomic.LoadInt64(&m.ScoreCalls),
		"generate_calls":           atomic.LoadInt64(&m.GenerateCalls),
		"analyze_calls":            atomic.LoadInt64(&m.AnalyzeCalls),
		"rate_limit_blocks":        atomic.LoadInt64(&m.RateLimitBlocks),
		"rate_limit_redis_errors":  atomic.LoadInt64(&m.RateLimitRedisError),
		"average_response_time_ms": float64(atomic.LoadInt64(&m.AverageResponseTime)) / 1e6,
		"requests_by_status":       byStatus,
		"uptime_seconds":           time.Since(m.StartTime).Seconds(),
	}
}
