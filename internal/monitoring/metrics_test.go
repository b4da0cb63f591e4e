package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrementRequest()
	m.IncrementRequest()
	m.IncrementError()
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementScoreCalls()
	m.IncrementGenerateCalls()
	m.IncrementAnalyzeCalls()
	m.IncrementRateLimitBlock()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats["request_count"])
	assert.Equal(t, int64(1), stats["error_count"])
	assert.Equal(t, int64(1), stats["cache_hits"])
	assert.Equal(t, int64(1), stats["cache_misses"])
	assert.Equal(t, int64(1), stats["score_calls"])
	assert.Equal(t, int64(1), stats["generate_calls"])
	assert.Equal(t, int64(1), stats["analyze_calls"])
	assert.Equal(t, int64(1), stats["rate_limit_blocks"])
}

func TestMetricsStatusCodes(t *testing.T) {
	m := NewMetrics()

	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(200)
	m.RecordRequestByStatus(429)

	stats := m.GetStats()
	byStatus, ok := stats["requests_by_status"].(map[int]int64)
	require.True(t, ok)
	assert.Equal(t, int64(2), byStatus[200])
	assert.Equal(t, int64(1), byStatus[429])
}

func TestMetricsResponseTime(t *testing.T) {
	m := NewMetrics()

	m.RecordResponseTime(10 * time.Millisecond)
	stats := m.GetStats()

	avg, ok := stats["average_response_time_ms"].(float64)
	require.True(t, ok)
	assert.Greater(t, avg, 0.0)
}
