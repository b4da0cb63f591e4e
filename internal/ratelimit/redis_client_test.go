package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClientWithoutAddr(t *testing.T) {
	rc, err := NewRedisClient("", "")
	require.NoError(t, err)

	assert.False(t, rc.Enabled())
	assert.Nil(t, rc.Client())
	assert.NoError(t, rc.Close())
}

func TestDisabledClientPoolStats(t *testing.T) {
	rc := &RedisClient{}

	stats := rc.PoolStats()
	assert.Equal(t, false, stats["enabled"])
	assert.NotContains(t, stats, "addr")
}
