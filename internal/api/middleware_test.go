package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiterSweep(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	l := newClientLimiter(1, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("10.0.0.1:5000"))
	assert.False(t, l.allow("10.0.0.1:5001"), "same host shares a bucket")
	now = now.Add(20 * time.Minute)
	assert.True(t, l.allow("10.0.0.2:5000"))
	assert.Equal(t, 2, l.len())

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, l.sweep(30*time.Minute))
	assert.Equal(t, 1, l.len())

	now = now.Add(time.Hour)
	assert.Equal(t, 1, l.sweep(30*time.Minute))
	assert.Zero(t, l.len())
}
