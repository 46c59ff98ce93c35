package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

func newTestBreaker(t *testing.T) *CircuitBreaker {
	t.Helper()
	return NewCircuitBreaker("test", Config{
		MaxRequests:      1,
		Timeout:          40 * time.Millisecond,
		FailureThreshold: 2,
		SuccessThreshold: 1,
	})
}

func failTimes(cb *CircuitBreaker, n int) {
	for i := 0; i < n; i++ {
		_ = cb.Execute(context.Background(), func() error { return errBackend })
	}
}

func TestExecutePassesThroughWhenClosed(t *testing.T) {
	cb := newTestBreaker(t)

	err := cb.Execute(context.Background(), func() error { return nil })

	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().TotalSuccesses)
}

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(t)

	failTimes(cb, 2)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called, "open breaker must not invoke the operation")
}

func TestSuccessResetsConsecutiveFailures(t *testing.T) {
	cb := newTestBreaker(t)

	failTimes(cb, 1)
	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	failTimes(cb, 1)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestHalfOpenAfterTimeout(t *testing.T) {
	cb := newTestBreaker(t)

	failTimes(cb, 2)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, cb.State())
}

func TestHalfOpenSuccessCloses(t *testing.T) {
	cb := newTestBreaker(t)

	failTimes(cb, 2)
	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return nil })

	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestHalfOpenFailureReopens(t *testing.T) {
	cb := newTestBreaker(t)

	failTimes(cb, 2)
	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return errBackend })

	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, StateOpen, cb.State())
}

func TestHalfOpenLimitsConcurrentRequests(t *testing.T) {
	cb := newTestBreaker(t)

	failTimes(cb, 2)
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, StateHalfOpen, cb.State())

	_, err := cb.beforeRequest()
	require.NoError(t, err)

	_, err = cb.beforeRequest()
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestIntervalResetsClosedCounts(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		Interval:         20 * time.Millisecond,
		FailureThreshold: 2,
	})

	failTimes(cb, 1)
	require.Equal(t, uint32(1), cb.Counts().TotalFailures)

	time.Sleep(40 * time.Millisecond)
	require.Equal(t, StateClosed, cb.State())
	assert.Equal(t, Counts{}, cb.Counts())
}

func TestExecuteRecordsPanicAsFailure(t *testing.T) {
	cb := newTestBreaker(t)

	require.Panics(t, func() {
		_ = cb.Execute(context.Background(), func() error { panic("boom") })
	})

	assert.Equal(t, uint32(1), cb.Counts().TotalFailures)
	assert.Equal(t, StateClosed, cb.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
