package executor

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundRobinPicker is a minimal in-memory Picker used to test fairness and
// backoff behavior without a real network.
type roundRobinPicker struct {
	mu      sync.Mutex
	n       int
	cursor  int
	counts  []int
	unhealthyUntil []time.Time
}

func newRoundRobinPicker(n int) *roundRobinPicker {
	return &roundRobinPicker{n: n, counts: make([]int, n), unhealthyUntil: make([]time.Time, n)}
}

func (p *roundRobinPicker) Pick() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	for i := 0; i < p.n; i++ {
		idx := (p.cursor + i) % p.n
		if p.unhealthyUntil[idx].Before(now) {
			p.cursor = (idx + 1) % p.n
			p.counts[idx]++
			return idx, true
		}
	}
	return 0, false
}

func (p *roundRobinPicker) RecordSuccess(idx int) {}

func (p *roundRobinPicker) RecordFailure(idx int, backoff time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unhealthyUntil[idx] = time.Now().Add(backoff)
}

func TestNodeRotationFairness(t *testing.T) {
	picker := newRoundRobinPicker(3)
	const n = 30
	for i := 0; i < n; i++ {
		err := Run(context.Background(), time.Second, picker, func(ctx context.Context, idx int) (Outcome, error) {
			return Ok, nil
		})
		require.NoError(t, err)
	}
	for _, c := range picker.counts {
		assert.GreaterOrEqual(t, c, n/3)
	}
}

func TestRunReturnsTerminalErrorImmediately(t *testing.T) {
	picker := newRoundRobinPicker(2)
	wantErr := errors.New("terminal failure")
	attempts := 0
	err := Run(context.Background(), time.Second, picker, func(ctx context.Context, idx int) (Outcome, error) {
		attempts++
		return Terminal, wantErr
	})
	assert.Equal(t, wantErr, err)
	assert.Equal(t, 1, attempts)
}

func TestRunRetriesThenSucceeds(t *testing.T) {
	picker := newRoundRobinPicker(2)
	calls := 0
	err := Run(context.Background(), time.Second, picker, func(ctx context.Context, idx int) (Outcome, error) {
		calls++
		if calls < 3 {
			return Retryable, errors.New("busy")
		}
		return Ok, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunTimesOut(t *testing.T) {
	picker := newRoundRobinPicker(1)
	err := Run(context.Background(), 10*time.Millisecond, picker, func(ctx context.Context, idx int) (Outcome, error) {
		return Retryable, errors.New("always busy")
	})
	assert.Error(t, err)
}

func TestBackoffMonotonicUntilCap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var prev time.Duration
	for attempt := 0; attempt < 10; attempt++ {
		d := Delay(attempt, rng)
		assert.LessOrEqual(t, d, capDelay+capDelay/4)
		if attempt > 0 {
			// The un-jittered base is non-decreasing; ±25% jitter on both
			// sides means a later delay can be at worst 0.6x an earlier one
			// (min jitter over max jitter) when both bases have hit the cap.
			assert.GreaterOrEqual(t, d, prev*3/5)
		}
		prev = d
	}
}
