package executor

import (
	"math/rand"
	"time"
)

const (
	baseDelay = 250 * time.Millisecond
	capDelay  = 8 * time.Second
)

// Delay computes the retry delay for the given zero-based attempt number:
// min(250ms·2^attempt, 8s), jittered ±25% (spec.md §4.7).
func Delay(attempt int, rng *rand.Rand) time.Duration {
	d := baseDelay
	for i := 0; i < attempt && d < capDelay; i++ {
		d *= 2
	}
	if d > capDelay {
		d = capDelay
	}

	jitter := 0.75 + rng.Float64()*0.5 // in [0.75, 1.25)
	return time.Duration(float64(d) * jitter)
}
