// Package executor implements the generic request execution loop shared by
// transactions and queries (spec.md §4.7): node selection, attempt,
// classification, retry with backoff, and an overall deadline.
package executor

import (
	"context"
	"math/rand"
	"time"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// Picker selects nodes to attempt against and records the outcome of each
// attempt. Implementations own the node list and health state; Run only
// mutates it through this short, lock-scoped interface (spec.md §5: "no lock
// is held across I/O").
type Picker interface {
	// Pick returns the next node index to try. ok is false when no node is
	// currently available (e.g. every node is mid-backoff).
	Pick() (idx int, ok bool)
	RecordSuccess(idx int)
	RecordFailure(idx int, backoff time.Duration)
}

// AttemptFunc performs one RPC attempt against the node at idx and
// classifies the result.
type AttemptFunc func(ctx context.Context, idx int) (Outcome, error)

// Run drives AttemptFunc against Picker until it succeeds, a terminal
// failure is classified, or deadline elapses.
func Run(ctx context.Context, deadline time.Duration, picker Picker, attempt AttemptFunc) error {
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var lastErr error

	for tries := 0; ; tries++ {
		select {
		case <-ctx.Done():
			return status.TimedOut(lastErr)
		default:
		}

		idx, ok := picker.Pick()
		if !ok {
			return status.NodeAccountUnknown()
		}

		outcome, err := attempt(ctx, idx)
		switch outcome {
		case Ok:
			picker.RecordSuccess(idx)
			return nil
		case Terminal:
			return err
		case Retryable, TransportError:
			lastErr = err
			d := Delay(tries, rng)
			picker.RecordFailure(idx, d)
			select {
			case <-ctx.Done():
				return status.TimedOut(lastErr)
			case <-time.After(d):
			}
		}
	}
}
