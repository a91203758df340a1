// Package timestamp implements the two small semantic time types the
// request layer needs (spec.md §3): a point in time with nanosecond
// precision and a plain duration in whole seconds. Neither is coupled to a
// monotonic clock.
package timestamp

import (
	"fmt"
	"time"
)

// Timestamp is (seconds, nanos) with nanos < 1e9.
type Timestamp struct {
	Seconds uint64
	Nanos   uint32
}

const nanosPerSecond = 1_000_000_000

// Now returns the current wall-clock time as a Timestamp.
func Now() Timestamp {
	t := time.Now().UTC()
	return Timestamp{Seconds: uint64(t.Unix()), Nanos: uint32(t.Nanosecond())}
}

// PlusNanos returns ts advanced by d nanoseconds (d may be negative), carrying
// into/out of Seconds as needed.
func (ts Timestamp) PlusNanos(d int64) Timestamp {
	total := int64(ts.Seconds)*nanosPerSecond + int64(ts.Nanos) + d
	sec := total / nanosPerSecond
	nanos := total % nanosPerSecond
	if nanos < 0 {
		nanos += nanosPerSecond
		sec--
	}
	return Timestamp{Seconds: uint64(sec), Nanos: uint32(nanos)}
}

// Time converts ts to a time.Time, useful only for display/comparison.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts.Seconds), int64(ts.Nanos)).UTC()
}

// String renders "seconds.nanos", the canonical transaction-id component form.
func (ts Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", ts.Seconds, ts.Nanos)
}

// Equal reports whether ts and other name the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.Seconds == other.Seconds && ts.Nanos == other.Nanos
}

// Duration is a plain count of seconds (spec.md §3).
type Duration struct {
	Seconds uint64
}

// Standard is the default transaction valid duration (120 seconds, spec.md §4.5).
var Standard = Duration{Seconds: 120}
