package obslog

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptWritesOneJSONLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Attempt("0.0.3", "submitTransaction", "Ok", 12*time.Millisecond, nil)
	l.Attempt("0.0.4", "submitTransaction", "Busy", 8*time.Millisecond, assertError{})

	lines := bytesSplitLines(buf.Bytes())
	require.Len(t, lines, 2)

	var first Entry
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "0.0.3", first.Node)
	assert.Equal(t, "Ok", first.Status)
	assert.Empty(t, first.Error)

	var second Entry
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "warn", second.Level)
	assert.NotEmpty(t, second.Error)
}

type assertError struct{}

func (assertError) Error() string { return "boom" }

func bytesSplitLines(b []byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == '\n' {
			if i > start {
				out = append(out, b[start:i])
			}
			start = i + 1
		}
	}
	return out
}
