package wire

import (
	"testing"

	"github.com/ledgerkit/ledgersdk-go/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRoundTrip(t *testing.T) {
	r := Response{Status: StatusOk, TransactionHash: []byte{1, 2, 3}, Cost: 12345, ReceiptStatus: StatusReceiptUnknown}
	decoded, err := DecodeResponse(r.Encode())
	require.NoError(t, err)
	assert.Equal(t, r, decoded)
}

func TestClassifyPreCheck(t *testing.T) {
	assert.Equal(t, executor.Ok, ClassifyPreCheck(StatusOk))
	assert.Equal(t, executor.Retryable, ClassifyPreCheck(StatusBusy))
	assert.Equal(t, executor.Retryable, ClassifyPreCheck(StatusThrottled))
	assert.Equal(t, executor.Terminal, ClassifyPreCheck(StatusInvalidTransaction))
}

func TestClassifyReceipt(t *testing.T) {
	assert.Equal(t, executor.Retryable, ClassifyReceipt(StatusReceiptUnknown))
	assert.Equal(t, executor.Terminal, ClassifyReceipt(StatusReceiptSuccess))
}
