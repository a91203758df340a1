// Package wire is the request/response substrate for transaction and query
// execution. The real wire schema (a binary protobuf message set) is an
// external collaborator per spec.md §1 ("the wire schema definitions
// themselves... assumed given"); this package supplies a concrete,
// self-consistent stand-in built on the RLP codec (the same substrate
// SPEC_FULL.md §4.8 chose for entity/key/transaction ToBytes), enough to
// drive the classification rules spec.md §4.7 actually specifies and to
// exercise them end to end in tests.
package wire

import "github.com/ledgerkit/ledgersdk-go/internal/executor"

// Status names the documented pre-check/receipt outcomes (spec.md §4.7).
type Status string

const (
	StatusOk                 Status = "Ok"
	StatusBusy               Status = "Busy"
	StatusThrottled          Status = "Throttled"
	StatusPlatformNotActive  Status = "PlatformNotActive"
	StatusTransactionExpired Status = "TransactionExpired"
	StatusInvalidTransaction Status = "InvalidTransaction"
	StatusReceiptUnknown     Status = "Unknown"
	StatusReceiptSuccess     Status = "Success"
)

// ClassifyPreCheck maps a transaction/query pre-check status to the retry
// outcome spec.md §4.7 assigns it.
func ClassifyPreCheck(s Status) executor.Outcome {
	switch s {
	case StatusOk:
		return executor.Ok
	case StatusBusy, StatusThrottled, StatusPlatformNotActive, StatusTransactionExpired:
		return executor.Retryable
	default:
		return executor.Terminal
	}
}

// ClassifyReceipt maps a receipt poll's status to the retry outcome
// receipt polling uses: pending receipts retry, everything else is terminal.
func ClassifyReceipt(s Status) executor.Outcome {
	switch s {
	case StatusReceiptUnknown:
		return executor.Retryable
	default:
		return executor.Terminal
	}
}
