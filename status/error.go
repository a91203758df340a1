// Package status defines the error taxonomy shared by every layer of the SDK:
// entity parsing, key material, mnemonics, and the request/execution engine.
//
// Every fallible operation in this module returns a plain Go error; most of
// those errors are, or wrap, an *Error so callers can branch on Kind and
// Classification without string matching.
package status

import "fmt"

// Kind identifies the semantic error family, independent of message wording.
type Kind string

const (
	KindTimedOut                       Kind = "TimedOut"
	KindGrpcStatus                     Kind = "GrpcStatus"
	KindFromProtobuf                   Kind = "FromProtobuf"
	KindRequestParse                   Kind = "RequestParse"
	KindTransactionPreCheckStatus      Kind = "TransactionPreCheckStatus"
	KindTransactionNoIdPreCheckStatus Kind = "TransactionNoIdPreCheckStatus"
	KindQueryPreCheckStatus            Kind = "QueryPreCheckStatus"
	KindQueryPaymentPreCheckStatus     Kind = "QueryPaymentPreCheckStatus"
	KindQueryNoPaymentPreCheckStatus   Kind = "QueryNoPaymentPreCheckStatus"
	KindBasicParse                     Kind = "BasicParse"
	KindBadEntityId                    Kind = "BadEntityId"
	KindKeyParse                       Kind = "KeyParse"
	KindKeyDerive                      Kind = "KeyDerive"
	KindSignature                      Kind = "Signature"
	KindSignatureVerify                Kind = "SignatureVerify"
	KindMnemonicParse                  Kind = "MnemonicParse"
	KindMnemonicEntropy                Kind = "MnemonicEntropy"
	KindNoPayerAccountOrTransactionId Kind = "NoPayerAccountOrTransactionId"
	KindMaxQueryPaymentExceeded        Kind = "MaxQueryPaymentExceeded"
	KindNodeAccountUnknown             Kind = "NodeAccountUnknown"
	KindResponseStatusUnrecognized     Kind = "ResponseStatusUnrecognized"
	KindReceiptStatus                  Kind = "ReceiptStatus"
	KindCannotToStringWithChecksum     Kind = "CannotToStringWithChecksum"
	KindCannotPerformTaskWithoutLedger Kind = "CannotPerformTaskWithoutLedgerId"
)

// Classification records whether an error is worth retrying at all, and is
// what IsRetryable reads. The request framework (internal/executor.Run) does
// not consult it: Run retries on the Outcome each attempt reports. Mirrors
// the classification scheme a chain-adapter style SDK uses to decide whether
// a failure is worth retrying at all.
type Classification int

const (
	// NonRetryable errors are permanent: malformed input, terminal pre-checks.
	NonRetryable Classification = iota
	// Retryable errors are transient: busy/throttled nodes, transport hiccups.
	Retryable
	// Terminal marks a classified-but-final node response (pre-check failure,
	// receipt failure) that is not a bug in the request but won't succeed on retry.
	Terminal
)

// Error is the single error type returned throughout the SDK. Fields beyond
// Kind/Message are populated selectively depending on Kind (see the
// constructors below), mirroring the (Code, Message, Classification, Cause)
// shape used by a network-retry-aware client.
type Error struct {
	Kind           Kind
	Message        string
	Classification Classification
	Cause          error

	// Optional context, populated by specific constructors.
	TransactionID interface{ String() string }
	Status        string
	Cost          int64
	Max           int64
	Shard, Realm, Num        uint64
	ExpectedChecksum, ActualChecksum string
	Positions     []int
	Task          string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// IsRetryable reports whether err is a retryable *Error.
func IsRetryable(err error) bool {
	se, ok := err.(*Error)
	return ok && se.Classification == Retryable
}

// New builds a NonRetryable error of the given kind.
func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Classification: NonRetryable, Cause: cause}
}

// NewRetryable builds a Retryable error of the given kind.
func NewRetryable(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Classification: Retryable, Cause: cause}
}

// NewTerminal builds a Terminal (classified, final) error of the given kind.
func NewTerminal(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Classification: Terminal, Cause: cause}
}
