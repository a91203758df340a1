package status

import "fmt"

// TxIDStringer is satisfied by transaction.Id without importing it here
// (status sits below transaction in the dependency graph).
type TxIDStringer interface{ String() string }

// BadEntityId reports a malformed or checksum-mismatched entity ID.
func BadEntityId(shard, realm, num uint64, expected, actual string) *Error {
	msg := fmt.Sprintf("entity id %d.%d.%d checksum mismatch", shard, realm, num)
	if expected == "" {
		msg = fmt.Sprintf("malformed entity id %d.%d.%d", shard, realm, num)
	}
	return &Error{
		Kind: KindBadEntityId, Message: msg, Classification: NonRetryable,
		Shard: shard, Realm: realm, Num: num,
		ExpectedChecksum: expected, ActualChecksum: actual,
	}
}

// KeyParse reports a failure parsing raw/DER/PEM/hex key material.
func KeyParse(detail string, cause error) *Error {
	return New(KindKeyParse, detail, cause)
}

// KeyDerive reports a failure deriving a child key (no chain code, bad index).
func KeyDerive(detail string, cause error) *Error {
	return New(KindKeyDerive, detail, cause)
}

// Signature reports a failure producing a signature.
func Signature(detail string, cause error) *Error {
	return New(KindSignature, detail, cause)
}

// SignatureVerify reports a failed or algorithm-mismatched verification.
func SignatureVerify(detail string) *Error {
	return New(KindSignatureVerify, detail, nil)
}

// MnemonicReason distinguishes the three documented parse-failure shapes.
type MnemonicReason int

const (
	ReasonBadLength MnemonicReason = iota
	ReasonUnknownWords
	ReasonChecksumMismatch
)

// MnemonicParseError aggregates every defect found while parsing a mnemonic,
// instead of failing on the first (spec.md §9 "Exceptions for control flow
// inside parsers" design note: MnemonicParse should aggregate, not short-circuit).
type MnemonicParseError struct {
	BadLength        *int
	UnknownWords     []int
	ExpectedChecksum string
	ActualChecksum   string
	Fragment         string
}

func (e *MnemonicParseError) Error() string {
	msg := "invalid mnemonic"
	if e.BadLength != nil {
		msg = fmt.Sprintf("%s: bad word count %d", msg, *e.BadLength)
	}
	if len(e.UnknownWords) > 0 {
		msg = fmt.Sprintf("%s: unknown words at positions %v", msg, e.UnknownWords)
	}
	if e.ExpectedChecksum != "" || e.ActualChecksum != "" {
		msg = fmt.Sprintf("%s: checksum mismatch (expected %s, got %s)", msg, e.ExpectedChecksum, e.ActualChecksum)
	}
	return msg
}

func (e *MnemonicParseError) HasDefects() bool {
	return e.BadLength != nil || len(e.UnknownWords) > 0 || e.ExpectedChecksum != "" || e.ActualChecksum != ""
}

// MnemonicEntropy reports a failure converting entropy to/from a private key
// (e.g. a non-empty passphrase supplied to the legacy 22-word path).
func MnemonicEntropy(detail string) *Error {
	return New(KindMnemonicEntropy, detail, nil)
}

// NoPayerAccountOrTransactionId reports a frozen-transaction precondition failure.
func NoPayerAccountOrTransactionId() *Error {
	return New(KindNoPayerAccountOrTransactionId, "no payer account or transaction id set and no operator on client", nil)
}

// MaxQueryPaymentExceeded reports a query whose cost exceeds the configured max.
func MaxQueryPaymentExceeded(cost, max int64) *Error {
	e := New(KindMaxQueryPaymentExceeded, fmt.Sprintf("query cost %d exceeds max %d", cost, max), nil)
	e.Cost, e.Max = cost, max
	return e
}

// NodeAccountUnknown reports a freeze attempted against an empty client node list.
func NodeAccountUnknown() *Error {
	return New(KindNodeAccountUnknown, "client has no known healthy node accounts", nil)
}

// ResponseStatusUnrecognized reports a node response status code this SDK
// version does not know how to classify.
func ResponseStatusUnrecognized(code string) *Error {
	return New(KindResponseStatusUnrecognized, fmt.Sprintf("unrecognized response status %q", code), nil)
}

// ReceiptStatus reports a terminal non-success receipt.
func ReceiptStatus(txStatus string, txID TxIDStringer) *Error {
	e := NewTerminal(KindReceiptStatus, fmt.Sprintf("receipt status %s", txStatus), nil)
	e.Status = txStatus
	if txID != nil {
		e.TransactionID = txID
	}
	return e
}

// TransactionPreCheckStatus reports a terminal pre-check failure carrying a transaction ID.
func TransactionPreCheckStatus(txStatus string, txID TxIDStringer) *Error {
	e := NewTerminal(KindTransactionPreCheckStatus, fmt.Sprintf("transaction pre-check failed: %s", txStatus), nil)
	e.Status = txStatus
	e.TransactionID = txID
	return e
}

// TransactionNoIdPreCheckStatus reports a terminal pre-check failure before a
// transaction ID could be assigned.
func TransactionNoIdPreCheckStatus(txStatus string) *Error {
	e := NewTerminal(KindTransactionNoIdPreCheckStatus, fmt.Sprintf("transaction pre-check failed: %s", txStatus), nil)
	e.Status = txStatus
	return e
}

// QueryPreCheckStatus reports a terminal query pre-check failure.
func QueryPreCheckStatus(txStatus string) *Error {
	e := NewTerminal(KindQueryPreCheckStatus, fmt.Sprintf("query pre-check failed: %s", txStatus), nil)
	e.Status = txStatus
	return e
}

// CannotToStringWithChecksum reports an attempt to render toString() with a
// checksum attached when the operation forbids it.
func CannotToStringWithChecksum() *Error {
	return New(KindCannotToStringWithChecksum, "cannot render entity id to string with a checksum here", nil)
}

// CannotPerformTaskWithoutLedgerId reports a checksum-dependent operation
// attempted without a bound ledger id.
func CannotPerformTaskWithoutLedgerId(task string) *Error {
	e := New(KindCannotPerformTaskWithoutLedger, fmt.Sprintf("cannot %s without a ledger id", task), nil)
	e.Task = task
	return e
}

// TimedOut reports overall-deadline exhaustion, wrapping the last underlying error.
func TimedOut(cause error) *Error {
	return NewRetryable(KindTimedOut, "request timed out", cause)
}
