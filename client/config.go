package client

import (
	"time"

	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/hbar"
)

// Operator is the (account, signer) pair a client uses by default to pay
// for and sign requests (GLOSSARY "Operator").
type Operator struct {
	AccountId entity.AccountId
	Key       crypto.PrivateKey
}

// Config is the plain, JSON-shaped settings struct a Client is built from,
// the same shape as the teacher's internal/app.AppConfig: constructed
// programmatically or decoded from a JSON document, no env/CLI loading.
type Config struct {
	Network NetworkView `json:"network"`

	Operator *Operator `json:"-"` // key material never round-trips through JSON

	DefaultMaxTransactionFee hbar.Amount   `json:"-"`
	DefaultMaxQueryPayment   hbar.Amount   `json:"-"`
	RequestTimeout           time.Duration `json:"requestTimeout"`
}

const defaultRequestTimeout = 2 * time.Minute

// ForMainnet returns the mainnet preset network view (ledger-id 0x00). The
// preset carries no nodes; callers add their own endpoints.
func ForMainnet() NetworkView {
	return NetworkView{LedgerID: []byte{0x00}}
}

// ForTestnet returns the testnet preset network view (ledger-id 0x01).
func ForTestnet() NetworkView {
	return NetworkView{LedgerID: []byte{0x01}}
}

// ForPreviewnet returns the previewnet preset network view (ledger-id 0x02).
func ForPreviewnet() NetworkView {
	return NetworkView{LedgerID: []byte{0x02}}
}

// NewConfig builds a Config for view with the documented defaults: a 2
// minute per-request timeout and no max-fee/payment caps set (zero Hbar
// means "unset" to callers, who should set an explicit cap before sending
// real value).
func NewConfig(view NetworkView) Config {
	return Config{
		Network:                  view,
		DefaultMaxTransactionFee: hbar.Zero,
		DefaultMaxQueryPayment:   hbar.Zero,
		RequestTimeout:           defaultRequestTimeout,
	}
}
