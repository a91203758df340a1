package transaction

import (
	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// Signable is satisfied by every concrete transaction kind: it exposes the
// per-node bodies a private key signs over, and accepts the resulting
// signatures back.
type Signable interface {
	IsFrozen() bool
	nodeBodies() []*nodeTx
}

// SignWith signs every frozen node body with key, skipping any node this
// public key has already signed (spec.md §9: duplicate signers by public
// key, first wins). It fails if the transaction is still Building.
func SignWith(tx Signable, key crypto.PrivateKey) error {
	if !tx.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: cannot sign before freezing", nil)
	}
	pub := key.PublicKey().RawBytes()
	for _, nt := range tx.nodeBodies() {
		sig, err := key.Sign(nt.bodyBytes)
		if err != nil {
			return status.Signature("transaction: sign failed", err)
		}
		nt.addSignature(pub, sig)
	}
	return nil
}

// SignatureCount returns how many distinct signers have signed the first
// node body (every node body carries the same signer set).
func SignatureCount(tx Signable) int {
	bodies := tx.nodeBodies()
	if len(bodies) == 0 {
		return 0
	}
	return len(bodies[0].sigKeys)
}
