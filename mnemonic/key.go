package mnemonic

import (
	"github.com/anyproto/go-slip10"

	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// ledgerEd25519Path is the fixed SLIP-10 derivation path the 12/24-word
// mnemonic-to-private-key conversion uses to reach the account key
// (spec.md §4.4: "the derivation path applied to reach the account key is
// fixed by the ledger convention").
const ledgerEd25519Path = "m/44'/3030'/0'/0'"

// ToPrivateKeyEd25519 derives the account Ed25519 private key from a 12/24
// word mnemonic, per spec.md §4.4's 12/24-word path: a SLIP-10 derivation
// over the BIP-39 seed along the fixed ledger account path.
func (m Mnemonic) ToPrivateKeyEd25519(passphrase string) (crypto.PrivateKey, error) {
	if m.legacy {
		return crypto.PrivateKey{}, status.New(status.KindMnemonicEntropy, "use ToPrivateKeyLegacy for a 22-word mnemonic", nil)
	}
	seed := m.Seed(passphrase)
	node, err := slip10.DeriveForPath(ledgerEd25519Path, seed)
	if err != nil {
		return crypto.PrivateKey{}, status.New(status.KindKeyDerive, "slip-10 derivation failed", err)
	}
	_, priv := node.Keypair()
	return crypto.Ed25519PrivateKeyFromBytes(priv.Seed())
}

// ToPrivateKeyLegacy derives the deterministic Ed25519 private key a
// 22-word legacy mnemonic seeds directly, per spec.md §4.4. A non-empty
// passphrase is rejected with MnemonicEntropy.
func (m Mnemonic) ToPrivateKeyLegacy(passphrase string) (crypto.PrivateKey, error) {
	if !m.legacy {
		return crypto.PrivateKey{}, status.New(status.KindMnemonicEntropy, "not a legacy mnemonic", nil)
	}
	if passphrase != "" {
		return crypto.PrivateKey{}, status.MnemonicEntropy("legacy mnemonics do not accept a passphrase")
	}
	entropy, err := m.LegacyEntropy()
	if err != nil {
		return crypto.PrivateKey{}, err
	}
	return crypto.LegacyDerive(entropy, 0)
}
