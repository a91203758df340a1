// Package crypto implements the two private/public key families this SDK
// signs with — Ed25519 and ECDSA-secp256k1 — plus HD derivation, the legacy
// derivation scheme, and EVM-address derivation, per spec.md §4.3.
package crypto

import (
	"encoding/hex"
	"strings"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// Algorithm distinguishes the two key families. An ECDSA key never derives
// via the Ed25519 path, and vice versa.
type Algorithm int

const (
	Ed25519 Algorithm = iota
	EcdsaSecp256k1
)

func (a Algorithm) String() string {
	if a == Ed25519 {
		return "ed25519"
	}
	return "ecdsa-secp256k1"
}

// PrivateKey is a tagged union over the two key families. Its single raw
// field holds the scalar/seed for whichever family Algorithm names. A 32-byte
// ChainCode makes the key derivable (spec.md §4.3 "Derivation").
type PrivateKey struct {
	Algorithm Algorithm
	raw       []byte // 32 bytes, algorithm-specific scalar/seed
	ChainCode []byte // 32 bytes, nil if not derivable
}

// PublicKey is a tagged union over the two key families.
type PublicKey struct {
	Algorithm Algorithm
	raw       []byte // 32 bytes Ed25519, 33-byte compressed secp256k1
	ChainCode []byte // 32 bytes, nil if not derivable
}

// IsDerivable reports whether derive() can succeed on this key.
func (k PrivateKey) IsDerivable() bool { return len(k.ChainCode) == 32 }

// Zero overwrites the key's raw material in place, per spec.md §5's
// resource-discipline note that key bytes should be zeroized on drop where
// the host language permits.
func (k *PrivateKey) Zero() {
	zeroBytes(k.raw)
	zeroBytes(k.ChainCode)
}

// parseHexMaybePrefixed strips an optional "0x"/"0X" prefix and decodes hex,
// case-insensitively, per spec.md §3's string-form rule for keys.
func parseHexMaybePrefixed(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, status.KeyParse("invalid hex key string", err)
	}
	return b, nil
}
