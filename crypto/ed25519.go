package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// GenerateEd25519 produces a fresh Ed25519 private key from 32 random seed
// bytes, per spec.md §4.3 "Generation".
func GenerateEd25519() (PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, status.New(status.KindKeyParse, "failed to generate ed25519 key", err)
	}
	seed := priv.Seed()
	raw := make([]byte, len(seed))
	copy(raw, seed)
	return PrivateKey{Algorithm: Ed25519, raw: raw}, nil
}

// Ed25519PrivateKeyFromBytes parses a raw 32-byte Ed25519 seed.
func Ed25519PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != 32 {
		return PrivateKey{}, status.KeyParse("ed25519 private key must be 32 bytes", nil)
	}
	raw := make([]byte, 32)
	copy(raw, b)
	return PrivateKey{Algorithm: Ed25519, raw: raw}, nil
}

// Ed25519PublicKeyFromBytes parses a raw 32-byte Ed25519 public key.
func Ed25519PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != 32 {
		return PublicKey{}, status.KeyParse("ed25519 public key must be 32 bytes", nil)
	}
	raw := make([]byte, 32)
	copy(raw, b)
	return PublicKey{Algorithm: Ed25519, raw: raw}, nil
}

func (k PrivateKey) ed25519Std() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(k.raw)
}

// PublicKey derives the public key belonging to k.
func (k PrivateKey) PublicKey() PublicKey {
	if k.Algorithm == Ed25519 {
		std := k.ed25519Std()
		pub := std.Public().(ed25519.PublicKey)
		raw := make([]byte, len(pub))
		copy(raw, pub)
		return PublicKey{Algorithm: Ed25519, raw: raw, ChainCode: k.ChainCode}
	}
	return k.ecdsaPublicKey()
}

// Sign signs message. Ed25519 signing is deterministic per RFC 8032; ECDSA
// signing follows RFC 6979 over SHA-256(message) (see ecdsa.go).
func (k PrivateKey) Sign(message []byte) ([]byte, error) {
	if k.Algorithm == Ed25519 {
		return ed25519.Sign(k.ed25519Std(), message), nil
	}
	return k.signEcdsa(message)
}

// Verify checks sig over message against pub. Fails with SignatureVerify on
// algorithm mismatch or an invalid signature.
func (pub PublicKey) Verify(message, sig []byte) error {
	if pub.Algorithm == Ed25519 {
		if len(sig) != ed25519.SignatureSize {
			return status.SignatureVerify("invalid ed25519 signature length")
		}
		if !ed25519.Verify(ed25519.PublicKey(pub.raw), message, sig) {
			return status.SignatureVerify("ed25519 signature verification failed")
		}
		return nil
	}
	return pub.verifyEcdsa(message, sig)
}

// RawBytes returns the key's raw encoding: 32 bytes for Ed25519 (seed for
// private, point for public), 33-byte compressed point for secp256k1 public,
// 32-byte scalar for secp256k1 private.
func (k PrivateKey) RawBytes() []byte {
	out := make([]byte, len(k.raw))
	copy(out, k.raw)
	return out
}

func (pub PublicKey) RawBytes() []byte {
	out := make([]byte, len(pub.raw))
	copy(out, pub.raw)
	return out
}

// ToDER renders the PKCS#8-wrapped (private) or SubjectPublicKeyInfo
// (public) DER encoding, using the standard library's Ed25519 support or the
// hand-rolled secp256k1 ASN.1 shape in ecdsa.go.
func (k PrivateKey) ToDER() ([]byte, error) {
	if k.Algorithm == Ed25519 {
		der, err := x509.MarshalPKCS8PrivateKey(k.ed25519Std())
		if err != nil {
			return nil, status.KeyParse("failed to marshal ed25519 private key", err)
		}
		return der, nil
	}
	return k.ecdsaPrivateToDER()
}

func (pub PublicKey) ToDER() ([]byte, error) {
	if pub.Algorithm == Ed25519 {
		der, err := x509.MarshalPKIXPublicKey(ed25519.PublicKey(pub.raw))
		if err != nil {
			return nil, status.KeyParse("failed to marshal ed25519 public key", err)
		}
		return der, nil
	}
	return pub.ecdsaPublicToDER()
}

// ToPEM renders an unencrypted "PRIVATE KEY" PEM block.
func (k PrivateKey) ToPEM() (string, error) {
	der, err := k.ToDER()
	if err != nil {
		return "", err
	}
	block := &pem.Block{Type: "PRIVATE KEY", Bytes: der}
	return string(pem.EncodeToMemory(block)), nil
}

// ToStringDER renders the DER encoding as lowercase hex (spec.md §3's string
// form for keys).
func (k PrivateKey) ToStringDER() (string, error) {
	der, err := k.ToDER()
	if err != nil {
		return "", err
	}
	return hexLower(der), nil
}

func (pub PublicKey) ToStringDER() (string, error) {
	der, err := pub.ToDER()
	if err != nil {
		return "", err
	}
	return hexLower(der), nil
}
