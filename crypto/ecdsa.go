package crypto

import (
	"crypto/sha256"
	"encoding/asn1"

	"github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// secp256k1OID is 1.3.132.0.10, the ANSI X9.62 "named curve" identifier for
// secp256k1; it is the algorithm identifier this SDK's DER encoding uses for
// both private and public ECDSA keys, matching the fixed vector in
// spec.md §8 scenario 4.
var secp256k1OID = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

// ecPublicKeyOID is 1.2.840.10045.2.1, the standard "id-ecPublicKey" OID used
// in a SubjectPublicKeyInfo's outer AlgorithmIdentifier.
var ecPublicKeyOID = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

// GenerateEcdsa produces a fresh secp256k1 private key: a uniformly random
// scalar in [1, n-1], per spec.md §4.3 "Generation".
func GenerateEcdsa() (PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return PrivateKey{}, status.New(status.KindKeyParse, "failed to generate ecdsa key", err)
	}
	return PrivateKey{Algorithm: EcdsaSecp256k1, raw: key.Serialize()}, nil
}

// EcdsaPrivateKeyFromBytes parses a raw 32-byte secp256k1 scalar.
func EcdsaPrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != 32 {
		return PrivateKey{}, status.KeyParse("ecdsa private key must be 32 bytes", nil)
	}
	raw := make([]byte, 32)
	copy(raw, b)
	return PrivateKey{Algorithm: EcdsaSecp256k1, raw: raw}, nil
}

// EcdsaPublicKeyFromBytes parses a compressed (33-byte) or uncompressed
// (65-byte) secp256k1 public key.
func EcdsaPublicKeyFromBytes(b []byte) (PublicKey, error) {
	switch len(b) {
	case 33, 65:
		pub, err := btcec.ParsePubKey(b)
		if err != nil {
			return PublicKey{}, status.KeyParse("invalid ecdsa public key", err)
		}
		return PublicKey{Algorithm: EcdsaSecp256k1, raw: pub.SerializeCompressed()}, nil
	default:
		return PublicKey{}, status.KeyParse("ecdsa public key must be 33 or 65 bytes", nil)
	}
}

func (k PrivateKey) btcecKey() *btcec.PrivateKey {
	return btcec.PrivKeyFromBytes(k.raw)
}

func (k PrivateKey) ecdsaPublicKey() PublicKey {
	priv := k.btcecKey()
	pub := priv.PubKey()
	return PublicKey{Algorithm: EcdsaSecp256k1, raw: pub.SerializeCompressed(), ChainCode: k.ChainCode}
}

// signEcdsa signs sha256(message) with RFC 6979 deterministic nonce
// generation, low-S normalized, returning the 64-byte r‖s encoding named in
// spec.md §4.3.
func (k PrivateKey) signEcdsa(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	ecdsaPriv, err := ethcrypto.ToECDSA(k.raw)
	if err != nil {
		return nil, status.Signature("invalid ecdsa key material", err)
	}
	sig, err := ethcrypto.Sign(digest[:], ecdsaPriv)
	if err != nil {
		return nil, status.Signature("ecdsa sign failed", err)
	}
	return sig[:64], nil // drop the recovery-id byte; spec wants plain r‖s
}

func (pub PublicKey) verifyEcdsa(message, sig []byte) error {
	if len(sig) != 64 {
		return status.SignatureVerify("invalid ecdsa signature length")
	}
	digest := sha256.Sum256(message)
	if !ethcrypto.VerifySignature(pub.raw, digest[:], sig) {
		return status.SignatureVerify("ecdsa signature verification failed")
	}
	return nil
}

// ecdsaPrivateKeyInfo mirrors the PKCS8-style double-wrapped OCTET STRING
// this SDK's fixed DER vectors use (see spec.md §8 scenario 4): the outer
// OCTET STRING's content is itself "04 20 <32-byte scalar>", not a full SEC1
// ECPrivateKey SEQUENCE.
type ecdsaAlgorithmIdentifier struct {
	Curve asn1.ObjectIdentifier
}

type ecdsaPrivateKeyInfo struct {
	Version    int
	Algorithm  ecdsaAlgorithmIdentifier
	PrivateKey []byte
}

func (k PrivateKey) ecdsaPrivateToDER() ([]byte, error) {
	inner, err := asn1.Marshal(k.raw)
	if err != nil {
		return nil, status.KeyParse("failed to marshal ecdsa private key", err)
	}
	der, err := asn1.Marshal(ecdsaPrivateKeyInfo{
		Version:    0,
		Algorithm:  ecdsaAlgorithmIdentifier{Curve: secp256k1OID},
		PrivateKey: inner,
	})
	if err != nil {
		return nil, status.KeyParse("failed to marshal ecdsa private key", err)
	}
	return der, nil
}

type ecPublicKeyAlgorithmIdentifier struct {
	Algorithm asn1.ObjectIdentifier
	Curve     asn1.ObjectIdentifier
}

type ecdsaPublicKeyInfo struct {
	Algorithm ecPublicKeyAlgorithmIdentifier
	PublicKey asn1.BitString
}

func (pub PublicKey) ecdsaPublicToDER() ([]byte, error) {
	der, err := asn1.Marshal(ecdsaPublicKeyInfo{
		Algorithm: ecPublicKeyAlgorithmIdentifier{Algorithm: ecPublicKeyOID, Curve: secp256k1OID},
		PublicKey: asn1.BitString{Bytes: pub.raw, BitLength: len(pub.raw) * 8},
	})
	if err != nil {
		return nil, status.KeyParse("failed to marshal ecdsa public key", err)
	}
	return der, nil
}

func parseEcdsaPrivateFromDER(der []byte) (PrivateKey, error) {
	var info ecdsaPrivateKeyInfo
	if _, err := asn1.Unmarshal(der, &info); err != nil {
		return PrivateKey{}, status.KeyParse("malformed ecdsa private key DER", err)
	}
	var raw []byte
	if _, err := asn1.Unmarshal(info.PrivateKey, &raw); err != nil {
		return PrivateKey{}, status.KeyParse("malformed ecdsa private key DER", err)
	}
	return EcdsaPrivateKeyFromBytes(raw)
}

func parseEcdsaPublicFromDER(der []byte) (PublicKey, error) {
	var info ecdsaPublicKeyInfo
	if _, err := asn1.Unmarshal(der, &info); err != nil {
		return PublicKey{}, status.KeyParse("malformed ecdsa public key DER", err)
	}
	return EcdsaPublicKeyFromBytes(info.PublicKey.Bytes)
}

// EvmAddress returns the 20-byte EVM address derived from pub: Keccak-256 of
// the uncompressed 64-byte X‖Y point, rightmost 20 bytes (spec.md §4.3).
func (pub PublicKey) EvmAddress() ([]byte, error) {
	if pub.Algorithm != EcdsaSecp256k1 {
		return nil, status.New(status.KindKeyParse, "evm address requires an ecdsa public key", nil)
	}
	parsed, err := btcec.ParsePubKey(pub.raw)
	if err != nil {
		return nil, status.KeyParse("invalid ecdsa public key", err)
	}
	uncompressed := parsed.SerializeUncompressed() // 0x04 || X || Y
	hash := ethcrypto.Keccak256(uncompressed[1:])
	return hash[12:], nil
}

// EvmAddressHex returns the 0x-prefixed lowercase hex form.
func (pub PublicKey) EvmAddressHex() (string, error) {
	addr, err := pub.EvmAddress()
	if err != nil {
		return "", err
	}
	return "0x" + hexLower(addr), nil
}
