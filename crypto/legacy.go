package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
)

// LegacyDerive implements the legacy (pre-HD) derivation scheme named in
// spec.md §4.3: a sign-extended 64-bit index is HMAC'd against the seed
// bytes to produce a new, non-derivable Ed25519 private key. Unlike Derive,
// this scheme does not require (or propagate) a chain code, and operates
// directly on seed bytes rather than an existing key's scalar.
func LegacyDerive(seed []byte, index int64) (PrivateKey, error) {
	indexBytes := legacyIndexBytes(index)

	mac := hmac.New(sha512.New384, seed)
	mac.Write(indexBytes)
	digest := mac.Sum(nil)

	raw := make([]byte, 32)
	copy(raw, digest[:32])
	return PrivateKey{Algorithm: Ed25519, raw: raw}, nil
}

// legacyIndexBytes encodes index as 8 big-endian bytes: the low 32 bits,
// preceded by 0xFFFFFFFF for a negative index and by zeros otherwise. The
// single exception 0xFFFFFFFFFF (spec.md §8.6) is encoded as its full 64-bit
// value, 00 00 00 FF FF FF FF FF, so it does not collide with index -1.
func legacyIndexBytes(index int64) []byte {
	buf := make([]byte, 8)
	if index == 0xFFFFFFFFFF {
		binary.BigEndian.PutUint64(buf, uint64(index))
		return buf
	}
	if index < 0 {
		for i := 0; i < 4; i++ {
			buf[i] = 0xFF
		}
	}
	putInt32BE(buf[4:], int32(index))
	return buf
}

func putInt32BE(b []byte, v int32) {
	u := uint32(v)
	b[0] = byte(u >> 24)
	b[1] = byte(u >> 16)
	b[2] = byte(u >> 8)
	b[3] = byte(u)
}
