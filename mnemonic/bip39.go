package mnemonic

import (
	"crypto/sha512"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// Seed derives the 64-byte BIP-39 seed: PBKDF2-HMAC-SHA512 over the
// space-joined word list, salted with "mnemonic"+passphrase, 2048 rounds
// (spec.md §4.4).
func (m Mnemonic) Seed(passphrase string) []byte {
	password := strings.Join(m.words, " ")
	salt := "mnemonic" + passphrase
	return pbkdf2.Key([]byte(password), []byte(salt), 2048, 64, sha512.New)
}

// Entropy recovers the entropy bytes encoded by a 12/24-word mnemonic (not
// meaningful for the 22-word legacy variant, whose entropy is recovered via
// LegacyEntropy instead).
func (m Mnemonic) Entropy() ([]byte, error) {
	return bip39.EntropyFromMnemonic(m.String())
}

// FromEntropy builds a 12/24-word Mnemonic from 16 or 32 bytes of entropy,
// packing 11-bit word indices big-endian with a trailing SHA-256-derived
// checksum (spec.md §4.4).
func FromEntropy(entropy []byte) (Mnemonic, error) {
	s, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Mnemonic{}, err
	}
	return Mnemonic{words: strings.Fields(s), legacy: false}, nil
}
