package mnemonic

import (
	"github.com/ledgerkit/ledgersdk-go/status"
)

// crc8Poly is the CRC-8 polynomial used by the legacy 22-word mnemonic's
// trailing checksum byte.
const crc8Poly = 0x07

// packIndices packs n 11-bit word indices into a big-endian bit stream,
// returning ceil(n*11/8) bytes.
func packIndices(indices []int) []byte {
	totalBits := len(indices) * 11
	out := make([]byte, (totalBits+7)/8)
	bitPos := 0
	for _, idx := range indices {
		for b := 10; b >= 0; b-- {
			if idx&(1<<uint(b)) != 0 {
				out[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

func crc8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ crc8Poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// validateLegacyChecksum packs the 22 word indices into 32 bytes of entropy
// plus a trailing CRC-8 byte and rejects a mismatch (spec.md §4.4).
func validateLegacyChecksum(indices []int) error {
	packed := packIndices(indices)
	if len(packed) < 33 {
		return status.New(status.KindMnemonicParse, "legacy mnemonic packs to fewer than 33 bytes", nil)
	}
	entropy, want := packed[:32], packed[32]
	got := crc8(entropy)
	if got != want {
		return &status.MnemonicParseError{
			ExpectedChecksum: hexByte(want),
			ActualChecksum:   hexByte(got),
		}
	}
	return nil
}

func hexByte(b byte) string {
	const hexDigits = "0123456789abcdef"
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xf]})
}

// LegacyEntropy returns the 32 bytes of entropy packed into a 22-word
// legacy mnemonic, verified against its trailing CRC-8 byte.
func (m Mnemonic) LegacyEntropy() ([]byte, error) {
	if !m.legacy {
		return nil, status.New(status.KindMnemonicEntropy, "not a legacy mnemonic", nil)
	}
	wordlist := bip39WordIndex()
	indices := make([]int, len(m.words))
	for i, w := range m.words {
		indices[i] = wordlist[w]
	}
	if err := validateLegacyChecksum(indices); err != nil {
		return nil, err
	}
	return packIndices(indices)[:32], nil
}
