// Package mnemonic implements BIP-39 12/24-word and legacy 22-word mnemonic
// phrases: entropy/word conversion, checksum validation, seed derivation,
// and the mnemonic-to-private-key paths named in spec.md §4.4.
package mnemonic

import (
	"strings"

	"github.com/ledgerkit/ledgersdk-go/status"
	"github.com/tyler-smith/go-bip39"
)

// Mnemonic is an ordered sequence of 12, 22 (legacy), or 24 lowercase
// English BIP-39 words.
type Mnemonic struct {
	words []string
	legacy bool
}

// Words returns a copy of the mnemonic's word list.
func (m Mnemonic) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// IsLegacy reports whether this is the 22-word legacy variant.
func (m Mnemonic) IsLegacy() bool { return m.legacy }

// String renders the canonical strict form: lowercase words separated by a
// single space, no leading/trailing whitespace (spec.md §6).
func (m Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

var cachedWordIndex map[string]int

func bip39WordIndex() map[string]int {
	if cachedWordIndex != nil {
		return cachedWordIndex
	}
	wordlist := bip39.GetWordList()
	idx := make(map[string]int, len(wordlist))
	for i, w := range wordlist {
		idx[w] = i
	}
	cachedWordIndex = idx
	return idx
}

// FromString parses s, tolerant of multiple internal whitespace and mixed
// case, per spec.md §6. Parse failures aggregate every defect found rather
// than stopping at the first (spec.md §9).
func FromString(s string) (Mnemonic, error) {
	fields := strings.Fields(strings.ToLower(s))
	n := len(fields)

	parseErr := &status.MnemonicParseError{}
	if n != 12 && n != 22 && n != 24 {
		bad := n
		parseErr.BadLength = &bad
	}

	var unknown []int
	wordIndex := bip39WordIndex()
	indices := make([]int, n)
	for i, w := range fields {
		idx, ok := wordIndex[w]
		if !ok {
			unknown = append(unknown, i)
			indices[i] = -1
			continue
		}
		indices[i] = idx
	}
	if len(unknown) > 0 {
		parseErr.UnknownWords = unknown
	}

	if parseErr.HasDefects() {
		parseErr.Fragment = strings.Join(fields, " ")
		return Mnemonic{}, parseErr
	}

	if n == 22 {
		if err := validateLegacyChecksum(indices); err != nil {
			return Mnemonic{}, err
		}
		return Mnemonic{words: fields, legacy: true}, nil
	}

	entropy, err := bip39.EntropyFromMnemonic(strings.Join(fields, " "))
	if err != nil {
		return Mnemonic{}, &status.MnemonicParseError{
			ExpectedChecksum: "valid",
			ActualChecksum:   "mismatch",
			Fragment:         strings.Join(fields, " "),
		}
	}
	_ = entropy
	return Mnemonic{words: fields, legacy: false}, nil
}
