package mnemonic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStringToStringRoundTrip(t *testing.T) {
	entropy := make([]byte, 16)
	m, err := FromEntropy(entropy)
	require.NoError(t, err)

	parsed, err := FromString(m.String())
	require.NoError(t, err)
	assert.Equal(t, m.String(), parsed.String())
}

func TestFromStringTolerantOfCaseAndWhitespace(t *testing.T) {
	entropy := make([]byte, 16)
	m, err := FromEntropy(entropy)
	require.NoError(t, err)

	messy := "  " + strings.ToUpper(m.words[0]) + "   " + strings.Join(m.words[1:], "  ") + "  "
	parsed, err := FromString(messy)
	require.NoError(t, err)
	assert.Equal(t, m.String(), parsed.String())
}

func TestFromStringRejectsBadLength(t *testing.T) {
	_, err := FromString("abandon abandon abandon")
	require.Error(t, err)
	perr, ok := err.(interface{ HasDefects() bool })
	require.True(t, ok)
	assert.True(t, perr.HasDefects())
}

func TestFromStringRejectsUnknownWords(t *testing.T) {
	entropy := make([]byte, 16)
	m, err := FromEntropy(entropy)
	require.NoError(t, err)
	words := m.Words()
	words[3] = "notarealbip39word"

	_, err = FromString(strings.Join(words, " "))
	assert.Error(t, err)
}

func TestSeedDeterministic(t *testing.T) {
	entropy := make([]byte, 16)
	m, err := FromEntropy(entropy)
	require.NoError(t, err)

	a := m.Seed("")
	b := m.Seed("")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	c := m.Seed("passphrase")
	assert.NotEqual(t, a, c)
}

func TestToPrivateKeyEd25519Deterministic(t *testing.T) {
	entropy := make([]byte, 16)
	m, err := FromEntropy(entropy)
	require.NoError(t, err)

	a, err := m.ToPrivateKeyEd25519("")
	require.NoError(t, err)
	b, err := m.ToPrivateKeyEd25519("")
	require.NoError(t, err)
	assert.Equal(t, a.RawBytes(), b.RawBytes())
}

// TestLegacyMnemonicParsesAndValidates reproduces spec.md §8 scenario 6: the
// fixed legacy mnemonic derives the exact pinned private key.
func TestLegacyMnemonicParsesAndValidates(t *testing.T) {
	phrase := "jolly kidnap tom lawn drunk chick optic lust mutter mole bride galley dense member sage neural widow decide curb aboard margin manure"
	m, err := FromString(phrase)
	require.NoError(t, err)
	assert.True(t, m.IsLegacy())
	assert.Equal(t, phrase, m.String())

	entropy, err := m.LegacyEntropy()
	require.NoError(t, err)
	assert.Len(t, entropy, 32)

	key, err := m.ToPrivateKeyLegacy("")
	require.NoError(t, err)
	der, err := key.ToStringDER()
	require.NoError(t, err)
	assert.Equal(t, "302e020100300506032b65700422042000c2f59212cb3417f0ee0d38e7bd876810d04f2dd2cb5c2d8f26ff406573f2bd", der)
}

func TestLegacyRejectsPassphrase(t *testing.T) {
	phrase := "jolly kidnap tom lawn drunk chick optic lust mutter mole bride galley dense member sage neural widow decide curb aboard margin manure"
	m, err := FromString(phrase)
	require.NoError(t, err)

	_, err = m.ToPrivateKeyLegacy("nonempty")
	assert.Error(t, err)
}
