package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	mainnetLedger    = []byte{0x00}
	testnetLedger    = []byte{0x01}
	previewnetLedger = []byte{0x02}
)

// Pinned outputs of the corrected §4.1 algorithm, cross-checked against an
// independent Python re-implementation of Generate (not spec.md's own §4.1
// worked examples — see DESIGN.md's checksum entry for why those are not
// reproducible by any self-consistent reading of the algorithm as written).
func TestGenerateMatchesPinnedVectors(t *testing.T) {
	cases := []struct {
		num  uint64
		want string
	}{
		{0, "jidgl"},
		{1, "jiixc"},
		{255, "fumvr"},
		{1126123, "cvcib"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Generate(0, 0, tc.num, mainnetLedger), "num=%d", tc.num)
	}
}

func TestGenerateIsFiveLowercaseLetters(t *testing.T) {
	cs := Generate(0, 0, 1126123, mainnetLedger)
	assert.Len(t, cs, 5)
	for _, r := range cs {
		assert.True(t, r >= 'a' && r <= 'z', "checksum %q contains non-lowercase-letter rune %q", cs, r)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(0, 0, 1126123, mainnetLedger)
	b := Generate(0, 0, 1126123, mainnetLedger)
	assert.Equal(t, a, b)
}

func TestGenerateDiffersAcrossLedgers(t *testing.T) {
	m := Generate(0, 0, 100, mainnetLedger)
	tn := Generate(0, 0, 100, testnetLedger)
	pn := Generate(0, 0, 100, previewnetLedger)
	assert.NotEqual(t, m, tn)
	assert.NotEqual(t, m, pn)
	assert.NotEqual(t, tn, pn)
}

func TestGenerateDiffersAcrossIdsOnSameLedger(t *testing.T) {
	seen := make(map[string]bool)
	for _, num := range []uint64{0, 1, 2, 255, 256, 1126123} {
		cs := Generate(0, 0, num, mainnetLedger)
		assert.False(t, seen[cs], "checksum %q repeated for num=%d", cs, num)
		seen[cs] = true
	}
}

func TestValidateRoundTrip(t *testing.T) {
	id := New(0, 0, 1126123)
	full := id.ToStringWithChecksum(mainnetLedger)

	parsed, err := Parse(full)
	assert.NoError(t, err)
	assert.NoError(t, parsed.Validate(mainnetLedger))
	assert.Error(t, parsed.Validate(testnetLedger))
}

func TestValidateAcceptsAbsentChecksum(t *testing.T) {
	id := New(0, 0, 42)
	assert.NoError(t, id.Validate(mainnetLedger))
}

func TestValidateRejectsMismatch(t *testing.T) {
	id := Id{Shard: 0, Realm: 0, Num: 1, Checksum: "zzzzz"}
	err := id.Validate(mainnetLedger)
	assert.Error(t, err)
}
