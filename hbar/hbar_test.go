package hbar

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormattingVectors(t *testing.T) {
	fifty, err := Of(50)
	require.NoError(t, err)
	assert.Equal(t, "50 ℏ", fifty.String())

	assert.Equal(t, "50 tℏ", FromTinybars(50).String())
}

func TestFromRejectsNonIntegerTinybars(t *testing.T) {
	_, err := From(0.5, Tinybar)
	assert.Error(t, err)
}

func TestFromRejectsNaNAndInf(t *testing.T) {
	_, err := From(math.NaN(), Hbar)
	assert.Error(t, err)

	_, err = From(math.Inf(1), Hbar)
	assert.Error(t, err)
}

func TestRoundTripAllUnits(t *testing.T) {
	units := []Unit{Tinybar, Microbar, Millibar, Hbar, Kilobar, Megabar, Gigabar}
	for _, u := range units {
		amt, err := From(7, u)
		require.NoError(t, err)
		got := amt.To(u)
		want := new(big.Rat).SetInt64(7)
		assert.Equal(t, 0, got.Cmp(want))
	}
}

func TestParseRoundTrip(t *testing.T) {
	a, err := Parse("50 ℏ")
	require.NoError(t, err)
	assert.Equal(t, int64(50*100_000_000), a.AsTinybars())

	b, err := Parse("50 tℏ")
	require.NoError(t, err)
	assert.Equal(t, int64(50), b.AsTinybars())
}

func TestNegatedAndPlus(t *testing.T) {
	a := FromTinybars(100)
	assert.Equal(t, int64(-100), a.Negated().AsTinybars())
	assert.Equal(t, int64(150), a.Plus(FromTinybars(50)).AsTinybars())
}
