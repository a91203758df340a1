package transaction

import (
	"testing"

	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdStringFormat(t *testing.T) {
	id := Id{Payer: entity.NewAccountId(0, 0, 1001), ValidStart: timestamp.Timestamp{Seconds: 1700000000, Nanos: 5}}
	assert.Equal(t, "0.0.1001@1700000000.000000005", id.String())
}

func TestIdStringWithNonceAndScheduled(t *testing.T) {
	id := Id{
		Payer:      entity.NewAccountId(0, 0, 1001),
		ValidStart: timestamp.Timestamp{Seconds: 1, Nanos: 0},
		Nonce:      3,
		Scheduled:  true,
	}
	assert.Equal(t, "0.0.1001@1.000000000/3?scheduled", id.String())
}

func TestIdBytesRoundTrip(t *testing.T) {
	id := Id{
		Payer:      entity.NewAccountId(0, 0, 1001),
		ValidStart: timestamp.Timestamp{Seconds: 1700000000, Nanos: 123},
		Nonce:      -2,
		Scheduled:  true,
	}
	decoded, err := FromBytes(id.ToBytes())
	require.NoError(t, err)
	assert.True(t, id.Equal(decoded))
}

func TestIdEqualIgnoresNothingButTheTuple(t *testing.T) {
	a := Id{Payer: entity.NewAccountId(0, 0, 1), ValidStart: timestamp.Timestamp{Seconds: 1}}
	b := Id{Payer: entity.NewAccountId(0, 0, 1), ValidStart: timestamp.Timestamp{Seconds: 1}}
	assert.True(t, a.Equal(b))

	b.Nonce = 1
	assert.False(t, a.Equal(b))
}
