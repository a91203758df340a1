package query

import (
	"context"
	"testing"

	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/hbar"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/timestamp"
	"github.com/ledgerkit/ledgersdk-go/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaidExecuteAttachesPaymentWhenCostIsNonZero(t *testing.T) {
	calls := 0
	var sawPaidQuery []byte
	c := newClient(func(ctx context.Context, body []byte) ([]byte, error) {
		calls++
		if calls == 1 {
			return wire.Response{Status: wire.StatusOk, Cost: 2000}.Encode(), nil
		}
		sawPaidQuery = body
		return wire.Response{Status: wire.StatusOk, Cost: 2000}.Encode(), nil
	})

	key, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	max, err := hbar.From(1, hbar.Hbar)
	require.NoError(t, err)

	resp, err := PaidExecute(
		context.Background(), c, []byte("base-query"), max, key,
		func() (transaction.Id, error) {
			return transaction.Id{Payer: entity.NewAccountId(0, 0, 1001), ValidStart: timestamp.Now()}, nil
		},
		func(payment []byte) []byte {
			return append([]byte("query-with-payment:"), payment...)
		},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), resp.Cost)
	assert.Equal(t, 2, calls)
	assert.NotEmpty(t, sawPaidQuery)
}

func TestPaidExecuteFailsWhenCostExceedsMax(t *testing.T) {
	c := newClient(func(ctx context.Context, body []byte) ([]byte, error) {
		return wire.Response{Status: wire.StatusOk, Cost: 1_000_000}.Encode(), nil
	})
	key, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	max, err := hbar.From(0.00001, hbar.Hbar) // 1000 tinybars
	require.NoError(t, err)

	_, err = PaidExecute(
		context.Background(), c, []byte("base-query"), max, key,
		func() (transaction.Id, error) { return transaction.Id{}, nil },
		func(payment []byte) []byte { return payment },
	)
	assert.Error(t, err)
}
