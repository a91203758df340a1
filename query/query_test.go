package query

import (
	"context"
	"testing"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/hbar"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/timestamp"
	"github.com/ledgerkit/ledgersdk-go/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(submitQuery func(ctx context.Context, body []byte) ([]byte, error)) *client.Client {
	c := client.New(client.NewConfig(client.ForMainnet()), client.NewFakeChannelFactory(client.NewFakeChannel(nil, submitQuery)))
	c.SetNodes([]client.NodeEndpoint{{AccountId: entity.NewAccountId(0, 0, 3), Address: "node3:50211"}})
	return c
}

func TestEstimateCostReadsReportedCost(t *testing.T) {
	c := newClient(func(ctx context.Context, body []byte) ([]byte, error) {
		return wire.Response{Status: wire.StatusOk, Cost: 5000}.Encode(), nil
	})
	cost, err := EstimateCost(context.Background(), c, []byte("cost-only"))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), cost)
}

func TestCheckMaxPaymentExceeded(t *testing.T) {
	max, err := hbar.From(0.00004, hbar.Hbar) // 4000 tinybars
	require.NoError(t, err)
	err = CheckMaxPayment(5000, max)
	assert.Error(t, err)
}

func TestCheckMaxPaymentWithinBudget(t *testing.T) {
	max, err := hbar.From(1, hbar.Hbar)
	require.NoError(t, err)
	assert.NoError(t, CheckMaxPayment(5000, max))
}

func TestCheckMaxPaymentZeroMeansUnset(t *testing.T) {
	assert.NoError(t, CheckMaxPayment(1_000_000, hbar.Zero))
}

func TestTransactionReceiptQueryIsCostFree(t *testing.T) {
	calls := 0
	c := newClient(func(ctx context.Context, body []byte) ([]byte, error) {
		calls++
		return wire.Response{Status: wire.StatusOk, ReceiptStatus: wire.StatusReceiptSuccess}.Encode(), nil
	})

	q := TransactionReceiptQuery{TransactionId: transaction.Id{
		Payer:      entity.NewAccountId(0, 0, 1001),
		ValidStart: timestamp.Now(),
	}}
	status, err := q.Execute(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, wire.StatusReceiptSuccess, status)
	assert.Equal(t, 1, calls)
}
