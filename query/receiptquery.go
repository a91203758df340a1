package query

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/transaction"
)

// TransactionReceiptQuery is the one cost-free query this SDK implements
// (spec.md §4.6): it never estimates cost or attaches a payment, it just
// polls for the transaction's terminal receipt status.
type TransactionReceiptQuery struct {
	TransactionId transaction.Id
}

// Execute polls until a terminal receipt status is observed or the
// client's request deadline elapses.
func (q TransactionReceiptQuery) Execute(ctx context.Context, c *client.Client) (wire.Status, error) {
	return transaction.AwaitReceipt(ctx, c, q.TransactionId)
}
