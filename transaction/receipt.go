package transaction

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/internal/executor"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/rlp"
)

// AwaitReceipt polls the client's healthy nodes, each attempt going to the
// node the client picks, for id's receipt, retrying on ReceiptUnknown with
// the shared backoff/deadline policy (spec.md §4.7), and returns the
// terminal receipt status once a node reports one.
func AwaitReceipt(ctx context.Context, c *client.Client, id Id) (wire.Status, error) {
	query := rlp.Encode(rlp.List(rlp.String(id.ToBytes())))

	var result wire.Status
	err := c.Execute(ctx, func(ctx context.Context, idx int) (executor.Outcome, error) {
		channel, err := c.Channel(idx)
		if err != nil {
			return executor.Terminal, err
		}
		raw, err := channel.SubmitQuery(ctx, query)
		if err != nil {
			return executor.TransportError, err
		}
		resp, err := wire.DecodeResponse(raw)
		if err != nil {
			return executor.TransportError, err
		}
		outcome := wire.ClassifyReceipt(resp.ReceiptStatus)
		if outcome == executor.Terminal {
			result = resp.ReceiptStatus
		}
		return outcome, nil
	})
	return result, err
}
