// Package query implements the query side of the request framework
// (spec.md §4.6): an optional cost-estimation round trip ahead of a paid
// query, and the one concrete cost-free query (receipt polling) that does
// not need it.
package query

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/hbar"
	"github.com/ledgerkit/ledgersdk-go/internal/executor"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// EstimateCost sends queryBytes as a cost-only request (the node computes
// and returns a price without executing the query) and returns the
// reported cost in tinybars.
func EstimateCost(ctx context.Context, c *client.Client, queryBytes []byte) (int64, error) {
	var cost int64
	err := c.Execute(ctx, func(ctx context.Context, idx int) (executor.Outcome, error) {
		channel, err := c.Channel(idx)
		if err != nil {
			return executor.Terminal, err
		}
		raw, err := channel.SubmitQuery(ctx, queryBytes)
		if err != nil {
			return executor.TransportError, err
		}
		resp, err := wire.DecodeResponse(raw)
		if err != nil {
			return executor.TransportError, err
		}
		outcome := wire.ClassifyPreCheck(resp.Status)
		if outcome != executor.Ok {
			return outcome, status.QueryPreCheckStatus(string(resp.Status))
		}
		cost = resp.Cost
		return executor.Ok, nil
	})
	return cost, err
}

// CheckMaxPayment fails with MaxQueryPaymentExceeded if cost exceeds max. A
// zero max is treated as "no cap configured" and always passes (spec.md
// §4.6 read together with the client's documented zero-Hbar "unset" default).
func CheckMaxPayment(cost int64, max hbar.Amount) error {
	if max.AsTinybars() == 0 {
		return nil
	}
	if cost > max.AsTinybars() {
		return status.MaxQueryPaymentExceeded(cost, max.AsTinybars())
	}
	return nil
}
