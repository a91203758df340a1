package query

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/hbar"
	"github.com/ledgerkit/ledgersdk-go/internal/executor"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/transaction"
)

// PaidExecute runs the documented paid-query sequence (spec.md §4.6): send
// a cost-only request; if the cost exceeds maxPayment, fail with
// MaxQueryPaymentExceeded; otherwise build and sign a payment transfer to
// the chosen node and re-send queryBytes with the payment attached.
//
// buildQuery receives the signed payment transaction bytes (nil if the
// query turned out to be free) and returns the final query payload to send.
func PaidExecute(
	ctx context.Context,
	c *client.Client,
	baseQuery []byte,
	maxPayment hbar.Amount,
	payer crypto.PrivateKey,
	payerAccountId func() (transaction.Id, error),
	buildQuery func(payment []byte) []byte,
) (wire.Response, error) {
	cost, err := EstimateCost(ctx, c, baseQuery)
	if err != nil {
		return wire.Response{}, err
	}
	if err := CheckMaxPayment(cost, maxPayment); err != nil {
		return wire.Response{}, err
	}

	var payment []byte
	if cost > 0 {
		id, err := payerAccountId()
		if err != nil {
			return wire.Response{}, err
		}
		payment = rlp.Encode(rlp.List(rlp.String(id.ToBytes()), rlp.String(uintBytes(cost))))
		sig, err := payer.Sign(payment)
		if err != nil {
			return wire.Response{}, err
		}
		payment = rlp.Encode(rlp.List(rlp.String(payment), rlp.String(sig)))
	}

	final := buildQuery(payment)

	var resp wire.Response
	err = c.Execute(ctx, func(ctx context.Context, idx int) (executor.Outcome, error) {
		channel, err := c.Channel(idx)
		if err != nil {
			return executor.Terminal, err
		}
		raw, err := channel.SubmitQuery(ctx, final)
		if err != nil {
			return executor.TransportError, err
		}
		decoded, err := wire.DecodeResponse(raw)
		if err != nil {
			return executor.TransportError, err
		}
		outcome := wire.ClassifyPreCheck(decoded.Status)
		if outcome == executor.Ok {
			resp = decoded
		}
		return outcome, nil
	})
	return resp, err
}

func uintBytes(v int64) []byte {
	if v == 0 {
		return nil
	}
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}
