package transaction

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/hbar"
	"github.com/ledgerkit/ledgersdk-go/internal/executor"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/status"
	"github.com/ledgerkit/ledgersdk-go/timestamp"
)

// state is the tagged Building/Frozen variant spec.md §9 asks for: mutators
// only succeed in Building (each setter checks the state at run time), and
// freezing converts once.
type state int

const (
	building state = iota
	frozen
)

// maxValidStartJitter bounds how far into the past a freshly assigned valid
// start may be backdated (spec.md §9 open question: keep this ≤ 10s to
// avoid a spurious TransactionExpired on the node).
const maxValidStartJitter = 10 * time.Second

// nodeTx is one node's pre-computed signed request: the serialized body
// bytes for that specific node, plus every signature collected so far,
// keyed by the signer's raw public key bytes so duplicate signers coalesce
// (spec.md §4.5 "sign... duplicates by public key are de-duplicated, first
// wins").
type nodeTx struct {
	nodeAccountId entity.AccountId
	bodyBytes     []byte
	sigKeys       []string // insertion order, for deterministic iteration
	sigs          map[string][]byte
}

func newNodeTx(nodeAccountId entity.AccountId, bodyBytes []byte) *nodeTx {
	return &nodeTx{nodeAccountId: nodeAccountId, bodyBytes: bodyBytes, sigs: make(map[string][]byte)}
}

// addSignature appends a signature for pubKeyRaw if this key hasn't already
// signed (first wins, spec.md §9 open question).
func (n *nodeTx) addSignature(pubKeyRaw []byte, sig []byte) {
	key := string(pubKeyRaw)
	if _, ok := n.sigs[key]; ok {
		return
	}
	n.sigKeys = append(n.sigKeys, key)
	n.sigs[key] = sig
}

// Base is the common mutable state every concrete transaction kind embeds.
// Its exported methods are the shared "not yet frozen" mutators; freezing
// and chunk-splitting are handled by the concrete type, which calls
// freezeCommon to fill in payer/nodes/id/valid-duration.
type Base struct {
	mu sync.Mutex

	st state

	payer          *entity.AccountId
	nodeAccountIds []entity.AccountId
	maxFee         hbar.Amount
	memo           string
	validDuration  timestamp.Duration
	id             *Id
}

// NewBase returns a Base in the Building state with the documented default
// valid duration (120s).
func NewBase() Base {
	return Base{validDuration: timestamp.Standard}
}

func (b *Base) requireBuilding() error {
	if b.st != building {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	return nil
}

// SetPayerAccountId sets the payer, failing if already frozen.
func (b *Base) SetPayerAccountId(payer entity.AccountId) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.requireBuilding(); err != nil {
		return err
	}
	b.payer = &payer
	return nil
}

// SetNodeAccountIds sets the explicit node set, failing if already frozen.
func (b *Base) SetNodeAccountIds(nodes []entity.AccountId) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.requireBuilding(); err != nil {
		return err
	}
	b.nodeAccountIds = append([]entity.AccountId(nil), nodes...)
	return nil
}

// SetMaxTransactionFee sets the max fee, failing if already frozen.
func (b *Base) SetMaxTransactionFee(fee hbar.Amount) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.requireBuilding(); err != nil {
		return err
	}
	b.maxFee = fee
	return nil
}

// SetMemo sets the memo, failing if already frozen.
func (b *Base) SetMemo(memo string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.requireBuilding(); err != nil {
		return err
	}
	b.memo = memo
	return nil
}

// SetTransactionId pins an explicit transaction id (skipping the auto-assign
// freezeCommon would otherwise perform), failing if already frozen.
func (b *Base) SetTransactionId(id Id) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.requireBuilding(); err != nil {
		return err
	}
	b.id = &id
	return nil
}

// IsFrozen reports whether freeze has already run.
func (b *Base) IsFrozen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.st == frozen
}

// TransactionId returns the assigned id, valid only after freezing.
func (b *Base) TransactionId() (Id, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.id == nil {
		return Id{}, false
	}
	return *b.id, true
}

// freezeCommon snapshots payer/node-ids/id from c per spec.md §4.5's
// freezeWith rule, and marks the Base frozen. Callers (the concrete
// transaction types) invoke this once, under their own freeze method, before
// computing their own per-node body bytes.
func (b *Base) freezeCommon(c *client.Client) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.requireBuilding(); err != nil {
		return err
	}

	if b.payer == nil {
		if c.Operator == nil {
			return status.NoPayerAccountOrTransactionId()
		}
		b.payer = &c.Operator.AccountId
	}

	if len(b.nodeAccountIds) == 0 {
		healthy := c.HealthyNodeAccountIds()
		if len(healthy) == 0 {
			return status.NodeAccountUnknown()
		}
		b.nodeAccountIds = healthy
	}

	if b.id == nil {
		jitter := time.Duration(rand.Int63n(int64(maxValidStartJitter)))
		validStart := timestamp.Now().PlusNanos(-jitter.Nanoseconds())
		b.id = &Id{Payer: *b.payer, ValidStart: validStart, Nonce: 0}
	}

	b.st = frozen
	return nil
}

// encodeNodeBody renders the canonical per-node body bytes: the RLP
// substrate chosen in SPEC_FULL.md §4.8 for every toBytes/fromBytes pair,
// here covering (transaction id, node account id, valid duration, max fee,
// memo, body-data) — the "TransactionBody (logical)" shape of spec.md §3.
func encodeNodeBody(id Id, node entity.AccountId, validDuration timestamp.Duration, maxFee hbar.Amount, memo string, bodyData []byte) []byte {
	return rlp.Encode(rlp.List(
		rlp.String(id.ToBytes()),
		rlp.String(node.Id.ToBytes()),
		rlp.String(uintMinimal(validDuration.Seconds)),
		rlp.String(uintMinimal(uint64(maxFee.AsTinybars()))),
		rlp.String([]byte(memo)),
		rlp.String(bodyData),
	))
}

// freezeSimple is freezeCommon plus building exactly one node body per
// selected node, for the non-chunked transaction kinds (FileCreate,
// FileAppend, FileDelete, ContractCreate): every node gets the same
// bodyData payload.
func (b *Base) freezeSimple(c *client.Client, bodyData []byte) ([]*nodeTx, error) {
	if err := b.freezeCommon(c); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	nodes := make([]*nodeTx, 0, len(b.nodeAccountIds))
	for _, node := range b.nodeAccountIds {
		body := encodeNodeBody(*b.id, node, b.validDuration, b.maxFee, b.memo, bodyData)
		nodes = append(nodes, newNodeTx(node, body))
	}
	return nodes, nil
}

// executeSimple dispatches nodes (as built by freezeSimple) against c and
// returns the first successful node's decoded response. A terminal pre-check
// failure is returned immediately per the shared execution contract
// (spec.md §4.7).
func executeSimple(ctx context.Context, c *client.Client, id Id, nodes []*nodeTx) (wire.Response, error) {
	var resp wire.Response
	err := c.Execute(ctx, func(ctx context.Context, idx int) (executor.Outcome, error) {
		nt := pickNodeTx(nodes, idx, c)
		if nt == nil {
			return executor.Terminal, status.NodeAccountUnknown()
		}
		channel, err := c.Channel(idx)
		if err != nil {
			return executor.Terminal, err
		}
		raw, err := channel.SubmitTransaction(ctx, nt.bodyBytes)
		if err != nil {
			return executor.TransportError, err
		}
		decoded, err := wire.DecodeResponse(raw)
		if err != nil {
			return executor.TransportError, err
		}
		outcome := wire.ClassifyPreCheck(decoded.Status)
		if outcome != executor.Ok {
			return outcome, status.TransactionPreCheckStatus(string(decoded.Status), id)
		}
		resp = decoded
		return executor.Ok, nil
	})
	return resp, err
}

// pickNodeTx finds the nodeTx addressed to the node at client index idx.
func pickNodeTx(nodes []*nodeTx, idx int, c *client.Client) *nodeTx {
	node, ok := c.NodeAt(idx)
	if !ok {
		return nil
	}
	for _, nt := range nodes {
		if nt.nodeAccountId.Id.Equal(node.AccountId.Id) {
			return nt
		}
	}
	return nil
}

// decodeNodeBody is the inverse of encodeNodeBody.
func decodeNodeBody(b []byte) (id Id, validDuration timestamp.Duration, maxFee hbar.Amount, memo string, bodyData []byte, err error) {
	item, derr := rlp.DecodeAll(b)
	if derr != nil {
		err = derr
		return
	}
	if !item.IsList() || len(item.List) != 6 {
		err = status.New(status.KindRequestParse, "transaction: malformed node body", nil)
		return
	}
	id, err = FromBytes(item.List[0].Bytes)
	if err != nil {
		return
	}
	validDuration = timestamp.Duration{Seconds: bytesToUint(item.List[2].Bytes)}
	maxFee = hbar.FromTinybars(int64(bytesToUint(item.List[3].Bytes)))
	memo = string(item.List[4].Bytes)
	bodyData = item.List[5].Bytes
	return
}
