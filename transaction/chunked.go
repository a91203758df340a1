package transaction

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/internal/executor"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// DefaultChunkSize and DefaultMaxChunks are the documented defaults for a
// chunked submit (spec.md §8 scenario 3's family of tests uses its own
// smaller values explicitly).
const (
	DefaultChunkSize = 1024
	DefaultMaxChunks = 20
)

// chunk is one piece of a TopicMessageSubmitTransaction: its own transaction
// id (same payer/validStart as the first chunk, nanos advanced by one per
// chunk) and its own per-node bodies/signatures.
type chunk struct {
	id     Id
	nodes  []*nodeTx
	index  int
	total  int
}

// TopicMessageSubmitTransaction splits an arbitrarily large message into a
// sequence of chunks, each submitted and pre-check-confirmed in order before
// the next is sent (spec.md §8 scenario 3; topic (0,0,314), message
// "Hello, world!", chunk size 8, max chunks 2 is the worked example).
type TopicMessageSubmitTransaction struct {
	Base

	TopicId   entity.TopicId
	ChunkSize int
	MaxChunks int

	message []byte
	chunks  []*chunk
}

// NewTopicMessageSubmitTransaction returns a transaction in the Building
// state with the documented chunk-size/max-chunks defaults.
func NewTopicMessageSubmitTransaction() *TopicMessageSubmitTransaction {
	return &TopicMessageSubmitTransaction{
		Base:      NewBase(),
		ChunkSize: DefaultChunkSize,
		MaxChunks: DefaultMaxChunks,
	}
}

// SetTopicId sets the target topic, failing if already frozen.
func (t *TopicMessageSubmitTransaction) SetTopicId(id entity.TopicId) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.TopicId = id
	return nil
}

// SetMessage sets the message payload to chunk, failing if already frozen.
func (t *TopicMessageSubmitTransaction) SetMessage(message []byte) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.message = append([]byte(nil), message...)
	return nil
}

// ChunkCount reports how many chunks Freeze will produce for the current
// message and ChunkSize, without requiring a freeze first.
func (t *TopicMessageSubmitTransaction) ChunkCount() int {
	n := (len(t.message) + t.ChunkSize - 1) / t.ChunkSize
	if n == 0 {
		n = 1
	}
	return n
}

// Freeze snapshots payer/node-ids/id via freezeCommon, then partitions the
// message into chunks and computes each chunk's per-node bodies. It fails
// with status.KindRequestParse if the message would need more than
// MaxChunks chunks.
func (t *TopicMessageSubmitTransaction) Freeze(c *client.Client) error {
	n := t.ChunkCount()
	if n > t.MaxChunks {
		return status.New(status.KindRequestParse, "transaction: message requires more chunks than MaxChunks allows", nil)
	}

	if err := t.Base.freezeCommon(c); err != nil {
		return err
	}

	baseId, _ := t.Base.TransactionId()
	t.chunks = make([]*chunk, 0, n)

	for i := 0; i < n; i++ {
		start := i * t.ChunkSize
		end := start + t.ChunkSize
		if end > len(t.message) {
			end = len(t.message)
		}
		payload := t.message[start:end]

		chunkId := baseId
		chunkId.ValidStart = baseId.ValidStart.PlusNanos(int64(i))

		ch := &chunk{id: chunkId, index: i, total: n}
		for _, node := range t.Base.nodeAccountIds {
			bodyData := rlp.Encode(rlp.List(
				rlp.String(t.TopicId.Id.ToBytes()),
				rlp.String(payload),
				rlp.String(uintMinimal(uint64(i))),
				rlp.String(uintMinimal(uint64(n))),
				rlp.String(baseId.ToBytes()),
			))
			body := encodeNodeBody(chunkId, node, t.Base.validDuration, t.Base.maxFee, t.Base.memo, bodyData)
			ch.nodes = append(ch.nodes, newNodeTx(node, body))
		}
		t.chunks = append(t.chunks, ch)
	}

	return nil
}

// nodeBodies implements Signable by returning every chunk's node bodies
// flattened: SignWith is expected to run once, after Freeze and before
// Execute, over the whole chunk sequence.
func (t *TopicMessageSubmitTransaction) nodeBodies() []*nodeTx {
	var all []*nodeTx
	for _, ch := range t.chunks {
		all = append(all, ch.nodes...)
	}
	return all
}

// Execute dispatches every chunk in order against c, awaiting pre-check
// success (not a full receipt) before sending the next chunk. A terminal
// failure on any chunk aborts the remaining chunks; the error reports the
// failing chunk's index via chunkError.
func (t *TopicMessageSubmitTransaction) Execute(ctx context.Context, c *client.Client) error {
	if !t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: not frozen", nil)
	}

	for _, ch := range t.chunks {
		chunkId := ch.id
		err := c.Execute(ctx, func(ctx context.Context, idx int) (executor.Outcome, error) {
			nt := pickNodeTx(ch.nodes, idx, c)
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
			resp, err := wire.DecodeResponse(raw)
			if err != nil {
				return executor.TransportError, err
			}
			return wire.ClassifyPreCheck(resp.Status), statusError(resp.Status, chunkId)
		})
		if err != nil {
			return chunkError(ch.index, err)
		}
	}
	return nil
}

type chunkErr struct {
	index int
	cause error
}

func (e *chunkErr) Error() string { return e.cause.Error() }
func (e *chunkErr) Unwrap() error { return e.cause }

func chunkError(index int, cause error) error {
	return &chunkErr{index: index, cause: cause}
}

// ChunkIndex extracts the failing chunk's index from an error returned by
// Execute, if any.
func ChunkIndex(err error) (int, bool) {
	var ce *chunkErr
	if e, ok := err.(*chunkErr); ok {
		ce = e
		return ce.index, true
	}
	return 0, false
}

func statusError(s wire.Status, id Id) error {
	if s == wire.StatusOk {
		return nil
	}
	return status.TransactionPreCheckStatus(string(s), id)
}

// ToBytes renders every chunk's first node body concatenated as an RLP
// list, preserving chunk boundaries and each chunk's collected signatures
// (spec.md §8 scenario 3's round-trip property).
func (t *TopicMessageSubmitTransaction) ToBytes() []byte {
	items := make([]rlp.Item, 0, len(t.chunks))
	for _, ch := range t.chunks {
		nt := ch.nodes[0]
		sigItems := make([]rlp.Item, 0, len(nt.sigKeys))
		for _, k := range nt.sigKeys {
			sigItems = append(sigItems, rlp.List(rlp.String([]byte(k)), rlp.String(nt.sigs[k])))
		}
		items = append(items, rlp.List(
			rlp.String(ch.id.ToBytes()),
			rlp.String(nt.bodyBytes),
			rlp.List(sigItems...),
		))
	}
	return rlp.Encode(rlp.List(items...))
}

// TopicMessageSubmitFromBytes is the inverse of ToBytes, reconstructing the
// chunk id/body/signature set (but not the original Base configuration,
// which is not encoded here — callers reconstructing a transaction to
// re-verify signatures only need the per-chunk bodies and signers).
func TopicMessageSubmitFromBytes(b []byte) ([]Id, [][]byte, [][]map[string][]byte, error) {
	item, err := rlp.DecodeAll(b)
	if err != nil {
		return nil, nil, nil, err
	}
	if !item.IsList() {
		return nil, nil, nil, status.New(status.KindRequestParse, "transaction: malformed chunked transaction bytes", nil)
	}

	ids := make([]Id, 0, len(item.List))
	bodies := make([][]byte, 0, len(item.List))
	sigSets := make([]map[string][]byte, 0, len(item.List))

	for _, chItem := range item.List {
		if !chItem.IsList() || len(chItem.List) != 3 {
			return nil, nil, nil, status.New(status.KindRequestParse, "transaction: malformed chunk", nil)
		}
		id, err := FromBytes(chItem.List[0].Bytes)
		if err != nil {
			return nil, nil, nil, err
		}
		sigs := make(map[string][]byte)
		for _, sigItem := range chItem.List[2].List {
			if !sigItem.IsList() || len(sigItem.List) != 2 {
				continue
			}
			sigs[string(sigItem.List[0].Bytes)] = sigItem.List[1].Bytes
		}
		ids = append(ids, id)
		bodies = append(bodies, chItem.List[1].Bytes)
		sigSets = append(sigSets, sigs)
	}

	return ids, bodies, sigSets, nil
}
