package transaction

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// FileCreateTransaction creates a new file with an initial content chunk and
// a list of keys authorized to append/delete it later. It is the first
// stage of the composite contract-create flow (spec.md §4.9).
type FileCreateTransaction struct {
	Base

	Keys     []crypto.PublicKey
	Contents []byte

	nodes []*nodeTx
}

// NewFileCreateTransaction returns a transaction in the Building state.
func NewFileCreateTransaction() *FileCreateTransaction {
	return &FileCreateTransaction{Base: NewBase()}
}

// SetKeys sets the authorized key list, failing if already frozen.
func (t *FileCreateTransaction) SetKeys(keys []crypto.PublicKey) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.Keys = append([]crypto.PublicKey(nil), keys...)
	return nil
}

// SetContents sets the initial content chunk, failing if already frozen.
func (t *FileCreateTransaction) SetContents(contents []byte) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.Contents = append([]byte(nil), contents...)
	return nil
}

func (t *FileCreateTransaction) bodyData() []byte {
	keyItems := make([]rlp.Item, 0, len(t.Keys))
	for _, k := range t.Keys {
		keyItems = append(keyItems, rlp.String(k.RawBytes()))
	}
	return rlp.Encode(rlp.List(rlp.List(keyItems...), rlp.String(t.Contents)))
}

// Freeze snapshots payer/nodes/id and builds the per-node bodies.
func (t *FileCreateTransaction) Freeze(c *client.Client) error {
	nodes, err := t.Base.freezeSimple(c, t.bodyData())
	if err != nil {
		return err
	}
	t.nodes = nodes
	return nil
}

func (t *FileCreateTransaction) nodeBodies() []*nodeTx { return t.nodes }

// Execute submits to the healthy node the client picks and returns the created file id,
// decoded from the response's TransactionHash (the id's wire encoding).
func (t *FileCreateTransaction) Execute(ctx context.Context, c *client.Client) (entity.FileId, error) {
	id, _ := t.Base.TransactionId()
	resp, err := executeSimple(ctx, c, id, t.nodes)
	if err != nil {
		return entity.FileId{}, err
	}
	return decodeCreatedFileId(resp)
}

func decodeCreatedFileId(resp wire.Response) (entity.FileId, error) {
	eid, err := entity.FromBytesPlain(resp.TransactionHash)
	if err != nil {
		return entity.FileId{}, err
	}
	return entity.FileId{Id: eid}, nil
}
