package transaction

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// FileDeleteTransaction marks a file deleted, the final stage of the
// composite contract-create flow (spec.md §4.9) once the contract has been
// created from the file's accumulated bytecode.
type FileDeleteTransaction struct {
	Base

	FileId entity.FileId

	nodes []*nodeTx
}

// NewFileDeleteTransaction returns a transaction in the Building state.
func NewFileDeleteTransaction() *FileDeleteTransaction {
	return &FileDeleteTransaction{Base: NewBase()}
}

// SetFileId sets the target file, failing if already frozen.
func (t *FileDeleteTransaction) SetFileId(id entity.FileId) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.FileId = id
	return nil
}

func (t *FileDeleteTransaction) bodyData() []byte {
	return rlp.Encode(rlp.List(rlp.String(t.FileId.Id.ToBytes())))
}

// Freeze snapshots payer/nodes/id and builds the per-node bodies.
func (t *FileDeleteTransaction) Freeze(c *client.Client) error {
	nodes, err := t.Base.freezeSimple(c, t.bodyData())
	if err != nil {
		return err
	}
	t.nodes = nodes
	return nil
}

func (t *FileDeleteTransaction) nodeBodies() []*nodeTx { return t.nodes }

// Execute submits the deletion and waits for a successful pre-check.
func (t *FileDeleteTransaction) Execute(ctx context.Context, c *client.Client) error {
	id, _ := t.Base.TransactionId()
	_, err := executeSimple(ctx, c, id, t.nodes)
	return err
}
