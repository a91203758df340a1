package transaction

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// FileAppendTransaction appends one chunk of content to an existing file.
// Splitting a large payload into multiple FileAppendTransactions is the
// caller's responsibility (contractflow.CreateFlow does this explicitly,
// rather than this type chunking internally like
// TopicMessageSubmitTransaction does).
type FileAppendTransaction struct {
	Base

	FileId  entity.FileId
	Content []byte

	nodes []*nodeTx
}

// NewFileAppendTransaction returns a transaction in the Building state.
func NewFileAppendTransaction() *FileAppendTransaction {
	return &FileAppendTransaction{Base: NewBase()}
}

// SetFileId sets the target file, failing if already frozen.
func (t *FileAppendTransaction) SetFileId(id entity.FileId) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.FileId = id
	return nil
}

// SetContent sets the chunk to append, failing if already frozen.
func (t *FileAppendTransaction) SetContent(content []byte) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.Content = append([]byte(nil), content...)
	return nil
}

func (t *FileAppendTransaction) bodyData() []byte {
	return rlp.Encode(rlp.List(rlp.String(t.FileId.Id.ToBytes()), rlp.String(t.Content)))
}

// Freeze snapshots payer/nodes/id and builds the per-node bodies.
func (t *FileAppendTransaction) Freeze(c *client.Client) error {
	nodes, err := t.Base.freezeSimple(c, t.bodyData())
	if err != nil {
		return err
	}
	t.nodes = nodes
	return nil
}

func (t *FileAppendTransaction) nodeBodies() []*nodeTx { return t.nodes }

// Execute submits the append and returns once a successful pre-check is
// observed; append does not produce a new entity id.
func (t *FileAppendTransaction) Execute(ctx context.Context, c *client.Client) error {
	id, _ := t.Base.TransactionId()
	_, err := executeSimple(ctx, c, id, t.nodes)
	return err
}
