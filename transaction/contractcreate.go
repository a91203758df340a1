package transaction

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/abi"
	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/hbar"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// ContractCreateTransaction deploys a contract from bytecode already stored
// in a file (spec.md §4.9's composite flow's third stage), with an optional
// ABI-encoded constructor argument list carried as its own body field next
// to the bytecode file id.
type ContractCreateTransaction struct {
	Base

	BytecodeFileId  entity.FileId
	Gas             int64
	InitialBalance  hbar.Amount
	ConstructorArgs []abi.Param

	nodes []*nodeTx
}

// NewContractCreateTransaction returns a transaction in the Building state.
func NewContractCreateTransaction() *ContractCreateTransaction {
	return &ContractCreateTransaction{Base: NewBase()}
}

// SetBytecodeFileId sets the file holding the deployed bytecode, failing if
// already frozen.
func (t *ContractCreateTransaction) SetBytecodeFileId(id entity.FileId) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.BytecodeFileId = id
	return nil
}

// SetGas sets the gas limit, failing if already frozen.
func (t *ContractCreateTransaction) SetGas(gas int64) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.Gas = gas
	return nil
}

// SetConstructorArgs sets the constructor argument list to ABI-encode,
// failing if already frozen.
func (t *ContractCreateTransaction) SetConstructorArgs(args []abi.Param) error {
	if t.IsFrozen() {
		return status.New(status.KindRequestParse, "transaction: already frozen", nil)
	}
	t.ConstructorArgs = args
	return nil
}

func (t *ContractCreateTransaction) bodyData() ([]byte, error) {
	argBytes, err := abi.EncodeArgs(t.ConstructorArgs)
	if err != nil {
		return nil, err
	}
	return rlp.Encode(rlp.List(
		rlp.String(t.BytecodeFileId.Id.ToBytes()),
		rlp.String(uintMinimal(uint64(t.Gas))),
		rlp.String(uintMinimal(uint64(t.InitialBalance.AsTinybars()))),
		rlp.String(argBytes),
	)), nil
}

// Freeze snapshots payer/nodes/id, ABI-encodes the constructor args, and
// builds the per-node bodies.
func (t *ContractCreateTransaction) Freeze(c *client.Client) error {
	data, err := t.bodyData()
	if err != nil {
		return err
	}
	nodes, err := t.Base.freezeSimple(c, data)
	if err != nil {
		return err
	}
	t.nodes = nodes
	return nil
}

func (t *ContractCreateTransaction) nodeBodies() []*nodeTx { return t.nodes }

// Execute submits the deployment and returns the created contract id.
func (t *ContractCreateTransaction) Execute(ctx context.Context, c *client.Client) (entity.ContractId, error) {
	id, _ := t.Base.TransactionId()
	resp, err := executeSimple(ctx, c, id, t.nodes)
	if err != nil {
		return entity.ContractId{}, err
	}
	return decodeCreatedContractId(resp)
}

func decodeCreatedContractId(resp wire.Response) (entity.ContractId, error) {
	eid, err := entity.FromBytesPlain(resp.TransactionHash)
	if err != nil {
		return entity.ContractId{}, err
	}
	return entity.ContractId{Id: eid}, nil
}
