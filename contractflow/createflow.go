// Package contractflow implements the one documented composite transaction
// pipeline: create a file, append its remaining bytecode in chunks, deploy
// a contract from it, then delete the scratch file (spec.md §4.9). It
// generalizes the teacher's chainadapter.ChainAdapter Build→Sign→Broadcast
// pipeline from one transaction to a fixed sequence of them, where stage
// failure aborts the remaining stages and reports which stage failed.
package contractflow

import (
	"context"

	"github.com/ledgerkit/ledgersdk-go/abi"
	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/transaction"
)

// DefaultAppendChunkSize matches transaction.DefaultChunkSize; large
// bytecode is appended across as many FileAppendTransactions as needed.
const DefaultAppendChunkSize = transaction.DefaultChunkSize

// Stage names each step of CreateFlow, for error reporting.
type Stage int

const (
	StageFileCreate Stage = iota
	StageFileAppend
	StageContractCreate
	StageFileDelete
)

func (s Stage) String() string {
	switch s {
	case StageFileCreate:
		return "FileCreate"
	case StageFileAppend:
		return "FileAppend"
	case StageContractCreate:
		return "ContractCreate"
	case StageFileDelete:
		return "FileDelete"
	default:
		return "unknown"
	}
}

type stageErr struct {
	stage Stage
	cause error
}

func (e *stageErr) Error() string { return e.cause.Error() }
func (e *stageErr) Unwrap() error { return e.cause }

// FailedStage extracts the stage that aborted CreateFlow, if err came from it.
func FailedStage(err error) (Stage, bool) {
	if e, ok := err.(*stageErr); ok {
		return e.stage, true
	}
	return 0, false
}

// CreateFlow is the FileCreate → FileAppend(chunks) → ContractCreate →
// FileDelete state machine. Zero value is ready to configure.
type CreateFlow struct {
	Keys            []crypto.PublicKey
	Bytecode        []byte
	ChunkSize       int
	Gas             int64
	ConstructorArgs []abi.Param
}

// NewCreateFlow returns a flow with the documented default chunk size.
func NewCreateFlow() *CreateFlow {
	return &CreateFlow{ChunkSize: DefaultAppendChunkSize}
}

// Result is the outcome of a successful CreateFlow run.
type Result struct {
	FileId     entity.FileId
	ContractId entity.ContractId
}

// Execute runs the four stages in order against c, signing each transaction
// with signer before dispatch. A terminal failure at any stage aborts the
// remaining stages (the scratch file, if already created, is left behind in
// that case — cleanup is the caller's decision).
func (f *CreateFlow) Execute(ctx context.Context, c *client.Client, signer crypto.PrivateKey) (Result, error) {
	chunkSize := f.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultAppendChunkSize
	}

	var firstChunk []byte
	var rest []byte
	if len(f.Bytecode) > chunkSize {
		firstChunk, rest = f.Bytecode[:chunkSize], f.Bytecode[chunkSize:]
	} else {
		firstChunk = f.Bytecode
	}

	create := transaction.NewFileCreateTransaction()
	if err := create.SetKeys(f.Keys); err != nil {
		return Result{}, &stageErr{StageFileCreate, err}
	}
	if err := create.SetContents(firstChunk); err != nil {
		return Result{}, &stageErr{StageFileCreate, err}
	}
	if err := create.Freeze(c); err != nil {
		return Result{}, &stageErr{StageFileCreate, err}
	}
	if err := transaction.SignWith(create, signer); err != nil {
		return Result{}, &stageErr{StageFileCreate, err}
	}
	fileId, err := create.Execute(ctx, c)
	if err != nil {
		return Result{}, &stageErr{StageFileCreate, err}
	}

	for len(rest) > 0 {
		n := chunkSize
		if n > len(rest) {
			n = len(rest)
		}
		chunk := rest[:n]
		rest = rest[n:]

		app := transaction.NewFileAppendTransaction()
		if err := app.SetFileId(fileId); err != nil {
			return Result{}, &stageErr{StageFileAppend, err}
		}
		if err := app.SetContent(chunk); err != nil {
			return Result{}, &stageErr{StageFileAppend, err}
		}
		if err := app.Freeze(c); err != nil {
			return Result{}, &stageErr{StageFileAppend, err}
		}
		if err := transaction.SignWith(app, signer); err != nil {
			return Result{}, &stageErr{StageFileAppend, err}
		}
		if err := app.Execute(ctx, c); err != nil {
			return Result{}, &stageErr{StageFileAppend, err}
		}
	}

	deploy := transaction.NewContractCreateTransaction()
	if err := deploy.SetBytecodeFileId(fileId); err != nil {
		return Result{}, &stageErr{StageContractCreate, err}
	}
	if err := deploy.SetGas(f.Gas); err != nil {
		return Result{}, &stageErr{StageContractCreate, err}
	}
	if err := deploy.SetConstructorArgs(f.ConstructorArgs); err != nil {
		return Result{}, &stageErr{StageContractCreate, err}
	}
	if err := deploy.Freeze(c); err != nil {
		return Result{}, &stageErr{StageContractCreate, err}
	}
	if err := transaction.SignWith(deploy, signer); err != nil {
		return Result{}, &stageErr{StageContractCreate, err}
	}
	contractId, err := deploy.Execute(ctx, c)
	if err != nil {
		return Result{}, &stageErr{StageContractCreate, err}
	}

	del := transaction.NewFileDeleteTransaction()
	if err := del.SetFileId(fileId); err != nil {
		return Result{}, &stageErr{StageFileDelete, err}
	}
	if err := del.Freeze(c); err != nil {
		return Result{}, &stageErr{StageFileDelete, err}
	}
	if err := transaction.SignWith(del, signer); err != nil {
		return Result{}, &stageErr{StageFileDelete, err}
	}
	if err := del.Execute(ctx, c); err != nil {
		return Result{}, &stageErr{StageFileDelete, err}
	}

	return Result{FileId: fileId, ContractId: contractId}, nil
}

