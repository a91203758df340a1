package ethtx

import (
	"fmt"
	"math/big"

	"github.com/ledgerkit/ledgersdk-go/rlp"
)

// eip1559TypeByte is the EIP-2718 transaction-type prefix for type-2
// (EIP-1559) transactions.
const eip1559TypeByte = 0x02

// Eip1559Transaction is an EIP-1559 (type-2) Ethereum transaction.
type Eip1559Transaction struct {
	ChainId              *big.Int
	Nonce                uint64
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
	GasLimit             uint64
	To                   []byte // nil for contract creation
	Value                *big.Int
	Data                 []byte
	AccessList           []AccessTuple
	V, R, S              *big.Int
}

// Encode renders t as 0x02 followed by the 12-field RLP list.
func (t Eip1559Transaction) Encode() []byte {
	body := rlp.Encode(rlp.List(
		rlp.String(bigToMinimalBytes(t.ChainId)),
		rlp.String(uintToMinimalBytes(t.Nonce)),
		rlp.String(bigToMinimalBytes(t.MaxPriorityFeePerGas)),
		rlp.String(bigToMinimalBytes(t.MaxFeePerGas)),
		rlp.String(uintToMinimalBytes(t.GasLimit)),
		rlp.String(t.To),
		rlp.String(bigToMinimalBytes(t.Value)),
		rlp.String(t.Data),
		encodeAccessList(t.AccessList),
		rlp.String(bigToMinimalBytes(t.V)),
		rlp.String(bigToMinimalBytes(t.R)),
		rlp.String(bigToMinimalBytes(t.S)),
	))
	out := make([]byte, 0, 1+len(body))
	out = append(out, eip1559TypeByte)
	return append(out, body...)
}

// DecodeEip1559Transaction is the inverse of Encode.
func DecodeEip1559Transaction(b []byte) (Eip1559Transaction, error) {
	if len(b) == 0 || b[0] != eip1559TypeByte {
		return Eip1559Transaction{}, fmt.Errorf("ethtx: not a type-2 (EIP-1559) transaction")
	}
	item, err := rlp.DecodeAll(b[1:])
	if err != nil {
		return Eip1559Transaction{}, err
	}
	if !item.IsList() || len(item.List) != 12 {
		return Eip1559Transaction{}, errNotAList("eip-1559 transaction")
	}
	f := item.List
	accessList, err := decodeAccessList(f[8])
	if err != nil {
		return Eip1559Transaction{}, err
	}
	return Eip1559Transaction{
		ChainId:              bytesToBig(f[0].Bytes),
		Nonce:                bytesToUint(f[1].Bytes),
		MaxPriorityFeePerGas: bytesToBig(f[2].Bytes),
		MaxFeePerGas:         bytesToBig(f[3].Bytes),
		GasLimit:             bytesToUint(f[4].Bytes),
		To:                   f[5].Bytes,
		Value:                bytesToBig(f[6].Bytes),
		Data:                 f[7].Bytes,
		AccessList:           accessList,
		V:                    bytesToBig(f[9].Bytes),
		R:                    bytesToBig(f[10].Bytes),
		S:                    bytesToBig(f[11].Bytes),
	}, nil
}
