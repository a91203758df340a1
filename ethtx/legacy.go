package ethtx

import (
	"math/big"

	"github.com/ledgerkit/ledgersdk-go/rlp"
)

// LegacyTransaction is a pre-EIP-1559 (type-0) Ethereum transaction.
type LegacyTransaction struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       []byte // nil for contract creation
	Value    *big.Int
	Data     []byte
	V, R, S  *big.Int
}

// Encode renders t as the 9-field RLP list: nonce, gasPrice, gasLimit, to,
// value, data, v, r, s.
func (t LegacyTransaction) Encode() []byte {
	return rlp.Encode(rlp.List(
		rlp.String(uintToMinimalBytes(t.Nonce)),
		rlp.String(bigToMinimalBytes(t.GasPrice)),
		rlp.String(uintToMinimalBytes(t.GasLimit)),
		rlp.String(t.To),
		rlp.String(bigToMinimalBytes(t.Value)),
		rlp.String(t.Data),
		rlp.String(bigToMinimalBytes(t.V)),
		rlp.String(bigToMinimalBytes(t.R)),
		rlp.String(bigToMinimalBytes(t.S)),
	))
}

// DecodeLegacyTransaction is the inverse of Encode.
func DecodeLegacyTransaction(b []byte) (LegacyTransaction, error) {
	item, err := rlp.DecodeAll(b)
	if err != nil {
		return LegacyTransaction{}, err
	}
	if !item.IsList() || len(item.List) != 9 {
		return LegacyTransaction{}, errNotAList("legacy transaction")
	}
	f := item.List
	return LegacyTransaction{
		Nonce:    bytesToUint(f[0].Bytes),
		GasPrice: bytesToBig(f[1].Bytes),
		GasLimit: bytesToUint(f[2].Bytes),
		To:       f[3].Bytes,
		Value:    bytesToBig(f[4].Bytes),
		Data:     f[5].Bytes,
		V:        bytesToBig(f[6].Bytes),
		R:        bytesToBig(f[7].Bytes),
		S:        bytesToBig(f[8].Bytes),
	}, nil
}

func uintToMinimalBytes(v uint64) []byte {
	if v == 0 {
		return nil
	}
	return bigToMinimalBytes(new(big.Int).SetUint64(v))
}

func bytesToUint(b []byte) uint64 {
	return bytesToBig(b).Uint64()
}
