// Package ethtx implements the externally-signed Ethereum transaction
// encodings this SDK accepts as raw contract-call bytecode: legacy
// (type-0) and EIP-1559 (type-2), per spec.md §4.8.
package ethtx

import (
	"math/big"

	"github.com/ledgerkit/ledgersdk-go/rlp"
)

// AccessTuple is one entry of an EIP-2930/1559 access list.
type AccessTuple struct {
	Address     []byte
	StorageKeys [][]byte
}

func bigToMinimalBytes(v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return nil
	}
	return v.Bytes()
}

func bytesToBig(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func encodeAccessList(list []AccessTuple) rlp.Item {
	items := make([]rlp.Item, len(list))
	for i, t := range list {
		keys := make([]rlp.Item, len(t.StorageKeys))
		for j, k := range t.StorageKeys {
			keys[j] = rlp.String(k)
		}
		items[i] = rlp.List(rlp.String(t.Address), rlp.List(keys...))
	}
	return rlp.List(items...)
}

func decodeAccessList(it rlp.Item) ([]AccessTuple, error) {
	if !it.IsList() {
		return nil, errNotAList("access list")
	}
	out := make([]AccessTuple, len(it.List))
	for i, entry := range it.List {
		if !entry.IsList() || len(entry.List) != 2 || !entry.List[1].IsList() {
			return nil, errNotAList("access list entry")
		}
		keys := make([][]byte, len(entry.List[1].List))
		for j, k := range entry.List[1].List {
			keys[j] = k.Bytes
		}
		out[i] = AccessTuple{Address: entry.List[0].Bytes, StorageKeys: keys}
	}
	return out, nil
}

type malformedError string

func (e malformedError) Error() string { return string(e) }

func errNotAList(what string) error { return malformedError("ethtx: " + what + " must be an rlp list") }
