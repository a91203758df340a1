package entity

import (
	"encoding/binary"
	"fmt"

	"github.com/ledgerkit/ledgersdk-go/rlp"
)

func encodeUint(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func decodeUint(b []byte) uint64 {
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return binary.BigEndian.Uint64(buf[:])
}

// encodeTriplet renders (shard, realm, num) as an RLP list of three
// minimal-length big-endian byte strings, providing the canonical toBytes
// form named in spec.md §6.
func encodeTriplet(shard, realm, num uint64) []byte {
	return rlp.Encode(rlp.List(
		rlp.String(encodeUint(shard)),
		rlp.String(encodeUint(realm)),
		rlp.String(encodeUint(num)),
	))
}

func decodeTriplet(b []byte) (shard, realm, num uint64, err error) {
	item, err := rlp.DecodeAll(b)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("entity: malformed id bytes: %w", err)
	}
	if !item.IsList() || len(item.List) != 3 {
		return 0, 0, 0, fmt.Errorf("entity: malformed id bytes: expected 3-element list")
	}
	for _, f := range item.List {
		if f.IsList() {
			return 0, 0, 0, fmt.Errorf("entity: malformed id bytes: nested list field")
		}
		if len(f.Bytes) > 8 {
			return 0, 0, 0, fmt.Errorf("entity: malformed id bytes: field too wide")
		}
	}
	return decodeUint(item.List[0].Bytes), decodeUint(item.List[1].Bytes), decodeUint(item.List[2].Bytes), nil
}
