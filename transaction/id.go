// Package transaction implements the common transaction contract (spec.md
// §4.5): the Building/Frozen state machine, signer de-duplication, the
// chunked topic-message-submit kind, and the four simple kinds (FileCreate,
// FileAppend, FileDelete, ContractCreate) the composite contract-create flow
// uses.
package transaction

import (
	"fmt"

	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/rlp"
	"github.com/ledgerkit/ledgersdk-go/timestamp"
)

// Id is (payer, validStart, nonce, scheduled); two Ids with an equal tuple
// name the same on-chain identity (spec.md §3).
type Id struct {
	Payer      entity.AccountId
	ValidStart timestamp.Timestamp
	Nonce      int32
	Scheduled  bool
}

func (id Id) String() string {
	s := fmt.Sprintf("%s@%s", id.Payer.String(), id.ValidStart.String())
	if id.Nonce != 0 {
		s = fmt.Sprintf("%s/%d", s, id.Nonce)
	}
	if id.Scheduled {
		s += "?scheduled"
	}
	return s
}

// Equal compares every field of the tuple.
func (id Id) Equal(other Id) bool {
	return id.Payer.Equal(other.Payer.Id) &&
		id.ValidStart.Equal(other.ValidStart) &&
		id.Nonce == other.Nonce &&
		id.Scheduled == other.Scheduled
}

// ToBytes RLP-encodes id as the canonical byte-interchange form (spec.md §6).
func (id Id) ToBytes() []byte {
	scheduled := int64(0)
	if id.Scheduled {
		scheduled = 1
	}
	return rlp.Encode(rlp.List(
		rlp.String(id.Payer.Id.ToBytes()),
		rlp.String(uintMinimal(id.ValidStart.Seconds)),
		rlp.String(uintMinimal(uint64(id.ValidStart.Nanos))),
		rlp.String(intMinimal(int64(id.Nonce))),
		rlp.String(uintMinimal(uint64(scheduled))),
	))
}

// FromBytes is the inverse of Id.ToBytes.
func FromBytes(b []byte) (Id, error) {
	item, err := rlp.DecodeAll(b)
	if err != nil {
		return Id{}, err
	}
	if !item.IsList() || len(item.List) != 5 {
		return Id{}, fmt.Errorf("transaction: malformed transaction id bytes")
	}
	payerId, err := entity.FromBytesPlain(item.List[0].Bytes)
	if err != nil {
		return Id{}, err
	}
	return Id{
		Payer:      entity.AccountId{Id: payerId},
		ValidStart: timestamp.Timestamp{Seconds: bytesToUint(item.List[1].Bytes), Nanos: uint32(bytesToUint(item.List[2].Bytes))},
		Nonce:      int32(bytesToUint(item.List[3].Bytes)),
		Scheduled:  bytesToUint(item.List[4].Bytes) != 0,
	}, nil
}

func uintMinimal(v uint64) []byte {
	if v == 0 {
		return nil
	}
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func intMinimal(v int64) []byte {
	return uintMinimal(uint64(v))
}

func bytesToUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
