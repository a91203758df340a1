package wire

import (
	"encoding/binary"

	"github.com/ledgerkit/ledgersdk-go/rlp"
)

// Response is the decoded shape of a node's reply to a submitted
// transaction or query (spec.md §4.7/§4.6).
type Response struct {
	Status          Status
	TransactionHash []byte
	Cost            int64
	ReceiptStatus   Status
}

// Encode renders r as an RLP list, the deterministic byte form fakeChannel
// implementations exchange in tests.
func (r Response) Encode() []byte {
	return rlp.Encode(rlp.List(
		rlp.String([]byte(r.Status)),
		rlp.String(r.TransactionHash),
		rlp.String(int64Bytes(r.Cost)),
		rlp.String([]byte(r.ReceiptStatus)),
	))
}

// DecodeResponse is the inverse of Response.Encode.
func DecodeResponse(b []byte) (Response, error) {
	item, err := rlp.DecodeAll(b)
	if err != nil {
		return Response{}, err
	}
	if !item.IsList() || len(item.List) != 4 {
		return Response{}, errMalformed("response")
	}
	return Response{
		Status:          Status(item.List[0].Bytes),
		TransactionHash: item.List[1].Bytes,
		Cost:            bytesToInt64(item.List[2].Bytes),
		ReceiptStatus:   Status(item.List[3].Bytes),
	}, nil
}

type wireError string

func (e wireError) Error() string { return string(e) }

func errMalformed(what string) error {
	return wireError("wire: malformed " + what)
}

func int64Bytes(v int64) []byte {
	if v == 0 {
		return nil
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func bytesToInt64(b []byte) int64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return int64(v)
}
