package abi

import (
	"fmt"
	"math/big"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// Decode reads a call-data body (no selector) back into one value per type
// in types, the inverse of EncodeArgs.
func Decode(types []string, data []byte) ([]interface{}, error) {
	out := make([]interface{}, len(types))
	headCursor := 0
	for i, typ := range types {
		if isDynamicType(typ) {
			if headCursor+32 > len(data) {
				return nil, status.New(status.KindRequestParse, "abi: truncated head region", nil)
			}
			offset := int(new(big.Int).SetBytes(data[headCursor : headCursor+32]).Int64())
			if offset < 0 || offset > len(data) {
				return nil, status.New(status.KindRequestParse, "abi: offset out of range", nil)
			}
			v, err := decodeDynamic(typ, data[offset:])
			if err != nil {
				return nil, err
			}
			out[i] = v
			headCursor += 32
		} else {
			width := staticWidth(typ)
			if headCursor+width > len(data) {
				return nil, status.New(status.KindRequestParse, "abi: truncated head region", nil)
			}
			v, err := decodeStatic(typ, data[headCursor:headCursor+width])
			if err != nil {
				return nil, err
			}
			out[i] = v
			headCursor += width
		}
	}
	return out, nil
}

func staticWidth(typ string) int {
	return 32
}

func decodeStatic(typ string, word []byte) (interface{}, error) {
	switch typ {
	case "bool":
		for _, b := range word[:31] {
			if b != 0 {
				return nil, status.New(status.KindRequestParse, "abi: malformed bool word", nil)
			}
		}
		return word[31] != 0, nil
	case "address":
		return append([]byte(nil), word[12:32]...), nil
	case "bytes32":
		return append([]byte(nil), word...), nil
	default:
		if n, signed := uintBits(typ); n > 0 {
			v := new(big.Int).SetBytes(word)
			if signed && word[0]&0x80 != 0 {
				mod := new(big.Int).Lsh(big.NewInt(1), 256)
				v.Sub(v, mod)
			}
			return v, nil
		}
	}
	return nil, status.New(status.KindRequestParse, fmt.Sprintf("abi: unsupported static type %q", typ), nil)
}

func decodeDynamic(typ string, tail []byte) (interface{}, error) {
	if elem, _, _, ok := isArrayType(typ); ok {
		return decodeArray(elem, tail)
	}
	switch typ {
	case "string":
		b, err := decodeBytesLike(tail)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case "bytes":
		return decodeBytesLike(tail)
	}
	return nil, status.New(status.KindRequestParse, fmt.Sprintf("abi: unsupported dynamic type %q", typ), nil)
}

func decodeBytesLike(tail []byte) ([]byte, error) {
	if len(tail) < 32 {
		return nil, status.New(status.KindRequestParse, "abi: truncated length word", nil)
	}
	n := int(new(big.Int).SetBytes(tail[:32]).Int64())
	if n < 0 || 32+n > len(tail) {
		return nil, status.New(status.KindRequestParse, "abi: truncated bytes/string payload", nil)
	}
	return append([]byte(nil), tail[32:32+n]...), nil
}

func decodeArray(elemType string, tail []byte) ([]interface{}, error) {
	if len(tail) < 32 {
		return nil, status.New(status.KindRequestParse, "abi: truncated array length word", nil)
	}
	n := int(new(big.Int).SetBytes(tail[:32]).Int64())
	if n < 0 {
		return nil, status.New(status.KindRequestParse, "abi: negative array length", nil)
	}
	body := tail[32:]
	out := make([]interface{}, n)

	if !isDynamicType(elemType) {
		width := staticWidth(elemType)
		for i := 0; i < n; i++ {
			start := i * width
			if start+width > len(body) {
				return nil, status.New(status.KindRequestParse, "abi: truncated static array body", nil)
			}
			v, err := decodeStatic(elemType, body[start:start+width])
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	for i := 0; i < n; i++ {
		headStart := i * 32
		if headStart+32 > len(body) {
			return nil, status.New(status.KindRequestParse, "abi: truncated dynamic array head", nil)
		}
		offset := int(new(big.Int).SetBytes(body[headStart : headStart+32]).Int64())
		if offset < 0 || offset > len(body) {
			return nil, status.New(status.KindRequestParse, "abi: dynamic array element offset out of range", nil)
		}
		v, err := decodeDynamic(elemType, body[offset:])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
