package abi

import (
	"fmt"
	"math/big"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// Encode renders "selector(name)‖arg0‖arg1‖…" per spec.md §6: dynamic
// arguments (string, bytes, "<type>[]" arrays, and "<type>[n]" arrays whose
// element type is dynamic) write a 32-byte offset in the static head region
// and append their length-prefixed payload in the tail region that follows
// it. A "<type>[n]" array with a static element type is not supported.
func Encode(name string, params []Param) ([]byte, error) {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	body, err := EncodeArgs(params)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 4+len(body))
	out = append(out, Selector(name, types)...)
	return append(out, body...), nil
}

// EncodeArgs renders just the argument region (no selector), used both for
// call-data bodies and for encoding return values.
func EncodeArgs(params []Param) ([]byte, error) {
	heads := make([][]byte, len(params))
	tails := make([][]byte, len(params))
	dynamic := make([]bool, len(params))

	for i, p := range params {
		isDyn := isDynamicType(p.Type)
		dynamic[i] = isDyn
		if isDyn {
			tail, err := encodeDynamic(p.Type, p.Value)
			if err != nil {
				return nil, err
			}
			tails[i] = tail
		} else {
			head, err := encodeStatic(p.Type, p.Value)
			if err != nil {
				return nil, err
			}
			heads[i] = head
		}
	}

	headLen := 0
	for i := range params {
		if dynamic[i] {
			headLen += 32
		} else {
			headLen += len(heads[i])
		}
	}

	var out []byte
	tailOffset := headLen
	for i := range params {
		if dynamic[i] {
			out = append(out, uint256Word(big.NewInt(int64(tailOffset)))...)
			tailOffset += len(tails[i])
		} else {
			out = append(out, heads[i]...)
		}
	}
	for i := range params {
		if dynamic[i] {
			out = append(out, tails[i]...)
		}
	}
	return out, nil
}

func encodeStatic(typ string, value interface{}) ([]byte, error) {
	switch typ {
	case "bool":
		b, ok := value.(bool)
		if !ok {
			return nil, status.New(status.KindRequestParse, "bool value required for type bool", nil)
		}
		if b {
			return leftPad32([]byte{1}), nil
		}
		return leftPad32(nil), nil
	case "address":
		addr, ok := value.([]byte)
		if !ok || len(addr) != 20 {
			return nil, status.New(status.KindRequestParse, "20-byte value required for type address", nil)
		}
		return leftPad32(addr), nil
	case "bytes32":
		b, ok := value.([]byte)
		if !ok || len(b) > 32 {
			return nil, status.New(status.KindRequestParse, "<=32-byte value required for type bytes32", nil)
		}
		return rightPad32(b), nil
	default:
		if n, signed := uintBits(typ); n > 0 {
			v, err := toBigInt(value)
			if err != nil {
				return nil, err
			}
			if signed {
				return int256Word(v), nil
			}
			return uint256Word(v), nil
		}
	}
	return nil, status.New(status.KindRequestParse, fmt.Sprintf("unsupported static abi type %q", typ), nil)
}

func encodeDynamic(typ string, value interface{}) ([]byte, error) {
	if elem, _, _, ok := isArrayType(typ); ok {
		return encodeArray(elem, value)
	}
	switch typ {
	case "string":
		s, ok := value.(string)
		if !ok {
			return nil, status.New(status.KindRequestParse, "string value required for type string", nil)
		}
		return encodeBytesLike([]byte(s)), nil
	case "bytes":
		b, ok := value.([]byte)
		if !ok {
			return nil, status.New(status.KindRequestParse, "[]byte value required for type bytes", nil)
		}
		return encodeBytesLike(b), nil
	}
	return nil, status.New(status.KindRequestParse, fmt.Sprintf("unsupported dynamic abi type %q", typ), nil)
}

func encodeBytesLike(b []byte) []byte {
	out := uint256Word(big.NewInt(int64(len(b))))
	return append(out, rightPad32(b)...)
}

// encodeArray renders a length word followed by either packed static
// elements or (for a dynamic element type) per-element offsets and payloads
// (spec.md §6).
func encodeArray(elemType string, value interface{}) ([]byte, error) {
	values, ok := value.([]interface{})
	if !ok {
		return nil, status.New(status.KindRequestParse, "[]interface{} value required for an array type", nil)
	}
	out := uint256Word(big.NewInt(int64(len(values))))

	if !isDynamicType(elemType) {
		for _, v := range values {
			word, err := encodeStatic(elemType, v)
			if err != nil {
				return nil, err
			}
			out = append(out, word...)
		}
		return out, nil
	}

	elemTails := make([][]byte, len(values))
	for i, v := range values {
		tail, err := encodeDynamic(elemType, v)
		if err != nil {
			return nil, err
		}
		elemTails[i] = tail
	}
	headLen := len(values) * 32
	offset := headLen
	var heads, tails []byte
	for _, tail := range elemTails {
		heads = append(heads, uint256Word(big.NewInt(int64(offset)))...)
		tails = append(tails, tail...)
		offset += len(tail)
	}
	out = append(out, heads...)
	out = append(out, tails...)
	return out, nil
}

func uintBits(typ string) (bits int, signed bool) {
	var n int
	if _, err := fmt.Sscanf(typ, "uint%d", &n); err == nil && n > 0 {
		return n, false
	}
	if _, err := fmt.Sscanf(typ, "int%d", &n); err == nil && n > 0 {
		return n, true
	}
	if typ == "uint" {
		return 256, false
	}
	if typ == "int" {
		return 256, true
	}
	return 0, false
}

func toBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	default:
		return nil, status.New(status.KindRequestParse, "expected a numeric value", nil)
	}
}
