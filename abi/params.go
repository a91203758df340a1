package abi

import (
	"fmt"
	"math/big"
	"strings"
)

// Param is one Solidity call-data argument: a type name (e.g. "uint256",
// "address", "bool", "bytes32", "string", "bytes", or "<type>[]"/"<type>[n]"
// for arrays, "<type>[n]" only with a dynamic element type) paired with its
// Go value.
type Param struct {
	Type  string
	Value interface{}
}

func isArrayType(t string) (elem string, fixedLen int, dynamic bool, ok bool) {
	i := strings.LastIndexByte(t, '[')
	if i < 0 || !strings.HasSuffix(t, "]") {
		return "", 0, false, false
	}
	elem = t[:i]
	inner := t[i+1 : len(t)-1]
	if inner == "" {
		return elem, 0, true, true
	}
	var n int
	if _, err := fmt.Sscanf(inner, "%d", &n); err != nil {
		return "", 0, false, false
	}
	return elem, n, false, true
}

// isDynamicType reports whether t occupies a variable-size tail slot
// (string, bytes, or a dynamic array) rather than a fixed 32-byte head slot.
func isDynamicType(t string) bool {
	switch t {
	case "string", "bytes":
		return true
	}
	if _, _, dynamic, ok := isArrayType(t); ok {
		if dynamic {
			return true
		}
		elem, _, _, _ := isArrayType(t)
		return isDynamicType(elem)
	}
	return false
}

func leftPad32(b []byte) []byte {
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

func rightPad32(b []byte) []byte {
	n := ((len(b) + 31) / 32) * 32
	if n == 0 {
		n = 32
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

func uint256Word(v *big.Int) []byte {
	return leftPad32(v.Bytes())
}

func int256Word(v *big.Int) []byte {
	if v.Sign() >= 0 {
		return leftPad32(v.Bytes())
	}
	// Two's complement over 256 bits.
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	twos := new(big.Int).Add(mod, v)
	return leftPad32(twos.Bytes())
}
