// Package abi implements the Solidity-style call-data codec named in
// spec.md §4.8/§6: a Keccak-256 function-selector builder, a call-data
// writer following the static/dynamic 32-byte-slot layout, and a matching
// return-value decoder.
package abi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Selector returns the first 4 bytes of Keccak-256("name(type0,type1,...)"),
// the standard Solidity function selector.
func Selector(name string, paramTypes []string) []byte {
	sig := fmt.Sprintf("%s(%s)", name, strings.Join(paramTypes, ","))
	hash := crypto.Keccak256([]byte(sig))
	return hash[:4]
}
