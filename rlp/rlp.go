// Package rlp implements recursive-length-prefix encoding, the wire
// substrate spec.md §4.8 names for Ethereum-style signed transactions and
// (per SPEC_FULL.md §4.8) for this module's entity-id and key toBytes forms.
package rlp

import (
	"fmt"
)

// Item is either a byte string (Bytes != nil, List == nil) or a list of
// items (List != nil, Bytes == nil). The zero Item is the empty string.
type Item struct {
	Bytes []byte
	List  []Item
}

// String constructs a byte-string Item.
func String(b []byte) Item { return Item{Bytes: b} }

// List constructs a list Item.
func List(items ...Item) Item {
	if items == nil {
		items = []Item{}
	}
	return Item{List: items}
}

// IsList reports whether it is a list item.
func (it Item) IsList() bool { return it.List != nil }

// Encode renders it according to spec.md §4.8's two-tier scheme: a single
// byte below 0x80 is itself; short strings/lists get a one-byte length
// prefix; long ones get a length-of-length prefix followed by the big-endian
// length.
func Encode(it Item) []byte {
	if !it.IsList() {
		return encodeString(it.Bytes)
	}
	var body []byte
	for _, child := range it.List {
		body = append(body, Encode(child)...)
	}
	return encodeHeader(body, 0xc0, 0xf7)
}

func encodeString(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	return encodeHeader(b, 0x80, 0xb7)
}

func encodeHeader(body []byte, shortBase, longBase byte) []byte {
	n := len(body)
	if n < 56 {
		out := make([]byte, 0, 1+n)
		out = append(out, shortBase+byte(n))
		return append(out, body...)
	}
	lenBytes := bigEndianMinimal(uint64(n))
	out := make([]byte, 0, 1+len(lenBytes)+n)
	out = append(out, longBase+byte(len(lenBytes)))
	out = append(out, lenBytes...)
	return append(out, body...)
}

func bigEndianMinimal(n uint64) []byte {
	if n == 0 {
		return []byte{0}
	}
	var buf [8]byte
	i := 8
	for n > 0 {
		i--
		buf[i] = byte(n)
		n >>= 8
	}
	return buf[i:]
}

// Decode parses the single top-level item at the start of b, returning the
// item and the number of bytes consumed. It rejects truncated input,
// oversized length prefixes, and non-canonical (leading-zero or
// short-form-eligible) length encodings.
func Decode(b []byte) (Item, int, error) {
	if len(b) == 0 {
		return Item{}, 0, fmt.Errorf("rlp: empty input")
	}
	prefix := b[0]

	switch {
	case prefix < 0x80:
		return Item{Bytes: b[0:1]}, 1, nil

	case prefix <= 0xb7:
		n := int(prefix - 0x80)
		if 1+n > len(b) {
			return Item{}, 0, fmt.Errorf("rlp: truncated short string")
		}
		return Item{Bytes: cloneOrEmpty(b[1 : 1+n])}, 1 + n, nil

	case prefix <= 0xbf:
		lenOfLen := int(prefix - 0xb7)
		n, consumed, err := decodeLength(b[1:], lenOfLen, 56)
		if err != nil {
			return Item{}, 0, err
		}
		start := 1 + consumed
		if start+n > len(b) {
			return Item{}, 0, fmt.Errorf("rlp: truncated long string")
		}
		return Item{Bytes: cloneOrEmpty(b[start : start+n])}, start + n, nil

	case prefix <= 0xf7:
		n := int(prefix - 0xc0)
		if 1+n > len(b) {
			return Item{}, 0, fmt.Errorf("rlp: truncated short list")
		}
		items, err := decodeListBody(b[1 : 1+n])
		if err != nil {
			return Item{}, 0, err
		}
		return Item{List: items}, 1 + n, nil

	default:
		lenOfLen := int(prefix - 0xf7)
		n, consumed, err := decodeLength(b[1:], lenOfLen, 56)
		if err != nil {
			return Item{}, 0, err
		}
		start := 1 + consumed
		if start+n > len(b) {
			return Item{}, 0, fmt.Errorf("rlp: truncated long list")
		}
		items, err := decodeListBody(b[start : start+n])
		if err != nil {
			return Item{}, 0, err
		}
		return Item{List: items}, start + n, nil
	}
}

func decodeLength(b []byte, lenOfLen int, minCanonical uint64) (int, int, error) {
	if lenOfLen == 0 || lenOfLen > 8 {
		return 0, 0, fmt.Errorf("rlp: invalid length-of-length %d", lenOfLen)
	}
	if lenOfLen > len(b) {
		return 0, 0, fmt.Errorf("rlp: truncated length prefix")
	}
	if b[0] == 0 {
		return 0, 0, fmt.Errorf("rlp: non-canonical length encoding (leading zero)")
	}
	var n uint64
	for i := 0; i < lenOfLen; i++ {
		n = n<<8 | uint64(b[i])
	}
	if n < minCanonical {
		return 0, 0, fmt.Errorf("rlp: non-canonical length encoding (should use short form)")
	}
	if n > uint64(^uint(0)>>1) {
		return 0, 0, fmt.Errorf("rlp: oversized length prefix")
	}
	return int(n), lenOfLen, nil
}

func decodeListBody(b []byte) ([]Item, error) {
	items := []Item{}
	offset := 0
	for offset < len(b) {
		it, n, err := Decode(b[offset:])
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		offset += n
	}
	return items, nil
}

func cloneOrEmpty(b []byte) []byte {
	if len(b) == 0 {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// DecodeAll decodes a single item and errors if trailing bytes remain.
func DecodeAll(b []byte) (Item, error) {
	it, n, err := Decode(b)
	if err != nil {
		return Item{}, err
	}
	if n != len(b) {
		return Item{}, fmt.Errorf("rlp: %d trailing bytes after decoded item", len(b)-n)
	}
	return it, nil
}
