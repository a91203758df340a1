package rlp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSingleByte(t *testing.T) {
	assert.Equal(t, []byte{0x00}, Encode(String([]byte{0x00})))
	assert.Equal(t, []byte{0x7f}, Encode(String([]byte{0x7f})))
}

func TestEncodeShortString(t *testing.T) {
	got := Encode(String([]byte("dog")))
	assert.Equal(t, []byte{0x83, 'd', 'o', 'g'}, got)
}

func TestEncodeEmptyString(t *testing.T) {
	assert.Equal(t, []byte{0x80}, Encode(String(nil)))
}

func TestEncodeLongString(t *testing.T) {
	payload := bytes.Repeat([]byte{'a'}, 56)
	got := Encode(String(payload))
	assert.Equal(t, byte(0xb7+1), got[0])
	assert.Equal(t, byte(56), got[1])
	assert.Equal(t, payload, got[2:])
}

func TestEncodeList(t *testing.T) {
	got := Encode(List(String([]byte("cat")), String([]byte("dog"))))
	assert.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, got)
}

func TestEncodeEmptyList(t *testing.T) {
	assert.Equal(t, []byte{0xc0}, Encode(List()))
}

func TestRoundTripNestedList(t *testing.T) {
	it := List(String([]byte("a")), List(String([]byte("b")), String(bytes.Repeat([]byte{'x'}, 100))))
	encoded := Encode(it)
	decoded, err := DecodeAll(encoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, Encode(decoded))
}

func TestDecodeRejectsTruncatedShortString(t *testing.T) {
	_, _, err := Decode([]byte{0x83, 'd', 'o'})
	assert.Error(t, err)
}

func TestDecodeRejectsTruncatedLongLength(t *testing.T) {
	_, _, err := Decode([]byte{0xb8, 56})
	assert.Error(t, err)
}

func TestDecodeRejectsNonCanonicalLongLength(t *testing.T) {
	// Length 10 should have used the short-string form (prefix < 0xb8), not
	// the long form with an explicit length-of-length byte.
	_, _, err := Decode([]byte{0xb8, 10, 'x', 'x', 'x', 'x', 'x', 'x', 'x', 'x', 'x', 'x'})
	assert.Error(t, err)
}

func TestDecodeRejectsLeadingZeroLength(t *testing.T) {
	_, _, err := Decode([]byte{0xb9, 0x00, 0x38})
	assert.Error(t, err)
}

func TestDecodeEmptyInput(t *testing.T) {
	_, _, err := Decode(nil)
	assert.Error(t, err)
}
