package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// NftId pairs a TokenId with a serial number, per spec.md §3.
type NftId struct {
	TokenId TokenId
	Serial  uint64
}

// NewNftId pairs token with serial.
func NewNftId(token TokenId, serial uint64) NftId {
	return NftId{TokenId: token, Serial: serial}
}

// ParseNftId accepts "tokenId@serial" or "tokenId/serial", where tokenId is
// any form ParseTokenId accepts.
func ParseNftId(s string) (NftId, error) {
	s = strings.TrimSpace(s)
	sep := "@"
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		sep = "/"
		i = strings.LastIndexByte(s, '/')
	}
	if i < 0 {
		return NftId{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed nft id %q: expected tokenId%sserial", s, sep), nil)
	}
	tokenPart, serialPart := s[:i], s[i+1:]
	token, err := ParseTokenId(tokenPart)
	if err != nil {
		return NftId{}, err
	}
	serial, err := strconv.ParseUint(serialPart, 10, 64)
	if err != nil {
		return NftId{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed nft id %q: bad serial", s), err)
	}
	return NftId{TokenId: token, Serial: serial}, nil
}

// String renders "tokenId@serial", the canonical NFT id form.
func (n NftId) String() string {
	return fmt.Sprintf("%s@%d", n.TokenId.String(), n.Serial)
}

// Equal compares both the token id and the serial.
func (n NftId) Equal(other NftId) bool {
	return n.TokenId.Equal(other.TokenId.Id) && n.Serial == other.Serial
}
