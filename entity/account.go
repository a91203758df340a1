package entity

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// AccountId identifies an account by (shard, realm, num), by a public-key
// alias, or by a 20-byte EVM address — exactly one of the three, per
// spec.md §3.
type AccountId struct {
	Id
	// Alias holds the raw bytes of an aliased public key, if this account is
	// addressed by alias rather than by num.
	Alias []byte
	// EvmAddress holds a 20-byte EVM address, if this account is addressed
	// that way rather than by num or alias.
	EvmAddress []byte
}

// NewAccountId constructs a plain num-addressed AccountId.
func NewAccountId(shard, realm, num uint64) AccountId {
	return AccountId{Id: New(shard, realm, num)}
}

// NewAccountIdWithEvmAddress constructs an EVM-address-addressed AccountId.
func NewAccountIdWithEvmAddress(shard, realm uint64, evmAddress []byte) (AccountId, error) {
	if len(evmAddress) != 20 {
		return AccountId{}, status.New(status.KindBasicParse, fmt.Sprintf("evm address must be 20 bytes, got %d", len(evmAddress)), nil)
	}
	addr := make([]byte, 20)
	copy(addr, evmAddress)
	return AccountId{Id: Id{Shard: shard, Realm: realm}, EvmAddress: addr}, nil
}

// NewAccountIdWithAlias constructs an alias-addressed AccountId.
func NewAccountIdWithAlias(shard, realm uint64, alias []byte) AccountId {
	a := make([]byte, len(alias))
	copy(a, alias)
	return AccountId{Id: Id{Shard: shard, Realm: realm}, Alias: a}
}

// ParseAccountId accepts every form Id.Parse accepts, plus
// "shard.realm.0x<40-hex-digit-evm-address>".
func ParseAccountId(s string) (AccountId, error) {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		last := s[i+1:]
		if strings.HasPrefix(last, "0x") || isHexAddress(last) {
			hexPart := strings.TrimPrefix(last, "0x")
			addr, err := hex.DecodeString(hexPart)
			if err != nil || len(addr) != 20 {
				return AccountId{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed account id %q", s), err)
			}
			prefix := s[:i]
			parts := strings.Split(prefix, ".")
			if len(parts) != 2 {
				return AccountId{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed account id %q", s), nil)
			}
			id, err := Parse(strings.Join(parts, ".") + ".0")
			if err != nil {
				return AccountId{}, err
			}
			return AccountId{Id: Id{Shard: id.Shard, Realm: id.Realm}, EvmAddress: addr}, nil
		}
	}
	id, err := Parse(s)
	if err != nil {
		return AccountId{}, err
	}
	return AccountId{Id: id}, nil
}

func isHexAddress(s string) bool {
	if len(s) != 40 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// String renders the account id in whichever of the three representations
// is populated.
func (a AccountId) String() string {
	switch {
	case a.EvmAddress != nil:
		return fmt.Sprintf("%d.%d.0x%s", a.Shard, a.Realm, hex.EncodeToString(a.EvmAddress))
	case a.Alias != nil:
		return fmt.Sprintf("%d.%d.%s", a.Shard, a.Realm, hex.EncodeToString(a.Alias))
	default:
		return a.Id.String()
	}
}

// ToStringWithChecksum attaches a checksum to the num-addressed form only;
// alias- and EVM-address-addressed ids have no checksum segment.
func (a AccountId) ToStringWithChecksum(ledgerID []byte) string {
	if a.EvmAddress != nil || a.Alias != nil {
		return a.String()
	}
	return a.Id.ToStringWithChecksum(ledgerID)
}
