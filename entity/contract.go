package entity

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// ContractId identifies a contract by (shard, realm, num) or by a 20-byte
// EVM address, mutually exclusive, per spec.md §3.
type ContractId struct {
	Id
	EvmAddress []byte
}

// NewContractId constructs a plain num-addressed ContractId.
func NewContractId(shard, realm, num uint64) ContractId {
	return ContractId{Id: New(shard, realm, num)}
}

// NewContractIdWithEvmAddress constructs an EVM-address-addressed ContractId.
func NewContractIdWithEvmAddress(shard, realm uint64, evmAddress []byte) (ContractId, error) {
	if len(evmAddress) != 20 {
		return ContractId{}, status.New(status.KindBasicParse, fmt.Sprintf("evm address must be 20 bytes, got %d", len(evmAddress)), nil)
	}
	addr := make([]byte, 20)
	copy(addr, evmAddress)
	return ContractId{Id: Id{Shard: shard, Realm: realm}, EvmAddress: addr}, nil
}

// ParseContractId accepts every form Id.Parse accepts, plus
// "shard.realm.0x<40-hex-digit-evm-address>".
func ParseContractId(s string) (ContractId, error) {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		last := s[i+1:]
		if strings.HasPrefix(last, "0x") || isHexAddress(last) {
			hexPart := strings.TrimPrefix(last, "0x")
			addr, err := hex.DecodeString(hexPart)
			if err != nil || len(addr) != 20 {
				return ContractId{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed contract id %q", s), err)
			}
			prefix := s[:i]
			parts := strings.Split(prefix, ".")
			if len(parts) != 2 {
				return ContractId{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed contract id %q", s), nil)
			}
			id, err := Parse(strings.Join(parts, ".") + ".0")
			if err != nil {
				return ContractId{}, err
			}
			return ContractId{Id: Id{Shard: id.Shard, Realm: id.Realm}, EvmAddress: addr}, nil
		}
	}
	id, err := Parse(s)
	if err != nil {
		return ContractId{}, err
	}
	return ContractId{Id: id}, nil
}

// String renders the contract id in whichever representation is populated.
func (c ContractId) String() string {
	if c.EvmAddress != nil {
		return fmt.Sprintf("%d.%d.0x%s", c.Shard, c.Realm, hex.EncodeToString(c.EvmAddress))
	}
	return c.Id.String()
}

// ToStringWithChecksum attaches a checksum to the num-addressed form only.
func (c ContractId) ToStringWithChecksum(ledgerID []byte) string {
	if c.EvmAddress != nil {
		return c.String()
	}
	return c.Id.ToStringWithChecksum(ledgerID)
}
