// Package entity implements the shard.realm.num entity-id family (spec.md
// §3/§4.1): the plain Id triplet, its checksum algorithm, and the
// AccountId/ContractId/TokenId/TopicId/FileId/ScheduleId/NftId variants.
package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// Id is the plain (shard, realm, num) triplet shared by every entity kind.
type Id struct {
	Shard, Realm, Num uint64
	// Checksum is the 5-letter checksum segment recorded from the input
	// string, if any; it is NOT validated until Validate is called against a
	// bound ledger id, per spec.md §4.1.
	Checksum string
}

// New constructs an Id with no checksum attached.
func New(shard, realm, num uint64) Id {
	return Id{Shard: shard, Realm: realm, Num: num}
}

// Parse accepts "num", "shard.realm.num", or "shard.realm.num-checksum".
func Parse(s string) (Id, error) {
	s = strings.TrimSpace(s)
	var checksum string
	if i := strings.IndexByte(s, '-'); i >= 0 {
		checksum = s[i+1:]
		s = s[:i]
		if len(checksum) != 5 {
			return Id{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed checksum segment in %q", s), nil)
		}
	}

	parts := strings.Split(s, ".")
	var shard, realm, num uint64
	var err error
	switch len(parts) {
	case 1:
		num, err = strconv.ParseUint(parts[0], 10, 64)
	case 3:
		shard, err = strconv.ParseUint(parts[0], 10, 64)
		if err == nil {
			realm, err = strconv.ParseUint(parts[1], 10, 64)
		}
		if err == nil {
			num, err = strconv.ParseUint(parts[2], 10, 64)
		}
	default:
		return Id{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed entity id %q", s), nil)
	}
	if err != nil {
		return Id{}, status.New(status.KindBasicParse, fmt.Sprintf("malformed entity id %q", s), err)
	}

	return Id{Shard: shard, Realm: realm, Num: num, Checksum: checksum}, nil
}

// String renders "shard.realm.num", with no checksum segment.
func (id Id) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// ToStringWithChecksum renders "shard.realm.num-checksum" against ledgerID.
func (id Id) ToStringWithChecksum(ledgerID []byte) string {
	return fmt.Sprintf("%s-%s", id.String(), Generate(id.Shard, id.Realm, id.Num, ledgerID))
}

// Validate checks id's recorded checksum segment (if any) against ledgerID.
// Absence of a checksum is accepted; a mismatch is a hard error.
func (id Id) Validate(ledgerID []byte) error {
	if id.Checksum == "" {
		return nil
	}
	want := Generate(id.Shard, id.Realm, id.Num, ledgerID)
	if want != id.Checksum {
		return status.BadEntityId(id.Shard, id.Realm, id.Num, want, id.Checksum)
	}
	return nil
}

// Equal compares the (shard, realm, num) triplet only; the checksum segment
// is metadata about how an id was spelled, not part of its identity.
func (id Id) Equal(other Id) bool {
	return id.Shard == other.Shard && id.Realm == other.Realm && id.Num == other.Num
}

// ToBytes RLP-encodes the triplet, providing the canonical byte-interchange
// form named in spec.md §6 (see SPEC_FULL.md §4.8 for why RLP is the chosen
// substrate for entity-id bytes).
func (id Id) ToBytes() []byte {
	return encodeTriplet(id.Shard, id.Realm, id.Num)
}

// FromBytesPlain is the inverse of ToBytes.
func FromBytesPlain(b []byte) (Id, error) {
	shard, realm, num, err := decodeTriplet(b)
	if err != nil {
		return Id{}, err
	}
	return Id{Shard: shard, Realm: realm, Num: num}, nil
}
