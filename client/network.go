package client

import "github.com/ledgerkit/ledgersdk-go/entity"

// NodeEndpoint pairs a node account with the address the core dispatches
// RPCs to.
type NodeEndpoint struct {
	AccountId entity.AccountId
	Address   string
}

// NetworkView is the immutable snapshot a Client holds of its known nodes
// and ledger-id (spec.md §3 "NetworkView"). Health state is mutable and
// lives alongside it in Client, not here.
type NetworkView struct {
	Nodes    []NodeEndpoint
	LedgerID []byte
}

// AccountIds returns the ordered list of node account ids.
func (v NetworkView) AccountIds() []entity.AccountId {
	out := make([]entity.AccountId, len(v.Nodes))
	for i, n := range v.Nodes {
		out[i] = n.AccountId
	}
	return out
}
