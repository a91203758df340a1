package client

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/internal/executor"
	"github.com/ledgerkit/ledgersdk-go/internal/obslog"
	"github.com/ledgerkit/ledgersdk-go/status"
)

// Client exclusively owns its network view and health map (spec.md §3
// "Ownership"); transactions and queries only ever borrow an immutable
// snapshot when freezing. Node state is mutated under the short
// pick/record critical section executor.Run drives; no lock is ever held
// across I/O (spec.md §5).
type Client struct {
	mu      sync.Mutex
	view    NetworkView
	cursor  int
	health  *healthTracker
	factory ChannelFactory

	Operator       *Operator
	RequestTimeout time.Duration
	Log            *obslog.Logger
}

// New builds a Client from cfg. factory may be nil for tests that only
// exercise node selection (no real RPCs are attempted).
func New(cfg Config, factory ChannelFactory) *Client {
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		view:           cfg.Network,
		health:         newHealthTracker(),
		factory:        factory,
		Operator:       cfg.Operator,
		RequestTimeout: timeout,
		Log:            obslog.New(io.Discard),
	}
}

// SetOperator installs the default (account, signer) pair used to pay for
// and sign requests.
func (c *Client) SetOperator(op Operator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Operator = &op
}

// LedgerID returns the bound ledger id bytes.
func (c *Client) LedgerID() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.LedgerID
}

// SetNodes replaces the known node set.
func (c *Client) SetNodes(nodes []NodeEndpoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Nodes = nodes
	c.health = newHealthTracker()
	c.cursor = 0
}

// HealthyNodeAccountIds returns the node account ids currently eligible for
// selection, sorted ascending — the ordering freezeCommon uses when a
// transaction's node list is left unset (spec.md §4.5).
func (c *Client) HealthyNodeAccountIds() []entity.AccountId {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []entity.AccountId
	for i, n := range c.view.Nodes {
		if c.health.isHealthy(i) {
			out = append(out, n.AccountId)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Shard != b.Shard {
			return a.Shard < b.Shard
		}
		if a.Realm != b.Realm {
			return a.Realm < b.Realm
		}
		return a.Num < b.Num
	})
	return out
}

// Pick implements executor.Picker: a rotated round-robin over healthy nodes.
func (c *Client) Pick() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.view.Nodes)
	if n == 0 {
		return 0, false
	}
	for i := 0; i < n; i++ {
		idx := (c.cursor + i) % n
		if c.health.isHealthy(idx) {
			c.cursor = (idx + 1) % n
			return idx, true
		}
	}
	return 0, false
}

// RecordSuccess implements executor.Picker.
func (c *Client) RecordSuccess(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.health.recordSuccess(idx)
}

// RecordFailure implements executor.Picker.
func (c *Client) RecordFailure(idx int, backoff time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.health.recordFailure(idx, backoff)
}

// NodeAt returns the endpoint at idx, as selected by Pick.
func (c *Client) NodeAt(idx int) (NodeEndpoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx < 0 || idx >= len(c.view.Nodes) {
		return NodeEndpoint{}, false
	}
	return c.view.Nodes[idx], true
}

// Channel opens (or reuses) a NodeChannel for the node at idx.
func (c *Client) Channel(idx int) (NodeChannel, error) {
	node, ok := c.NodeAt(idx)
	if !ok {
		return nil, status.NodeAccountUnknown()
	}
	if c.factory == nil {
		return nil, status.New(status.KindRequestParse, "client has no channel factory configured", nil)
	}
	return c.factory.Channel(node.Address)
}

var _ executor.Picker = (*Client)(nil)

// Execute runs attempt against the client's node set with the client's
// default request timeout, the shared entry point every transaction/query
// execution goes through (spec.md §4.7).
func (c *Client) Execute(ctx context.Context, attempt executor.AttemptFunc) error {
	return executor.Run(ctx, c.RequestTimeout, c, attempt)
}
