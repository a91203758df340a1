package client

import "context"

// NodeChannel is the minimal wire abstraction the core consumes (spec.md
// §6): one method per RPC kind, each taking a pre-serialized request and
// returning a pre-serialized response or a transport error. Production
// transports (HTTP/2 binary RPC) are an external collaborator; only the
// interface lives here.
type NodeChannel interface {
	SubmitTransaction(ctx context.Context, body []byte) ([]byte, error)
	SubmitQuery(ctx context.Context, body []byte) ([]byte, error)
}

// ChannelFactory builds (or reuses) a NodeChannel for a node address.
type ChannelFactory interface {
	Channel(address string) (NodeChannel, error)
}
