package client

import "context"

// fakeChannel is a deterministic in-memory NodeChannel: no real transport
// runs, the caller-supplied functions decide each response (spec.md §6:
// production transports are external collaborators; only the interface and
// a test fake belong in this module).
type fakeChannel struct {
	submitTransaction func(ctx context.Context, body []byte) ([]byte, error)
	submitQuery       func(ctx context.Context, body []byte) ([]byte, error)
}

func (f *fakeChannel) SubmitTransaction(ctx context.Context, body []byte) ([]byte, error) {
	if f.submitTransaction != nil {
		return f.submitTransaction(ctx, body)
	}
	return body, nil
}

func (f *fakeChannel) SubmitQuery(ctx context.Context, body []byte) ([]byte, error) {
	if f.submitQuery != nil {
		return f.submitQuery(ctx, body)
	}
	return body, nil
}

// NewFakeChannel builds a NodeChannel for tests. Either function may be nil,
// in which case the call echoes its request body back as the response.
func NewFakeChannel(
	submitTransaction func(ctx context.Context, body []byte) ([]byte, error),
	submitQuery func(ctx context.Context, body []byte) ([]byte, error),
) NodeChannel {
	return &fakeChannel{submitTransaction: submitTransaction, submitQuery: submitQuery}
}

// NewFakeChannelFactory builds a ChannelFactory that hands every address the
// same NodeChannel.
func NewFakeChannelFactory(ch NodeChannel) ChannelFactory {
	return &fakeChannelFactory{channel: ch}
}

type fakeChannelFactory struct {
	channel NodeChannel
}

func (f *fakeChannelFactory) Channel(address string) (NodeChannel, error) {
	return f.channel, nil
}
