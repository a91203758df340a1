package transaction

import (
	"context"
	"testing"

	"github.com/ledgerkit/ledgersdk-go/client"
	"github.com/ledgerkit/ledgersdk-go/crypto"
	"github.com/ledgerkit/ledgersdk-go/entity"
	"github.com/ledgerkit/ledgersdk-go/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okChannelFactory() client.ChannelFactory {
	resp := wire.Response{Status: wire.StatusOk}.Encode()
	return client.NewFakeChannelFactory(client.NewFakeChannel(
		func(ctx context.Context, body []byte) ([]byte, error) { return resp, nil },
		func(ctx context.Context, body []byte) ([]byte, error) { return resp, nil },
	))
}

func TestTopicMessageSubmitChunking(t *testing.T) {
	tx := NewTopicMessageSubmitTransaction()
	tx.ChunkSize = 8
	tx.MaxChunks = 2
	require.NoError(t, tx.SetTopicId(entity.NewTopicId(0, 0, 314)))
	require.NoError(t, tx.SetMessage([]byte("Hello, world!")))
	assert.Equal(t, 2, tx.ChunkCount())
}

func TestTopicMessageSubmitTooManyChunksFails(t *testing.T) {
	tx := NewTopicMessageSubmitTransaction()
	tx.ChunkSize = 8
	tx.MaxChunks = 1
	require.NoError(t, tx.SetTopicId(entity.NewTopicId(0, 0, 314)))
	require.NoError(t, tx.SetMessage([]byte("Hello, world!")))

	c := operatorClient()
	err := tx.Freeze(c)
	assert.Error(t, err)
}

func TestTopicMessageSubmitFreezeSignExecuteRoundTrip(t *testing.T) {
	key, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	c := client.New(client.NewConfig(client.ForMainnet()), okChannelFactory())
	c.SetNodes([]client.NodeEndpoint{
		{AccountId: entity.NewAccountId(0, 0, 3), Address: "node3:50211"},
		{AccountId: entity.NewAccountId(0, 0, 4), Address: "node4:50211"},
	})
	c.SetOperator(client.Operator{AccountId: entity.NewAccountId(0, 0, 1001), Key: key})

	tx := NewTopicMessageSubmitTransaction()
	tx.ChunkSize = 8
	tx.MaxChunks = 2
	require.NoError(t, tx.SetTopicId(entity.NewTopicId(0, 0, 314)))
	require.NoError(t, tx.SetMessage([]byte("Hello, world!")))
	require.NoError(t, tx.Freeze(c))
	require.NoError(t, SignWith(tx, key))

	require.NoError(t, tx.Execute(context.Background(), c))

	ids, bodies, sigSets, err := TopicMessageSubmitFromBytes(tx.ToBytes())
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.Len(t, bodies, 2)
	require.Len(t, sigSets, 2)
	for _, sigs := range sigSets {
		assert.Len(t, sigs, 1)
	}
	assert.NotEqual(t, ids[0].ValidStart, ids[1].ValidStart)
}

func TestTopicMessageSubmitAbortsOnTerminalChunkFailure(t *testing.T) {
	key, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	failing := wire.Response{Status: wire.StatusInvalidTransaction}.Encode()
	calls := 0
	c := client.New(client.NewConfig(client.ForMainnet()), client.NewFakeChannelFactory(client.NewFakeChannel(
		func(ctx context.Context, body []byte) ([]byte, error) { calls++; return failing, nil },
		nil,
	)))
	c.SetNodes([]client.NodeEndpoint{{AccountId: entity.NewAccountId(0, 0, 3), Address: "node3:50211"}})
	c.SetOperator(client.Operator{AccountId: entity.NewAccountId(0, 0, 1001), Key: key})

	tx := NewTopicMessageSubmitTransaction()
	tx.ChunkSize = 8
	tx.MaxChunks = 2
	require.NoError(t, tx.SetTopicId(entity.NewTopicId(0, 0, 314)))
	require.NoError(t, tx.SetMessage([]byte("Hello, world!")))
	require.NoError(t, tx.Freeze(c))
	require.NoError(t, SignWith(tx, key))

	err = tx.Execute(context.Background(), c)
	require.Error(t, err)
	idx, ok := ChunkIndex(err)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, calls)
}
