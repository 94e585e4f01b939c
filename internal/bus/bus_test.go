package bus

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawPayload struct {
	Character string `json:"character"`
	Count     int    `json:"count"`
}

func setupRedisBus(t *testing.T) (Bus, *redis.Client) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	b, err := NewRedis(&RedisConfig{RedisClient: client})
	require.NoError(t, err)

	return b, client
}

func TestNewPacket(t *testing.T) {
	t.Run("encodes payload", func(t *testing.T) {
		packet, err := NewPacket("p-1", PacketDrawRequest, "alice", "gm", &drawPayload{Character: "c1", Count: 2})
		require.NoError(t, err)
		assert.JSONEq(t, `{"character":"c1","count":2}`, string(packet.Payload))

		var decoded drawPayload
		require.NoError(t, packet.Decode(&decoded))
		assert.Equal(t, 2, decoded.Count)
	})

	t.Run("rejects missing recipient", func(t *testing.T) {
		_, err := NewPacket("p-1", PacketDrawRequest, "alice", "", nil)
		assert.ErrorIs(t, err, ErrNoRecipient)
	})
}

func TestPacketChannel(t *testing.T) {
	assert.Equal(t, "heroactions:participant:gm-1:packets", PacketChannel("gm-1"))
}

func TestRedisBusDeliversToAddressee(t *testing.T) {
	b, _ := setupRedisBus(t)
	ctx := context.Background()

	gmSub, err := b.Subscribe(ctx, "gm")
	require.NoError(t, err)
	defer gmSub.Close()

	otherSub, err := b.Subscribe(ctx, "other")
	require.NoError(t, err)
	defer otherSub.Close()

	packet, err := NewPacket("p-1", PacketGiveRequest, "alice", "gm", map[string]string{"character": "c1"})
	require.NoError(t, err)
	require.NoError(t, b.Publish(ctx, packet))

	select {
	case received := <-gmSub.Packets():
		assert.Equal(t, "p-1", received.ID)
		assert.Equal(t, PacketGiveRequest, received.Type)
		assert.Equal(t, "alice", received.From)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for packet")
	}

	select {
	case received := <-otherSub.Packets():
		t.Fatalf("unexpected packet for other participant: %s", received.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRedisBusReportsBadPackets(t *testing.T) {
	b, client := setupRedisBus(t)
	ctx := context.Background()

	sub, err := b.Subscribe(ctx, "gm")
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, client.Publish(ctx, PacketChannel("gm"), "not json").Err())

	select {
	case err := <-sub.Errors():
		assert.Contains(t, err.Error(), "failed to unmarshal packet")
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for error")
	}
}

func TestRedisBusCloseIsIdempotent(t *testing.T) {
	b, _ := setupRedisBus(t)

	sub, err := b.Subscribe(context.Background(), "gm")
	require.NoError(t, err)

	assert.NoError(t, sub.Close())
	assert.NoError(t, sub.Close())

	select {
	case _, ok := <-sub.Packets():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("packets channel not closed")
	}
}

func TestMemoryBus(t *testing.T) {
	ctx := context.Background()

	t.Run("queues packets in publish order", func(t *testing.T) {
		m := NewMemory()
		for _, id := range []string{"a", "b", "c"} {
			packet, err := NewPacket(id, PacketTradeRequest, "x", "y", nil)
			require.NoError(t, err)
			require.NoError(t, m.Publish(ctx, packet))
		}

		assert.Len(t, m.Pending(), 3)
		for _, id := range []string{"a", "b", "c"} {
			packet, ok := m.Next()
			require.True(t, ok)
			assert.Equal(t, id, packet.ID)
		}

		_, ok := m.Next()
		assert.False(t, ok)
	})

	t.Run("delivers to subscriber", func(t *testing.T) {
		m := NewMemory()
		sub, err := m.Subscribe(ctx, "y")
		require.NoError(t, err)
		defer sub.Close()

		packet, err := NewPacket("a", PacketTradeAccept, "x", "y", nil)
		require.NoError(t, err)
		require.NoError(t, m.Publish(ctx, packet))

		select {
		case received := <-sub.Packets():
			assert.Equal(t, "a", received.ID)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for packet")
		}
		assert.Empty(t, m.Pending())
	})

	t.Run("rejects packet without recipient", func(t *testing.T) {
		m := NewMemory()
		assert.ErrorIs(t, m.Publish(ctx, &Packet{ID: "a"}), ErrNoRecipient)
	})
}
