package consent

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// REDIS_ADDR tanımlı değilse atlanır
func TestRedisLog(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	l := NewRedisLog(client, 3)
	l.prefix = "consent:test:"
	visitor := t.Name()
	defer l.Clear(ctx, visitor)

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Append(ctx, visitor, Event{Type: fmt.Sprintf("e%d", i)}))
	}

	events, err := l.List(ctx, visitor)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "e2", events[0].Type)
	assert.Equal(t, "e4", events[2].Type)

	require.NoError(t, l.Clear(ctx, visitor))
	events, err = l.List(ctx, visitor)
	require.NoError(t, err)
	assert.Empty(t, events)
}
