package shop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var sampleLines = []LineItem{
	{ProductID: 1, Name: "Wireless Bluetooth Headphones", Category: "Electronics", PriceCents: 7999, Quantity: 2},
	{ProductID: 6, Name: "Stainless Steel Water Bottle", Category: "Home", PriceCents: 2499, Quantity: 1},
}

// exerciseStore checks the contract every CartStore implementation shares.
func exerciseStore(t *testing.T, store CartStore) {
	ctx := context.Background()

	lines, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, store.Save(ctx, sampleLines))
	lines, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleLines, lines)

	// a reloaded cart reproduces lines and totals
	cart, err := LoadCart(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, sampleLines, cart.Lines())
	assert.Equal(t, int64(19977), cart.Totals().TotalCents)

	require.NoError(t, store.Save(ctx, nil))
	lines, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, store.Save(ctx, sampleLines))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	lines, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cart.json")
	store := NewFileStore(path)
	assert.Equal(t, path, store.Path())

	exerciseStore(t, store)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorContains(t, err, "failed to parse cart file")
}

func TestRedisStore(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	store := NewRedisStore(rdb, "session-1", 0)
	assert.Equal(t, "shopping-cart:session-1", store.Key())

	exerciseStore(t, store)

	t.Run("sessions are isolated", func(t *testing.T) {
		other := NewRedisStore(rdb, "session-2", 0)
		require.NoError(t, store.Save(ctx, sampleLines))

		lines, err := other.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("stored as JSON", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleLines[:1]))
		raw, err := rdb.Get(ctx, store.Key()).Result()
		require.NoError(t, err)
		assert.JSONEq(t, `[{"productId":1,"name":"Wireless Bluetooth Headphones","category":"Electronics","priceCents":7999,"quantity":2}]`, raw)
	})
}
