package status

import (
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis"
	"github.com/stretchr/testify/require"
)

func TestStoreForID(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)

	ttl := 5 * time.Minute
	err := store.StoreForID(
		"job-1",
		map[string]interface{}{
			"status":   "working",
			"progress": 42,
		},
		&ttl,
	)
	require.NoError(t, err)

	record, err := store.ReadHashForID("job-1")
	require.NoError(t, err)
	require.Equal(t, "working", record["status"])
	// Non-string values are coerced, not rejected
	require.Equal(t, "42", record["progress"])

	updateTime, err := strconv.ParseInt(record[FieldUpdateTime], 10, 64)
	require.NoError(t, err)
	require.InDelta(t, time.Now().Unix(), updateTime, 5)

	remaining := provider.Client().TTL(
		statusKeyName("jobtrack", "job-1"),
	).Val()
	require.True(t, remaining > 4*time.Minute)
	require.True(t, remaining <= ttl)
}

func TestStoreForIDMergesFields(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)

	require.NoError(
		t,
		store.StoreForID("job-1", map[string]interface{}{"a": "1"}, nil),
	)
	require.NoError(
		t,
		store.StoreForID("job-1", map[string]interface{}{"b": "2"}, nil),
	)

	record, err := store.ReadHashForID("job-1")
	require.NoError(t, err)
	require.Equal(t, "1", record["a"])
	require.Equal(t, "2", record["b"])
	require.Contains(t, record, FieldUpdateTime)
}

func TestStoreForIDPublishesNotification(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)

	pubsub := provider.Client().Subscribe("status_updates")
	defer pubsub.Close() // nolint: errcheck
	_, err := pubsub.Receive()
	require.NoError(t, err)

	require.NoError(t, store.StoreStatus("job-1", StatusQueued, nil))

	received, err := pubsub.ReceiveTimeout(2 * time.Second)
	require.NoError(t, err)
	message, ok := received.(*redis.Message)
	require.True(t, ok)
	require.Equal(t, "job-1", message.Payload)
}

func TestStoreStatusExpiration(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)

	ttl := time.Second
	require.NoError(t, store.StoreStatus("job-1", StatusFailed, &ttl))

	record, err := store.ReadHashForID("job-1")
	require.NoError(t, err)
	require.Equal(t, StatusFailed, record[FieldStatus])

	mr.FastForward(2 * time.Second)

	record, err = store.ReadHashForID("job-1")
	require.NoError(t, err)
	require.Empty(t, record)
}

func TestReadFieldForID(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)

	require.NoError(t, store.StoreStatus("job-1", StatusWorking, nil))

	value, err := store.ReadFieldForID("job-1", FieldStatus)
	require.NoError(t, err)
	require.Equal(t, StatusWorking, value)

	// Absent field and absent record both read as ""
	value, err = store.ReadFieldForID("job-1", "bogus")
	require.NoError(t, err)
	require.Empty(t, value)
	value, err = store.ReadFieldForID("bogus", FieldStatus)
	require.NoError(t, err)
	require.Empty(t, value)
}

func TestDeleteStatusIsIdempotent(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)

	require.NoError(t, store.StoreStatus("job-1", StatusStopped, nil))

	removed, err := store.DeleteStatus("job-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	removed, err = store.DeleteStatus("job-1")
	require.NoError(t, err)
	require.Equal(t, int64(0), removed)
}
