package status

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis"
	"github.com/stretchr/testify/require"
)

func scheduleDescriptor(
	t *testing.T,
	client *redis.Client,
	descriptor JobDescriptor,
	at time.Time,
) {
	descriptorJSON, err := descriptor.ToJSON()
	require.NoError(t, err)
	require.NoError(
		t,
		client.ZAdd(
			"schedule",
			redis.Z{
				Score:  float64(at.Unix()),
				Member: string(descriptorJSON),
			},
		).Err(),
	)
}

func TestDeleteAndUnscheduleWithExactTime(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)
	scanner := NewScheduleScanner(provider, store, nil)

	at := time.Now().Add(time.Hour)
	scheduleDescriptor(
		t,
		provider.Client(),
		JobDescriptor{ID: "job-42", Queue: "default"},
		at,
	)
	require.NoError(t, store.StoreStatus("job-42", StatusQueued, nil))

	found, err := scanner.DeleteAndUnschedule("job-42", &at)
	require.NoError(t, err)
	require.True(t, found)

	// Both the schedule entry and the status record are gone
	require.Equal(t, int64(0), provider.Client().ZCard("schedule").Val())
	record, err := store.ReadHashForID("job-42")
	require.NoError(t, err)
	require.Empty(t, record)

	// A second cancellation finds nothing and mutates nothing
	found, err = scanner.DeleteAndUnschedule("job-42", &at)
	require.NoError(t, err)
	require.False(t, found)
}

func TestDeleteAndUnscheduleWithoutTime(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)
	scanner := NewScheduleScanner(provider, store, nil)

	scheduleDescriptor(
		t,
		provider.Client(),
		JobDescriptor{ID: "job-42"},
		time.Now().Add(time.Hour),
	)

	// Without the scheduled time the whole schedule is scanned
	found, err := scanner.DeleteAndUnschedule("job-42", nil)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(0), provider.Client().ZCard("schedule").Val())
}

// One job's ID being a prefix of another's must never cancel the wrong job.
func TestDeleteAndUnscheduleIDBoundary(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)
	scanner := NewScheduleScanner(provider, store, nil)

	at := time.Now().Add(time.Hour)
	scheduleDescriptor(t, provider.Client(), JobDescriptor{ID: "abc"}, at)
	scheduleDescriptor(t, provider.Client(), JobDescriptor{ID: "abc123"}, at)

	found, err := scanner.DeleteAndUnschedule("abc", nil)
	require.NoError(t, err)
	require.True(t, found)

	members, err := provider.Client().ZRange("schedule", 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, members, 1)
	remaining, err := JobDescriptorFromJSON([]byte(members[0]))
	require.NoError(t, err)
	require.Equal(t, "abc123", remaining.ID)
}

// A member that contains the ID pattern but doesn't decode to a matching
// descriptor is a false candidate and must survive the scan.
func TestDeleteAndUnscheduleRejectsFalseCandidates(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)
	scanner := NewScheduleScanner(provider, store, nil)

	at := time.Now().Add(time.Hour)
	require.NoError(
		t,
		provider.Client().ZAdd(
			"schedule",
			redis.Z{
				Score:  float64(at.Unix()),
				Member: `not json but contains "id":"abc" anyway`,
			},
		).Err(),
	)
	scheduleDescriptor(t, provider.Client(), JobDescriptor{ID: "abc"}, at)

	found, err := scanner.DeleteAndUnschedule("abc", nil)
	require.NoError(t, err)
	require.True(t, found)

	members, err := provider.Client().ZRange("schedule", 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Contains(t, members[0], "not json")
}

func TestDeleteAndUnschedulePaginates(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)
	var pageSize int64 = 10
	scanner := NewScheduleScanner(
		provider,
		store,
		&ScannerOptions{
			PageSize: &pageSize,
		},
	)

	at := time.Now().Add(time.Hour)
	for i := 0; i < 25; i++ {
		scheduleDescriptor(
			t,
			provider.Client(),
			JobDescriptor{ID: fmt.Sprintf("job-%d", i)},
			at.Add(time.Duration(i)*time.Second),
		)
	}

	// A match on the final, short page
	found, err := scanner.DeleteAndUnschedule("job-24", nil)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(24), provider.Client().ZCard("schedule").Val())

	// No match at all scans every page and reports a normal miss
	found, err = scanner.DeleteAndUnschedule("job-999", nil)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, int64(24), provider.Client().ZCard("schedule").Val())
}

func TestDeleteAndUnscheduleEmptySchedule(t *testing.T) {
	mr, provider := newTestProvider(t)
	defer mr.Close()
	store := NewStore(provider, nil)
	scanner := NewScheduleScanner(provider, store, nil)

	found, err := scanner.DeleteAndUnschedule("job-42", nil)
	require.NoError(t, err)
	require.False(t, found)
}
