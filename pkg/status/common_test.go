package status

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	jobtrackRedis "github.com/mwhitten/jobtrack/pkg/redis"
	"github.com/stretchr/testify/require"
)

// newTestProvider starts an in-process Redis and returns a provider wrapping
// a client connected to it. Callers are responsible for closing the returned
// miniredis instance.
func newTestProvider(
	t *testing.T,
) (*miniredis.Miniredis, jobtrackRedis.Provider) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(
		&redis.Options{
			Addr: mr.Addr(),
		},
	)
	return mr, jobtrackRedis.NewStaticProvider(client)
}
