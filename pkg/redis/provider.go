package redis

import (
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// Provider is an interface for components that supply a Redis client on
// demand. Components that talk to Redis accept a Provider at construction
// time instead of resolving a process-wide client themselves, so callers
// choose the pooling strategy.
type Provider interface {
	// Client returns a Redis client. The client manages its own connection
	// pool; callers must not close it.
	Client() *redis.Client
}

type staticProvider struct {
	client *redis.Client
}

// NewStaticProvider returns a Provider that always supplies the given client.
// This is the pooled strategy: the client's internal pool bounds concurrent
// connections.
func NewStaticProvider(client *redis.Client) Provider {
	return &staticProvider{
		client: client,
	}
}

func (s *staticProvider) Client() *redis.Client {
	return s.client
}

// NewSingletonProvider returns a Provider whose client holds at most one
// connection. Useful for components, like pub/sub watchers, that dedicate a
// connection anyway.
func NewSingletonProvider(opts *redis.Options) Provider {
	opts.PoolSize = 1
	return &staticProvider{
		client: redis.NewClient(opts),
	}
}

// ProviderFromEnvironment returns a Provider wrapping a client configured
// from environment variables.
func ProviderFromEnvironment() (Provider, error) {
	client, err := Client()
	if err != nil {
		return nil, errors.Wrap(err, "error creating redis client")
	}
	return NewStaticProvider(client), nil
}
