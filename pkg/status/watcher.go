package status

import (
	"context"

	jobtrackRedis "github.com/mwhitten/jobtrack/pkg/redis"
	"github.com/pkg/errors"
)

// HandlerFn is the signature for functions a Watcher invokes with the ID of
// each job whose status was written.
type HandlerFn func(jobID string)

// Watcher is an interface for components that subscribe to the notification
// channel the Store publishes on.
type Watcher interface {
	// Watch subscribes to the notification channel and invokes the handler
	// once per published job ID. It blocks until the context is canceled or
	// the subscription fails, and returns the reason.
	Watch(ctx context.Context, handler HandlerFn) error
}

// watcher is a Redis-based implementation of the Watcher interface.
type watcher struct {
	provider jobtrackRedis.Provider
	options  WatcherOptions
}

// NewWatcher returns a new Redis-based implementation of the Watcher
// interface.
func NewWatcher(
	provider jobtrackRedis.Provider,
	options *WatcherOptions,
) Watcher {
	if options == nil {
		options = &WatcherOptions{}
	}
	options.applyDefaults()
	return &watcher{
		provider: provider,
		options:  *options,
	}
}

func (w *watcher) Watch(ctx context.Context, handler HandlerFn) error {
	pubsub := w.provider.Client().Subscribe(w.options.NotificationChannel)
	defer pubsub.Close() // nolint: errcheck

	// Confirm the subscription before consuming so a failure surfaces
	// immediately instead of as a silent, empty channel.
	if _, err := pubsub.Receive(); err != nil {
		return errors.Wrapf(
			err,
			"error subscribing to channel %q",
			w.options.NotificationChannel,
		)
	}

	messageCh := pubsub.Channel()
	for {
		select {
		case message, ok := <-messageCh:
			if !ok {
				return errors.Errorf(
					"subscription to channel %q closed unexpectedly",
					w.options.NotificationChannel,
				)
			}
			handler(message.Payload)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
