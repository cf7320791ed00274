package status

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	jobtrackRedis "github.com/mwhitten/jobtrack/pkg/redis"
	"github.com/pkg/errors"
)

// Field names reserved for this layer's own use within a status record. Any
// other field belongs to the caller.
const (
	FieldStatus     = "status"
	FieldStop       = "stop"
	FieldUpdateTime = "update_time"
)

// Well-known status values. The status field is free-form; these are the
// values the job runtime conventionally writes at lifecycle transitions.
const (
	StatusQueued   = "queued"
	StatusWorking  = "working"
	StatusComplete = "complete"
	StatusFailed   = "failed"
	StatusStopped  = "stopped"
)

// Store is an interface for reading and writing per-job status records. A
// status record is a Redis hash with merge-on-write semantics: every write
// combines its fields into whatever is already recorded, refreshes the
// record's TTL, and announces the job's ID on the notification channel, all
// as one atomic batch. Absence of a record means "unknown or expired"-- the
// store cannot distinguish a job that never existed from one whose record
// expired.
type Store interface {
	// StoreForID merges the provided fields into the status record for the
	// specified job, stamping a fresh update_time. Values are coerced to
	// strings. A nil expiration applies the store's default. One notification
	// is published per call whether or not any value changed.
	StoreForID(
		id string,
		updates map[string]interface{},
		expiration *time.Duration,
	) error
	// StoreStatus records a new value for the reserved status field. Callers
	// typically supply an explicit expiration for terminal statuses so that
	// failed or stopped records linger, but nothing enforces that.
	StoreStatus(id string, status string, expiration *time.Duration) error
	// ReadFieldForID returns the value of a single field of the specified
	// job's status record, or "" if the record or field is absent.
	ReadFieldForID(id string, field string) (string, error)
	// ReadHashForID returns all fields of the specified job's status record.
	// The map is empty if the record is absent or expired.
	ReadHashForID(id string) (map[string]string, error)
	// DeleteStatus removes the specified job's status record, returning the
	// number of records removed (0 or 1). It is safe to call repeatedly.
	DeleteStatus(id string) (int64, error)
}

// store is a Redis-based implementation of the Store interface.
type store struct {
	provider jobtrackRedis.Provider
	options  StoreOptions
}

// NewStore returns a new Redis-based implementation of the Store interface.
func NewStore(
	provider jobtrackRedis.Provider,
	options *StoreOptions,
) Store {
	if options == nil {
		options = &StoreOptions{}
	}
	options.applyDefaults()
	return &store{
		provider: provider,
		options:  *options,
	}
}

func (s *store) StoreForID(
	id string,
	updates map[string]interface{},
	expiration *time.Duration,
) error {
	fields := make(map[string]interface{}, len(updates)+1)
	for field, value := range updates {
		fields[field] = coerceToString(value)
	}
	fields[FieldUpdateTime] = strconv.FormatInt(time.Now().Unix(), 10)

	ttl := *s.options.DefaultExpiration
	if expiration != nil {
		ttl = *expiration
	}

	key := statusKeyName(s.options.RedisPrefix, id)

	// One transactional batch so no reader can observe the updated hash
	// without its refreshed TTL, and no notification goes out for a write
	// that didn't land.
	pipeline := s.provider.Client().TxPipeline()
	pipeline.HMSet(key, fields)
	pipeline.Expire(key, ttl)
	pipeline.Publish(s.options.NotificationChannel, id)
	if _, err := pipeline.Exec(); err != nil {
		return errors.Wrapf(err, "error storing status fields for job %q", id)
	}

	return nil
}

func (s *store) StoreStatus(
	id string,
	status string,
	expiration *time.Duration,
) error {
	return s.StoreForID(
		id,
		map[string]interface{}{
			FieldStatus: status,
		},
		expiration,
	)
}

func (s *store) ReadFieldForID(id string, field string) (string, error) {
	value, err := s.provider.Client().HGet(
		statusKeyName(s.options.RedisPrefix, id),
		field,
	).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(
			err,
			"error reading field %q of status record for job %q",
			field,
			id,
		)
	}
	return value, nil
}

func (s *store) ReadHashForID(id string) (map[string]string, error) {
	record, err := s.provider.Client().HGetAll(
		statusKeyName(s.options.RedisPrefix, id),
	).Result()
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading status record for job %q",
			id,
		)
	}
	return record, nil
}

func (s *store) DeleteStatus(id string) (int64, error) {
	removed, err := s.provider.Client().Del(
		statusKeyName(s.options.RedisPrefix, id),
	).Result()
	if err != nil {
		return 0, errors.Wrapf(
			err,
			"error deleting status record for job %q",
			id,
		)
	}
	return removed, nil
}

func coerceToString(value interface{}) string {
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", value)
}
