package status

import "time"

// StoreOptions represents configuration options for a Store.
type StoreOptions struct {
	// RedisPrefix specifies a prefix for all status record keys to effect some
	// rudimentary namespacing within a single Redis database.
	RedisPrefix string

	// NotificationChannel specifies the pub/sub channel on which a job's ID is
	// published every time its status record is written.
	// Default: "status_updates"
	NotificationChannel string

	// DefaultExpiration specifies the time-to-live applied to a status record
	// by writes that do not supply an explicit expiration. Every write
	// refreshes the record's TTL.
	// Min: 1 second
	// Max: none
	// Default: 30 minutes
	DefaultExpiration *time.Duration
}

func (s *StoreOptions) applyDefaults() {
	if s.RedisPrefix == "" {
		s.RedisPrefix = "jobtrack"
	}

	if s.NotificationChannel == "" {
		s.NotificationChannel = "status_updates"
	}

	minDefaultExpiration := time.Second
	defaultDefaultExpiration := 30 * time.Minute
	if s.DefaultExpiration == nil {
		s.DefaultExpiration = &defaultDefaultExpiration
	} else if *s.DefaultExpiration < minDefaultExpiration {
		s.DefaultExpiration = &minDefaultExpiration
	}
}

// ScannerOptions represents configuration options for a ScheduleScanner.
type ScannerOptions struct {
	// ScheduleSetName specifies the sorted set holding serialized descriptors
	// of jobs awaiting execution, scored by intended unix execution time.
	// Default: "schedule"
	ScheduleSetName string

	// PageSize specifies how many schedule entries are retrieved per page while
	// scanning for a job to cancel. The scan is linear in the number of entries
	// preceding a match, regardless of page size.
	// Min: 1
	// Max: 10000
	// Default: 500
	PageSize *int64
}

func (s *ScannerOptions) applyDefaults() {
	if s.ScheduleSetName == "" {
		s.ScheduleSetName = "schedule"
	}

	var minPageSize int64 = 1
	var maxPageSize int64 = 10000
	var defaultPageSize int64 = 500
	if s.PageSize == nil {
		s.PageSize = &defaultPageSize
	} else if *s.PageSize < minPageSize {
		s.PageSize = &minPageSize
	} else if *s.PageSize > maxPageSize {
		s.PageSize = &maxPageSize
	}
}

// WatcherOptions represents configuration options for a Watcher.
type WatcherOptions struct {
	// NotificationChannel specifies the pub/sub channel to subscribe to. It
	// must match the channel the Store publishes on.
	// Default: "status_updates"
	NotificationChannel string
}

func (w *WatcherOptions) applyDefaults() {
	if w.NotificationChannel == "" {
		w.NotificationChannel = "status_updates"
	}
}
