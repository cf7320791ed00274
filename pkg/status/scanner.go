package status

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis"
	jobtrackRedis "github.com/mwhitten/jobtrack/pkg/redis"
	"github.com/pkg/errors"
)

// ScheduleScanner is an interface for the component that cancels a job that
// is scheduled but has not yet started, by removing both its schedule entry
// and its status record.
type ScheduleScanner interface {
	// DeleteAndUnschedule locates the schedule entry for the specified job,
	// removes it, and deletes the job's status record, returning true. If no
	// entry is found-- because the job is unknown, already started, or already
	// completed-- it returns false with no error and mutates nothing.
	//
	// When the caller knows the job's intended execution time, supplying it
	// narrows the scan to entries with exactly that score. Without it, the
	// entire schedule is paged through; the scan is O(n) in the number of
	// entries preceding a match.
	//
	// The two removals are independent commands, not one atomic batch. A
	// failure between them strands a status record with no schedule entry,
	// which is tolerable: readers see a stale or absent status, no worse than
	// if the job had actually run, and the record's TTL reclaims it.
	//
	// This operation is not guarded against a worker dequeuing the same job
	// concurrently; in that race either outcome is possible.
	DeleteAndUnschedule(id string, at *time.Time) (bool, error)
}

// scheduleScanner is a Redis-based implementation of the ScheduleScanner
// interface.
type scheduleScanner struct {
	provider jobtrackRedis.Provider
	store    Store
	options  ScannerOptions
}

// NewScheduleScanner returns a new Redis-based implementation of the
// ScheduleScanner interface. Status record deletion is delegated to the
// provided Store.
func NewScheduleScanner(
	provider jobtrackRedis.Provider,
	store Store,
	options *ScannerOptions,
) ScheduleScanner {
	if options == nil {
		options = &ScannerOptions{}
	}
	options.applyDefaults()
	return &scheduleScanner{
		provider: provider,
		store:    store,
		options:  *options,
	}
}

func (s *scheduleScanner) DeleteAndUnschedule(
	id string,
	at *time.Time,
) (bool, error) {
	min, max := "-inf", "+inf"
	if at != nil {
		min = strconv.FormatInt(at.Unix(), 10)
		max = min
	}

	// Substring prefilter over the serialized descriptor. The closing quote
	// keeps one job's ID from matching inside a longer ID; a candidate is
	// still decoded and its ID compared before anything is removed.
	pattern := fmt.Sprintf(`"id":%q`, id)

	client := s.provider.Client()
	pageSize := *s.options.PageSize
	for offset := int64(0); ; offset += pageSize {
		members, err := client.ZRangeByScore(
			s.options.ScheduleSetName,
			redis.ZRangeBy{
				Min:    min,
				Max:    max,
				Offset: offset,
				Count:  pageSize,
			},
		).Result()
		if err != nil {
			return false, errors.Wrapf(
				err,
				"error scanning schedule for job %q",
				id,
			)
		}
		for _, member := range members {
			if !strings.Contains(member, pattern) {
				continue
			}
			descriptor, err := JobDescriptorFromJSON([]byte(member))
			if err != nil || descriptor.ID != id {
				continue
			}
			if err := client.ZRem(
				s.options.ScheduleSetName,
				member,
			).Err(); err != nil {
				return false, errors.Wrapf(
					err,
					"error removing schedule entry for job %q",
					id,
				)
			}
			if _, err := s.store.DeleteStatus(id); err != nil {
				return false, errors.Wrapf(
					err,
					"error deleting status record for unscheduled job %q",
					id,
				)
			}
			return true, nil
		}
		if int64(len(members)) < pageSize {
			return false, nil
		}
	}
}
