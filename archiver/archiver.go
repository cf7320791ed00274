package main

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/mwhitten/jobtrack/pkg/archive"
	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/pkg/errors"
)

// terminalStatuses are the status values after which a record will receive no
// further writes and is worth preserving beyond its TTL.
var terminalStatuses = map[string]bool{
	status.StatusComplete: true,
	status.StatusFailed:   true,
	status.StatusStopped:  true,
}

// Archiver is an interface for the component that copies terminal status
// records into durable storage before their TTL reclaims them.
type Archiver interface {
	// Run subscribes to status notifications and archives records as they
	// reach a terminal status. It blocks until the context is canceled or the
	// subscription fails.
	Run(ctx context.Context) error
}

type archiver struct {
	statusStore  status.Store
	watcher      status.Watcher
	archiveStore archive.Store
}

// NewArchiver returns a new Archiver.
func NewArchiver(
	statusStore status.Store,
	watcher status.Watcher,
	archiveStore archive.Store,
) Archiver {
	return &archiver{
		statusStore:  statusStore,
		watcher:      watcher,
		archiveStore: archiveStore,
	}
}

func (a *archiver) Run(ctx context.Context) error {
	err := a.watcher.Watch(ctx, a.handleNotification)
	return errors.Wrap(err, "archiver stopped")
}

// handleNotification archives the notified job's record if its status is
// terminal. Failures are logged and skipped; a missed archive only means the
// record ages out of Redis unpreserved.
func (a *archiver) handleNotification(jobID string) {
	record, err := a.statusStore.ReadHashForID(jobID)
	if err != nil {
		glog.Errorf("error reading status record for job %q: %s", jobID, err)
		return
	}
	if !terminalStatuses[record[status.FieldStatus]] {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.archiveStore.Upsert(
		ctx,
		archive.Record{
			ID:       jobID,
			Fields:   record,
			Archived: time.Now(),
		},
	); err != nil {
		glog.Errorf("error archiving status record for job %q: %s", jobID, err)
		return
	}
	glog.V(1).Infof("archived status record for job %q", jobID)
}
