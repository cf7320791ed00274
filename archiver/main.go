package main

import (
	"flag"

	"github.com/golang/glog"
	"github.com/mwhitten/jobtrack/pkg/archive"
	"github.com/mwhitten/jobtrack/pkg/mongodb"
	"github.com/mwhitten/jobtrack/pkg/redis"
	"github.com/mwhitten/jobtrack/pkg/signals"
	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/mwhitten/jobtrack/pkg/version"
)

func main() {
	// We need to parse flags for glog-related options to take effect
	flag.Parse()

	glog.Infof(
		"Starting jobtrack archiver -- version %s -- commit %s",
		version.Version(),
		version.Commit(),
	)

	redisProvider, err := redis.ProviderFromEnvironment()
	if err != nil {
		glog.Fatal(err)
	}

	database, err := mongodb.Database()
	if err != nil {
		glog.Fatal(err)
	}
	archiveStore, err := archive.NewStore(database)
	if err != nil {
		glog.Fatal(err)
	}

	archiver := NewArchiver(
		status.NewStore(redisProvider, nil),
		status.NewWatcher(redisProvider, nil),
		archiveStore,
	)

	glog.Fatal(archiver.Run(signals.Context()))
}
