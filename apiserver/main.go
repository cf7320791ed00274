package main

import (
	"log"

	"github.com/mwhitten/jobtrack/apiserver/api"
	"github.com/mwhitten/jobtrack/pkg/redis"
	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/mwhitten/jobtrack/pkg/version"
)

func main() {
	log.Printf(
		"Starting jobtrack API server -- version %s -- commit %s",
		version.Version(),
		version.Commit(),
	)

	config, err := api.GetConfigFromEnvironment()
	if err != nil {
		log.Fatal(err)
	}

	redisProvider, err := redis.ProviderFromEnvironment()
	if err != nil {
		log.Fatal(err)
	}

	store := status.NewStore(redisProvider, nil)
	scanner := status.NewScheduleScanner(redisProvider, store, nil)

	log.Println(api.NewServer(config, store, scanner).ListenAndServe())
}
