package main

import (
	"fmt"

	goRedis "github.com/go-redis/redis"
	jobtrackRedis "github.com/mwhitten/jobtrack/pkg/redis"
	"github.com/pkg/errors"
)

func getRedisProvider() (jobtrackRedis.Provider, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving configuration")
	}
	if config != nil {
		port := config.RedisPort
		if port == 0 {
			port = 6379
		}
		return jobtrackRedis.NewStaticProvider(
			goRedis.NewClient(
				&goRedis.Options{
					Addr:     fmt.Sprintf("%s:%d", config.RedisHost, port),
					Password: config.RedisPassword,
					DB:       config.RedisDB,
				},
			),
		), nil
	}
	return jobtrackRedis.ProviderFromEnvironment()
}
