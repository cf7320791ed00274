package main

import (
	"encoding/json"
	"io/ioutil"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/mwhitten/jobtrack/pkg/file"
	"github.com/pkg/errors"
)

// config holds optional Redis connection overrides read from
// ~/.jobtrack/config. When no config file exists, the connection is
// configured from the environment instead.
type config struct {
	RedisHost     string `json:"redisHost"`
	RedisPort     int    `json:"redisPort"`
	RedisPassword string `json:"redisPassword"`
	RedisDB       int    `json:"redisDB"`
}

func getConfig() (*config, error) {
	jobtrackHome, err := getJobtrackHome()
	if err != nil {
		return nil, errors.Wrap(err, "error finding jobtrack home")
	}
	jobtrackConfigFile := path.Join(jobtrackHome, "config")
	if !file.Exists(jobtrackConfigFile) {
		return nil, nil
	}

	configBytes, err := ioutil.ReadFile(jobtrackConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading jobtrack config file at %s",
			jobtrackConfigFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing jobtrack config file at %s",
			jobtrackConfigFile,
		)
	}

	return config, nil
}

func getJobtrackHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".jobtrack"), nil
}
