package api

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envconfigPrefix = "API"

// Config represents configuration options for the API server
type Config struct {
	Port int `envconfig:"PORT" default:"8080"`
	// Token, when non-empty, is the shared bearer token required on all
	// requests except the health check.
	Token       string `envconfig:"TOKEN"`
	TLSEnabled  bool   `envconfig:"TLS_ENABLED" default:"false"`
	TLSCertPath string `envconfig:"TLS_CERT_PATH"`
	TLSKeyPath  string `envconfig:"TLS_KEY_PATH"`
}

// GetConfigFromEnvironment returns API server configuration derived from
// environment variables
func GetConfigFromEnvironment() (Config, error) {
	c := Config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return c, errors.Wrap(
			err,
			"error getting api server configuration from environment",
		)
	}
	return c, nil
}
