package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mwhitten/jobtrack/pkg/file"
	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/xeipuuv/gojsonschema"
)

// Server is an interface for the component that responds to HTTP API requests
type Server interface {
	// ListenAndServe causes the API server to start serving HTTP requests. It
	// will block until an error occurs and will return that error.
	ListenAndServe() error
}

type server struct {
	config                   Config
	store                    status.Store
	scanner                  status.ScheduleScanner
	router                   *mux.Router
	statusUpdateSchemaLoader gojsonschema.JSONLoader
}

// NewServer returns an HTTP router
func NewServer(
	config Config,
	store status.Store,
	scanner status.ScheduleScanner,
) Server {
	s := &server{
		config:  config,
		store:   store,
		scanner: scanner,
		router:  mux.NewRouter(),
		statusUpdateSchemaLoader: gojsonschema.NewBytesLoader(
			statusUpdateSchemaBytes,
		),
	}

	tokenAuthFilter := newTokenAuthFilter(config.Token)

	s.router.StrictSlash(true)

	// Get status record
	s.router.HandleFunc(
		"/v2/jobs/{id}/status",
		tokenAuthFilter.Decorate(s.statusGet),
	).Methods(http.MethodGet)

	// Get a single status field
	s.router.HandleFunc(
		"/v2/jobs/{id}/status/{field}",
		tokenAuthFilter.Decorate(s.statusFieldGet),
	).Methods(http.MethodGet)

	// Update status record
	s.router.HandleFunc(
		"/v2/jobs/{id}/status",
		tokenAuthFilter.Decorate(s.statusUpdate),
	).Methods(http.MethodPut)

	// Delete status record
	s.router.HandleFunc(
		"/v2/jobs/{id}/status",
		tokenAuthFilter.Decorate(s.statusDelete),
	).Methods(http.MethodDelete)

	// Cancel a scheduled job
	s.router.HandleFunc(
		"/v2/jobs/{id}/cancel",
		tokenAuthFilter.Decorate(s.jobCancel),
	).Methods(http.MethodPut)

	// Health check
	s.router.HandleFunc(
		"/healthz",
		s.healthCheck, // No filters applied to this request
	).Methods(http.MethodGet)

	return s
}

func (s *server) ListenAndServe() error {
	address := fmt.Sprintf(":%d", s.config.Port)
	if s.config.TLSEnabled &&
		file.Exists(s.config.TLSCertPath) &&
		file.Exists(s.config.TLSKeyPath) {
		log.Printf(
			"API server is listening with TLS enabled on 0.0.0.0:%d",
			s.config.Port,
		)
		return http.ListenAndServeTLS(
			address,
			s.config.TLSCertPath,
			s.config.TLSKeyPath,
			s.router,
		)
	}
	log.Printf(
		"API server is listening without TLS on 0.0.0.0:%d",
		s.config.Port,
	)
	return http.ListenAndServe(
		address,
		s.router,
	)
}
