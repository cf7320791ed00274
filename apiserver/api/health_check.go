package api

import "net/http"

func (s *server) healthCheck(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() // nolint: errcheck
	s.writeResponse(w, http.StatusOK, responseEmptyJSON)
}
