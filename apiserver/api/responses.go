package api

import "net/http"

var responseEmptyJSON = []byte("{}")

func (s *server) writeResponse(
	w http.ResponseWriter,
	statusCode int,
	responseBytes []byte,
) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write(responseBytes) // nolint: errcheck
}
