package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s *server) statusDelete(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() // nolint: errcheck

	id := mux.Vars(r)["id"]

	removed, err := s.store.DeleteStatus(id)
	if err != nil {
		log.Println(
			errors.Wrapf(err, "error deleting status record for job %q", id),
		)
		s.writeResponse(w, http.StatusInternalServerError, responseEmptyJSON)
		return
	}

	responseBytes, err := json.Marshal(
		struct {
			Removed int64 `json:"removed"`
		}{
			Removed: removed,
		},
	)
	if err != nil {
		log.Println(
			errors.Wrap(err, "error marshaling delete status response"),
		)
		s.writeResponse(w, http.StatusInternalServerError, responseEmptyJSON)
		return
	}

	s.writeResponse(w, http.StatusOK, responseBytes)
}
