package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s *server) statusFieldGet(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() // nolint: errcheck

	id := mux.Vars(r)["id"]

	field := mux.Vars(r)["field"]

	value, err := s.store.ReadFieldForID(id, field)
	if err != nil {
		log.Println(
			errors.Wrapf(
				err,
				"error retrieving field %q of status record for job %q",
				field,
				id,
			),
		)
		s.writeResponse(w, http.StatusInternalServerError, responseEmptyJSON)
		return
	}

	if value == "" {
		s.writeResponse(w, http.StatusNotFound, responseEmptyJSON)
		return
	}

	responseBytes, err := json.Marshal(
		struct {
			Value string `json:"value"`
		}{
			Value: value,
		},
	)
	if err != nil {
		log.Println(
			errors.Wrap(err, "error marshaling get status field response"),
		)
		s.writeResponse(w, http.StatusInternalServerError, responseEmptyJSON)
		return
	}

	s.writeResponse(w, http.StatusOK, responseBytes)
}
