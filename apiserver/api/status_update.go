package api

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

func (s *server) statusUpdate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() // nolint: errcheck

	id := mux.Vars(r)["id"]

	bodyBytes, err := ioutil.ReadAll(r.Body)
	if err != nil {
		log.Println(
			errors.Wrap(err, "error reading body of update status request"),
		)
		s.writeResponse(w, http.StatusBadRequest, responseEmptyJSON)
		return
	}

	if validationResult, err := gojsonschema.Validate(
		s.statusUpdateSchemaLoader,
		gojsonschema.NewBytesLoader(bodyBytes),
	); err != nil {
		log.Println(errors.Wrap(err, "error validating update status request"))
		s.writeResponse(w, http.StatusBadRequest, responseEmptyJSON)
		return
	} else if !validationResult.Valid() {
		s.writeResponse(w, http.StatusBadRequest, responseEmptyJSON)
		return
	}

	update := struct {
		Status string            `json:"status"`
		Stop   string            `json:"stop"`
		Expiry *int64            `json:"expiry"`
		Fields map[string]string `json:"fields"`
	}{}
	if err := json.Unmarshal(bodyBytes, &update); err != nil {
		log.Println(
			errors.Wrap(err, "error unmarshaling body of update status request"),
		)
		s.writeResponse(w, http.StatusBadRequest, responseEmptyJSON)
		return
	}

	updates := make(map[string]interface{}, len(update.Fields)+2)
	for field, value := range update.Fields {
		updates[field] = value
	}
	if update.Status != "" {
		updates[status.FieldStatus] = update.Status
	}
	if update.Stop != "" {
		updates[status.FieldStop] = update.Stop
	}
	if len(updates) == 0 {
		s.writeResponse(w, http.StatusBadRequest, responseEmptyJSON)
		return
	}

	var expiration *time.Duration
	if update.Expiry != nil {
		ttl := time.Duration(*update.Expiry) * time.Second
		expiration = &ttl
	}

	if err := s.store.StoreForID(id, updates, expiration); err != nil {
		log.Println(
			errors.Wrapf(err, "error updating status record for job %q", id),
		)
		s.writeResponse(w, http.StatusInternalServerError, responseEmptyJSON)
		return
	}

	s.writeResponse(w, http.StatusOK, responseEmptyJSON)
}
