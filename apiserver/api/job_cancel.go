package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s *server) jobCancel(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() // nolint: errcheck

	id := mux.Vars(r)["id"]

	// The scheduled time, when the caller knows it, makes the scan a range
	// seek instead of a walk over the whole schedule
	var at *time.Time
	if timeStr := r.URL.Query().Get("time"); timeStr != "" {
		seconds, err := strconv.ParseInt(timeStr, 10, 64)
		if err != nil {
			s.writeResponse(w, http.StatusBadRequest, responseEmptyJSON)
			return
		}
		scheduledTime := time.Unix(seconds, 0)
		at = &scheduledTime
	}

	found, err := s.scanner.DeleteAndUnschedule(id, at)
	if err != nil {
		log.Println(
			errors.Wrapf(err, "error canceling scheduled job %q", id),
		)
		s.writeResponse(w, http.StatusInternalServerError, responseEmptyJSON)
		return
	}

	// "Not found" is a normal outcome: the job is unknown, already started,
	// or already completed
	if !found {
		s.writeResponse(w, http.StatusNotFound, responseEmptyJSON)
		return
	}

	s.writeResponse(w, http.StatusOK, responseEmptyJSON)
}
