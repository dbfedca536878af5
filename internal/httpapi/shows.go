package httpapi

import (
	"net/http"
	"strconv"

	"showbill/internal/models"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := s.shows.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if listings == nil {
		listings = []models.ShowListing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formResponse{
		Action: "/shows/create",
		Fields: showFormFields(),
	})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}
	client := s.clientID(w, r)

	fail := func() {
		s.flashes.Add(client, "An error occurred. Show could not be listed.")
		s.renderHome(w, r, http.StatusOK)
	}

	artistID, err := strconv.ParseInt(r.PostFormValue("artist_id"), 10, 64)
	if err != nil {
		fail()
		return
	}
	venueID, err := strconv.ParseInt(r.PostFormValue("venue_id"), 10, 64)
	if err != nil {
		fail()
		return
	}
	startTime, ok := parseStartTime(r.PostFormValue("start_time"))
	if !ok {
		fail()
		return
	}

	_, err = s.shows.Create(r.Context(), models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	})
	if err != nil {
		fail()
		return
	}

	s.flashes.Add(client, "Show was successfully listed!")
	s.renderHome(w, r, http.StatusOK)
}
