package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"showbill/internal/models"
	"showbill/internal/store"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := s.venues.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if groups == nil {
		groups = []models.VenueGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}
	term := r.PostFormValue("search_term")

	venues, err := s.venues.Search(r.Context(), term)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}
	writeJSON(w, http.StatusOK, searchResponse[models.Venue]{
		Count:      len(venues),
		Data:       venues,
		SearchTerm: term,
	})
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue id"})
		return
	}

	detail, err := s.venues.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			redirectHome(w, r)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formResponse{
		Action: "/venues/create",
		Fields: venueFormFields(models.Venue{}),
	})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}
	client := s.clientID(w, r)
	venue := venueFromForm(r)

	created, err := s.venues.Create(r.Context(), venue)
	if err != nil {
		s.flashes.Add(client, "An error occurred. Venue "+venue.Name+" could not be listed.")
		s.renderHome(w, r, http.StatusOK)
		return
	}

	s.flashes.Add(client, "Venue "+created.Name+" was successfully listed!")
	s.renderHome(w, r, http.StatusOK)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue id"})
		return
	}

	if err := s.venues.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			redirectHome(w, r)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue id"})
		return
	}

	detail, err := s.venues.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			redirectHome(w, r)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, formResponse{
		Action: "/venues/" + strconv.FormatInt(id, 10) + "/edit",
		Fields: venueFormFields(detail.Venue),
	})
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid venue id"})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}
	client := s.clientID(w, r)
	venue := venueFromForm(r)

	if _, err := s.venues.Update(r.Context(), id, venue); err != nil {
		if errors.Is(err, store.ErrVenueNotFound) {
			redirectHome(w, r)
			return
		}
		s.flashes.Add(client, "An error occurred. Venue "+venue.Name+" could not be updated.")
		s.renderHome(w, r, http.StatusOK)
		return
	}

	http.Redirect(w, r, "/venues/"+strconv.FormatInt(id, 10), http.StatusFound)
}
