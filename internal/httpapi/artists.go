package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"showbill/internal/models"
	"showbill/internal/store"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	writeJSON(w, http.StatusOK, artists)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}
	term := r.PostFormValue("search_term")

	artists, err := s.artists.Search(r.Context(), term)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	writeJSON(w, http.StatusOK, searchResponse[models.Artist]{
		Count:      len(artists),
		Data:       artists,
		SearchTerm: term,
	})
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist id"})
		return
	}

	detail, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			redirectHome(w, r)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formResponse{
		Action: "/artists/create",
		Fields: artistFormFields(models.Artist{}),
	})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}
	client := s.clientID(w, r)
	artist := artistFromForm(r)

	created, err := s.artists.Create(r.Context(), artist)
	if err != nil {
		s.flashes.Add(client, "An error occurred. Artist "+artist.Name+" could not be listed.")
		s.renderHome(w, r, http.StatusOK)
		return
	}

	s.flashes.Add(client, "Artist "+created.Name+" was successfully listed!")
	s.renderHome(w, r, http.StatusOK)
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist id"})
		return
	}

	detail, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			redirectHome(w, r)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, formResponse{
		Action: "/artists/" + strconv.FormatInt(id, 10) + "/edit",
		Fields: artistFormFields(detail.Artist),
	})
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist id"})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}
	client := s.clientID(w, r)
	artist := artistFromForm(r)

	if _, err := s.artists.Update(r.Context(), id, artist); err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			redirectHome(w, r)
			return
		}
		s.flashes.Add(client, "An error occurred. Artist "+artist.Name+" could not be updated.")
		s.renderHome(w, r, http.StatusOK)
		return
	}

	http.Redirect(w, r, "/artists/"+strconv.FormatInt(id, 10), http.StatusFound)
}
