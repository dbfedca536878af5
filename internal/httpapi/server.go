package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"showbill/internal/models"
)

// VenueService coordinates venue listing, search, detail, and mutations.
type VenueService interface {
	List(ctx context.Context) ([]models.VenueGroup, error)
	Search(ctx context.Context, term string) ([]models.Venue, error)
	Get(ctx context.Context, id int64) (models.VenueDetail, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService coordinates artist listing, search, detail, and mutations.
type ArtistService interface {
	List(ctx context.Context) ([]models.Artist, error)
	Search(ctx context.Context, term string) ([]models.Artist, error)
	Get(ctx context.Context, id int64) (models.ArtistDetail, error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
}

// ShowService coordinates the global show listing and show creation.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
	flashes *flashQueue
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService) *Server {
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
		flashes: newFlashQueue(),
	}
}

// Routes exposes the HTTP handlers for the booking directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /{$}", s.handleHome)

	// Venue routes
	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenueForm)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleGetVenue)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleEditVenue)

	// Artist routes
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtistForm)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleGetArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleEditArtist)

	// Show routes
	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShowForm)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	// Everything else renders the 404 error view.
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type searchResponse[T any] struct {
	Count      int    `json:"count"`
	Data       []T    `json:"data"`
	SearchTerm string `json:"search_term"`
}

type homeResponse struct {
	Message string   `json:"message"`
	Flashes []string `json:"flashes"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r, http.StatusOK)
}

// renderHome is the shared terminal render for the home route and for form
// submissions, which always land back on the home page carrying any queued
// flash messages.
func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, status int) {
	writeJSON(w, status, homeResponse{
		Message: "Showbill booking directory",
		Flashes: s.flashes.Drain(s.clientID(w, r)),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
