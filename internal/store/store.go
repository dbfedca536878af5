package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrVenueNotFound signals the venue id does not exist.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrArtistNotFound signals the artist id does not exist.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrInvalidVenue indicates the venue failed validation.
	ErrInvalidVenue = errors.New("invalid venue")
	// ErrInvalidArtist indicates the artist failed validation.
	ErrInvalidArtist = errors.New("invalid artist")
	// ErrInvalidShow indicates the show failed validation.
	ErrInvalidShow = errors.New("invalid show")
	// ErrReferenceNotFound indicates a show points at a missing venue or artist.
	ErrReferenceNotFound = errors.New("referenced venue or artist not found")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
