package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"showbill/internal/models"
)

func validateArtist(a models.Artist) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArtist)
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidArtist)
	}
	if strings.TrimSpace(a.State) == "" {
		return fmt.Errorf("%w: state is required", ErrInvalidArtist)
	}
	return nil
}

// CreateArtist inserts a new artist and returns it with its generated id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	artist.Name = strings.TrimSpace(artist.Name)
	artist.City = strings.TrimSpace(artist.City)

	if err := validateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Artist{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, artist.Name, artist.City, artist.State, artist.Phone, artist.Genres,
		artist.ImageLink, artist.FacebookLink, artist.WebsiteLink,
		artist.SeekingVenue, artist.SeekingDescription,
	).Scan(&artist.ID)
	if err != nil {
		return models.Artist{}, fmt.Errorf("insert artist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Artist{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return artist, nil
}

// ArtistByID retrieves a single artist.
func (s *Store) ArtistByID(ctx context.Context, id int64) (models.Artist, error) {
	var a models.Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres, &a.ImageLink,
		&a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("select artist: %w", err)
	}
	return a, nil
}

// ListArtists returns every artist in storage order.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.queryArtists(ctx, `
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venue, seeking_description
		FROM artists
		ORDER BY id ASC
	`)
}

// SearchArtists returns artists whose name contains the term, case-insensitive.
// An empty term matches every artist.
func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	return s.queryArtists(ctx, `
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venue, seeking_description
		FROM artists
		WHERE name ILIKE $1
		ORDER BY id ASC
	`, "%"+term+"%")
}

func (s *Store) queryArtists(ctx context.Context, query string, args ...any) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := rows.Scan(
			&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres, &a.ImageLink,
			&a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription,
		); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// UpdateArtist replaces an existing artist's attributes.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	artist.Name = strings.TrimSpace(artist.Name)
	artist.City = strings.TrimSpace(artist.City)

	if err := validateArtist(artist); err != nil {
		return models.Artist{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Artist{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    image_link = $6, facebook_link = $7, website_link = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
		RETURNING id
	`, artist.Name, artist.City, artist.State, artist.Phone, artist.Genres,
		artist.ImageLink, artist.FacebookLink, artist.WebsiteLink,
		artist.SeekingVenue, artist.SeekingDescription, id,
	).Scan(&artist.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("update artist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Artist{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return artist, nil
}
