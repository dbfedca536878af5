package store

import (
	"context"
	"fmt"
	"time"

	"showbill/internal/models"
)

func validateShow(sh models.Show) error {
	if sh.VenueID <= 0 {
		return fmt.Errorf("%w: venue_id is required", ErrInvalidShow)
	}
	if sh.ArtistID <= 0 {
		return fmt.Errorf("%w: artist_id is required", ErrInvalidShow)
	}
	if sh.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidShow)
	}
	return nil
}

// CreateShow inserts a new show. A show referencing a missing venue or
// artist trips the schema's foreign keys and surfaces ErrReferenceNotFound.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	if err := validateShow(show); err != nil {
		return models.Show{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Show{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Show{}, ErrReferenceNotFound
		}
		return models.Show{}, fmt.Errorf("insert show: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Show{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return show, nil
}

// ListShows returns every show joined with its venue and artist.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		INNER JOIN artists a ON a.id = s.artist_id
		ORDER BY s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var listings []models.ShowListing
	for rows.Next() {
		var (
			l     models.ShowListing
			start time.Time
		)
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName,
			&l.ArtistImageLink, &start); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		l.StartTime = start.Format(models.TimeLayout)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// ShowsByVenue returns the venue's shows joined with the performing artist,
// in insertion order.
func (s *Store) ShowsByVenue(ctx context.Context, venueID int64) ([]models.VenueShow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.id ASC
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("shows by venue: %w", err)
	}
	defer rows.Close()

	var shows []models.VenueShow
	for rows.Next() {
		var sh models.VenueShow
		if err := rows.Scan(&sh.ArtistID, &sh.ArtistName, &sh.ArtistImageLink, &sh.StartAt); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		sh.StartTime = sh.StartAt.Format(models.TimeLayout)
		shows = append(shows, sh)
	}
	return shows, rows.Err()
}

// ShowsByArtist returns the artist's shows joined with the hosting venue,
// in insertion order.
func (s *Store) ShowsByArtist(ctx context.Context, artistID int64) ([]models.ArtistShow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.venue_id, v.name, v.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.id ASC
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("shows by artist: %w", err)
	}
	defer rows.Close()

	var shows []models.ArtistShow
	for rows.Next() {
		var sh models.ArtistShow
		if err := rows.Scan(&sh.VenueID, &sh.VenueName, &sh.VenueImageLink, &sh.StartAt); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
		}
		sh.StartTime = sh.StartAt.Format(models.TimeLayout)
		shows = append(shows, sh)
	}
	return shows, rows.Err()
}
