package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"showbill/internal/models"
)

func validateVenue(v models.Venue) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidVenue)
	}
	if strings.TrimSpace(v.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidVenue)
	}
	if strings.TrimSpace(v.State) == "" {
		return fmt.Errorf("%w: state is required", ErrInvalidVenue)
	}
	return nil
}

// CreateVenue inserts a new venue and returns it with its generated id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	venue.Name = strings.TrimSpace(venue.Name)
	venue.City = strings.TrimSpace(venue.City)

	if err := validateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Venue{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO venues (name, city, state, address, phone, image_link,
		                    facebook_link, genres, website_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Genres, venue.WebsiteLink,
		venue.SeekingTalent, venue.SeekingDescription,
	).Scan(&venue.ID)
	if err != nil {
		return models.Venue{}, fmt.Errorf("insert venue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Venue{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return venue, nil
}

// VenueByID retrieves a single venue.
func (s *Store) VenueByID(ctx context.Context, id int64) (models.Venue, error) {
	var v models.Venue
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, address, phone, image_link,
		       facebook_link, genres, website_link, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Genres, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("select venue: %w", err)
	}
	return v, nil
}

// SearchVenues returns venues whose name contains the term, case-insensitive.
// An empty term matches every venue.
func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, address, phone, image_link,
		       facebook_link, genres, website_link, seeking_talent, seeking_description
		FROM venues
		WHERE name ILIKE $1
		ORDER BY id ASC
	`, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
			&v.FacebookLink, &v.Genres, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// ListVenueOverviews returns every venue with its own upcoming show count,
// ordered by city and state so the caller can group by location.
func (s *Store) ListVenueOverviews(ctx context.Context, now time.Time) ([]models.VenueOverview, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.city ASC, v.state ASC, v.id ASC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var overviews []models.VenueOverview
	for rows.Next() {
		var o models.VenueOverview
		if err := rows.Scan(&o.ID, &o.Name, &o.City, &o.State, &o.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue overview: %w", err)
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}

// UpdateVenue replaces an existing venue's attributes.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	venue.Name = strings.TrimSpace(venue.Name)
	venue.City = strings.TrimSpace(venue.City)

	if err := validateVenue(venue); err != nil {
		return models.Venue{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Venue{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5,
		    image_link = $6, facebook_link = $7, genres = $8, website_link = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
		RETURNING id
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Genres, venue.WebsiteLink,
		venue.SeekingTalent, venue.SeekingDescription, id,
	).Scan(&venue.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("update venue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Venue{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return venue, nil
}

// DeleteVenue removes a venue; its shows go with it via ON DELETE CASCADE.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}
