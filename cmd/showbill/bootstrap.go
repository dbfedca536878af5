package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"showbill/internal/models"
)

// bootstrapDemoData seeds the directory with a small set of venues,
// artists, and shows so a fresh instance has something to browse.
// Seeding is skipped when any venue already exists.
func bootstrapDemoData(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		return nil
	}

	seedVenues := []models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             "Jazz,Reggae,Swing,Classical,Folk",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			WebsiteLink:        "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       "Classical,R&B,Hip-Hop",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			WebsiteLink:  "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       "Rock n Roll,Jazz,Classical,Folk",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		},
	}

	seedArtists := []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             "Rock n Roll",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			WebsiteLink:        "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			Genres:    "Jazz",
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    "Jazz,Classical",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
		},
	}

	// (venue index, artist index, start time) triples.
	seedShows := []struct {
		venue, artist int
		startTime     string
	}{
		{0, 0, "2019-05-21T21:30:00Z"},
		{2, 1, "2019-06-15T23:00:00Z"},
		{2, 2, "2035-04-01T20:00:00Z"},
		{2, 2, "2035-04-08T20:00:00Z"},
		{2, 2, "2035-04-15T20:00:00Z"},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	venueIDs := make([]int64, len(seedVenues))
	for i, v := range seedVenues {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, image_link,
			                    facebook_link, genres, website_link, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
			v.FacebookLink, v.Genres, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription,
		).Scan(&venueIDs[i]); err != nil {
			return fmt.Errorf("insert demo venue %q: %w", v.Name, err)
		}
	}

	artistIDs := make([]int64, len(seedArtists))
	for i, a := range seedArtists {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, image_link,
			                     facebook_link, website_link, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
			a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription,
		).Scan(&artistIDs[i]); err != nil {
			return fmt.Errorf("insert demo artist %q: %w", a.Name, err)
		}
	}

	for _, sh := range seedShows {
		startTime, err := time.Parse(time.RFC3339, sh.startTime)
		if err != nil {
			return fmt.Errorf("parse demo show time %q: %w", sh.startTime, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shows (venue_id, artist_id, start_time)
			VALUES ($1, $2, $3)
		`, venueIDs[sh.venue], artistIDs[sh.artist], startTime); err != nil {
			return fmt.Errorf("insert demo show: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return nil
}
