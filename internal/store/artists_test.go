package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"showbill/internal/models"
)

var artistColumns = []string{
	"id", "name", "city", "state", "phone", "genres", "image_link",
	"facebook_link", "website_link", "seeking_venue", "seeking_description",
}

func TestValidateArtist(t *testing.T) {
	tests := []struct {
		name    string
		artist  models.Artist
		wantErr bool
	}{
		{
			name: "valid artist",
			artist: models.Artist{
				Name:  "Guns N Petals",
				City:  "San Francisco",
				State: "CA",
			},
		},
		{
			name:    "missing name",
			artist:  models.Artist{City: "San Francisco", State: "CA"},
			wantErr: true,
		},
		{
			name:    "missing city",
			artist:  models.Artist{Name: "Guns N Petals", State: "CA"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := validateArtist(tc.artist)
			if tc.wantErr && !errors.Is(err, ErrInvalidArtist) {
				t.Fatalf("expected ErrInvalidArtist but got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestCreateArtistSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`)).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000", "Rock n Roll",
			"", "", "", true, "Looking for shows.").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectCommit()

	got, err := s.CreateArtist(context.Background(), models.Artist{
		Name:               " Guns N Petals ",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             "Rock n Roll",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows.",
	})
	if err != nil {
		t.Fatalf("CreateArtist error: %v", err)
	}

	if got.ID != 4 {
		t.Fatalf("expected artist ID 4, got %d", got.ID)
	}
	if got.Name != "Guns N Petals" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestArtistByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = s.ArtistByID(context.Background(), 404)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListArtists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venue, seeking_description
		FROM artists
		ORDER BY id ASC
	`)).
		WillReturnRows(sqlmock.NewRows(artistColumns).
			AddRow(int64(4), "Guns N Petals", "San Francisco", "CA", "326-123-5000",
				"Rock n Roll", "", "", "", true, "").
			AddRow(int64(5), "Matt Quevedo", "New York", "NY", "300-400-5000",
				"Jazz", "", "", "", false, ""))

	artists, err := s.ListArtists(context.Background())
	if err != nil {
		t.Fatalf("ListArtists error: %v", err)
	}

	if len(artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(artists))
	}
	if artists[1].Name != "Matt Quevedo" {
		t.Fatalf("expected Matt Quevedo, got %q", artists[1].Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchArtists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venue, seeking_description
		FROM artists
		WHERE name ILIKE $1
		ORDER BY id ASC
	`)).
		WithArgs("%band%").
		WillReturnRows(sqlmock.NewRows(artistColumns).
			AddRow(int64(6), "The Wild Sax Band", "San Francisco", "CA", "432-325-5432",
				"Jazz,Classical", "", "", "", false, ""))

	artists, err := s.SearchArtists(context.Background(), "band")
	if err != nil {
		t.Fatalf("SearchArtists error: %v", err)
	}

	if len(artists) != 1 {
		t.Fatalf("expected 1 artist, got %d", len(artists))
	}
	if artists[0].Name != "The Wild Sax Band" {
		t.Fatalf("expected The Wild Sax Band, got %q", artists[0].Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    image_link = $6, facebook_link = $7, website_link = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
		RETURNING id
	`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err = s.UpdateArtist(context.Background(), 404, models.Artist{
		Name:  "Ghost Artist",
		City:  "Nowhere",
		State: "KS",
	})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
