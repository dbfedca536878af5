package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"showbill/internal/models"
)

func TestValidateShow(t *testing.T) {
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		show    models.Show
		wantErr bool
	}{
		{
			name: "valid show",
			show: models.Show{VenueID: 1, ArtistID: 4, StartTime: start},
		},
		{
			name:    "missing venue",
			show:    models.Show{ArtistID: 4, StartTime: start},
			wantErr: true,
		},
		{
			name:    "missing artist",
			show:    models.Show{VenueID: 1, StartTime: start},
			wantErr: true,
		},
		{
			name:    "zero start time",
			show:    models.Show{VenueID: 1, ArtistID: 4},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := validateShow(tc.show)
			if tc.wantErr && !errors.Is(err, ErrInvalidShow) {
				t.Fatalf("expected ErrInvalidShow but got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestCreateShowSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`)).
		WithArgs(int64(3), int64(6), start).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectCommit()

	got, err := s.CreateShow(context.Background(), models.Show{
		VenueID:   3,
		ArtistID:  6,
		StartTime: start,
	})
	if err != nil {
		t.Fatalf("CreateShow error: %v", err)
	}

	if got.ID != 10 {
		t.Fatalf("expected show ID 10, got %d", got.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateShowForeignKeyViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO shows`)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	_, err = s.CreateShow(context.Background(), models.Show{
		VenueID:   999,
		ArtistID:  6,
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListShows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		INNER JOIN artists a ON a.id = s.artist_id
		ORDER BY s.id ASC
	`)).
		WillReturnRows(sqlmock.NewRows([]string{
			"venue_id", "venue_name", "artist_id", "artist_name", "artist_image_link", "start_time",
		}).AddRow(int64(1), "The Musical Hop", int64(4), "Guns N Petals", "", start))

	listings, err := s.ListShows(context.Background())
	if err != nil {
		t.Fatalf("ListShows error: %v", err)
	}

	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].StartTime != "2019-05-21 21:30:00" {
		t.Fatalf("expected formatted start time, got %q", listings[0].StartTime)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShowsByVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	past := time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)
	future := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.id ASC
	`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "name", "image_link", "start_time"}).
			AddRow(int64(5), "Matt Quevedo", "", past).
			AddRow(int64(6), "The Wild Sax Band", "", future))

	shows, err := s.ShowsByVenue(context.Background(), 3)
	if err != nil {
		t.Fatalf("ShowsByVenue error: %v", err)
	}

	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d", len(shows))
	}
	if shows[0].StartTime != "2019-06-15 23:00:00" {
		t.Fatalf("expected formatted start time, got %q", shows[0].StartTime)
	}
	if !shows[1].StartAt.Equal(future) {
		t.Fatalf("expected StartAt %v, got %v", future, shows[1].StartAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestShowsByArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT s.venue_id, v.name, v.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.id ASC
	`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "name", "image_link", "start_time"}).
			AddRow(int64(1), "The Musical Hop", "", start))

	shows, err := s.ShowsByArtist(context.Background(), 4)
	if err != nil {
		t.Fatalf("ShowsByArtist error: %v", err)
	}

	if len(shows) != 1 {
		t.Fatalf("expected 1 show, got %d", len(shows))
	}
	if shows[0].VenueName != "The Musical Hop" {
		t.Fatalf("expected The Musical Hop, got %q", shows[0].VenueName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
