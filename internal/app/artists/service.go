package artists

import (
	"context"
	"time"

	"showbill/internal/app/shows"
	"showbill/internal/models"
)

// Store defines persistence operations for artists.
type Store interface {
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	ArtistByID(ctx context.Context, id int64) (models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	ShowsByArtist(ctx context.Context, artistID int64) ([]models.ArtistShow, error)
}

// Service coordinates artist-related operations.
type Service interface {
	List(ctx context.Context) ([]models.Artist, error)
	Search(ctx context.Context, term string) ([]models.Artist, error)
	Get(ctx context.Context, id int64) (models.ArtistDetail, error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
}

type service struct {
	store Store
}

// New constructs an artists Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Search(ctx context.Context, term string) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchArtists(ctx, term)
}

// Get assembles the artist detail page: the artist itself plus its shows
// partitioned into upcoming and past as of now.
func (s *service) Get(ctx context.Context, id int64) (models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ArtistDetail{}, err
	}

	artist, err := s.store.ArtistByID(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}

	artistShows, err := s.store.ShowsByArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}

	upcoming, past := shows.Partition(artistShows, func(sh models.ArtistShow) time.Time {
		return sh.StartAt
	}, time.Now())

	return models.ArtistDetail{
		Artist:             artist,
		Genres:             models.SplitGenres(artist.Genres),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}
