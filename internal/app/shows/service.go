package shows

import (
	"context"

	"showbill/internal/models"
)

// Store defines persistence operations for shows and the entity lookups
// used to validate references before inserting.
type Store interface {
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	VenueByID(ctx context.Context, id int64) (models.Venue, error)
	ArtistByID(ctx context.Context, id int64) (models.Artist, error)
}

// Service coordinates show-related operations.
type Service interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
}

type service struct {
	store Store
}

// New constructs a shows Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}

// Create validates that both sides of the join exist before inserting. The
// schema's foreign keys back this up for writers racing a venue delete.
func (s *service) Create(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}
	if _, err := s.store.VenueByID(ctx, show.VenueID); err != nil {
		return models.Show{}, err
	}
	if _, err := s.store.ArtistByID(ctx, show.ArtistID); err != nil {
		return models.Show{}, err
	}
	return s.store.CreateShow(ctx, show)
}
