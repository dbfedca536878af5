package venues

import (
	"context"
	"time"

	"showbill/internal/app/shows"
	"showbill/internal/models"
)

// Store defines persistence operations for venues.
type Store interface {
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	VenueByID(ctx context.Context, id int64) (models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
	ListVenueOverviews(ctx context.Context, now time.Time) ([]models.VenueOverview, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	ShowsByVenue(ctx context.Context, venueID int64) ([]models.VenueShow, error)
}

// Service coordinates venue-related operations.
type Service interface {
	List(ctx context.Context) ([]models.VenueGroup, error)
	Search(ctx context.Context, term string) ([]models.Venue, error)
	Get(ctx context.Context, id int64) (models.VenueDetail, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a venues Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// List groups every venue by its (city, state) location, each venue
// annotated with its own upcoming show count.
func (s *service) List(ctx context.Context) ([]models.VenueGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	overviews, err := s.store.ListVenueOverviews(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return groupByPlace(overviews), nil
}

// groupByPlace folds location-ordered venue rows into one group per
// distinct (city, state) pair, preserving row order within a group.
func groupByPlace(overviews []models.VenueOverview) []models.VenueGroup {
	groups := make([]models.VenueGroup, 0, len(overviews))
	index := make(map[[2]string]int)

	for _, o := range overviews {
		key := [2]string{o.City, o.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.VenueGroup{City: o.City, State: o.State})
		}
		groups[i].Venues = append(groups[i].Venues, o)
	}
	return groups
}

func (s *service) Search(ctx context.Context, term string) ([]models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchVenues(ctx, term)
}

// Get assembles the venue detail page: the venue itself plus its shows
// partitioned into upcoming and past as of now.
func (s *service) Get(ctx context.Context, id int64) (models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueDetail{}, err
	}

	venue, err := s.store.VenueByID(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}

	venueShows, err := s.store.ShowsByVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}

	upcoming, past := shows.Partition(venueShows, func(sh models.VenueShow) time.Time {
		return sh.StartAt
	}, time.Now())

	return models.VenueDetail{
		Venue:              venue,
		Genres:             models.SplitGenres(venue.Genres),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}
