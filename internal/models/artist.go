package models

// Artist represents a performer who can be booked for shows.
type Artist struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Phone              string `json:"phone"`
	Genres             string `json:"-"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	WebsiteLink        string `json:"website_link"`
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`
}

// ArtistDetail is the full artist page payload with its shows split into
// past and upcoming.
type ArtistDetail struct {
	Artist
	Genres             []string     `json:"genres"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
