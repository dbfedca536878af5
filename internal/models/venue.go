package models

// Venue represents a physical location that can host shows.
type Venue struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	Genres             string `json:"-"`
	WebsiteLink        string `json:"website_link"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`
}

// VenueOverview is the listing row shown on the grouped venue page.
type VenueOverview struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"-"`
	State            string `json:"-"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueGroup collects the venues sharing one (city, state) location.
type VenueGroup struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueOverview `json:"venues"`
}

// VenueDetail is the full venue page payload with its shows split into
// past and upcoming.
type VenueDetail struct {
	Venue
	Genres             []string    `json:"genres"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}
