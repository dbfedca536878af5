package models

import "time"

// TimeLayout is the display format for show start times.
const TimeLayout = "2006-01-02 15:04:05"

// Show is the join record scheduling one Artist at one Venue.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// VenueShow is a show as displayed on a venue page: the counterpart is
// the artist performing there.
type VenueShow struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       string    `json:"start_time"`
	StartAt         time.Time `json:"-"`
}

// ArtistShow is a show as displayed on an artist page: the counterpart is
// the venue hosting it.
type ArtistShow struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      string    `json:"start_time"`
	StartAt        time.Time `json:"-"`
}

// ShowListing is a row on the global shows page, joined with both sides.
type ShowListing struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
