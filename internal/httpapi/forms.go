package httpapi

import (
	"net/http"
	"time"

	"showbill/internal/models"
)

// formField describes one input on a create or edit form, the JSON
// analogue of the rendered server-side form.
type formField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required,omitempty"`
	Choices  []string `json:"choices,omitempty"`
	Value    string   `json:"value,omitempty"`
	Values   []string `json:"values,omitempty"`
}

type formResponse struct {
	Action string      `json:"action"`
	Fields []formField `json:"fields"`
}

var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

var yesNoChoices = []string{"Yes", "No"}

func venueFormFields(v models.Venue) []formField {
	seeking := "No"
	if v.SeekingTalent {
		seeking = "Yes"
	}
	return []formField{
		{Name: "name", Label: "Name", Kind: "text", Required: true, Value: v.Name},
		{Name: "city", Label: "City", Kind: "text", Required: true, Value: v.City},
		{Name: "state", Label: "State", Kind: "select", Required: true, Choices: stateChoices, Value: v.State},
		{Name: "address", Label: "Address", Kind: "text", Value: v.Address},
		{Name: "phone", Label: "Phone", Kind: "text", Value: v.Phone},
		{Name: "genres", Label: "Genres", Kind: "select_multiple", Choices: genreChoices, Values: models.SplitGenres(v.Genres)},
		{Name: "image_link", Label: "Image Link", Kind: "text", Value: v.ImageLink},
		{Name: "facebook_link", Label: "Facebook Link", Kind: "text", Value: v.FacebookLink},
		{Name: "website_link", Label: "Website Link", Kind: "text", Value: v.WebsiteLink},
		{Name: "seeking_talent", Label: "Looking for Talent", Kind: "select", Choices: yesNoChoices, Value: seeking},
		{Name: "seeking_description", Label: "Seeking Description", Kind: "text", Value: v.SeekingDescription},
	}
}

func artistFormFields(a models.Artist) []formField {
	seeking := "No"
	if a.SeekingVenue {
		seeking = "Yes"
	}
	return []formField{
		{Name: "name", Label: "Name", Kind: "text", Required: true, Value: a.Name},
		{Name: "city", Label: "City", Kind: "text", Required: true, Value: a.City},
		{Name: "state", Label: "State", Kind: "select", Required: true, Choices: stateChoices, Value: a.State},
		{Name: "phone", Label: "Phone", Kind: "text", Value: a.Phone},
		{Name: "genres", Label: "Genres", Kind: "select_multiple", Choices: genreChoices, Values: models.SplitGenres(a.Genres)},
		{Name: "image_link", Label: "Image Link", Kind: "text", Value: a.ImageLink},
		{Name: "facebook_link", Label: "Facebook Link", Kind: "text", Value: a.FacebookLink},
		{Name: "website_link", Label: "Website Link", Kind: "text", Value: a.WebsiteLink},
		{Name: "seeking_venue", Label: "Looking for Venues", Kind: "select", Choices: yesNoChoices, Value: seeking},
		{Name: "seeking_description", Label: "Seeking Description", Kind: "text", Value: a.SeekingDescription},
	}
}

func showFormFields() []formField {
	return []formField{
		{Name: "artist_id", Label: "Artist ID", Kind: "text", Required: true},
		{Name: "venue_id", Label: "Venue ID", Kind: "text", Required: true},
		{Name: "start_time", Label: "Start Time", Kind: "datetime", Required: true},
	}
}

func venueFromForm(r *http.Request) models.Venue {
	return models.Venue{
		Name:               r.PostFormValue("name"),
		City:               r.PostFormValue("city"),
		State:              r.PostFormValue("state"),
		Address:            r.PostFormValue("address"),
		Phone:              r.PostFormValue("phone"),
		Genres:             models.JoinGenres(r.PostForm["genres"]),
		ImageLink:          r.PostFormValue("image_link"),
		FacebookLink:       r.PostFormValue("facebook_link"),
		WebsiteLink:        r.PostFormValue("website_link"),
		SeekingTalent:      r.PostFormValue("seeking_talent") == "Yes",
		SeekingDescription: r.PostFormValue("seeking_description"),
	}
}

func artistFromForm(r *http.Request) models.Artist {
	return models.Artist{
		Name:               r.PostFormValue("name"),
		City:               r.PostFormValue("city"),
		State:              r.PostFormValue("state"),
		Phone:              r.PostFormValue("phone"),
		Genres:             models.JoinGenres(r.PostForm["genres"]),
		ImageLink:          r.PostFormValue("image_link"),
		FacebookLink:       r.PostFormValue("facebook_link"),
		WebsiteLink:        r.PostFormValue("website_link"),
		SeekingVenue:       r.PostFormValue("seeking_venue") == "Yes",
		SeekingDescription: r.PostFormValue("seeking_description"),
	}
}

var startTimeLayouts = []string{
	models.TimeLayout,
	time.RFC3339,
	"2006-01-02T15:04",
}

func parseStartTime(raw string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
