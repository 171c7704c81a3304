package domain

import "time"

// Coordinates is a WGS84 point used for travel-time lookups.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Venue struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BuildingNumber string    `json:"building_number"`
	Street         string    `json:"street"`
	City           string    `json:"city"`
	PostalCode     string    `json:"postal_code"`
	Country        string    `json:"country"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Coordinates reports the venue's geocoded position. A venue that has not
// been geocoded yet has no coordinates, and travel checks against it are
// skipped.
func (v *Venue) Coordinates() (Coordinates, bool) {
	if v == nil || v.Latitude == nil || v.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *v.Latitude, Lon: *v.Longitude}, true
}

// Address renders the postal address used as the geocoding query.
func (v *Venue) Address() string {
	return v.BuildingNumber + " " + v.Street + ", " + v.PostalCode + " " + v.City + ", " + v.Country
}

type VenueInput struct {
	Name           string
	BuildingNumber string
	Street         string
	City           string
	PostalCode     string
	Country        string
}
