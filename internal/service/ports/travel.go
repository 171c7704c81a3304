package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// Geocoder resolves a postal address to coordinates. ok=false is an
// expected miss, not an error.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (domain.Coordinates, bool)
}
