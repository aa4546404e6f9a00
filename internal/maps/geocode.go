// README: Geocoding types and the Geocoder seam shared by all providers.
package maps

import (
	"context"
	"errors"
)

// ErrPlaceNotFound means the provider answered but had no coordinate for
// the place. Callers treat it as "fall back", not as a failure.
var ErrPlaceNotFound = errors.New("place not found")

// Location is a WGS-84-ish coordinate pair. AMap returns GCJ-02 values;
// the distinction does not matter for deep links into AMap itself.
type Location struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

type Geocoder interface {
	Geocode(ctx context.Context, place string) (Location, error)
}
