// README: Google Maps geocoding, used as the overseas fallback.
package maps

import (
	"context"
	"fmt"

	gmaps "googlemaps.github.io/maps"
)

// GoogleGeocoder covers places AMap has poor data for (most destinations
// outside mainland China).
type GoogleGeocoder struct {
	client *gmaps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, place string) (Location, error) {
	results, err := g.client.Geocode(ctx, &gmaps.GeocodingRequest{
		Address:  place,
		Language: "zh-CN",
	})
	if err != nil {
		return Location{}, fmt.Errorf("google geocode: %w", err)
	}
	if len(results) == 0 {
		return Location{}, ErrPlaceNotFound
	}
	loc := results[0].Geometry.Location
	return Location{Lng: loc.Lng, Lat: loc.Lat}, nil
}
