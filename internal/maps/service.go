// README: Navigation deep links built on a chain of geocoders.
package maps

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
)

const amapHomepage = "https://www.amap.com/"

// NavigationResult carries both the in-app deep link and a browser link for
// one destination. When Located is false the links fall back to the AMap
// homepage so the client always has somewhere to send the user.
type NavigationResult struct {
	Destination string `json:"destination"`
	AppURL      string `json:"appUrl"`
	WebURL      string `json:"webUrl"`
	Located     bool   `json:"located"`
}

// Service resolves place names through a chain of geocoders: the first one
// (AMap) handles mainland China, the rest catch overseas destinations.
type Service struct {
	geocoders []Geocoder
}

func NewService(geocoders ...Geocoder) *Service {
	return &Service{geocoders: geocoders}
}

func (s *Service) geocode(ctx context.Context, place string) (Location, error) {
	var lastErr error = ErrPlaceNotFound
	for _, g := range s.geocoders {
		loc, err := g.Geocode(ctx, place)
		if err == nil {
			return loc, nil
		}
		if !errors.Is(err, ErrPlaceNotFound) {
			log.Printf("geocode %q: %v", place, err)
		}
		lastErr = err
	}
	return Location{}, lastErr
}

// BuildNavigation geocodes the destination and builds AMap deep links. An
// optional activity is folded into the display name ("西湖·游船"); an
// optional origin adds the start point to the route. An unknown place is
// not an error and falls back to the AMap homepage; transport errors
// propagate.
func (s *Service) BuildNavigation(ctx context.Context, destination, activity, origin string) (NavigationResult, error) {
	if destination == "" {
		return NavigationResult{}, errors.New("destination is required")
	}

	// The display name carries the activity, the geocode query does not:
	// "西湖·游船" is not an address.
	name := destination
	if activity != "" {
		name = destination + "·" + activity
	}

	loc, err := s.geocode(ctx, destination)
	if errors.Is(err, ErrPlaceNotFound) {
		return NavigationResult{
			Destination: name,
			AppURL:      amapHomepage,
			WebURL:      amapHomepage,
			Located:     false,
		}, nil
	}
	if err != nil {
		return NavigationResult{}, fmt.Errorf("geocode %q: %w", destination, err)
	}

	// Origin lookup is best-effort: a route without a start point still
	// works, AMap then uses the device location.
	var from *Location
	if origin != "" {
		if ol, err := s.geocode(ctx, origin); err == nil {
			from = &ol
		}
	}

	return NavigationResult{
		Destination: name,
		AppURL:      buildAppURL(loc, name, from),
		WebURL:      buildWebURL(loc, name, from),
		Located:     true,
	}, nil
}

func buildAppURL(loc Location, name string, from *Location) string {
	q := url.Values{}
	if from != nil {
		q.Set("slat", fmt.Sprintf("%f", from.Lat))
		q.Set("slon", fmt.Sprintf("%f", from.Lng))
		q.Set("sname", "我的位置")
	}
	q.Set("dlat", fmt.Sprintf("%f", loc.Lat))
	q.Set("dlon", fmt.Sprintf("%f", loc.Lng))
	q.Set("dname", name)
	q.Set("dev", "0")
	q.Set("t", "0")
	return "amapuri://route/plan/?" + q.Encode()
}

func buildWebURL(loc Location, name string, from *Location) string {
	q := url.Values{}
	if from != nil {
		q.Set("from", fmt.Sprintf("%f,%f,%s", from.Lng, from.Lat, "我的位置"))
	}
	q.Set("to", fmt.Sprintf("%f,%f,%s", loc.Lng, loc.Lat, name))
	q.Set("mode", "car")
	q.Set("policy", "1")
	return "https://uri.amap.com/navigation?" + q.Encode()
}
