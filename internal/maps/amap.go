// README: AMap (高德) geocoding over its REST v3 API.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const amapEndpoint = "https://restapi.amap.com/v3/geocode/geo"

// amapHTTPClient is shared by all AMap requests; the timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var amapHTTPClient = &http.Client{Timeout: 10 * time.Second}

type AMapGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAMapGeocoder(apiKey string) *AMapGeocoder {
	return &AMapGeocoder{
		apiKey:  apiKey,
		baseURL: amapEndpoint,
		client:  amapHTTPClient,
	}
}

type amapResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Geocodes []struct {
		Location string `json:"location"`
	} `json:"geocodes"`
}

func (g *AMapGeocoder) Geocode(ctx context.Context, place string) (Location, error) {
	q := url.Values{}
	q.Set("key", g.apiKey)
	q.Set("address", place)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("amap: build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("amap: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Location{}, fmt.Errorf("amap: read response: %w", err)
	}

	var ar amapResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return Location{}, fmt.Errorf("amap: unmarshal response: %w", err)
	}
	if ar.Status != "1" {
		return Location{}, fmt.Errorf("amap: api error: %s", ar.Info)
	}
	if len(ar.Geocodes) == 0 || ar.Geocodes[0].Location == "" {
		return Location{}, ErrPlaceNotFound
	}
	return parseAMapLocation(ar.Geocodes[0].Location)
}

// parseAMapLocation decodes AMap's "lng,lat" string form.
func parseAMapLocation(s string) (Location, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("amap: bad location %q", s)
	}
	lng, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Location{}, fmt.Errorf("amap: bad longitude %q", parts[0])
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Location{}, fmt.Errorf("amap: bad latitude %q", parts[1])
	}
	return Location{Lng: lng, Lat: lat}, nil
}
