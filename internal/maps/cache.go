// README: Redis cache in front of a Geocoder.
package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	geoKeyPrefix = "geo:"
	geoCacheTTL  = 24 * time.Hour
)

// CachedGeocoder memoizes successful lookups in Redis. Misses and provider
// errors are never cached. Cache failures degrade to a live lookup.
type CachedGeocoder struct {
	next  Geocoder
	redis *redis.Client
}

func NewCachedGeocoder(next Geocoder, rdb *redis.Client) *CachedGeocoder {
	return &CachedGeocoder{next: next, redis: rdb}
}

// geoKey builds the cache key from the normalized place name so " 西湖 "
// and "西湖" share an entry.
func geoKey(place string) string {
	return geoKeyPrefix + strings.TrimSpace(place)
}

func (c *CachedGeocoder) Geocode(ctx context.Context, place string) (Location, error) {
	key := geoKey(place)
	if cached, err := c.redis.Get(ctx, key).Result(); err == nil {
		if loc, err := parseAMapLocation(cached); err == nil {
			return loc, nil
		}
	}

	loc, err := c.next.Geocode(ctx, place)
	if err != nil {
		return Location{}, err
	}

	val := fmt.Sprintf("%f,%f", loc.Lng, loc.Lat)
	c.redis.Set(ctx, key, val, geoCacheTTL)
	return loc, nil
}
