// README: Destination canonicalization via the Google Geocoding API.
package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves free-text destinations into a canonical
// "City, Country" form before prompting, so "paris tx" and "Paris, France"
// stop producing itineraries for the wrong city. Resolution is best-effort;
// the trip service falls back to the raw input on any failure.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Resolve geocodes the destination and returns "City, Country". An empty
// string with nil error means the geocoder had no usable result.
func (s *GeocodeService) Resolve(ctx context.Context, destination string) (string, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return "", nil
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: destination})
	if err != nil {
		return "", fmt.Errorf("geocode %q: %w", destination, err)
	}
	if len(results) == 0 {
		return "", nil
	}
	return cityCountry(results[0].AddressComponents), nil
}

// cityCountry picks the locality and country names out of the address
// components. Falls back to broader administrative areas when the result has
// no locality (e.g. city-states and islands).
func cityCountry(components []maps.AddressComponent) string {
	var city, country string
	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "locality", "postal_town":
				if city == "" {
					city = c.LongName
				}
			case "administrative_area_level_1":
				if city == "" {
					city = c.LongName
				}
			case "country":
				country = c.LongName
			}
		}
	}
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	case country != "":
		return country
	default:
		return ""
	}
}
