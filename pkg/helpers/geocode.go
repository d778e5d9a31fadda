package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Geocoder resolves free-form addresses to [lon, lat] via the MapTiler
// geocoding API.
type Geocoder struct {
	APIKey string
	Client *http.Client
}

func NewGeocoder(apiKey string) *Geocoder {
	return &Geocoder{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Forward geocodes an address. Returns the first feature's coordinates.
func (g *Geocoder) Forward(ctx context.Context, address string) ([2]float64, error) {
	var coords [2]float64

	address = strings.TrimSpace(address)
	if address == "" {
		return coords, fmt.Errorf("empty address")
	}
	if g.APIKey == "" {
		return coords, fmt.Errorf("geocoder not configured")
	}

	endpoint := fmt.Sprintf("https://api.maptiler.com/geocoding/%s.json?key=%s",
		url.PathEscape(address), url.QueryEscape(g.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return coords, err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return coords, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return coords, fmt.Errorf("geocoding status %d", resp.StatusCode)
	}

	var body struct {
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return coords, err
	}
	if len(body.Features) == 0 || len(body.Features[0].Geometry.Coordinates) < 2 {
		return coords, fmt.Errorf("no coordinates for %q", address)
	}
	coords[0] = body.Features[0].Geometry.Coordinates[0]
	coords[1] = body.Features[0].Geometry.Coordinates[1]
	return coords, nil
}
