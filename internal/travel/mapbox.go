package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultBaseURL = "https://api.mapbox.com"
	defaultTimeout = 5 * time.Second
)

type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the Mapbox Directions and Geocoding APIs. All failures
// (non-200, empty route list, transport errors, malformed bodies) collapse
// to the no-result case: booking operations must never block on a
// third-party outage. A single best-effort call is issued per lookup.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func NewClient(cfg Config, log logger.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		token:   cfg.Token,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

type directionsResponse struct {
	Routes []struct {
		Duration float64 `json:"duration"`
	} `json:"routes"`
	Message string `json:"message"`
}

// Estimate returns the traffic-aware driving time between two points in
// minutes, using the first candidate route.
func (c *Client) Estimate(ctx context.Context, origin, dest domain.Coordinates) (float64, bool) {
	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/driving-traffic/%f,%f;%f,%f",
		c.baseURL, origin.Lon, origin.Lat, dest.Lon, dest.Lat,
	)

	params := url.Values{}
	params.Set("access_token", c.token)
	params.Set("geometries", "geojson")
	params.Set("overview", "full")
	params.Set("steps", "true")

	var data directionsResponse
	if !c.get(ctx, endpoint+"?"+params.Encode(), &data) {
		return 0, false
	}
	if len(data.Routes) == 0 {
		c.logger.Warn("mapbox returned no routes",
			logger.String("message", data.Message),
		)
		return 0, false
	}

	return data.Routes[0].Duration / 60, true
}

type geocodingResponse struct {
	Features []struct {
		Center []float64 `json:"center"`
	} `json:"features"`
}

// Geocode resolves a postal address to coordinates. ok=false means the
// address could not be resolved; the venue stays ungeocoded.
func (c *Client) Geocode(ctx context.Context, query string) (domain.Coordinates, bool) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json",
		c.baseURL, url.PathEscape(query),
	)

	params := url.Values{}
	params.Set("access_token", c.token)
	params.Set("limit", "1")

	var data geocodingResponse
	if !c.get(ctx, endpoint+"?"+params.Encode(), &data) {
		return domain.Coordinates{}, false
	}
	if len(data.Features) == 0 || len(data.Features[0].Center) < 2 {
		c.logger.Warn("mapbox geocoding returned no features",
			logger.String("query", query),
		)
		return domain.Coordinates{}, false
	}

	center := data.Features[0].Center
	return domain.Coordinates{Lat: center[1], Lon: center[0]}, true
}

func (c *Client) get(ctx context.Context, rawURL string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		c.logger.Error("mapbox request build failed",
			logger.String("error", err.Error()),
		)
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("mapbox request failed",
			logger.String("error", err.Error()),
		)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("mapbox non-200 response",
			logger.Int("status", resp.StatusCode),
		)
		return false
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("mapbox response decode failed",
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}
