package travel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newClientFor(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	return NewClient(Config{Token: "test-token", BaseURL: srv.URL, Timeout: time.Second}, newTestLogger(t))
}

var (
	warsaw = domain.Coordinates{Lat: 52.2297, Lon: 21.0122}
	london = domain.Coordinates{Lat: 51.5074, Lon: -0.1278}
)

func TestEstimate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/directions/v5/mapbox/driving-traffic/"))
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{"routes":[{"duration":1800},{"duration":2400}]}`))
	}))
	defer srv.Close()

	minutes, ok := newClientFor(t, srv).Estimate(context.Background(), warsaw, london)

	require.True(t, ok)
	// First route wins.
	assert.Equal(t, 30.0, minutes)
}

func TestEstimate_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Internal Server Error"}`))
	}))
	defer srv.Close()

	_, ok := newClientFor(t, srv).Estimate(context.Background(), warsaw, london)

	assert.False(t, ok)
}

func TestEstimate_EmptyRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	_, ok := newClientFor(t, srv).Estimate(context.Background(), warsaw, london)

	assert.False(t, ok)
}

func TestEstimate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, ok := newClientFor(t, srv).Estimate(context.Background(), warsaw, london)

	assert.False(t, ok)
}

func TestEstimate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		w.Write([]byte(`{"routes":[{"duration":600}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{Token: "t", BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, newTestLogger(t))

	_, ok := c.Estimate(context.Background(), warsaw, london)

	assert.False(t, ok)
}

func TestGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/geocoding/v5/mapbox.places/"))
		w.Write([]byte(`{"features":[{"center":[21.0122,52.2297]}]}`))
	}))
	defer srv.Close()

	coords, ok := newClientFor(t, srv).Geocode(context.Background(), "1 Main St, Warsaw")

	require.True(t, ok)
	assert.Equal(t, 52.2297, coords.Lat)
	assert.Equal(t, 21.0122, coords.Lon)
}

func TestGeocode_NoFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	_, ok := newClientFor(t, srv).Geocode(context.Background(), "nowhere")

	assert.False(t, ok)
}
