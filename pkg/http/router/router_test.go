package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lintang-b-s/transitcatalogue/pkg/engine"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
	"github.com/lintang-b-s/transitcatalogue/pkg/http/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	eng, err := engine.NewEngine(zap.NewNop(), 16)
	require.NoError(t, err)

	eng.AddStop("A", 55.60, 37.60)
	eng.AddStop("B", 55.61, 37.61)
	eng.AddStop("C", 55.62, 37.62)
	eng.AddStop("Far Away", 10, 10)
	require.NoError(t, eng.AddDistance("A", "B", 1000))
	require.NoError(t, eng.AddDistance("B", "C", 1500))
	eng.AddBus("1", []string{"A", "B", "C", "B", "A"}, false)
	require.NoError(t, eng.Configure(2, 30))
	eng.BuildGraph()

	service := usecases.NewCatalogueService(zap.NewNop(), eng)
	return NewAPI(zap.NewNop()).Handler(false, RateLimitConfig{}, service)
}

type envelopeBody struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, envelopeBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body envelopeBody
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestBusEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec, body := doGet(t, h, "/api/buses/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var bus struct {
		Name            string `json:"name"`
		StopCount       int    `json:"stop_count"`
		UniqueStopCount int    `json:"unique_stop_count"`
		RouteLength     int    `json:"route_length"`
		IsRoundtrip     bool   `json:"is_roundtrip"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &bus))
	assert.Equal(t, "1", bus.Name)
	assert.Equal(t, 5, bus.StopCount)
	assert.Equal(t, 3, bus.UniqueStopCount)
	assert.Equal(t, 5000, bus.RouteLength)
	assert.False(t, bus.IsRoundtrip)

	rec, body = doGet(t, h, "/api/buses/42")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body.Error, "bus not found")
}

func TestStopEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec, body := doGet(t, h, "/api/stops/B")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"B","buses":["1"]}`, string(body.Data))

	rec, body = doGet(t, h, "/api/stops/Far%20Away")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Far Away","buses":[]}`, string(body.Data))

	rec, _ = doGet(t, h, "/api/stops/Z")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouteEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec, body := doGet(t, h, "/api/route?from=A&to=C")
	require.Equal(t, http.StatusOK, rec.Code)

	var route struct {
		TotalTime float64 `json:"total_time"`
		Items     []struct {
			Type      string  `json:"type"`
			StopName  string  `json:"stop_name"`
			Bus       string  `json:"bus"`
			SpanCount int     `json:"span_count"`
			Time      float64 `json:"time"`
		} `json:"items"`
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &route))
	assert.InDelta(t, 7.0, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, "Wait", route.Items[0].Type)
	assert.Equal(t, "A", route.Items[0].StopName)
	assert.Equal(t, "Bus", route.Items[1].Type)
	assert.Equal(t, "1", route.Items[1].Bus)
	assert.Equal(t, 2, route.Items[1].SpanCount)

	want := geo.PolylineFromCoords([]geo.Coordinate{
		geo.NewCoordinate(55.60, 37.60),
		geo.NewCoordinate(55.62, 37.62),
	})
	assert.Equal(t, want, route.Path)
}

func TestRouteEndpointErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing destination", "/api/route?from=A", http.StatusBadRequest},
		{"unknown stop", "/api/route?from=A&to=Nowhere", http.StatusNotFound},
		{"unreachable stop", "/api/route?from=A&to=Far%20Away", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet(t, h, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestNearbyStopsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec, body := doGet(t, h, "/api/nearbyStops?lat=55.60&lon=37.60&radius=1.5")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Stops []struct {
			Name string `json:"name"`
		} `json:"stops"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &resp))
	require.Len(t, resp.Stops, 2)
	assert.Equal(t, "A", resp.Stops[0].Name)
	assert.Equal(t, "B", resp.Stops[1].Name)

	rec, _ = doGet(t, h, "/api/nearbyStops?lat=55.60&lon=37.60")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = doGet(t, h, "/api/nearbyStops?lat=95&lon=37.60&radius=1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body.Error, "Lat")
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)

	rec, _ := doGet(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".", rec.Body.String())
}
