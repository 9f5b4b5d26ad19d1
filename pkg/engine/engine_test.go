package engine

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/transitcatalogue/pkg"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(zap.NewNop(), 16)
	require.NoError(t, err)

	e.AddStop("A", 0, 0)
	e.AddStop("B", 0, 0.01)
	e.AddStop("C", 0.01, 0.01)
	e.AddStop("X", 0.5, 0.5)
	e.AddStop("Y", 0.5, 0.51)
	e.AddStop("Z", 0.5, 0.52)
	require.NoError(t, e.AddDistance("A", "B", 1000))
	require.NoError(t, e.AddDistance("B", "C", 1000))
	require.NoError(t, e.AddDistance("C", "A", 1000))
	require.NoError(t, e.AddDistance("X", "Y", 1500))
	require.NoError(t, e.AddDistance("Y", "Z", 1500))

	e.AddBus("1", []string{"A", "B", "C", "A"}, true)
	e.AddBus("2", []string{"X", "Y", "Z", "Y", "X"}, false)
	return e
}

func TestNewEngineInvalidCacheSize(t *testing.T) {
	_, err := NewEngine(zap.NewNop(), 0)
	assert.Error(t, err)
}

func TestConfigure(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, DefaultRoutingSettings(), e.GetSettings())

	testCases := []struct {
		name     string
		waitTime float64
		velocity float64
		wantErr  bool
	}{
		{name: "valid", waitTime: 6, velocity: 60},
		{name: "zero wait time is allowed", waitTime: 0, velocity: 30},
		{name: "high velocity", waitTime: 6, velocity: 1200},
		{name: "day long wait time", waitTime: 1440, velocity: 40},
		{name: "zero velocity", waitTime: 6, velocity: 0, wantErr: true},
		{name: "negative velocity", waitTime: 6, velocity: -5, wantErr: true},
		{name: "negative wait time", waitTime: -1, velocity: 30, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Configure(tt.waitTime, tt.velocity)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, util.ErrorCode(err), util.ErrBadParamInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, RoutingSettings{BusWaitTime: tt.waitTime, BusVelocity: tt.velocity}, e.GetSettings())
		})
	}
}

func TestFindRouteBeforeBuild(t *testing.T) {
	e := newTestEngine(t)
	_, _, err := e.FindRoute("A", "C")
	assert.True(t, errors.Is(err, ErrGraphNotBuilt))

	_, err = e.NearbyStops(0, 0, 1)
	assert.ErrorIs(t, err, ErrGraphNotBuilt)
}

func TestEngineQueries(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Configure(6, 60))
	e.BuildGraph()

	route, found, err := e.FindRoute("A", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 8, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, pkg.WAIT, route.Items[0].Kind)
	assert.Equal(t, "A", route.Items[0].Name)
	assert.InDelta(t, 6, route.Items[0].Time, 1e-9)
	assert.Equal(t, pkg.BUS, route.Items[1].Kind)
	assert.Equal(t, "1", route.Items[1].Name)
	assert.Equal(t, 2, route.Items[1].SpanCount)
	assert.InDelta(t, 2, route.Items[1].Time, 1e-9)

	cached, found, err := e.FindRoute("A", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, route, cached)

	cached.Items[0].Name = "changed"
	again, _, err := e.FindRoute("A", "C")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Items[0].Name, "callers must not share cached items")
	again.Items[1].SpanCount = 99
	again, _, err = e.FindRoute("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[1].SpanCount)

	coords := e.RouteCoordinates("A", route)
	assert.Equal(t, []geo.Coordinate{geo.NewCoordinate(0, 0), geo.NewCoordinate(0.01, 0.01)}, coords)

	route, found, err = e.FindRoute("C", "C")
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, route.Items)
	assert.Equal(t, 0.0, route.TotalTime)

	_, found, err = e.FindRoute("A", "X")
	require.NoError(t, err)
	assert.False(t, found, "no bus connects the two networks")

	_, found, err = e.FindRoute("A", "Nowhere")
	require.NoError(t, err)
	assert.False(t, found)

	info, ok := e.GetBusInfo("2")
	require.True(t, ok)
	assert.Equal(t, 5, info.StopsCount)
	assert.Equal(t, 3, info.UniqueStopsCount)
	assert.Equal(t, 6000, info.RouteLength)
	assert.GreaterOrEqual(t, info.Curvature, 1.0)

	_, ok = e.GetBusInfo("3")
	assert.False(t, ok)

	buses, ok := e.GetStopInfo("B")
	require.True(t, ok)
	assert.Equal(t, []string{"1"}, buses)

	_, ok = e.GetStopInfo("Nowhere")
	assert.False(t, ok)

	nearby, err := e.NearbyStops(0, 0, 1.2)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "A", nearby[0].GetName())
	assert.Equal(t, "B", nearby[1].GetName())
}

func TestRebuildPurgesRouteCache(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Configure(6, 60))
	e.BuildGraph()

	route, _, err := e.FindRoute("A", "C")
	require.NoError(t, err)
	assert.InDelta(t, 8, route.TotalTime, 1e-9)

	require.NoError(t, e.Configure(1, 30))
	e.BuildGraph()

	route, _, err = e.FindRoute("A", "C")
	require.NoError(t, err)
	assert.InDelta(t, 5, route.TotalTime, 1e-9)
}
