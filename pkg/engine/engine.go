package engine

import (
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/transitcatalogue/pkg"
	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/costfunction"
	"github.com/lintang-b-s/transitcatalogue/pkg/engine/routing"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
	"github.com/lintang-b-s/transitcatalogue/pkg/spatialindex"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"go.uber.org/zap"
)

var ErrGraphNotBuilt = errors.New("route graph is not built")

type RoutingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time" validate:"gte=0"` // minute
	BusVelocity float64 `json:"bus_velocity" validate:"gt=0"`  // km/h
}

func DefaultRoutingSettings() RoutingSettings {
	return RoutingSettings{
		BusWaitTime: pkg.DEFAULT_BUS_WAIT_TIME,
		BusVelocity: pkg.DEFAULT_BUS_VELOCITY,
	}
}

type routeCacheKey struct {
	from, to string
}

type routeCacheValue struct {
	route routing.RouteInfo
	found bool
}

// Engine. entry point for loading the catalogue and answering bus, stop and route queries.
// load phase: AddStop/AddDistance/AddBus, Configure, BuildGraph. query phase: everything else, safe for concurrent use.
type Engine struct {
	catalogue  *catalogue.TransportCatalogue
	router     *routing.TransportRouter
	stopIndex  *spatialindex.Rtree
	settings   RoutingSettings
	routeCache *lru.Cache[routeCacheKey, routeCacheValue]
	validate   *util.Validator
	log        *zap.Logger
}

func NewEngine(logger *zap.Logger, routeCacheSize int) (*Engine, error) {
	routeCache, err := lru.New[routeCacheKey, routeCacheValue](routeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create route cache: %w", err)
	}
	return &Engine{
		catalogue:  catalogue.NewTransportCatalogue(logger),
		router:     routing.NewTransportRouter(logger),
		settings:   DefaultRoutingSettings(),
		routeCache: routeCache,
		validate:   util.NewValidator(),
		log:        logger,
	}, nil
}

func (e *Engine) GetRouter() *routing.TransportRouter {
	return e.router
}

func (e *Engine) GetSettings() RoutingSettings {
	return e.settings
}

func (e *Engine) AddStop(name string, lat, lng float64) {
	e.catalogue.AddStop(name, geo.NewCoordinate(lat, lng))
}

// AddBus. stops must already be the full travelled sequence, i.e. expanded there and back for a non roundtrip bus
func (e *Engine) AddBus(name string, stops []string, isRoundtrip bool) {
	e.catalogue.AddBus(name, stops, isRoundtrip)
}

func (e *Engine) AddDistance(from, to string, meters int) error {
	return e.catalogue.AddDistance(from, to, meters)
}

func (e *Engine) Configure(waitTime, velocity float64) error {
	settings := RoutingSettings{
		BusWaitTime: waitTime,
		BusVelocity: velocity,
	}
	if err := e.validate.Struct(settings); err != nil {
		return err
	}
	e.settings = settings
	return nil
}

// BuildGraph. (re)builds the route graph and the stop index from the current catalogue and settings
func (e *Engine) BuildGraph() {
	stats := e.catalogue.Stats()
	e.log.Info("Building route graph...",
		zap.Int("stops", stats.Stops),
		zap.Int("buses", stats.Buses),
		zap.Int("distances", stats.Distances),
		zap.Float64("bus_wait_time", e.settings.BusWaitTime),
		zap.Float64("bus_velocity", e.settings.BusVelocity))

	e.router.BuildGraph(e.catalogue,
		costfunction.NewTravelTimeFunction(e.settings.BusWaitTime, e.settings.BusVelocity))

	stopIndex := spatialindex.NewRtree()
	stopIndex.Build(e.catalogue.AllStopsSorted(), e.log)
	e.stopIndex = stopIndex

	e.routeCache.Purge()
}

func (e *Engine) GetBusInfo(name string) (catalogue.BusInfo, bool) {
	return e.catalogue.GetBusInfo(name)
}

func (e *Engine) GetStopInfo(name string) ([]string, bool) {
	return e.catalogue.GetStopInfo(name)
}

// FindRoute. fastest itinerary between two stops. the error is only set when BuildGraph has not run yet
func (e *Engine) FindRoute(from, to string) (routing.RouteInfo, bool, error) {
	if !e.router.IsBuilt() {
		return routing.RouteInfo{}, false, ErrGraphNotBuilt
	}

	key := routeCacheKey{from: from, to: to}
	if cached, ok := e.routeCache.Get(key); ok {
		return cloneRoute(cached.route), cached.found, nil
	}

	route, found := e.router.FindRoute(from, to)
	e.routeCache.Add(key, routeCacheValue{route: cloneRoute(route), found: found})
	return route, found, nil
}

// cached routes are shared between callers, hand out private copies of the items
func cloneRoute(route routing.RouteInfo) routing.RouteInfo {
	return routing.RouteInfo{
		Items:     slices.Clone(route.Items),
		TotalTime: route.TotalTime,
	}
}

// RouteCoordinates. coordinates of the origin stop followed by the stop reached by every ride
func (e *Engine) RouteCoordinates(from string, route routing.RouteInfo) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(route.Items)+1)
	if id, ok := e.catalogue.FindStop(from); ok {
		coords = append(coords, e.catalogue.GetStop(id).GetCoordinates())
	}
	for _, item := range route.Items {
		if item.Kind != pkg.BUS {
			continue
		}
		if id, ok := e.catalogue.FindStop(e.router.GetStopName(item.To)); ok {
			coords = append(coords, e.catalogue.GetStop(id).GetCoordinates())
		}
	}
	return coords
}

// NearbyStops. stops within radius km of (lat, lon), nearest first
func (e *Engine) NearbyStops(lat, lon, radius float64) ([]spatialindex.NearbyStop, error) {
	if e.stopIndex == nil {
		return nil, ErrGraphNotBuilt
	}
	return e.stopIndex.SearchWithinRadius(lat, lon, radius), nil
}
