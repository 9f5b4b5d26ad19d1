package usecases

import (
	"errors"

	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/engine/routing"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
	"github.com/lintang-b-s/transitcatalogue/pkg/spatialindex"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrBusNotFound   = errors.New("bus not found")
	ErrStopNotFound  = errors.New("stop not found")
	ErrRouteNotFound = errors.New("route not found")
)

type CatalogueService struct {
	log    *zap.Logger
	engine QueryEngine
}

func NewCatalogueService(log *zap.Logger, engine QueryEngine) *CatalogueService {
	return &CatalogueService{
		log:    log,
		engine: engine,
	}
}

func (cs *CatalogueService) BusInfo(name string) (catalogue.BusInfo, error) {
	info, ok := cs.engine.GetBusInfo(name)
	if !ok {
		return catalogue.BusInfo{}, util.WrapErrorf(ErrBusNotFound, util.ErrNotFound, "bus %q", name)
	}
	return info, nil
}

func (cs *CatalogueService) StopBuses(name string) ([]string, error) {
	buses, ok := cs.engine.GetStopInfo(name)
	if !ok {
		return nil, util.WrapErrorf(ErrStopNotFound, util.ErrNotFound, "stop %q", name)
	}
	return buses, nil
}

// Route. fastest itinerary plus the encoded polyline of the stops it visits
func (cs *CatalogueService) Route(from, to string) (routing.RouteInfo, string, error) {
	route, found, err := cs.engine.FindRoute(from, to)
	if err != nil {
		return routing.RouteInfo{}, "", util.WrapErrorf(err, util.ErrInternalServerError, "find route")
	}
	if !found {
		return routing.RouteInfo{}, "", util.WrapErrorf(ErrRouteNotFound, util.ErrNotFound,
			"no route from %q to %q", from, to)
	}

	path := geo.PolylineFromCoords(cs.engine.RouteCoordinates(from, route))
	return route, path, nil
}

func (cs *CatalogueService) NearbyStops(lat, lon, radius float64) ([]spatialindex.NearbyStop, error) {
	stops, err := cs.engine.NearbyStops(lat, lon, radius)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "nearby stops")
	}
	return stops, nil
}
