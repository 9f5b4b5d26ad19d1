package usecases

import (
	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/engine/routing"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
	"github.com/lintang-b-s/transitcatalogue/pkg/spatialindex"
)

type QueryEngine interface {
	GetBusInfo(name string) (catalogue.BusInfo, bool)
	GetStopInfo(name string) ([]string, bool)
	FindRoute(from, to string) (routing.RouteInfo, bool, error)
	RouteCoordinates(from string, route routing.RouteInfo) []geo.Coordinate
	NearbyStops(lat, lon, radius float64) ([]spatialindex.NearbyStop, error)
}
