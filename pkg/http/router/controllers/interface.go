package controllers

import (
	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/engine/routing"
	"github.com/lintang-b-s/transitcatalogue/pkg/spatialindex"
)

type CatalogueService interface {
	BusInfo(name string) (catalogue.BusInfo, error)
	StopBuses(name string) ([]string, error)
	Route(from, to string) (routing.RouteInfo, string, error)
	NearbyStops(lat, lon, radius float64) ([]spatialindex.NearbyStop, error)
}
