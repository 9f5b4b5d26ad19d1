package loader

import (
	"sort"

	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"go.uber.org/zap"
)

// Catalogue. ingestion side of the engine
type Catalogue interface {
	AddStop(name string, lat, lng float64)
	AddBus(name string, stops []string, isRoundtrip bool)
	AddDistance(from, to string, meters int) error
	Configure(waitTime, velocity float64) error
	BuildGraph()
}

// ExpandRoute. full travelled stop sequence: [A,B,C] -> [A,B,C,B,A] unless the bus is a roundtrip
func ExpandRoute(stops []string, isRoundtrip bool) []string {
	if isRoundtrip || len(stops) < 2 {
		return stops
	}
	route := make([]string, 0, 2*len(stops)-1)
	route = append(route, stops...)
	route = append(route, util.ReverseG(stops[:len(stops)-1])...)
	return route
}

// Load. fill the catalogue from the base requests (stops, then distances, then buses), configure routing and build the graph.
// the first invalid request aborts the load.
func Load(doc *Document, cat Catalogue, log *zap.Logger) error {
	stops := 0
	for _, req := range doc.BaseRequests {
		if req.Type == requestTypeStop {
			cat.AddStop(req.Name, req.Latitude, req.Longitude)
			stops++
		}
	}

	distances := 0
	for _, req := range doc.BaseRequests {
		if req.Type != requestTypeStop {
			continue
		}
		// sorted so a failing load always reports the same stop
		toNames := make([]string, 0, len(req.RoadDistances))
		for to := range req.RoadDistances {
			toNames = append(toNames, to)
		}
		sort.Strings(toNames)
		for _, to := range toNames {
			if err := cat.AddDistance(req.Name, to, req.RoadDistances[to]); err != nil {
				return err
			}
			distances++
		}
	}

	buses := 0
	for _, req := range doc.BaseRequests {
		if req.Type == requestTypeBus {
			cat.AddBus(req.Name, ExpandRoute(req.Stops, req.IsRoundtrip), req.IsRoundtrip)
			buses++
		}
	}

	if doc.RoutingSettings != nil {
		if err := cat.Configure(doc.RoutingSettings.BusWaitTime, doc.RoutingSettings.BusVelocity); err != nil {
			return err
		}
	}

	log.Info("catalogue loaded",
		zap.Int("stops", stops),
		zap.Int("distances", distances),
		zap.Int("buses", buses))

	cat.BuildGraph()
	return nil
}
