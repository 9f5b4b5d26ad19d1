package catalogue

import (
	"fmt"
	"sort"

	da "github.com/lintang-b-s/transitcatalogue/pkg/datastructure"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"go.uber.org/zap"
)

// TransportCatalogue. append-only store of stops, buses and directed road distances.
// stops and buses live in arenas and are referenced by their arena index.
type TransportCatalogue struct {
	stops   []Stop
	stopIds map[string]da.Index
	buses   []Bus
	busIds  map[string]da.Index

	stopToBuses map[string]map[string]struct{}
	distances   map[stopPair]int

	log *zap.Logger
}

func NewTransportCatalogue(log *zap.Logger) *TransportCatalogue {
	return &TransportCatalogue{
		stops:       make([]Stop, 0),
		stopIds:     make(map[string]da.Index),
		buses:       make([]Bus, 0),
		busIds:      make(map[string]da.Index),
		stopToBuses: make(map[string]map[string]struct{}),
		distances:   make(map[stopPair]int),
		log:         log,
	}
}

// AddStop. a duplicate name re-points the lookup to the new stop, the old one stays in the arena
func (tc *TransportCatalogue) AddStop(name string, coordinates geo.Coordinate) da.Index {
	id := da.Index(len(tc.stops))
	tc.stops = append(tc.stops, Stop{
		id:          id,
		name:        name,
		coordinates: coordinates,
	})
	tc.stopIds[name] = id
	if _, ok := tc.stopToBuses[name]; !ok {
		tc.stopToBuses[name] = make(map[string]struct{})
	}
	return id
}

func (tc *TransportCatalogue) FindStop(name string) (da.Index, bool) {
	id, ok := tc.stopIds[name]
	return id, ok
}

func (tc *TransportCatalogue) GetStop(id da.Index) *Stop {
	return &tc.stops[id]
}

// AddBus. stop names that are not in the catalogue are dropped from the route
func (tc *TransportCatalogue) AddBus(name string, stops []string, isRoundtrip bool) da.Index {
	route := make([]da.Index, 0, len(stops))
	for _, stopName := range stops {
		stopId, ok := tc.stopIds[stopName]
		if !ok {
			tc.log.Debug("dropping unknown stop from bus route",
				zap.String("bus", name), zap.String("stop", stopName))
			continue
		}
		route = append(route, stopId)
	}

	id := da.Index(len(tc.buses))
	tc.buses = append(tc.buses, Bus{
		id:          id,
		name:        name,
		stops:       route,
		isRoundtrip: isRoundtrip,
	})
	tc.busIds[name] = id

	for _, stopId := range route {
		stopName := tc.stops[stopId].name
		tc.stopToBuses[stopName][name] = struct{}{}
	}
	return id
}

func (tc *TransportCatalogue) FindBus(name string) (da.Index, bool) {
	id, ok := tc.busIds[name]
	return id, ok
}

func (tc *TransportCatalogue) GetBus(id da.Index) *Bus {
	return &tc.buses[id]
}

// AddDistance. stores only the from->to direction. both stops must already be in the catalogue
func (tc *TransportCatalogue) AddDistance(from, to string, meters int) error {
	fromId, ok := tc.stopIds[from]
	if !ok {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "road distance from unknown stop %q", from)
	}
	toId, ok := tc.stopIds[to]
	if !ok {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "road distance to unknown stop %q", to)
	}
	if meters < 0 {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "negative road distance %d from %q to %q", meters, from, to)
	}
	tc.distances[stopPair{from: fromId, to: toId}] = meters
	return nil
}

// GetDistance. road distance in meter, falls back to the reverse direction when from->to was not supplied
func (tc *TransportCatalogue) GetDistance(from, to string) int {
	if from == to {
		return 0
	}
	fromId, ok := tc.stopIds[from]
	util.AssertPanic(ok, fmt.Sprintf("unknown stop %q", from))
	toId, ok := tc.stopIds[to]
	util.AssertPanic(ok, fmt.Sprintf("unknown stop %q", to))
	return tc.GetDistanceById(fromId, toId)
}

func (tc *TransportCatalogue) GetDistanceById(from, to da.Index) int {
	if from == to {
		return 0
	}
	if d, ok := tc.distances[stopPair{from: from, to: to}]; ok {
		return d
	}
	d, ok := tc.distances[stopPair{from: to, to: from}]
	util.AssertPanic(ok, fmt.Sprintf("road distance between %q and %q is not configured",
		tc.stops[from].name, tc.stops[to].name))
	return d
}

// GetStopInfo. names of the buses serving the stop, sorted
func (tc *TransportCatalogue) GetStopInfo(name string) ([]string, bool) {
	if _, ok := tc.stopIds[name]; !ok {
		return nil, false
	}
	buses := make([]string, 0, len(tc.stopToBuses[name]))
	for bus := range tc.stopToBuses[name] {
		buses = append(buses, bus)
	}
	sort.Strings(buses)
	return buses, true
}

func (tc *TransportCatalogue) GetBusInfo(name string) (BusInfo, bool) {
	id, ok := tc.busIds[name]
	if !ok {
		return BusInfo{}, false
	}
	bus := &tc.buses[id]

	roadLength := 0
	coords := make([]geo.Coordinate, 0, len(bus.stops))
	for i, stopId := range bus.stops {
		coords = append(coords, tc.stops[stopId].coordinates)
		if i > 0 {
			roadLength += tc.GetDistanceById(bus.stops[i-1], stopId)
		}
	}
	geoLength := geo.PathLength(coords)

	curvature := 0.0
	if geoLength > 0 {
		curvature = float64(roadLength) / geoLength
	}

	return BusInfo{
		StopsCount:       len(bus.stops),
		UniqueStopsCount: countUniqueStops(bus.stops),
		RouteLength:      roadLength,
		Curvature:        curvature,
		IsRoundtrip:      bus.isRoundtrip,
	}, true
}

func countUniqueStops(stops []da.Index) int {
	unique := make(map[da.Index]struct{}, len(stops))
	for _, s := range stops {
		unique[s] = struct{}{}
	}
	return len(unique)
}

// AllStopsSorted. stops reachable by name, ordered by name
func (tc *TransportCatalogue) AllStopsSorted() []*Stop {
	stops := make([]*Stop, 0, len(tc.stopIds))
	for _, id := range tc.stopIds {
		stops = append(stops, &tc.stops[id])
	}
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].name < stops[j].name
	})
	return stops
}

// AllBusesSorted. buses reachable by name, ordered by name
func (tc *TransportCatalogue) AllBusesSorted() []*Bus {
	buses := make([]*Bus, 0, len(tc.busIds))
	for _, id := range tc.busIds {
		buses = append(buses, &tc.buses[id])
	}
	sort.Slice(buses, func(i, j int) bool {
		return buses[i].name < buses[j].name
	})
	return buses
}

type Stats struct {
	Stops     int
	Buses     int
	Distances int
}

func (tc *TransportCatalogue) Stats() Stats {
	return Stats{
		Stops:     len(tc.stopIds),
		Buses:     len(tc.busIds),
		Distances: len(tc.distances),
	}
}
