package catalogue

import (
	da "github.com/lintang-b-s/transitcatalogue/pkg/datastructure"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
)

type Stop struct {
	id          da.Index
	name        string
	coordinates geo.Coordinate
}

func (s *Stop) GetID() da.Index {
	return s.id
}

func (s *Stop) GetName() string {
	return s.name
}

func (s *Stop) GetCoordinates() geo.Coordinate {
	return s.coordinates
}

// Bus. stops holds the full travelled sequence, for a non roundtrip bus that is outbound followed by the reversed inbound
type Bus struct {
	id          da.Index
	name        string
	stops       []da.Index
	isRoundtrip bool
}

func (b *Bus) GetID() da.Index {
	return b.id
}

func (b *Bus) GetName() string {
	return b.name
}

func (b *Bus) GetStops() []da.Index {
	return b.stops
}

func (b *Bus) IsRoundtrip() bool {
	return b.isRoundtrip
}

type BusInfo struct {
	StopsCount       int
	UniqueStopsCount int
	RouteLength      int // meter, along the road
	Curvature        float64
	IsRoundtrip      bool
}

type stopPair struct {
	from, to da.Index
}
