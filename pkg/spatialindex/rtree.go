package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[StopPoint]
}

type StopPoint struct {
	name        string
	coordinates geo.Coordinate
}

func (sp StopPoint) GetName() string {
	return sp.name
}

func (sp StopPoint) GetCoordinates() geo.Coordinate {
	return sp.coordinates
}

// NearbyStop. stop found by a radius search with its distance (km) to the query point
type NearbyStop struct {
	StopPoint
	Distance float64
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[StopPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every stop as a point (lon, lat)
func (rt *Rtree) Build(stops []*catalogue.Stop, log *zap.Logger) {
	log.Info("Building R-tree spatial index of stops...", zap.Int("stops", len(stops)))
	for _, stop := range stops {
		c := stop.GetCoordinates()
		point := [2]float64{c.Lon, c.Lat}
		rt.tr.Insert(point, point, StopPoint{name: stop.GetName(), coordinates: c})
	}
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius search for all stops within radius (in km) from the query point (qLat, qLon), nearest first
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []NearbyStop {
	// corners of the bounding square lie radius*sqrt(2) away along the diagonals
	cornerDist := radius * math.Sqrt2
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, cornerDist)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, cornerDist)

	results := make([]NearbyStop, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data StopPoint) bool {
			dist := geo.CalculateHaversineDistance(qLat, qLon, data.coordinates.Lat, data.coordinates.Lon)
			if dist <= radius {
				results = append(results, NearbyStop{StopPoint: data, Distance: dist})
			}
			return true
		})

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].name < results[j].name
	})
	return results
}
