package geo

import (
	"github.com/golang/geo/s2"
)

// ComputeDistance. great-circle distance between two coordinates, in meter
func ComputeDistance(from, to Coordinate) float64 {
	if from == to {
		return 0
	}
	a := s2.LatLngFromDegrees(from.Lat, from.Lon)
	b := s2.LatLngFromDegrees(to.Lat, to.Lon)
	return a.Distance(b).Radians() * earthRadiusM
}

// PathLength. sum of great-circle distances between consecutive coordinates, in meter
func PathLength(coords []Coordinate) float64 {
	length := 0.0
	for i := 1; i < len(coords); i++ {
		length += ComputeDistance(coords[i-1], coords[i])
	}
	return length
}
