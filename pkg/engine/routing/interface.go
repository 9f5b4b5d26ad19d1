package routing

import (
	"github.com/lintang-b-s/transitcatalogue/pkg/catalogue"
	"github.com/lintang-b-s/transitcatalogue/pkg/datastructure"
)

type Catalogue interface {
	AllStopsSorted() []*catalogue.Stop
	AllBusesSorted() []*catalogue.Bus
	GetStop(id datastructure.Index) *catalogue.Stop
	GetDistanceById(from, to datastructure.Index) int
}

type CostFunction interface {
	GetWaitWeight() float64
	GetRideWeight(meters float64) float64
}
