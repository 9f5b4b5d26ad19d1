package routing

import (
	"github.com/lintang-b-s/transitcatalogue/pkg"
	da "github.com/lintang-b-s/transitcatalogue/pkg/datastructure"
)

// RouteItem. one step of an itinerary: waiting at a stop or riding a bus for SpanCount stops
type RouteItem struct {
	Kind      pkg.ItemKind
	Name      string // stop name for WAIT, bus name for BUS
	Time      float64
	SpanCount int
	From, To  da.Index // graph vertices
}

type RouteInfo struct {
	Items     []RouteItem
	TotalTime float64
}

func newRouteInfo(graph *da.DirectedWeightedGraph[float64], edges []da.Index, totalTime float64) RouteInfo {
	items := make([]RouteItem, 0, len(edges))
	for _, edgeId := range edges {
		e := graph.GetEdge(edgeId)
		kind := pkg.BUS
		if e.GetSpanCount() == 0 {
			kind = pkg.WAIT
		}
		items = append(items, RouteItem{
			Kind:      kind,
			Name:      e.GetLabel(),
			Time:      e.GetWeight(),
			SpanCount: e.GetSpanCount(),
			From:      e.GetFrom(),
			To:        e.GetTo(),
		})
	}
	return RouteInfo{
		Items:     items,
		TotalTime: totalTime,
	}
}
