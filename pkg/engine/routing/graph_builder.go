package routing

import (
	da "github.com/lintang-b-s/transitcatalogue/pkg/datastructure"
)

// RouteGraphBuilder. every stop gets two vertices: wait (2i) and depart (2i+1), with stops numbered in name order.
// a wait edge wait->depart costs the wait time, a ride edge depart(from)->wait(to) costs the ride time of one bus segment.
type RouteGraphBuilder struct {
	costFunction CostFunction
}

func NewRouteGraphBuilder(costFunction CostFunction) *RouteGraphBuilder {
	return &RouteGraphBuilder{
		costFunction: costFunction,
	}
}

// Build. returns a new graph and a new stop name -> wait vertex map; nothing is shared with previous builds
func (b *RouteGraphBuilder) Build(cat Catalogue) (*da.DirectedWeightedGraph[float64], map[string]da.Index) {
	stops := cat.AllStopsSorted()
	graph := da.NewDirectedWeightedGraph[float64](2 * len(stops))
	stopVertex := make(map[string]da.Index, len(stops))

	vertexId := da.Index(0)
	for _, stop := range stops {
		stopVertex[stop.GetName()] = vertexId
		graph.AddEdge(da.NewEdge(stop.GetName(), 0, vertexId, vertexId+1, b.costFunction.GetWaitWeight()))
		vertexId += 2
	}

	for _, bus := range cat.AllBusesSorted() {
		route := bus.GetStops()
		n := len(route)
		if n < 2 {
			continue
		}

		// cumulative[k] = road meters from route[0] to route[k]
		cumulative := make([]int, n)
		for k := 1; k < n; k++ {
			cumulative[k] = cumulative[k-1] + cat.GetDistanceById(route[k-1], route[k])
		}

		addSegments := func(lo, hi int, skipFullLoop bool) {
			for i := lo; i < hi; i++ {
				for j := i + 1; j < hi; j++ {
					if skipFullLoop && i == 0 && j == n-1 {
						continue
					}
					from := stopVertex[cat.GetStop(route[i]).GetName()] + 1
					to := stopVertex[cat.GetStop(route[j]).GetName()]
					meters := float64(cumulative[j] - cumulative[i])
					graph.AddEdge(da.NewEdge(bus.GetName(), j-i, from, to, b.costFunction.GetRideWeight(meters)))
				}
			}
		}

		if bus.IsRoundtrip() {
			addSegments(0, n, true)
		} else {
			// outbound [0, half] and inbound [half, n) separately, no segment crosses the turnaround
			half := n / 2
			addSegments(0, half+1, false)
			addSegments(half, n, false)
		}
	}

	return graph, stopVertex
}
