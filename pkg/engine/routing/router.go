package routing

import (
	"sync"
	"time"

	da "github.com/lintang-b-s/transitcatalogue/pkg/datastructure"
	"go.uber.org/zap"
)

// TransportRouter. owns the route graph and answers shortest itinerary queries between stops
type TransportRouter struct {
	graph      *da.DirectedWeightedGraph[float64]
	stopVertex map[string]da.Index // stop name -> wait vertex
	vertexStop []string            // wait or depart vertex / 2 -> stop name

	dijkstraPool *sync.Pool
	log          *zap.Logger
}

func NewTransportRouter(log *zap.Logger) *TransportRouter {
	return &TransportRouter{
		log: log,
	}
}

// BuildGraph. replaces the graph, the vertex map and the search buffers of any previous build
func (tr *TransportRouter) BuildGraph(cat Catalogue, costFunction CostFunction) {
	start := time.Now()

	graph, stopVertex := NewRouteGraphBuilder(costFunction).Build(cat)

	vertexStop := make([]string, graph.NumberOfVertices()/2)
	for name, v := range stopVertex {
		vertexStop[v/2] = name
	}

	tr.graph = graph
	tr.stopVertex = stopVertex
	tr.vertexStop = vertexStop
	tr.dijkstraPool = &sync.Pool{
		New: func() any {
			return NewDijkstra(graph)
		},
	}

	tr.log.Info("route graph built",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Duration("elapsed", time.Since(start)))
}

func (tr *TransportRouter) IsBuilt() bool {
	return tr.graph != nil
}

// FindRoute. fastest itinerary from the wait vertex of from to the wait vertex of to, so the first wait is always counted
func (tr *TransportRouter) FindRoute(from, to string) (RouteInfo, bool) {
	s, ok := tr.stopVertex[from]
	if !ok {
		return RouteInfo{}, false
	}
	t, ok := tr.stopVertex[to]
	if !ok {
		return RouteInfo{}, false
	}

	pool := tr.dijkstraPool
	dijkstra := pool.Get().(*Dijkstra[float64])
	defer pool.Put(dijkstra)

	edges, totalTime, found := dijkstra.ShortestPath(s, t)
	tr.log.Debug("route search",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("settled", dijkstra.GetNumSettledNodes()))
	if !found {
		return RouteInfo{}, false
	}
	return newRouteInfo(tr.graph, edges, totalTime), true
}

func (tr *TransportRouter) GetGraph() *da.DirectedWeightedGraph[float64] {
	return tr.graph
}

func (tr *TransportRouter) GetStopVertex(name string) (da.Index, bool) {
	v, ok := tr.stopVertex[name]
	return v, ok
}

// GetStopName. name of the stop owning vertex v (wait or depart)
func (tr *TransportRouter) GetStopName(v da.Index) string {
	return tr.vertexStop[v/2]
}
