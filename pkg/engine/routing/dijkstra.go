package routing

import (
	"github.com/lintang-b-s/transitcatalogue/pkg"
	da "github.com/lintang-b-s/transitcatalogue/pkg/datastructure"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"golang.org/x/exp/constraints"
)

type vertexInfo struct {
	travelTime float64
	parentEdge da.Index
	heapNode   *da.PriorityQueueNode[da.Index]
	settled    bool
}

func newVertexInfo() vertexInfo {
	return vertexInfo{
		travelTime: pkg.INF_WEIGHT,
		parentEdge: da.INVALID_EDGE_ID,
	}
}

// Dijkstra. single source shortest path with early exit at the target. not safe for concurrent use, one instance per search
type Dijkstra[W constraints.Float] struct {
	graph *da.DirectedWeightedGraph[W]

	info []vertexInfo
	pq   *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra[W constraints.Float](graph *da.DirectedWeightedGraph[W]) *Dijkstra[W] {
	return &Dijkstra[W]{
		graph: graph,
		info:  make([]vertexInfo, graph.NumberOfVertices()),
		pq:    da.NewFourAryHeap[da.Index](),
	}
}

func (us *Dijkstra[W]) Preallocate() {
	for v := range us.info {
		us.info[v] = newVertexInfo()
	}
	us.pq.Preallocate(us.graph.NumberOfVertices())
	us.numSettledNodes = 0
}

// ShortestPath. edge ids from s to t in travel order plus the total weight. false if t is unreachable
func (us *Dijkstra[W]) ShortestPath(s, t da.Index) ([]da.Index, float64, bool) {
	if s == t {
		return []da.Index{}, 0, true
	}

	us.Preallocate()

	sNode := da.NewPriorityQueueNode(0, s)
	us.info[s].travelTime = 0
	us.info[s].heapNode = sNode
	us.pq.Insert(sNode)

	for !us.pq.IsEmpty() {
		uNode, _ := us.pq.ExtractMin()
		u := uNode.GetItem()
		us.info[u].settled = true
		us.numSettledNodes++
		if u == t {
			break
		}
		us.relaxOutEdges(u)
	}

	if !us.info[t].settled {
		return nil, 0, false
	}

	return us.unpackPath(s, t), us.info[t].travelTime, true
}

func (us *Dijkstra[W]) relaxOutEdges(u da.Index) {
	us.graph.ForOutEdgesOf(u, func(e *da.Edge[W], edgeId da.Index) {
		v := e.GetTo()
		if us.info[v].settled {
			return
		}

		newTravelTime := us.info[u].travelTime + float64(e.GetWeight())
		if da.Ge(newTravelTime, pkg.INF_WEIGHT) {
			return
		}

		vAlreadyLabelled := da.Lt(us.info[v].travelTime, pkg.INF_WEIGHT)
		if vAlreadyLabelled && da.Ge(newTravelTime, us.info[v].travelTime) {
			// newTravelTime is not better
			return
		}

		us.info[v].travelTime = newTravelTime
		us.info[v].parentEdge = edgeId

		if vAlreadyLabelled {
			err := us.pq.DecreaseKey(us.info[v].heapNode, newTravelTime)
			util.AssertPanic(err == nil, "dijkstra: decrease key of a vertex outside the queue")
		} else {
			vNode := da.NewPriorityQueueNode(newTravelTime, v)
			us.info[v].heapNode = vNode
			us.pq.Insert(vNode)
		}
	})
}

func (us *Dijkstra[W]) unpackPath(s, t da.Index) []da.Index {
	path := make([]da.Index, 0)
	for cur := t; cur != s; {
		edgeId := us.info[cur].parentEdge
		path = append(path, edgeId)
		cur = us.graph.GetEdge(edgeId).GetFrom()
	}
	return util.ReverseG(path)
}

func (us *Dijkstra[W]) GetNumSettledNodes() int {
	return us.numSettledNodes
}
