package datastructure

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Index uint32

const (
	INVALID_VERTEX_ID Index = math.MaxUint32
	INVALID_EDGE_ID   Index = math.MaxUint32
)

// Edge. directed weighted edge carrying the name of the stop (wait edge) or bus (ride edge) it belongs to
type Edge[W constraints.Float] struct {
	from, to  Index
	weight    W
	label     string
	spanCount int // 0 for wait edges, number of hops for ride edges
}

func NewEdge[W constraints.Float](label string, spanCount int, from, to Index, weight W) Edge[W] {
	return Edge[W]{
		from:      from,
		to:        to,
		weight:    weight,
		label:     label,
		spanCount: spanCount,
	}
}

func (e *Edge[W]) GetFrom() Index {
	return e.from
}

func (e *Edge[W]) GetTo() Index {
	return e.to
}

func (e *Edge[W]) GetWeight() W {
	return e.weight
}

func (e *Edge[W]) GetLabel() string {
	return e.label
}

func (e *Edge[W]) GetSpanCount() int {
	return e.spanCount
}

// DirectedWeightedGraph. edges are stored flat, each vertex keeps the ids of its out edges in insertion order
type DirectedWeightedGraph[W constraints.Float] struct {
	edges          []Edge[W]
	incidenceLists [][]Index
}

func NewDirectedWeightedGraph[W constraints.Float](vertexCount int) *DirectedWeightedGraph[W] {
	return &DirectedWeightedGraph[W]{
		edges:          make([]Edge[W], 0),
		incidenceLists: make([][]Index, vertexCount),
	}
}

// AddEdge. returns the id of the new edge
func (g *DirectedWeightedGraph[W]) AddEdge(e Edge[W]) Index {
	id := Index(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidenceLists[e.from] = append(g.incidenceLists[e.from], id)
	return id
}

func (g *DirectedWeightedGraph[W]) NumberOfVertices() int {
	return len(g.incidenceLists)
}

func (g *DirectedWeightedGraph[W]) NumberOfEdges() int {
	return len(g.edges)
}

func (g *DirectedWeightedGraph[W]) GetEdge(id Index) *Edge[W] {
	return &g.edges[id]
}

func (g *DirectedWeightedGraph[W]) GetOutDegree(u Index) int {
	return len(g.incidenceLists[u])
}

func (g *DirectedWeightedGraph[W]) ForOutEdgesOf(u Index, handle func(e *Edge[W], edgeId Index)) {
	for _, edgeId := range g.incidenceLists[u] {
		handle(&g.edges[edgeId], edgeId)
	}
}

func (g *DirectedWeightedGraph[W]) ForEdges(handle func(e *Edge[W], edgeId Index)) {
	for i := range g.edges {
		handle(&g.edges[i], Index(i))
	}
}
