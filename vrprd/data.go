package vrprd

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/matrix"
)

// NewDataFromMatrix builds a Data façade from a (N+1)x(N+1) dense travel-time
// matrix (row/col 0 is the depot, rows/cols 1..N are clients), the way
// tsp.SolveWithMatrix consumes a matrix.Matrix already built by a host
// program. Travel times are rounded to the nearest integer second, since
// release-date/completion-time arithmetic throughout the engine is
// integral; releaseDate must have length N+1 with index 0 unused.
func NewDataFromMatrix(dist *matrix.Dense, releaseDate []int, params Params) (*Data, error) {
	if dist == nil {
		return nil, ErrInvalidTour
	}
	v := dist.Rows()
	if v != dist.Cols() || v < 2 {
		return nil, ErrInvalidTour
	}
	n := v - 1

	flat := make([]int, v*v)
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			w, err := dist.At(i, j)
			if err != nil {
				return nil, ErrInvalidTour
			}
			flat[i*v+j] = int(math.Round(w))
		}
	}

	return NewData(n, flat, releaseDate, params)
}

// NewDataFromGraph builds a Data façade from a *core.Graph whose vertex
// named by depot is the route-sequencing depot and whose remaining
// vertices are clients; edge weights are travel times. Every ordered pair
// of distinct ids must be connected: a missing arc makes it return
// ErrInvalidTour (there is no +Inf or default travel time).
//
// Vertex ids are sorted lexicographically (excluding "depot") to assign
// stable client ids 1..N, mirroring tsp.SolveWithGraph's id-recovery
// convention of deriving a stable index order from the graph.
func NewDataFromGraph(g *core.Graph, depot string, releaseDate map[string]int, params Params) (*Data, error) {
	if g == nil {
		return nil, ErrInvalidTour
	}
	ids := g.Vertices()
	clientIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != depot {
			clientIDs = append(clientIDs, id)
		}
	}
	sort.Strings(clientIDs)

	n := len(clientIDs)
	if n == 0 {
		return nil, ErrNoClients
	}
	v := n + 1
	index := make(map[string]int, v)
	index[depot] = 0
	for i, id := range clientIDs {
		index[id] = i + 1
	}

	flat := make([]int, v*v)
	for i := range flat {
		flat[i] = -1 // sentinel: "no edge yet", resolved below
	}
	for i := 0; i < v; i++ {
		flat[i*v+i] = 0
	}
	for _, e := range g.Edges() {
		fi, fok := index[e.From]
		ti, tok := index[e.To]
		if !fok || !tok {
			continue
		}
		flat[fi*v+ti] = int(e.Weight)
		if !g.Directed() {
			flat[ti*v+fi] = int(e.Weight)
		}
	}
	for _, w := range flat {
		if w < 0 {
			return nil, ErrInvalidTour
		}
	}

	rd := make([]int, v)
	for id, t := range releaseDate {
		idx, ok := index[id]
		if !ok || idx == 0 {
			continue
		}
		rd[idx] = t
	}

	return NewData(n, flat, rd, params)
}
