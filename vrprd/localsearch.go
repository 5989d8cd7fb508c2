package vrprd

// LocalSearch owns the node arena and route pool and runs the intra/inter
// neighborhood descent plus the splitSearch refinement loop, the Go
// analogue of the original's LocalSearch class (original_source/src/
// LocalSearch.cpp): raw owning pointers become arena-relative handles
// (nodes) or stable pool pointers (routes), and the single global RNG
// becomes an injected Data.RNG().
type LocalSearch struct {
	data  *Data
	split Split

	// nodes is the shared arena: index 0 is an unused placeholder, 1..N
	// are client nodes, and N+1..N+1+2*N-1 are the two begin/end sentinel
	// slots owned by each of the N preallocated route slots. A single
	// arena lets every prev/next link use one handle type regardless of
	// whether it addresses a client or a sentinel.
	nodes []node

	// routePool is allocated once at capacity N (the worst case: every
	// client in its own route) so every *route handed out by addRoute
	// stays valid and stable across repeated load/saveTo cycles.
	routePool []route

	// routes is the active, ordered route list for the individual
	// currently loaded (the original's std::vector<Route*> routes).
	routes []*route

	// emptyRoutes is the free list addRoute pops from before touching
	// routePool. load empties it and nothing pushes a slot onto it, so in
	// practice addRoute always takes routePool[len(routes)]: route slots
	// are reused by position across loads.
	emptyRoutes []*route

	// intraOrder/interOrder hold a shuffled move-id order, reshuffled at
	// the start of every intraSearch/interSearch pass and again after
	// every accepted move.
	intraOrder []int
	interOrder []int

	// Scratch state for the move being evaluated, shared across
	// intra.go/inter.go/rewire.go the same way the original's LocalSearch
	// keeps b1/b2/bestB1/... as instance fields rather than threading them
	// through every helper call.
	route1, route2 *route
	move           int
	b1Size, b2Size int
	b1, b1End      nodeHandle
	b2, b2End      nodeHandle
	blocksFinished bool
	improvement    int
	bestImprovement int
	bestB1, bestB1End nodeHandle
	bestB2, bestB2End nodeHandle
}

// Number of intra-route and inter-route move kinds.
const (
	nIntraMoves = 6
	nInterMoves = 1
)

// NewLocalSearch allocates the arena and route pool for the given
// instance, binding it to split for the splitSearch refinement loop. The
// LocalSearch is reusable across many Educate calls on different
// individuals via load/saveTo.
func NewLocalSearch(data *Data, split Split) *LocalSearch {
	n := data.N
	arena := make([]node, n+1+2*n)
	for c := 1; c <= n; c++ {
		arena[c] = node{id: c, releaseDate: data.ReleaseDate[c]}
	}

	pool := make([]route, n)
	for i := range pool {
		beginH := nodeHandle(n + 1 + 2*i)
		endH := nodeHandle(n + 1 + 2*i + 1)
		arena[beginH] = node{id: beginSentinelID}
		arena[endH] = node{id: depotID}
		pool[i] = route{beginH: beginH, endH: endH}
	}

	ls := &LocalSearch{
		data:        data,
		split:       split,
		nodes:       arena,
		routePool:   pool,
		routes:      make([]*route, 0, n),
		emptyRoutes: make([]*route, 0, n),
		intraOrder:  make([]int, nIntraMoves),
		interOrder:  make([]int, nInterMoves),
	}
	for i := range ls.intraOrder {
		ls.intraOrder[i] = i + 1
	}
	for i := range ls.interOrder {
		ls.interOrder[i] = i + 1
	}
	return ls
}

// n returns a mutable pointer to the arena slot for h.
func (ls *LocalSearch) n(h nodeHandle) *node { return &ls.nodes[h] }

// addRoute recycles a free route slot (preferring emptyRoutes) or extends
// into a fresh routePool slot, appends it to the active list, and returns
// it. Mirrors the original's addRoute, which does the same against its
// own emptyRoutes free list and the preallocated routesObj vector.
func (ls *LocalSearch) addRoute() *route {
	var r *route
	if len(ls.emptyRoutes) > 0 {
		r = ls.emptyRoutes[len(ls.emptyRoutes)-1]
		ls.emptyRoutes = ls.emptyRoutes[:len(ls.emptyRoutes)-1]
	} else {
		r = &ls.routePool[len(ls.routes)]
	}
	r.nClients = 0
	r.pos = len(ls.routes)
	ls.routes = append(ls.routes, r)
	return r
}

// load rebuilds the active route list and intrusive node chains from
// indiv's giantTour/successors, then refreshes route data. Mirrors the
// original's load().
func (ls *LocalSearch) load(indiv *Individual) {
	ls.routes = ls.routes[:0]
	ls.emptyRoutes = ls.emptyRoutes[:0]

	r := ls.addRoute()
	cur := r.beginH
	for i := 0; i < ls.data.N; i++ {
		cid := indiv.GiantTour[i]
		ch := nodeHandle(cid)
		ls.n(cur).next = ch
		ls.n(ch).prev = cur
		cur = ch
		r.nClients++

		if indiv.Successors[cid] == depotID {
			ls.n(cur).next = r.endH
			ls.n(r.endH).prev = cur

			if i+1 < ls.data.N {
				r = ls.addRoute()
				cur = r.beginH
			}
		}
	}
	ls.n(cur).next = r.endH
	ls.n(r.endH).prev = cur

	ls.updateRoutesData()
}

// saveTo writes the current chains back into indiv's giantTour,
// predecessors and successors arrays, in route order, and sets
// indiv.Eval to the completion time of the whole schedule: the last
// route's endTime, since routes are scheduled sequentially by one
// vehicle and that route's endTime already accounts for every
// predecessor route's duration via updateRoutesData's running prevEnd.
// Mirrors the original's saveTo().
func (ls *LocalSearch) saveTo(indiv *Individual) {
	last := ls.routes[len(ls.routes)-1]
	first := ls.routes[0]
	indiv.Eval = last.endTime
	indiv.Predecessors[depotID] = ls.n(ls.n(last.endH).prev).id
	indiv.Successors[depotID] = ls.n(ls.n(first.beginH).next).id

	pos := 0
	for _, r := range ls.routes {
		h := ls.n(r.beginH).next
		for {
			cid := ls.n(h).id
			indiv.GiantTour[pos] = cid
			indiv.Predecessors[cid] = ls.distID(ls.n(h).prev)
			indiv.Successors[cid] = ls.n(ls.n(h).next).id
			pos++
			h = ls.n(h).next
			if ls.n(h).id == depotID {
				break
			}
		}
	}
}

// Educate runs local search to a local optimum of the intra/inter
// neighborhoods, then repeatedly re-splits and re-searches while
// splitSearch keeps strictly improving, mirroring the original's
// educate(): load -> alternate intra/inter (starting with intra) until
// two consecutive no-improvement rounds -> splitSearch -> repeat while
// splitSearch improved -> saveTo. Precondition: indiv carries a valid
// giant tour. Postcondition: indiv.Eval is no larger than on entry, and
// the giant tour / predecessors / successors / Eval are mutually
// consistent.
func (ls *LocalSearch) Educate(indiv *Individual) error {
	ls.load(indiv)

	notImproved := 0
	which := 0 // 0: intra, 1: inter
	for {
		for {
			var improved bool
			if which == 0 {
				improved = ls.intraSearch()
			} else {
				improved = ls.interSearch()
			}
			which = 1 - which
			if improved {
				notImproved = 0
			} else {
				notImproved++
			}
			if notImproved >= 2 {
				break
			}
		}

		improved, err := ls.splitSearch(indiv)
		if err != nil {
			return err
		}
		if !improved {
			break
		}
	}

	ls.saveTo(indiv)
	return nil
}

// splitSearch captures the current schedule's completion time, saves the
// loaded routes into indiv, re-splits indiv's giant tour with ls.split,
// and reloads the result, reporting whether the new evaluation strictly
// improved on the pre-split completion time. The original returns
// `indiv.eval - prevTime` as a truthiness check — true for ANY nonzero
// difference, improvement or regression — which is resolved here as
// "strictly improved" (prevTime is only ever used to decide whether to
// keep looping, and a regression should not count as progress).
func (ls *LocalSearch) splitSearch(indiv *Individual) (bool, error) {
	prevTime := ls.routes[len(ls.routes)-1].endTime
	ls.saveTo(indiv)
	if err := ls.split.Split(indiv); err != nil {
		return false, err
	}
	ls.load(indiv)
	return indiv.Eval < prevTime, nil
}
