package vrprd

import "fmt"

// route is one sequentially-scheduled vehicle route: an intrusive,
// sentinel-terminated doubly linked chain of client node handles plus the
// per-route aggregates LocalSearch.updateRoutesData refreshes.
//
// beginH/endH are the two sentinel node handles permanently owned by this
// route slot. Route slots are allocated once in LocalSearch.routePool and
// reused by position on every load; beginH/endH are never reassigned,
// even when the slot is reused for a different set of clients by load.
type route struct {
	beginH nodeHandle
	endH   nodeHandle

	nClients int

	releaseDate int
	duration    int
	startTime   int
	endTime     int

	// pos is this route's index within LocalSearch.routes (the active
	// route list), refreshed by addRoute. Nothing in the package reads it;
	// clearence lookups index by loop position instead.
	pos int

	// clearence[r] is the signed schedule slack between this route and
	// the route currently at active-list position r. Indexed by
	// position, so it is only meaningful for the current
	// load/updateRoutesData cycle and is resized by updateRoutesData.
	clearence []int
}

// infClearence stands in for the original's INF sentinel on the diagonal
// clearence entry: clearence[r][r] is always +∞, since a route has
// unbounded slack against itself.
const infClearence = int(^uint(0) >> 1)

// String renders a compact one-line summary of the route for debugging
// and tests, mirroring the original's printRoutes row format (rd/duration/
// start/end) without printing the per-node chain (that requires the
// owning LocalSearch's arena).
func (r *route) String() string {
	return fmt.Sprintf("{rd=%d dur=%d start=%d end=%d n=%d}",
		r.releaseDate, r.duration, r.startTime, r.endTime, r.nClients)
}
