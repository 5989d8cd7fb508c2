package vrprd

// depotID is the id of every route's end sentinel and of the depot
// occurrence in an Individual's giantTour/predecessors/successors arrays.
// Loops test node.id != depotID to detect "ran off the end of the route"
// rather than a nil/handle check: with this convention every neighborhood
// move becomes an O(1) pointer rewire, and boundary cases at either end
// of a route need no special-casing, because the sentinels supply valid
// prev/next and timeTo entries.
const depotID = 0

// beginSentinelID is the id of every route's begin sentinel. It is
// distinct from depotID so a scan that legitimately starts at the begin
// sentinel (intraRelocation's insertion-point scan, which must consider
// inserting right after the route start) is not mistaken for having
// already reached the end of the route.
const beginSentinelID = -1

// nodeHandle indexes into LocalSearch.nodes. Handle 0 never refers to a
// real client node; it is reserved so zero-valued handles read as "unset"
// the way a nil pointer would in the original's pointer-based structure —
// here the arena and integer handles stand in for owning pointers.
type nodeHandle int32

// node is one element of a route: a client (id>=1), the end sentinel
// (id==depotID), or the begin sentinel (id==beginSentinelID). prev/next
// are handles into the same arena; they are never the zero handle
// inside a loaded route — sentinel begin/end nodes terminate the chain
// via id, not via a null link.
//
// Forward aggregates (durationBefore, predecessorsRd) and backward
// aggregates (durationAfter, successorsRd) are valid only immediately
// after updateRoutesData and before any subsequent route mutation;
// callers that mutate a route must call updateRoutesData again before
// trusting them.
type node struct {
	id   int
	prev nodeHandle
	next nodeHandle

	releaseDate int

	durationBefore int
	predecessorsRd int

	durationAfter int
	successorsRd  int
}
