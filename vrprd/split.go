// Split oracle: partitions a giant tour into routes.
//
// The core engine treats Split as an injected collaborator:
// LocalSearch.splitSearch calls it between education passes, reloads its
// result, and keeps educating only while it strictly lowers the
// schedule's completion time.
// DPSplit is the reference implementation, grounded in style (1D DP
// table, prefetched travel times, explicit parent/predecessor
// reconstruction) on the sibling tsp package's Held–Karp solver
// (tsp/exact.go), generalized from a Hamiltonian-cycle DP to a
// shortest-path-over-route-boundaries DP: best[j] is the minimum
// possible completion time of whatever route ends at tour position j,
// and since the schedule's overall eval is exactly the last route's
// endTime (never a sum), minimizing best[N] over all partitions is a
// true shortest path in the DAG of route boundaries.
package vrprd

import "math"

// Split partitions indiv's giant tour into routes, writing a consistent
// Successors/Predecessors/Eval.
type Split interface {
	Split(indiv *Individual) error
}

// DPSplit is an O(N²) exact reference Split: for every candidate route
// [i,j) of the giant tour it derives the route's releaseDate (the max
// client release date in it) and duration (total travel time depot ->
// ... -> depot) incrementally while extending j, and relaxes best[j]
// against best[i] the way a shortest-path DP relaxes an edge.
type DPSplit struct {
	data *Data
}

// NewDPSplit returns a Split bound to data.
func NewDPSplit(data *Data) *DPSplit {
	return &DPSplit{data: data}
}

// infCost stands in for "unreached" in the DP table; kept well below
// math.MaxInt so adding a route's duration to it cannot overflow.
const infCost = math.MaxInt / 2

// Split implements Split.
func (s *DPSplit) Split(indiv *Individual) error {
	n := s.data.N
	if n == 0 {
		return ErrNoClients
	}
	if len(indiv.GiantTour) != n {
		return ErrInvalidTour
	}

	best := make([]int, n+1)
	pred := make([]int, n+1)
	for i := 1; i <= n; i++ {
		best[i] = infCost
	}
	pred[0] = -1

	for i := 0; i < n; i++ {
		dur := 0
		relDate := 0
		prev := depotID

		for j := i + 1; j <= n; j++ {
			client := indiv.GiantTour[j-1]
			dur += s.data.TimeTo(prev, client)
			if rd := s.data.ReleaseDate[client]; rd > relDate {
				relDate = rd
			}
			prev = client

			closingDur := dur + s.data.TimeTo(prev, depotID)
			startTime := best[i]
			if relDate > startTime {
				startTime = relDate
			}
			endTime := startTime + closingDur

			if endTime < best[j] {
				best[j] = endTime
				pred[j] = i
			}
		}
	}

	if best[n] >= infCost {
		return ErrNoFeasibleSplit
	}

	boundaries := []int{n}
	for j := n; j > 0; j = pred[j] {
		boundaries = append(boundaries, pred[j])
	}
	for l, r := 0, len(boundaries)-1; l < r; l, r = l+1, r-1 {
		boundaries[l], boundaries[r] = boundaries[r], boundaries[l]
	}

	for k := 0; k+1 < len(boundaries); k++ {
		start, end := boundaries[k], boundaries[k+1]
		prev := depotID
		for pos := start; pos < end; pos++ {
			client := indiv.GiantTour[pos]
			indiv.Predecessors[client] = prev
			if prev != depotID {
				indiv.Successors[prev] = client
			}
			prev = client
		}
		indiv.Successors[prev] = depotID
	}
	indiv.Successors[depotID] = indiv.GiantTour[0]
	indiv.Predecessors[depotID] = indiv.GiantTour[n-1]
	indiv.Eval = best[n]

	return validateIndividual(s.data, indiv)
}
