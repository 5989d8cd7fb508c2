// Package vrprd: sentinel error set.
// Every sentinel is prefixed with "vrprd: " for consistent grepping across
// logs and tests. Algorithms return these directly; wrap with fmt.Errorf
// only at an outer boundary that needs extra context — callers still match
// via errors.Is.
package vrprd

import "errors"

var (
	// ErrNoClients indicates Data.N is zero; there is nothing to route.
	ErrNoClients = errors.New("vrprd: no clients in data")

	// ErrInvalidTour indicates a giant tour is not a permutation of 1..N,
	// or that predecessor/successor arrays are inconsistent with it.
	ErrInvalidTour = errors.New("vrprd: invalid giant tour")

	// ErrSplitInvariant indicates a Split implementation returned a result
	// that violates the successors/predecessors invariant every route
	// partition must satisfy.
	ErrSplitInvariant = errors.New("vrprd: split violated individual invariant")

	// ErrEmptyPopulation indicates an operation that requires at least one
	// individual was invoked on an empty Population.
	ErrEmptyPopulation = errors.New("vrprd: population is empty")

	// ErrNoFeasibleSplit indicates the reference DPSplit oracle found no
	// way to partition the giant tour into routes (should not happen for
	// a complete travel-time matrix; surfaced defensively).
	ErrNoFeasibleSplit = errors.New("vrprd: no feasible split of giant tour")
)
