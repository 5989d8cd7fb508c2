// Package vrprd implements the metaheuristic engine of a vehicle-routing
// sequencing problem with release dates: partition and order a set of
// clients into a sequence of routes, executed one after another from a
// single depot, minimizing the completion time of the last route.
//
// # What & Why
//
// Given N clients, each with a release date (earliest time it may be
// served) and pairwise travel times, vrprd refines a "giant tour"
// (a permutation of client ids) into a partitioned, ordered sequence of
// routes. A route cannot start before every one of its clients' release
// dates has passed and the previous route has finished. The package
// exposes two tightly coupled pieces:
//
//   - LocalSearch: an "education" procedure composing intra-route moves
//     (swap/relocate/2-opt), an inter-route scaffold, and a Split
//     re-partitioning oracle, applied to a single Individual in place.
//   - Population: a diversity-preserving archive of Individuals, ranked
//     by biased fitness (eval rank + diversity rank), with tournament
//     selection and periodic diversification.
//
// # Algorithms & Complexity
//
//	LocalSearch.Educate   alternates intra/inter passes until two
//	                      consecutive passes fail to improve, then calls
//	                      Split; repeats while Split strictly improves.
//	                      Intra moves: O(routeLen^2) per route per pass.
//	Population.add        O(popSize) per insertion (distance to every
//	                      existing member).
//	Population.removeWorst O(popSize) to rank + O(popSize) to purge.
//
// # Determinism & Stability
//
//   - No time-based randomness anywhere in the core. All shuffles and
//     random tours are driven by Data.RNG, seeded deterministically
//     (see rng.go); Seed==0 yields a fixed, reproducible stream.
//   - Single-threaded, synchronous: there is no concurrency inside
//     LocalSearch or Population. Callers that want parallelism run
//     independent LocalSearch/Population pairs on separate goroutines,
//     each with its own Data.RNG.
//
// # Errors
//
//	ErrNoClients, ErrInvalidTour, ErrSplitInvariant, ErrEmptyPopulation,
//	ErrNoFeasibleSplit.
//
// See DESIGN.md at the repository root for how this package's pieces are
// grounded in the rest of this module.
package vrprd
