package vrprd

import "time"

// Default knobs, mirroring tsp.Options' "Default knobs" block.
const (
	// DefaultNClose is the number of nearest neighbors averaged for an
	// individual's diversity contribution, as set by DefaultParams.
	DefaultNClose = 5

	// DefaultNbElite is the number of elite individuals shielded from the
	// diversity penalty in biased fitness, as set by DefaultParams.
	DefaultNbElite = 4

	// cloneEpsilon is the distance threshold below which two individuals
	// are considered clones.
	cloneEpsilon = 1e-5
)

// Params bundles the population-sizing and diversity knobs of the
// metaheuristic engine. Zero value is not meaningful for Mu/Lambda; use
// DefaultParams and override as needed, the same contract tsp.Options
// documents for itself.
type Params struct {
	// Mu is the number of individuals kept after survivor selection.
	Mu int

	// Lambda is the number of offspring generated per generation. No
	// code in this package reads it; Population does not enforce a
	// Mu+Lambda+1 capacity.
	Lambda int

	// NbElite is the number of elite individuals exempted from the full
	// diversity penalty in biased fitness.
	NbElite int

	// NClose is how many nearest neighbors are averaged for an
	// individual's diversity contribution.
	NClose int

	// Seed seeds the deterministic RNG used for shuffles and random
	// giant tours. Seed==0 yields a fixed, reproducible stream.
	Seed int64
}

// DefaultParams returns sane defaults: Mu=25, Lambda=40, NbElite=4,
// NClose=5, deterministic Seed=0.
func DefaultParams() Params {
	return Params{
		Mu:      25,
		Lambda:  40,
		NbElite: DefaultNbElite,
		NClose:  DefaultNClose,
		Seed:    0,
	}
}

// Data is the read-only façade LocalSearch and Population consume: the
// instance (client count, travel times, release dates) plus the shared
// knobs and RNG. It is the analogue of the original "Data" class injected
// into LocalSearch/Population constructors (original_source), reworked
// to take an injectable RNG instead of a hidden global one.
type Data struct {
	// N is the number of clients (ids 1..N); V = N+1 counting the depot.
	N int

	// timeTo[i*V+j] is the travel time from id i to id j (row-major,
	// depot is id 0). Symmetric or asymmetric travel times are both
	// supported; only Data.TimeTo is consulted.
	timeTo []int

	// ReleaseDate[id] is the earliest time id becomes eligible for
	// service; ReleaseDate[0] (depot) is always 0.
	ReleaseDate []int

	Params

	rng RNG

	// StartTime anchors Population's searchProgress timestamps, mirroring
	// the original's std::chrono steady_clock epoch captured at construction.
	StartTime time.Time
}

// TimeTo returns the travel time from client/depot id u to id v.
func (d *Data) TimeTo(u, v int) int {
	return d.timeTo[u*(d.N+1)+v]
}

// V returns the number of nodes including the depot (N+1).
func (d *Data) V() int { return d.N + 1 }

// RNG returns the injected generator, falling back to a seeded default
// derived from Params.Seed on first use.
func (d *Data) RNG() RNG {
	if d.rng == nil {
		d.rng = rngFromSeed(d.Seed)
	}
	return d.rng
}

// WithRNG overrides the generator (e.g. with a deterministic test stub).
func (d *Data) WithRNG(r RNG) *Data {
	d.rng = r
	return d
}

// NewData constructs a Data façade from a flat, row-major (N+1)x(N+1)
// travel-time matrix (depot at index 0, clients at 1..N) and matching
// release dates (length N+1, index 0 ignored/zero).
func NewData(n int, timeTo []int, releaseDate []int, params Params) (*Data, error) {
	if n <= 0 {
		return nil, ErrNoClients
	}
	v := n + 1
	if len(timeTo) != v*v {
		return nil, ErrInvalidTour
	}
	if len(releaseDate) != v {
		return nil, ErrInvalidTour
	}
	return &Data{
		N:           n,
		timeTo:      timeTo,
		ReleaseDate: releaseDate,
		Params:      params,
		StartTime:   time.Now(),
	}, nil
}
