package vrprd

import (
	"math"
	"sort"
	"time"
)

// ProgressPoint is one entry of Population.searchProgress: how long after
// Data.StartTime a new best solution was found, and its eval.
type ProgressPoint struct {
	ElapsedMs int64
	Eval      int
}

// Population is the ordered sequence of individuals the metaheuristic
// maintains, sorted non-decreasing by Eval, grounded on
// original_source/src/Population.cpp. Add does not cap its size;
// SurvivorsSelection trims it back to Mu.
type Population struct {
	data         *Data
	individuals  []*Individual
	bestSolution Individual

	searchProgress []ProgressPoint

	nextID int64
}

// NewPopulation returns an empty population over data, with bestSolution
// initialized to +Inf eval so the first Add always improves it.
func NewPopulation(data *Data) *Population {
	return &Population{
		data:         data,
		bestSolution: Individual{Eval: math.MaxInt},
	}
}

// Size returns the number of individuals currently held.
func (p *Population) Size() int { return len(p.individuals) }

// BestSolution returns an independent value copy of the best individual
// seen so far: the copy is not tied to population membership, so it
// survives the original being evicted by SurvivorsSelection.
func (p *Population) BestSolution() Individual { return p.bestSolution }

// SearchProgress returns the (elapsed-ms, eval) trail of best-solution
// improvements recorded by Add.
func (p *Population) SearchProgress() []ProgressPoint { return p.searchProgress }

// Individuals returns value copies of the current population, in its
// internal eval-sorted order. Intended for diagnostics and tests; callers
// must not rely on a copy's closest/biasedFitness staying in sync with
// the live population after later Add/SurvivorsSelection calls.
func (p *Population) Individuals() []Individual {
	out := make([]Individual, len(p.individuals))
	for i, ind := range p.individuals {
		out[i] = *ind
	}
	return out
}

// Initialize creates 2*Mu individuals from random giant tours split by
// split, and adds each.
func (p *Population) Initialize(split Split) error {
	for i := 0; i < 2*p.data.Mu; i++ {
		indiv := NewIndividual(p.data)
		if err := split.Split(indiv); err != nil {
			return err
		}
		p.Add(indiv)
	}
	return nil
}

// Add inserts indiv in eval order, updates every pairwise distance
// against the existing population, and reports whether indiv improved
// on bestSolution — if so, bestSolution is copy-updated and a progress
// point is appended. Mirrors the original's add().
func (p *Population) Add(indiv *Individual) bool {
	indiv.id = p.nextID
	p.nextID++

	for _, other := range p.individuals {
		d := p.distance(indiv, other)
		indiv.insertClosest(other.id, d)
		other.insertClosest(indiv.id, d)
	}

	pos := len(p.individuals)
	for pos > 0 && indiv.Eval < p.individuals[pos-1].Eval {
		pos--
	}
	p.individuals = append(p.individuals, nil)
	copy(p.individuals[pos+1:], p.individuals[pos:])
	p.individuals[pos] = indiv

	if indiv.Eval < p.bestSolution.Eval {
		p.bestSolution = *indiv
		elapsed := time.Since(p.data.StartTime).Milliseconds()
		p.searchProgress = append(p.searchProgress, ProgressPoint{ElapsedMs: elapsed, Eval: indiv.Eval})
		return true
	}
	return false
}

// SurvivorsSelection trims the population down to n individuals (n < 0
// means Mu) by repeated removeWorst.
func (p *Population) SurvivorsSelection(n int) {
	if n < 0 {
		n = p.data.Mu
	}
	for len(p.individuals) > n {
		p.removeWorst()
	}
}

// removeWorst recomputes biased fitness, then evicts the worst
// individual — preferring clones over non-clones, and within each group
// the highest biased fitness — purging it from every surviving peer's
// closest set. Mirrors the original's removeWorst().
func (p *Population) removeWorst() {
	p.updateBiasedFitness()

	worstPos := 0
	worstClone := false
	worstFit := -1.0
	for i, ind := range p.individuals {
		clone := ind.isClone()
		if (clone && !worstClone) || (clone == worstClone && ind.biasedFitness > worstFit) {
			worstClone = clone
			worstPos = i
			worstFit = ind.biasedFitness
		}
	}

	worst := p.individuals[worstPos]
	p.individuals = append(p.individuals[:worstPos], p.individuals[worstPos+1:]...)

	for _, other := range p.individuals {
		other.removeClosest(worst.id)
	}
}

// updateBiasedFitness assigns each individual's fitnessRank (its
// position, since the population is sorted by eval) and diversityRank
// (dense rank by decreasing nCloseMean), then combines the two into a
// single score. Mirrors the original's updateBiasedFitness().
func (p *Population) updateBiasedFitness() {
	popSize := len(p.individuals)
	if popSize == 0 {
		return
	}

	type diversityEntry struct {
		negMean   float64
		fitnessRank int
	}
	ranked := make([]diversityEntry, popSize)
	for i, ind := range p.individuals {
		ranked[i] = diversityEntry{negMean: -ind.nCloseMean(p.data.NClose), fitnessRank: i}
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].negMean != ranked[b].negMean {
			return ranked[a].negMean < ranked[b].negMean
		}
		return ranked[a].fitnessRank < ranked[b].fitnessRank
	})

	diversityRank := 0
	for k, e := range ranked {
		if k > 0 && e.negMean != ranked[k-1].negMean {
			diversityRank++
		}
		p.individuals[e.fitnessRank].biasedFitness = float64(e.fitnessRank) +
			(1.0-float64(p.data.NbElite)/float64(popSize))*float64(diversityRank)
	}
}

// distance computes the broken-pair distance between a and b: arcs are
// (client -> successor) pairs plus a depot-incidence marker per client;
// distance = 1 - I/U over their intersection/union. Mirrors the
// original's distance() exactly, including that arcs which
// differ contribute to neither I nor U (only matching successor arcs,
// and depot-incidence agreement/disagreement, move the counters).
func (p *Population) distance(a, b *Individual) float64 {
	i, u := 0, 0
	for c := 0; c < p.data.N; c++ {
		if a.Successors[c] == b.Successors[c] {
			i++
			u++
		}

		aDepot := a.Predecessors[c+1] == depotID
		bDepot := b.Predecessors[c+1] == depotID
		if aDepot && bDepot {
			i++
			u++
		} else if aDepot || bDepot {
			u++
		}
	}
	return 1 - float64(i)/float64(u)
}

// SelectParents runs two independent tournaments of size
// len(individuals)/4 and returns the lowest-biased-fitness winner of
// each. The "already picked" index set is shared across both
// tournaments, reproducing the original's selectParents() rather than
// resetting it between draws. When no undrawn index is left for the
// second tournament (a population of one), it draws a single index with
// replacement.
func (p *Population) SelectParents() (*Individual, *Individual, error) {
	if len(p.individuals) == 0 {
		return nil, nil, ErrEmptyPopulation
	}
	p.updateBiasedFitness()

	tournamentSize := len(p.individuals) / 4
	if tournamentSize < 1 {
		tournamentSize = 1
	}
	if tournamentSize > len(p.individuals) {
		tournamentSize = len(p.individuals)
	}

	selected := make(map[int]bool, 2*tournamentSize)
	rng := p.data.RNG()

	draw := func() *Individual {
		chosen := make([]*Individual, 0, tournamentSize)
		for len(chosen) < tournamentSize && len(selected) < len(p.individuals) {
			idx := rng.Intn(len(p.individuals))
			if !selected[idx] {
				selected[idx] = true
				chosen = append(chosen, p.individuals[idx])
			}
		}
		if len(chosen) == 0 {
			chosen = append(chosen, p.individuals[rng.Intn(len(p.individuals))])
		}

		winner := chosen[0]
		for _, el := range chosen {
			if winner.biasedFitness > el.biasedFitness {
				winner = el
			}
		}
		return winner
	}

	p1 := draw()
	p2 := draw()
	return p1, p2, nil
}

// Diversify keeps the Mu/3 best individuals, then reinitializes with
// 2*Mu fresh random tours.
func (p *Population) Diversify(split Split) error {
	p.SurvivorsSelection(p.data.Mu / 3)
	return p.Initialize(split)
}
