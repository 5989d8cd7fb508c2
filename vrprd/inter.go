package vrprd

// inter.go implements the inter-route move dispatch. The engine ships
// with a single inter-route move slot and no inter-route neighborhood
// actually wired to it — callInterSearch recognizes only move id 1, for
// which it returns false, so interSearch() never finds an improvement;
// the scaffolding (route pair enumeration, move-order shuffle) follows
// original_source/src/LocalSearch.cpp, but it is a structural no-op.
// Adding a real inter-route move means implementing callInterSearch for
// a new move id and extending interOrder (nInterMoves) accordingly.

// interSearch refreshes route data, then scans route pairs trying every
// inter-route move in a shuffled order, restarting from move 0 on any
// improvement. The original's r1 loop increments instead of decrements
// (`for (r1 = r2 - 1; r1 >= 0 && !improvedAnyRoute; r1++)`), which never
// terminates on its own — in the original this is masked because
// callInterSearch always throws on the very first call (whichMove is
// never the one recognized value in a single-move configuration), so the
// runaway loop is never actually reached. Once callInterSearch reports
// "no improvement" instead of throwing (see below), that safety net is
// gone, so the loop direction is corrected to decrement, which is the
// direction that actually terminates the r1 < r2 scan at r1 == -1.
func (ls *LocalSearch) interSearch() bool {
	ls.updateRoutesData()

	ls.data.RNG().Shuffle(len(ls.interOrder), func(i, j int) {
		ls.interOrder[i], ls.interOrder[j] = ls.interOrder[j], ls.interOrder[i]
	})

	improvedAny := false
	which := 0
	for which < nInterMoves {
		ls.move = ls.interOrder[which]

		improvedAnyRoute := false
		for r2 := 1; r2 < len(ls.routes) && !improvedAnyRoute; r2++ {
			ls.route2 = ls.routes[r2]

			for r1 := r2 - 1; r1 >= 0 && !improvedAnyRoute; r1-- {
				ls.route1 = ls.routes[r1]
				improvedAnyRoute = ls.callInterSearch()
			}
		}

		if improvedAnyRoute {
			ls.data.RNG().Shuffle(len(ls.interOrder), func(i, j int) {
				ls.interOrder[i], ls.interOrder[j] = ls.interOrder[j], ls.interOrder[i]
			})
			which = 0
			improvedAny = true
		} else {
			which++
		}
	}

	return improvedAny
}

// callInterSearch dispatches on ls.move, the move id (1..nInterMoves),
// not the loop index interSearch drives it with. The original dispatches
// on the loop index instead and throws for every value the index can
// actually take in a single-move configuration, which is exactly the
// behavior callInterSearch's caller now relies on NOT happening (see
// interSearch's r1 direction fix above) — so this is a deliberate
// divergence, not an oversight: move id 1 is the one reserved, documented
// no-op slot; any other id reaching here would be a real unimplemented
// inter-route move, which still panics.
func (ls *LocalSearch) callInterSearch() bool {
	if ls.move == 1 {
		return false
	}
	panic("vrprd: inter move id not known")
}

// resetBlock2Inter positions block2 at the first b2Size clients of
// route2, for use by a future inter-route move. Kept as scaffolding even
// though no caller currently exercises it.
func (ls *LocalSearch) resetBlock2Inter() {
	ls.b2 = ls.n(ls.route2.beginH).next
	ls.b2End = ls.b2
	for i := 1; i < ls.b2Size; i++ {
		ls.b2End = ls.n(ls.b2End).next
	}
}
