package vrprd

// intra.go implements the six intra-route neighborhoods: 1-1/1-2/2-2
// swap, 1-relocation, 2-relocation, and 2-opt. Every move is
// evaluated by delta (minus - plus) against the current best and applied
// only once, best-improvement, per route per call — the same style as
// the sibling tsp package's TwoOpt (best-improvement acceptance over a
// prefetched delta), grounded here on original_source/src/LocalSearch.cpp.

// distID returns the id used to index the travel-time matrix for h: a
// begin sentinel stands in for the depot in every distance lookup even
// though its node.id is beginSentinelID, a distinct value reserved for
// loop-control: begin/end sentinels supply valid prev/next and timeTo
// entries without special-casing moves.
func (ls *LocalSearch) distID(h nodeHandle) int {
	if id := ls.n(h).id; id != beginSentinelID {
		return id
	}
	return depotID
}

// tt returns the travel time from the node at handle u to the node at v.
func (ls *LocalSearch) tt(u, v nodeHandle) int {
	return ls.data.TimeTo(ls.distID(u), ls.distID(v))
}

// intraSearch tries every intra-route move, in a freshly shuffled order,
// against every active route, restarting the move order from scratch
// after any improvement — mirroring the original's intraSearch().
func (ls *LocalSearch) intraSearch() bool {
	ls.data.RNG().Shuffle(len(ls.intraOrder), func(i, j int) {
		ls.intraOrder[i], ls.intraOrder[j] = ls.intraOrder[j], ls.intraOrder[i]
	})

	improvedAny := false
	for _, r := range ls.routes {
		ls.route1 = r

		which := 0
		for which < nIntraMoves {
			ls.move = ls.intraOrder[which]
			improved := ls.callIntraSearch()

			if improved {
				ls.data.RNG().Shuffle(len(ls.intraOrder), func(i, j int) {
					ls.intraOrder[i], ls.intraOrder[j] = ls.intraOrder[j], ls.intraOrder[i]
				})
				which = 0
				improvedAny = true
			} else {
				which++
			}
		}
	}

	return improvedAny
}

// callIntraSearch dispatches on ls.move, the move-id convention of
// original_source's callIntraSearch: 1/2/3 are 1-1/1-2/2-2 swap, 4/5 are
// 1-/2-relocation, 6 is 2-opt.
func (ls *LocalSearch) callIntraSearch() bool {
	switch ls.move {
	case 1:
		ls.b1Size, ls.b2Size = 1, 1
		return ls.intraSwap()
	case 2:
		ls.b1Size, ls.b2Size = 1, 2
		return ls.intraSwap()
	case 3:
		ls.b1Size, ls.b2Size = 2, 2
		return ls.intraSwap()
	case 4:
		ls.b1Size = 1
		return ls.intraRelocation()
	case 5:
		ls.b1Size = 2
		return ls.intraRelocation()
	case 6:
		return ls.intraTwoOpt()
	}
	panic("vrprd: intra move id not known")
}

// intraSwap evaluates exchanging a block of b1Size clients with a block
// of b2Size clients elsewhere in route1, trying both orientations when
// the block sizes differ (since b1/b2 are not interchangeable in
// intraSwapOneWay's scan order), and applies the best one found.
func (ls *LocalSearch) intraSwap() bool {
	if ls.route1.nClients < ls.b1Size+ls.b2Size {
		return false
	}

	ls.bestImprovement = 0
	ls.intraSwapOneWay()
	if ls.b1Size != ls.b2Size {
		ls.b1Size, ls.b2Size = ls.b2Size, ls.b1Size
		ls.intraSwapOneWay()
	}

	if ls.bestImprovement > 0 {
		ls.swapBlocks()
		return true
	}
	return false
}

// intraSwapOneWay scans every (block1, block2) pair with block2 strictly
// after block1 in the route, scoring the delta of exchanging them.
func (ls *LocalSearch) intraSwapOneWay() {
	var preMinus, minus, plus int

	for ls.resetBlock1(); !ls.blocksFinished; ls.moveBlock1Forward() {
		preMinus = ls.tt(ls.n(ls.b1).prev, ls.b1) + ls.tt(ls.b1End, ls.n(ls.b1End).next)

		for ls.resetBlock2Intra(); ls.n(ls.b2End).id != depotID; ls.moveBlock2Forward() {
			minus = preMinus + ls.tt(ls.b2End, ls.n(ls.b2End).next)
			plus = ls.tt(ls.n(ls.b1).prev, ls.b2) + ls.tt(ls.b1End, ls.n(ls.b2End).next)

			if ls.n(ls.b1End).next == ls.b2 { // adjacent
				plus += ls.tt(ls.b2End, ls.b1)
			} else {
				minus += ls.tt(ls.n(ls.b2).prev, ls.b2)
				plus += ls.tt(ls.n(ls.b2).prev, ls.b1) + ls.tt(ls.b2End, ls.n(ls.b1End).next)
			}

			ls.improvement = minus - plus
			ls.evaluateImprovement()
		}
	}
}

// intraRelocation evaluates moving a b1Size-client block to every other
// insertion point in route1 (including right after the begin sentinel,
// i.e. becoming the new first block), applying the best relocation
// found. The scan starts at the begin sentinel itself: beginSentinelID
// is distinct from depotID precisely so this loop runs at all.
func (ls *LocalSearch) intraRelocation() bool {
	ls.bestImprovement = 0
	var preMinus, prePlus, minus, plus int

	for ls.resetBlock1(); ls.n(ls.b1End).id != depotID; ls.moveBlock1Forward() {
		preMinus = ls.tt(ls.n(ls.b1).prev, ls.b1) + ls.tt(ls.b1End, ls.n(ls.b1End).next)
		prePlus = ls.tt(ls.n(ls.b1).prev, ls.n(ls.b1End).next)

		for b2 := ls.route1.beginH; ls.n(b2).id != depotID; b2 = ls.n(b2).next {
			if ls.n(b2).next == ls.b1 {
				b2 = ls.n(ls.b1End).next // skip the block
			}

			minus = preMinus + ls.tt(b2, ls.n(b2).next)
			plus = prePlus + ls.tt(b2, ls.b1) + ls.tt(ls.b1End, ls.n(b2).next)

			ls.improvement = minus - plus
			ls.b2, ls.b2End = b2, b2
			ls.evaluateImprovement()
		}
	}

	if ls.bestImprovement > 0 {
		ls.relocateBlock()
		return true
	}
	return false
}

// intraTwoOpt evaluates reversing every contiguous sub-chain of route1,
// applying the best reversal found.
func (ls *LocalSearch) intraTwoOpt() bool {
	ls.bestImprovement = 0
	var preMinus, minus, plus int

	for b1 := ls.n(ls.route1.beginH).next; ls.n(b1).id != depotID; b1 = ls.n(b1).next {
		preMinus = ls.tt(ls.n(b1).prev, b1)

		for b1End := ls.n(b1).next; ls.n(b1End).id != depotID; b1End = ls.n(b1End).next {
			minus = preMinus + ls.tt(b1End, ls.n(b1End).next)
			plus = ls.tt(ls.n(b1).prev, b1End) + ls.tt(b1, ls.n(b1End).next)

			ls.improvement = minus - plus
			ls.b1, ls.b1End = b1, b1End
			ls.evaluateImprovement()
		}
	}

	if ls.bestImprovement > 0 {
		ls.revertBlock()
		return true
	}
	return false
}

// resetBlock1 positions block1 at the first b1Size clients of route1.
func (ls *LocalSearch) resetBlock1() {
	ls.blocksFinished = false

	ls.b1 = ls.n(ls.route1.beginH).next
	ls.b1End = ls.b1
	for i := 1; i < ls.b1Size; i++ {
		ls.b1End = ls.n(ls.b1End).next
	}
}

// resetBlock2Intra positions block2 immediately after block1, marking
// the scan finished if there is no room left in the route for it.
func (ls *LocalSearch) resetBlock2Intra() {
	ls.b2 = ls.n(ls.b1End).next
	ls.b2End = ls.b2
	for i := 1; i < ls.b2Size; i++ {
		ls.b2End = ls.n(ls.b2End).next
	}

	if ls.n(ls.b2End).id == depotID {
		ls.blocksFinished = true
	}
}

// moveBlock1Forward slides block1 one client forward.
func (ls *LocalSearch) moveBlock1Forward() {
	ls.b1 = ls.n(ls.b1).next
	ls.b1End = ls.n(ls.b1End).next
}

// moveBlock2Forward slides block2 one client forward.
func (ls *LocalSearch) moveBlock2Forward() {
	ls.b2 = ls.n(ls.b2).next
	ls.b2End = ls.n(ls.b2End).next
}

// evaluateImprovement records the current block positions as the best
// seen so far if improvement beats bestImprovement.
func (ls *LocalSearch) evaluateImprovement() {
	if ls.improvement > ls.bestImprovement {
		ls.bestImprovement = ls.improvement
		ls.bestB1, ls.bestB1End = ls.b1, ls.b1End
		ls.bestB2, ls.bestB2End = ls.b2, ls.b2End
	}
}
