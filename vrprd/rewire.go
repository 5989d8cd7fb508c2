package vrprd

// rewire.go applies the best move found by intra.go's evaluation passes
// by splicing the intrusive doubly linked chain; every operation is
// O(block size) pointer/handle rewiring, no node copies. Grounded
// line-for-line on original_source/src/LocalSearch.cpp's swapBlocks,
// relocateBlock and revertBlock — the statement order matters (later
// statements read fields earlier ones leave untouched), so these are
// deliberately literal translations rather than restructured for
// Go idiom.

// swapBlocks exchanges the best-found block1 and block2 in place.
func (ls *LocalSearch) swapBlocks() {
	b1, b1End := ls.bestB1, ls.bestB1End
	b2, b2End := ls.bestB2, ls.bestB2End

	ls.n(ls.n(b1).prev).next = b2
	aux := ls.n(b1).prev
	ls.n(b1).prev = ls.n(b2).prev

	ls.n(ls.n(b2).prev).next = b1
	ls.n(b2).prev = aux

	ls.n(ls.n(b1End).next).prev = b2End
	aux = ls.n(b1End).next
	ls.n(b1End).next = ls.n(b2End).next

	ls.n(ls.n(b2End).next).prev = b1End
	ls.n(b2End).next = aux
}

// relocateBlock splices the best-found block1 out of its current
// position and reinserts it immediately after block2.
func (ls *LocalSearch) relocateBlock() {
	b1, b1End := ls.bestB1, ls.bestB1End
	b2 := ls.bestB2

	ls.n(ls.n(b1).prev).next = ls.n(b1End).next
	ls.n(ls.n(b1End).next).prev = ls.n(b1).prev

	aux := ls.n(b2).next
	ls.n(ls.n(b2).next).prev = b1End
	ls.n(b2).next = b1

	ls.n(b1).prev = b2
	ls.n(b1End).next = aux
}

// revertBlock reverses the best-found block1..block1End chain in place:
// first every node's prev/next fields are swapped (walking forward via
// the newly-swapped prev, which holds the original next), then the
// block's two endpoints are re-spliced into the surrounding chain.
func (ls *LocalSearch) revertBlock() {
	b1, b1End := ls.bestB1, ls.bestB1End

	aux := ls.n(b1End).next
	for h := b1; h != aux; h = ls.n(h).prev {
		nd := ls.n(h)
		nd.next, nd.prev = nd.prev, nd.next
	}

	aux = ls.n(b1End).prev
	ls.n(ls.n(b1).next).next = b1End
	ls.n(b1End).prev = ls.n(b1).next

	ls.n(b1).next = aux
	ls.n(aux).prev = b1
}
