package mines

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// noStart marks a deal whose reserved start index has already been used.
const noStart = -1

// drawIndices picks n distinct indices from [0, size) without replacement.
func drawIndices(size, n int, r *rand.Rand) []int {
	candidates := make([]int, size)
	for i := range candidates {
		candidates[i] = i
	}

	picked := make([]int, 0, n)
	k := size
	for range n {
		i := r.IntN(k)
		picked = append(picked, candidates[i])
		k--
		candidates[i] = candidates[k]
	}
	return picked
}

/*
deal draws mineCount+1 indices. The extra one is the start index: it never
holds a mine on this deal, so a mine under the player's first click can be
moved there.
*/
func (b *Board) deal() {
	drawn := drawIndices(b.cols*b.rows, b.mineCount+1, b.rnd)
	last := len(drawn) - 1
	b.lay(drawn[:last], drawn[last])
}

// lay places mines at the given indices and rebuilds every cell as Covered.
func (b *Board) lay(mineIndices []int, start int) {
	b.mines = mapset.New[int]()
	for _, i := range mineIndices {
		b.mines.Put(i)
	}
	b.start = start
	b.populate(nil)
}

// populate rebuilds the cells from the mine index set. When prev is given the
// cell states are carried over from it.
func (b *Board) populate(prev grid) {
	cells := make(grid, b.cols*b.rows)
	for i := range cells {
		if b.mines.Has(i) {
			cells[i].IsMine = true
			continue
		}
		n := 0
		for _, p := range Neighbors(PositionOf(i, b.cols), b.cols, b.rows) {
			if b.mines.Has(p.Index(b.cols)) {
				n++
			}
		}
		cells[i].AdjacentMines = n
	}
	if prev != nil {
		for i := range cells {
			cells[i].State = prev[i].State
		}
	}
	b.cells = cells
}

// relocate moves the mine at index from to the reserved start index and
// recomputes every adjacency count. It only ever happens once per deal.
func (b *Board) relocate(from int) {
	if b.start == noStart || !b.mines.Has(from) {
		return
	}
	Log.Debug("relocating first-click mine",
		"from", PositionOf(from, b.cols), "to", PositionOf(b.start, b.cols))
	b.mines.Remove(from)
	b.mines.Put(b.start)
	b.start = noStart
	b.populate(b.cells)
}
