package mines

import "github.com/zyedidia/generic/mapset"

// Reveal uncovers the cell at p and, when it is an open cell (no adjacent
// mines), the connected open region around it plus that region's numbered
// border. It returns the positions that became Revealed.
//
// Revealing a cell that is not Covered, or acting on a finished game, is a
// no-op. If the first move has not been committed yet and p holds a mine, the
// mine is moved to the deal's start index before anything is revealed.
func (b *Board) Reveal(p Position) ([]Position, error) {
	if err := b.checkBounds(p); err != nil {
		return nil, err
	}
	if b.state != Ongoing || b.cell(p).State != Covered {
		return nil, nil
	}

	if b.firstMove && b.cell(p).IsMine {
		b.relocate(p.Index(b.cols))
	}

	var revealed []Position
	for _, q := range b.findReveals(p) {
		if c := b.cell(q); c.State == Covered {
			c.State = Revealed
			revealed = append(revealed, q)
		}
	}
	return revealed, nil
}

// findReveals runs a breadth-first search from p. Flagged cells are neither
// included nor expanded; only open non-mine cells expand further.
func (b *Board) findReveals(p Position) []Position {
	if c := b.cell(p); c.IsMine || c.AdjacentMines > 0 {
		return []Position{p}
	}

	var (
		reveals []Position
		visited = mapset.New[Position]()
		queue   = []Position{p}
	)
	visited.Put(p)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		reveals = append(reveals, cur)

		if c := b.cell(cur); c.IsMine || c.AdjacentMines > 0 {
			continue
		}
		for _, n := range Neighbors(cur, b.cols, b.rows) {
			if visited.Has(n) || b.cell(n).State == Flagged {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return reveals
}
