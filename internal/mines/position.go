package mines

import "fmt"

// convention (row, col), zero-based
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Index returns the row-major grid index of p on a board with the given
// number of columns.
func (p Position) Index(cols int) int {
	return p.Row*cols + p.Col
}

func PositionOf(index, cols int) Position {
	return Position{Row: index / cols, Col: index % cols}
}

// Neighbors returns every position within one step of p (diagonals included)
// that lies on a cols x rows board. The result is in row-major order and
// never contains p itself.
func Neighbors(p Position, cols, rows int) []Position {
	neighbors := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := p.Row+dr, p.Col+dc
			if r >= 0 && r < rows && c >= 0 && c < cols {
				neighbors = append(neighbors, Position{Row: r, Col: c})
			}
		}
	}
	return neighbors
}
