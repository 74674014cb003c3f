package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Covered CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

type Cell struct {
	IsMine        bool
	AdjacentMines int // 0-8, unused for mines
	State         CellState
}

// Glyph is what a player sees on the cell.
func (c Cell) Glyph() string {
	switch c.State {
	case Covered:
		return "-"
	case Flagged:
		return "F"
	}
	switch {
	case c.IsMine:
		return "*"
	case c.AdjacentMines == 0:
		return "."
	default:
		return strconv.Itoa(c.AdjacentMines)
	}
}

// layoutGlyph ignores the cell state and shows what the cell hides.
func (c Cell) layoutGlyph() string {
	switch {
	case c.IsMine:
		return "M"
	case c.AdjacentMines == 0:
		return "."
	default:
		return strconv.Itoa(c.AdjacentMines)
	}
}

type grid []Cell

func (g grid) toString(width int, glyph func(Cell) string) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if x > 0 {
				fmt.Fprint(&b, " ")
			}
			fmt.Fprint(&b, glyph(g[i]))
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// String renders the board as the player currently sees it.
func (b *Board) String() string {
	return b.cells.toString(b.cols, Cell.Glyph)
}

// Layout renders the deal itself: mines as "M", adjacency counts, and "." for
// open cells, regardless of what has been revealed.
func (b *Board) Layout() string {
	return b.cells.toString(b.cols, Cell.layoutGlyph)
}
