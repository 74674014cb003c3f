package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func states(b *Board, ps ...Position) []CellState {
	s := make([]CellState, len(ps))
	for i, p := range ps {
		s[i] = b.cell(p).State
	}
	return s
}

func TestRevealCascade(t *testing.T) {
	// M M 2
	// 2 3 M
	// . 1 1
	b := layBoard(t, 3, 3, []int{0, 1, 5}, 8)

	revealed, err := b.Reveal(Position{2, 0})
	require.NoError(t, err)

	want := []Position{{2, 0}, {1, 0}, {1, 1}, {2, 1}}
	assert.ElementsMatch(t, want, revealed)
	for _, p := range want {
		assert.Equal(t, Revealed, b.cell(p).State, "cell %v", p)
	}
	assert.Equal(t,
		[]CellState{Covered, Covered, Covered, Covered, Covered},
		states(b, Position{0, 0}, Position{0, 1}, Position{0, 2}, Position{1, 2}, Position{2, 2}),
	)
}

func TestRevealNumberedCell(t *testing.T) {
	b := layBoard(t, 3, 3, []int{0, 1, 5}, 8)

	revealed, err := b.Reveal(Position{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []Position{{1, 1}}, revealed)
}

func TestRevealCascadeStopsAtFlags(t *testing.T) {
	// . . F . . 2 M
	// . . F . . 3 M
	// . . F . . 2 M
	b := layBoard(t, 7, 3, []int{6, 13, 20}, 3)
	for r := range 3 {
		changed, err := b.ToggleFlag(Position{r, 2})
		require.NoError(t, err)
		require.True(t, changed)
	}

	revealed, err := b.Reveal(Position{1, 0})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
		revealed,
	)
	for r := range 3 {
		assert.Equal(t, Flagged, b.cell(Position{r, 2}).State)
		for c := 3; c < 7; c++ {
			assert.Equal(t, Covered, b.cell(Position{r, c}).State)
		}
	}
}

func TestRevealSkipsFlaggedCellInsideRegion(t *testing.T) {
	b := layBoard(t, 5, 5, []int{0}, 24)
	_, err := b.ToggleFlag(Position{2, 2})
	require.NoError(t, err)

	revealed, err := b.Reveal(Position{4, 4})
	require.NoError(t, err)

	assert.Len(t, revealed, 23)
	assert.Equal(t, Flagged, b.cell(Position{2, 2}).State)
	assert.Equal(t, Covered, b.cell(Position{0, 0}).State)
}

// expectedRegion is an independent depth-first computation of what revealing
// an open cell should uncover.
func expectedRegion(b *Board, p Position) map[Position]bool {
	region := map[Position]bool{}
	var visit func(Position)
	visit = func(q Position) {
		if region[q] || b.cell(q).State == Flagged {
			return
		}
		region[q] = true
		if b.cell(q).AdjacentMines > 0 {
			return
		}
		for _, n := range Neighbors(q, b.cols, b.rows) {
			visit(n)
		}
	}
	visit(p)
	return region
}

func TestRevealRegionMatchesComponent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for seed := range 50 {
		b, err := New(16, 16, 40, r)
		require.NoError(t, err)

		open := -1
		for i, c := range b.cells {
			if !c.IsMine && c.AdjacentMines == 0 {
				open = i
				break
			}
		}
		if open < 0 {
			continue
		}
		p := PositionOf(open, b.cols)
		want := expectedRegion(b, p)

		revealed, err := b.Reveal(p)
		require.NoError(t, err)

		got := map[Position]bool{}
		for _, q := range revealed {
			assert.False(t, b.cell(q).IsMine, "seed %d: mine revealed at %v", seed, q)
			got[q] = true
		}
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

func TestFirstRevealNeverMine(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	const cols, rows, mineCount = 5, 5, 20

	for i := range cols * rows {
		for range 10 {
			b, err := New(cols, rows, mineCount, r)
			require.NoError(t, err)
			p := PositionOf(i, cols)

			_, err = b.Reveal(p)
			require.NoError(t, err)
			b.CommitFirstMove()

			c, _ := b.Cell(p)
			assert.False(t, c.IsMine, "first click at %v hit a mine", p)
			assert.Equal(t, Revealed, c.State)
			assert.Equal(t, Ongoing, b.UpdateGameState())
			assert.Equal(t, mineCount, countMines(b))
			assertAdjacency(t, b)
		}
	}
}

func TestFirstRevealRelocatesMine(t *testing.T) {
	b := layBoard(t, 3, 3, []int{0, 1, 5}, 8)

	revealed, err := b.Reveal(Position{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []Position{{0, 0}}, revealed)

	assert.False(t, b.cell(Position{0, 0}).IsMine)
	assert.True(t, b.cell(Position{2, 2}).IsMine)
	assert.Equal(t, 1, b.cell(Position{0, 0}).AdjacentMines)
	assert.Equal(t, noStart, b.start)
	assertAdjacency(t, b)
}

func TestRelocationKeepsFlags(t *testing.T) {
	b := layBoard(t, 3, 3, []int{0, 1, 5}, 8)
	_, err := b.ToggleFlag(Position{1, 2})
	require.NoError(t, err)

	_, err = b.Reveal(Position{0, 1})
	require.NoError(t, err)

	assert.Equal(t, Flagged, b.cell(Position{1, 2}).State)
	assert.Equal(t, 1, b.FlagsPlaced())
}

func TestRelocationHappensOnce(t *testing.T) {
	b := layBoard(t, 3, 3, []int{0, 1, 5}, 8)

	_, err := b.Reveal(Position{0, 0})
	require.NoError(t, err)

	// the caller never committed the first move, but the start index is spent
	revealed, err := b.Reveal(Position{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []Position{{0, 1}}, revealed)
	assert.True(t, b.cell(Position{0, 1}).IsMine)
	assert.Equal(t, 3, countMines(b))
	assert.Equal(t, Lost, b.UpdateGameState())
}

func TestRevealNoops(t *testing.T) {
	b := layBoard(t, 3, 3, []int{0, 1, 5}, 8)
	b.CommitFirstMove()

	_, err := b.Reveal(Position{1, 1})
	require.NoError(t, err)
	revealed, err := b.Reveal(Position{1, 1})
	require.NoError(t, err)
	assert.Empty(t, revealed, "revealing a revealed cell")

	_, err = b.ToggleFlag(Position{0, 0})
	require.NoError(t, err)
	revealed, err = b.Reveal(Position{0, 0})
	require.NoError(t, err)
	assert.Empty(t, revealed, "revealing a flagged cell")
	assert.Equal(t, Flagged, b.cell(Position{0, 0}).State)

	_, err = b.Reveal(Position{1, 2})
	require.NoError(t, err)
	require.Equal(t, Lost, b.UpdateGameState())

	b.cell(Position{2, 2}).State = Covered
	revealed, err = b.Reveal(Position{2, 2})
	require.NoError(t, err)
	assert.Empty(t, revealed, "revealing after the game ended")
}

func TestOutOfBounds(t *testing.T) {
	b, err := New(9, 5, 10, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	for _, p := range []Position{{-1, 0}, {0, -1}, {5, 0}, {0, 9}, {5, 9}} {
		_, err := b.Reveal(p)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "reveal %v: %v", p, err)

		_, err = b.ToggleFlag(p)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "flag %v: %v", p, err)

		_, err = b.Cell(p)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "cell %v: %v", p, err)
	}

	for _, c := range b.cells {
		assert.Equal(t, Covered, c.State)
	}
	assert.Zero(t, b.FlagsPlaced())
}
