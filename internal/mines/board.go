package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/zyedidia/generic/mapset"
)

var Log *slog.Logger = slog.Default()

// Board is a single deal of a minesweeper grid together with the player's
// progress on it. It is not safe for concurrent use.
type Board struct {
	cols, rows  int
	mineCount   int
	flagsPlaced int

	cells grid            /* row-major, cols*rows entries */
	mines mapset.Set[int] /* indices of mined cells */
	start int             /* reserved mine-free index, or noStart */

	state     GameState
	firstMove bool
	startedAt time.Time
	elapsed   int

	rnd *rand.Rand
	now func() time.Time
}

func newBoard(p Params, r *rand.Rand) *Board {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Board{
		cols:      p.Cols,
		rows:      p.Rows,
		mineCount: p.MineCount,
		state:     Ongoing,
		firstMove: true,
		rnd:       r,
		now:       time.Now,
	}
}

// New deals a cols x rows board with mineCount mines drawn from r. It fails
// with [ErrInvalidConfiguration] unless 0 <= mineCount < cols*rows.
func New(cols, rows, mineCount int, r *rand.Rand) (*Board, error) {
	return NewFromParams(Params{Cols: cols, Rows: rows, MineCount: mineCount}, r)
}

func NewFromParams(p Params, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(p, r)
	b.Reset()
	return b, nil
}

// Reset re-deals the board with the same dimensions and mine count.
func (b *Board) Reset() {
	b.deal()
	b.flagsPlaced = 0
	b.state = Ongoing
	b.firstMove = true
	b.startedAt = time.Time{}
	b.elapsed = 0
	Log.Debug("dealt board", "params", b.Params())
}

func (b *Board) Cols() int { return b.cols }

func (b *Board) Rows() int { return b.rows }

func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) Params() Params {
	return Params{Cols: b.cols, Rows: b.rows, MineCount: b.mineCount}
}

func (b *Board) FlagsPlaced() int { return b.flagsPlaced }

// FlagsLeft is the number of flags the player may still place.
func (b *Board) FlagsLeft() int {
	left := b.mineCount - b.flagsPlaced
	if left < 0 {
		panic(AssertionError{"more flags placed than there are mines"})
	}
	return left
}

func (b *Board) State() GameState { return b.state }

// FirstMove reports whether the first move of this deal is still to be
// committed.
func (b *Board) FirstMove() bool { return b.firstMove }

func (b *Board) InBounds(p Position) bool {
	return b.Params().InBounds(p)
}

func (b *Board) checkBounds(p Position) error {
	if !b.InBounds(p) {
		return fmt.Errorf("%w: %v on a %dx%d board", ErrOutOfBounds, p, b.cols, b.rows)
	}
	return nil
}

func (b *Board) Cell(p Position) (Cell, error) {
	if err := b.checkBounds(p); err != nil {
		return Cell{}, err
	}
	return *b.cell(p), nil
}

func (b *Board) cell(p Position) *Cell {
	return &b.cells[p.Index(b.cols)]
}
