package mines

import "strconv"

type GameState uint8

const (
	Ongoing GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "GameState(" + strconv.Itoa(int(s)) + ")"
	}
}

/*
UpdateGameState classifies the board after a reveal or flag action and stores
the result. Callers invoke it themselves after every mutation.

  - Won: every mine is flagged and nothing else is.
  - Lost: a mine has been revealed.
  - Ongoing otherwise.

Leaving Ongoing freezes the clock and reveals the board: on a win the
remaining covered cells, on a loss every cell.
*/
func (b *Board) UpdateGameState() GameState {
	if b.state != Ongoing {
		return b.state
	}

	next := b.classify()
	if next == Ongoing {
		return next
	}

	b.elapsed = b.GameTime()
	switch next {
	case Won:
		b.revealCovered()
	case Lost:
		b.revealAll()
	}
	b.state = next
	Log.Debug("game over", "state", next, "elapsed", b.elapsed)
	return next
}

func (b *Board) classify() GameState {
	allFlagged := b.flagsPlaced == b.mineCount
	exploded := false
	b.mines.Each(func(i int) {
		switch b.cells[i].State {
		case Revealed:
			exploded = true
			allFlagged = false
		case Covered:
			allFlagged = false
		}
	})

	switch {
	case allFlagged:
		return Won
	case exploded:
		return Lost
	default:
		return Ongoing
	}
}

func (b *Board) revealCovered() {
	for i := range b.cells {
		if b.cells[i].State == Covered {
			b.cells[i].State = Revealed
		}
	}
}

// revealAll uncovers flags too, so no flags remain placed.
func (b *Board) revealAll() {
	for i := range b.cells {
		b.cells[i].State = Revealed
	}
	b.flagsPlaced = 0
}
