package mines

// ToggleFlag flags a Covered cell or unflags a Flagged one, and reports
// whether the cell changed. Revealed cells cannot be flagged, and no more
// flags than mines can be placed.
func (b *Board) ToggleFlag(p Position) (bool, error) {
	if err := b.checkBounds(p); err != nil {
		return false, err
	}
	if b.state != Ongoing {
		return false, nil
	}

	c := b.cell(p)
	switch c.State {
	case Flagged:
		c.State = Covered
		b.flagsPlaced--
		return true, nil
	case Covered:
		if b.flagsPlaced >= b.mineCount {
			return false, nil
		}
		c.State = Flagged
		b.flagsPlaced++
		return true, nil
	default:
		return false, nil
	}
}
