package mines

import "time"

// MaxGameTime caps the elapsed seconds reported by [Board.GameTime].
const MaxGameTime = 9999

// CommitFirstMove starts the clock. Only the first call per deal has an
// effect.
func (b *Board) CommitFirstMove() {
	if !b.firstMove {
		return
	}
	b.firstMove = false
	b.startedAt = b.now()
}

// GameTime returns the whole seconds since the first committed move. It is 0
// before that and stops changing once the game is over.
func (b *Board) GameTime() int {
	if b.state != Ongoing || b.firstMove {
		return b.elapsed
	}
	secs := int(b.now().Sub(b.startedAt) / time.Second)
	b.elapsed = min(max(secs, 0), MaxGameTime)
	return b.elapsed
}
