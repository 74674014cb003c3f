package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Options struct {
	Difficulty mines.Difficulty
	// Custom is the board dealt for [mines.Custom].
	Custom mines.Params
	// CommitOnFlag starts the clock on the first accepted flag toggle as well
	// as on the first accepted reveal.
	CommitOnFlag bool
}

// Session owns the board a single player is working on and drives the
// engine's two-step protocol: every move is applied, the first accepted move
// starts the clock, and the board is then classified.
type Session struct {
	logger       *slog.Logger
	rnd          *rand.Rand
	board        *mines.Board
	difficulty   mines.Difficulty
	custom       mines.Params
	commitOnFlag bool
}

func New(logger *slog.Logger, rnd *rand.Rand, opts Options) (*Session, error) {
	s := &Session{
		logger:       logger,
		rnd:          rnd,
		custom:       opts.Custom,
		commitOnFlag: opts.CommitOnFlag,
	}
	if err := s.SetDifficulty(opts.Difficulty); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Board() *mines.Board { return s.board }

func (s *Session) Difficulty() mines.Difficulty { return s.difficulty }

func (s *Session) Custom() mines.Params { return s.custom }

func (s *Session) paramsFor(d mines.Difficulty) mines.Params {
	if p, ok := d.Preset(); ok {
		return p
	}
	return s.custom
}

// SetDifficulty replaces the board with a fresh deal for d. On error the
// current board is kept.
func (s *Session) SetDifficulty(d mines.Difficulty) error {
	board, err := mines.NewFromParams(s.paramsFor(d), s.rnd)
	if err != nil {
		return fmt.Errorf("unable to deal %s board: %w", d, err)
	}
	s.board = board
	s.difficulty = d
	s.logger.Info("new board",
		slog.String("difficulty", d.String()),
		slog.String("params", board.Params().String()),
	)
	return nil
}

// CycleDifficulty moves to the next (step > 0) or previous (step < 0)
// difficulty.
func (s *Session) CycleDifficulty(step int) error {
	d := s.difficulty
	switch {
	case step > 0:
		d = d.Next()
	case step < 0:
		d = d.Prev()
	}
	return s.SetDifficulty(d)
}

// ResizeCustom adjusts the custom board by the given deltas. The new params
// must be dealable; the board is re-dealt only while playing Custom.
func (s *Session) ResizeCustom(dCols, dRows, dMines int) error {
	next := mines.Params{
		Cols:      s.custom.Cols + dCols,
		Rows:      s.custom.Rows + dRows,
		MineCount: s.custom.MineCount + dMines,
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.custom = next
	if s.difficulty != mines.Custom {
		return nil
	}
	return s.SetDifficulty(mines.Custom)
}

func (s *Session) Reset() {
	s.board.Reset()
	s.logger.Debug("board reset", slog.String("params", s.board.Params().String()))
}

// Play applies move at p and returns the resulting game state. Moves on a
// finished game and moves the rules reject are silently ignored; positions
// off the board are reported as [mines.ErrOutOfBounds].
func (s *Session) Play(move Move, p mines.Position) (mines.GameState, error) {
	if state := s.board.State(); state != mines.Ongoing {
		return state, nil
	}

	var commit bool
	switch move {
	case Open:
		revealed, err := s.board.Reveal(p)
		if err != nil {
			return s.board.State(), err
		}
		commit = len(revealed) > 0
		s.logger.Debug("open", slog.Any("pos", p), slog.Int("revealed", len(revealed)))
	case Flag:
		changed, err := s.board.ToggleFlag(p)
		if err != nil {
			return s.board.State(), err
		}
		commit = changed && s.commitOnFlag
		s.logger.Debug("flag", slog.Any("pos", p), slog.Bool("changed", changed))
	default:
		return s.board.State(), ErrBadMove
	}

	if commit {
		s.board.CommitFirstMove()
	}

	state := s.board.UpdateGameState()
	if state != mines.Ongoing {
		s.logger.Info("game finished",
			slog.String("state", state.String()),
			slog.String("difficulty", s.difficulty.String()),
			slog.Int("seconds", s.board.GameTime()),
		)
	}
	return state, nil
}
