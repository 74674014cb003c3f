package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Cols, Rows, MineCount int
}

func (p Params) Unpack() (cols int, rows int, mc int) {
	return p.Cols, p.Rows, p.MineCount
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d/%d", p.Cols, p.Rows, p.MineCount)
}

// Validate reports whether a board with these params can be dealt. One cell
// beyond the mines is always needed for the reserved start index.
func (p Params) Validate() error {
	cols, rows, mineCount := p.Unpack()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %dx%d board has no cells", ErrInvalidConfiguration, cols, rows)
	}
	if mineCount < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidConfiguration, mineCount)
	}
	if mineCount >= cols*rows {
		return fmt.Errorf(
			"%w: %d mines do not fit a %dx%d board (at most %d)",
			ErrInvalidConfiguration, mineCount, cols, rows, cols*rows-1,
		)
	}
	return nil
}

func (p Params) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < p.Rows && pos.Col >= 0 && pos.Col < p.Cols
}

type Difficulty uint8

const (
	Beginner Difficulty = iota
	Intermediate
	Expert
	Custom
)

var difficultyNames = [...]string{
	Beginner:     "beginner",
	Intermediate: "intermediate",
	Expert:       "expert",
	Custom:       "custom",
}

var presets = map[Difficulty]Params{
	Beginner:     {Cols: 8, Rows: 8, MineCount: 10},
	Intermediate: {Cols: 16, Rows: 16, MineCount: 40},
	Expert:       {Cols: 24, Rows: 24, MineCount: 99},
}

func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", d)
}

func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return Difficulty(d), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Preset returns the fixed board params of d. Custom has no preset.
func (d Difficulty) Preset() (Params, bool) {
	p, ok := presets[d]
	return p, ok
}

func Presets() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Expert}
}

// Next cycles Beginner -> Intermediate -> Expert -> Custom -> Beginner.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % Difficulty(len(difficultyNames))
}

func (d Difficulty) Prev() Difficulty {
	n := Difficulty(len(difficultyNames))
	return (d + n - 1) % n
}
