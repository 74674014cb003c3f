package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

type BoardParams struct {
	Cols      int `schema:"cols,required"`
	Rows      int `schema:"rows,required"`
	MineCount int `schema:"mines,required"`
}

func decodeBoardParams(src map[string][]string) (BoardParams, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto BoardParams
	err := dec.Decode(&dto, src)
	return dto, err
}

// Board is the starting board of a session. Custom seeds the adjustable
// custom dimensions; for a preset it equals the preset's params.
type Board struct {
	Difficulty mines.Difficulty
	Custom     mines.Params
}

func (b Board) String() string {
	if b.Difficulty == mines.Custom {
		return fmt.Sprintf("cols=%d&rows=%d&mines=%d", b.Custom.Cols, b.Custom.Rows, b.Custom.MineCount)
	}
	return b.Difficulty.String()
}

/*
ParseBoard reads a board descriptor. Two forms are accepted:

	expert
	cols=30&rows=16&mines=99

The second one always yields a custom board and must be dealable.
*/
func ParseBoard(s string) (Board, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "=") {
		d, err := mines.ParseDifficulty(s)
		if err != nil {
			return Board{}, err
		}
		p, ok := d.Preset()
		if !ok {
			return Board{}, fmt.Errorf("board %q needs cols, rows and mines", s)
		}
		return Board{Difficulty: d, Custom: p}, nil
	}

	query, err := url.ParseQuery(s)
	if err != nil {
		return Board{}, fmt.Errorf("unable to parse board %q: %w", s, err)
	}
	dto, err := decodeBoardParams(query)
	if err != nil {
		return Board{}, fmt.Errorf("unable to decode board %q: %w", s, err)
	}
	p := mines.Params{Cols: dto.Cols, Rows: dto.Rows, MineCount: dto.MineCount}
	if err := p.Validate(); err != nil {
		return Board{}, err
	}
	return Board{Difficulty: mines.Custom, Custom: p}, nil
}
