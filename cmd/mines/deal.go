package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

func (app *application) newDealCmd() *cobra.Command {
	var (
		count int
		open  string
	)

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Print freshly dealt boards",
		Long: `Deal one or more boards and print their mine layout.

With --open the first move is played before printing, so the layout shows
where the mine under the first click was moved to, followed by the board
as the player sees it.

Examples:
  mines deal --board expert
  mines deal -n 3 --seed 7
  mines deal --board 'cols=9&rows=9&mines=10' --open 4,4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New("number of boards must be positive")
			}
			var first *mines.Position
			if open != "" {
				p, err := parsePosition(open)
				if err != nil {
					return err
				}
				first = &p
			}

			out := cmd.OutOrStdout()
			rnd := createRand(app.cfg.Seed)
			for i := range count {
				s, err := app.newSession(rnd)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "# %s %s\n", s.Difficulty(), s.Board().Params())

				if first == nil {
					fmt.Fprint(out, s.Board().Layout())
					continue
				}
				if _, err := s.Play(session.Open, *first); err != nil {
					return err
				}
				fmt.Fprint(out, s.Board().Layout())
				fmt.Fprintln(out)
				fmt.Fprint(out, s.Board().String())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "number", "n", 1, "Number of boards to deal")
	cmd.Flags().StringVar(&open, "open", "", "Reveal row,col before printing")
	return cmd
}

// parsePosition reads "row,col".
func parsePosition(s string) (mines.Position, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return mines.Position{}, fmt.Errorf("invalid position %q (use format like '4,4')", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return mines.Position{}, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return mines.Position{}, fmt.Errorf("invalid col: %w", err)
	}
	return mines.Position{Row: row, Col: col}, nil
}
