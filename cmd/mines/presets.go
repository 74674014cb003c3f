package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/mines"
)

func (app *application) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the preset difficulties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("DIFFICULTY", "COLS", "ROWS", "MINES")
			for _, d := range mines.Presets() {
				p, _ := d.Preset()
				t.Row(d.String(), strconv.Itoa(p.Cols), strconv.Itoa(p.Rows), strconv.Itoa(p.MineCount))
			}
			c := app.cfg.Board.Custom
			t.Row(mines.Custom.String(), strconv.Itoa(c.Cols), strconv.Itoa(c.Rows), strconv.Itoa(c.MineCount))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
			return err
		},
	}
}
