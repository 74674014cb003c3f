package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	coveredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6"))
	revealedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B3B3B3"))
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF7559")).Bold(true)
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B30000")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF7559")).
			Background(lipgloss.Color("#4D4D4D")).
			Bold(true).
			Padding(0, 1)
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#CCCCCC")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

var numberStyles = [...]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")),
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("#800080")),
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("#800000")),
	6: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
	7: lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")),
	8: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
}

func cellStyle(c mines.Cell) lipgloss.Style {
	switch {
	case c.State == mines.Covered:
		return coveredStyle
	case c.State == mines.Flagged:
		return flagStyle
	case c.IsMine:
		return mineStyle
	case c.AdjacentMines > 0 && c.AdjacentMines < len(numberStyles):
		return numberStyles[c.AdjacentMines]
	default:
		return revealedStyle
	}
}

func face(s mines.GameState) string {
	switch s {
	case mines.Won:
		return "B)"
	case mines.Lost:
		return "X("
	default:
		return ":)"
	}
}
