package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model of a single minesweeper session played with
// a keyboard cursor.
type Model struct {
	session *session.Session
	logger  *slog.Logger
	keys    KeyMap
	help    help.Model
	cursor  mines.Position
	err     error

	width, height int
}

func New(s *session.Session, logger *slog.Logger) Model {
	return Model{
		session: s,
		logger:  logger,
		keys:    Keys,
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)

		case key.Matches(msg, m.keys.Reveal):
			m.play(session.Open)
		case key.Matches(msg, m.keys.Flag):
			m.play(session.Flag)
		case key.Matches(msg, m.keys.Reset):
			m.session.Reset()

		case key.Matches(msg, m.keys.Difficulty):
			d := mines.Difficulty(msg.String()[0] - '1')
			m.setErr(m.session.SetDifficulty(d))
		case key.Matches(msg, m.keys.Harder):
			m.setErr(m.session.CycleDifficulty(1))
		case key.Matches(msg, m.keys.Easier):
			m.setErr(m.session.CycleDifficulty(-1))

		case key.Matches(msg, m.keys.MoreCols):
			m.setErr(m.session.ResizeCustom(1, 0, 0))
		case key.Matches(msg, m.keys.FewerCols):
			m.setErr(m.session.ResizeCustom(-1, 0, 0))
		case key.Matches(msg, m.keys.MoreRows):
			m.setErr(m.session.ResizeCustom(0, 1, 0))
		case key.Matches(msg, m.keys.FewerRows):
			m.setErr(m.session.ResizeCustom(0, -1, 0))
		case key.Matches(msg, m.keys.MoreMines):
			m.setErr(m.session.ResizeCustom(0, 0, 1))
		case key.Matches(msg, m.keys.LessMines):
			m.setErr(m.session.ResizeCustom(0, 0, -1))

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.clampCursor()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		return m, tick()
	}

	return m, nil
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.logger.Warn("rejected", slog.Any("error", err))
	}
	m.err = err
}

func (m *Model) play(move session.Move) {
	if _, err := m.session.Play(move, m.cursor); err != nil {
		m.logger.Error("move failed",
			slog.String("move", move.String()),
			slog.Any("pos", m.cursor),
			slog.Any("error", err),
		)
		m.err = err
	}
}

// moveCursor wraps around the board edges.
func (m *Model) moveCursor(dRow, dCol int) {
	b := m.session.Board()
	m.cursor.Row = (m.cursor.Row + dRow + b.Rows()) % b.Rows()
	m.cursor.Col = (m.cursor.Col + dCol + b.Cols()) % b.Cols()
}

func (m *Model) clampCursor() {
	b := m.session.Board()
	m.cursor.Row = min(m.cursor.Row, b.Rows()-1)
	m.cursor.Col = min(m.cursor.Col, b.Cols()-1)
}

func (m Model) View() string {
	b := m.session.Board()

	status := statusStyle.Render(fmt.Sprintf("%s %s", m.session.Difficulty(), b.Params()))
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		headerStyle.Render(m.renderHeader()),
		boardStyle.Render(m.renderBoard()),
		status,
		m.help.View(m.keys),
	)
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m Model) renderHeader() string {
	b := m.session.Board()
	flags := fmt.Sprintf("%03d", b.FlagsLeft())
	clock := fmt.Sprintf("%03d", b.GameTime())
	f := face(b.State())

	// stretch to the width of the grid, cells are one glyph and a space
	gap := (2*b.Cols() - 1 - len(flags) - len(f) - len(clock)) / 2
	gap = max(gap, 1)
	pad := strings.Repeat(" ", gap)
	return flags + pad + f + pad + clock
}

func (m Model) renderBoard() string {
	b := m.session.Board()
	var sb strings.Builder
	for r := range b.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.Cols() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			p := mines.Position{Row: r, Col: c}
			cell, _ := b.Cell(p)
			style := cellStyle(cell)
			if p == m.cursor {
				style = style.Inherit(cursorStyle)
			}
			sb.WriteString(style.Render(cell.Glyph()))
		}
	}
	return sb.String()
}
