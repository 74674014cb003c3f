package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/tui"
)

func (app *application) runPlay(cmd *cobra.Command, args []string) error {
	s, err := app.newSession(createRand(app.cfg.Seed))
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		tui.New(s, app.logger),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	app.logger.Info("starting up", "board", app.cfg.Board.String())

	done := make(chan struct{})
	g, gCtx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		defer close(done)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("ui failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-gCtx.Done():
			app.logger.Info("shutting down")
			program.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
