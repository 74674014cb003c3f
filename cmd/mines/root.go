package main

import (
	"hash/maphash"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

type application struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
	logOut io.WriteCloser
}

func newRootCmd() *cobra.Command {
	app := &application{v: config.New()}

	cmd := &cobra.Command{
		Use:   "mines",
		Short: "Play minesweeper in the terminal",
		Long: `Play minesweeper in the terminal.

Every flag can also be set through a MINES_ prefixed env variable
(MINES_BOARD, MINES_COMMIT_ON_FLAG, ...) or a config file.

Examples:
  mines
  mines --board expert
  mines --board 'cols=30&rows=16&mines=99' --seed 42`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		PersistentPreRunE:  app.setup,
		PersistentPostRunE: app.teardown,
		RunE:               app.runPlay,
	}
	config.Flags(cmd.PersistentFlags())

	cmd.AddCommand(app.newDealCmd(), app.newPresetsCmd())
	return cmd
}

func (app *application) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(app.v, cmd.Flags())
	if err != nil {
		return err
	}
	app.cfg = cfg

	app.logOut = &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: 3,
	}
	app.logger = newLogger(app.logOut, cfg.Development)
	mines.Log = app.logger

	app.logger.Debug("config",
		slog.String("board", cfg.Board.String()),
		slog.Uint64("seed", cfg.Seed),
		slog.Bool("commit on flag", cfg.CommitOnFlag),
	)
	return nil
}

func (app *application) teardown(cmd *cobra.Command, args []string) error {
	if app.logOut == nil {
		return nil
	}
	return app.logOut.Close()
}

func newLogger(w io.Writer, development bool) *slog.Logger {
	if development {
		return slog.New(tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// createRand seeds from seed, or at random when seed is 0.
func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (app *application) newSession(rnd *rand.Rand) (*session.Session, error) {
	return session.New(app.logger, rnd, session.Options{
		Difficulty:   app.cfg.Board.Difficulty,
		Custom:       app.cfg.Board.Custom,
		CommitOnFlag: app.cfg.CommitOnFlag,
	})
}
