package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MINES"

const (
	KeyBoard        = "board"
	KeySeed         = "seed"
	KeyCommitOnFlag = "commit-on-flag"
	KeyDevelopment  = "development"
	KeyLogFile      = "log-file"
	KeyLogMaxSize   = "log-max-size"
	KeyConfig       = "config"
)

const (
	DefaultBoard      = "beginner"
	DefaultLogFile    = "mines.log"
	DefaultLogMaxSize = 10 // megabytes
)

type Config struct {
	Board        Board
	Seed         uint64
	CommitOnFlag bool
	Development  bool
	LogFile      string
	LogMaxSize   int
}

// New returns a viper instance reading MINES_* env variables, so that
// MINES_COMMIT_ON_FLAG=1 sets commit-on-flag.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBoard, DefaultBoard)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyCommitOnFlag, false)
	v.SetDefault(KeyDevelopment, false)
	v.SetDefault(KeyLogFile, DefaultLogFile)
	v.SetDefault(KeyLogMaxSize, DefaultLogMaxSize)
	return v
}

// Flags registers the persistent flags every command accepts.
func Flags(fs *pflag.FlagSet) {
	fs.StringP(KeyBoard, "b", DefaultBoard, "preset name or cols=C&rows=R&mines=M")
	fs.Uint64(KeySeed, 0, "seed for mine placement, 0 picks one at random")
	fs.Bool(KeyCommitOnFlag, false, "start the clock on the first flag as well as the first reveal")
	fs.Bool(KeyDevelopment, false, "debug logging in a human readable format")
	fs.String(KeyLogFile, DefaultLogFile, "log file path")
	fs.Int(KeyLogMaxSize, DefaultLogMaxSize, "log file size in megabytes before it is rotated")
	fs.StringP(KeyConfig, "c", "", "config file path")
}

// Load binds fs to v, reads the config file if one was given and decodes
// the result. Flags set on the command line take precedence over env
// variables, which take precedence over the config file.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("unable to bind flags: %w", err)
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	board, err := ParseBoard(v.GetString(KeyBoard))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Board:        board,
		Seed:         v.GetUint64(KeySeed),
		CommitOnFlag: v.GetBool(KeyCommitOnFlag),
		Development:  v.GetBool(KeyDevelopment),
		LogFile:      v.GetString(KeyLogFile),
		LogMaxSize:   v.GetInt(KeyLogMaxSize),
	}
	if cfg.LogMaxSize <= 0 {
		return Config{}, errors.New("log-max-size must be positive")
	}
	return cfg, nil
}
