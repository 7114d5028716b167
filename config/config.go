package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/vi-snake/engine"
)

// ErrUnexpectedArgs is returned when positional arguments follow the flags
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// Config is the startup-only game configuration; it never changes after Parse
type Config struct {
	Wrap       bool
	Difficulty engine.Difficulty
	Seed       uint64 // 0 selects a time-based seed
	Debug      bool   // File logging under logs/
	Mute       bool
}

// Default returns the no-wrap easy configuration
func Default() Config {
	return Config{Difficulty: engine.DifficultyEasy}
}

// StateConfig maps the startup options onto the standard board
func (c Config) StateConfig() engine.StateConfig {
	sc := engine.DefaultStateConfig()
	sc.Wrap = c.Wrap
	sc.Difficulty = c.Difficulty
	return sc
}

const controlsHelp = `
controls:
  w, k, up arrow      move up
  s, j, down arrow    move down
  a, h, left arrow    move left
  d, l, right arrow   move right
  q, esc, ctrl-c      quit
  r                   restart after game over
`

// difficultyFlag is a boolean switch that selects one difficulty level
// All levels share one target, so the last switch on the command line wins
type difficultyFlag struct {
	target *engine.Difficulty
	level  engine.Difficulty
}

func (f difficultyFlag) IsBoolFlag() bool { return true }

func (f difficultyFlag) String() string { return "false" }

func (f difficultyFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.level
	}
	return nil
}

// Parse reads args (without the program name) into a Config
// Usage and parse errors are written to out; -help yields flag.ErrHelp
func Parse(name string, args []string, out io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: %s [options]\n\noptions:\n", name)
		fs.PrintDefaults()
		fmt.Fprint(out, controlsHelp)
	}

	fs.BoolVar(&cfg.Wrap, "wrap", false, "wrap around the board edges")
	fs.BoolVar(&cfg.Wrap, "w", false, "shorthand for -wrap")

	levels := []struct {
		long, short string
		level       engine.Difficulty
	}{
		{"easy", "e", engine.DifficultyEasy},
		{"medium", "m", engine.DifficultyMedium},
		{"hard", "h", engine.DifficultyHard},
	}
	for _, l := range levels {
		f := difficultyFlag{target: &cfg.Difficulty, level: l.level}
		fs.Var(f, l.long, fmt.Sprintf("%s mode, %d obstacles", l.level, l.level.ObstacleCount()))
		fs.Var(f, l.short, "shorthand for -"+l.long)
	}
	fs.Func("difficulty", "difficulty by name: easy, medium or hard", func(s string) error {
		d, err := engine.ParseDifficulty(s)
		if err != nil {
			return err
		}
		cfg.Difficulty = d
		return nil
	})

	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed for food and obstacles (0 = time based)")
	fs.BoolVar(&cfg.Debug, "debug", false, "write debug log to logs/")
	fs.BoolVar(&cfg.Mute, "mute", false, "disable sound effects")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return Config{}, fmt.Errorf("%w: %q", ErrUnexpectedArgs, fs.Args())
	}
	return cfg, nil
}
