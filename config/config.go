// Package config loads the advent runner settings from a YAML file.
//
// Missing keys keep their Default value, so a file only needs the settings it
// changes:
//
//	input_dir: inputs
//	max_steps: 10000000
//	log_level: debug
//	chiton:
//	  tile_factor: 5
//	dirac:
//	  winning_score: 21
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/dirac"
	"github.com/katalvlaran/advent/search"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every runner setting.
type Config struct {
	InputDir string `yaml:"input_dir"`
	MaxSteps int    `yaml:"max_steps"`
	LogLevel string `yaml:"log_level"`

	Chiton Chiton `yaml:"chiton"`
	Dirac  Dirac  `yaml:"dirac"`
}

// Chiton tunes the 2021/15 cave.
type Chiton struct {
	TileFactor int `yaml:"tile_factor"` // part 2 repetition in each direction
}

// Dirac tunes the 2021/21 dice games.
type Dirac struct {
	WinningScore     uint32 `yaml:"winning_score"`
	PracticeScore    uint32 `yaml:"practice_score"`
	PracticeDieSides int    `yaml:"practice_die_sides"`
}

// Default returns the puzzle settings.
func Default() Config {
	return Config{
		InputDir: "inputs",
		MaxSteps: search.DefaultMaxSteps,
		LogLevel: logrus.InfoLevel.String(),
		Chiton:   Chiton{TileFactor: 5},
		Dirac: Dirac{
			WinningScore:     dirac.DiracWinningScore,
			PracticeScore:    dirac.PracticeWinningScore,
			PracticeDieSides: dirac.PracticeDieSides,
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	switch {
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max_steps %d is negative", ErrInvalid, c.MaxSteps)
	case c.Chiton.TileFactor < 1:
		return fmt.Errorf("%w: chiton.tile_factor %d must be at least 1", ErrInvalid, c.Chiton.TileFactor)
	case c.Dirac.WinningScore == 0 || c.Dirac.WinningScore > dirac.MaxWinningScore:
		return fmt.Errorf("%w: dirac.winning_score %d outside 1..%d", ErrInvalid, c.Dirac.WinningScore, dirac.MaxWinningScore)
	case c.Dirac.PracticeScore == 0 || c.Dirac.PracticeScore > dirac.MaxWinningScore:
		return fmt.Errorf("%w: dirac.practice_score %d outside 1..%d", ErrInvalid, c.Dirac.PracticeScore, dirac.MaxWinningScore)
	case c.Dirac.PracticeDieSides < 1:
		return fmt.Errorf("%w: dirac.practice_die_sides %d must be at least 1", ErrInvalid, c.Dirac.PracticeDieSides)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return lvl, nil
}
