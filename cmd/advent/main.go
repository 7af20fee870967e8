// Command advent runs the search-backed Advent of Code solvers.
//
//	advent list
//	advent run --year 2021 --day 23 --part 2
//	advent run --day 15 --input cave.txt --cpuprofile prof
//
// Settings come from a YAML file (--config or ADVENT_CONFIG); a .env file in
// the working directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/puzzle"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("advent: reading .env")
	}

	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Error("advent: failed")
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "advent",
		Usage: "solve grid, dice and burrow search puzzles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML settings file",
				Sources: cli.EnvVars("ADVENT_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log search statistics",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print the registered puzzles",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					reg, _, _, err := setup(cmd)
					if err != nil {
						return err
					}
					for _, id := range reg.IDs() {
						s, _ := reg.Lookup(id)
						fmt.Fprintf(out, "%v  %s\n", id, s.Title())
					}

					return nil
				},
			},
			{
				Name:  "run",
				Usage: "solve one puzzle part",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "year", Value: 2021},
					&cli.IntFlag{Name: "day", Required: true},
					&cli.IntFlag{Name: "part", Value: 1},
					&cli.StringFlag{
						Name:  "input",
						Usage: "puzzle input file (default <input_dir>/<year>-<day>.txt)",
					},
					&cli.StringFlag{
						Name:    "input-dir",
						Usage:   "directory of puzzle inputs, overrides input_dir",
						Sources: cli.EnvVars("ADVENT_INPUT_DIR"),
					},
					&cli.StringFlag{
						Name:  "cpuprofile",
						Usage: "write a CPU profile into this directory",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(ctx, cmd, out)
				},
			},
		},
	}
}

// setup loads the configuration and builds the logger and registry.
func setup(cmd *cli.Command) (*puzzle.Registry, config.Config, *logrus.Logger, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, cfg, nil, err
		}
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, cfg, nil, err
	}
	if cmd.Bool("debug") {
		lvl = logrus.DebugLevel
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)

	return puzzle.NewDefault(cfg, log), cfg, log, nil
}

func run(ctx context.Context, cmd *cli.Command, out io.Writer) error {
	reg, cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	if dir := cmd.String("cpuprofile"); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
	}

	id := puzzle.ID{Year: int(cmd.Int("year")), Day: int(cmd.Int("day"))}
	part := int(cmd.Int("part"))

	path := cmd.String("input")
	if path == "" {
		dir := cfg.InputDir
		if d := cmd.String("input-dir"); d != "" {
			dir = d
		}
		path = filepath.Join(dir, fmt.Sprintf("%d-%02d.txt", id.Year, id.Day))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	start := time.Now()
	answer, err := reg.Run(ctx, id, part, string(raw))
	if err != nil {
		return fmt.Errorf("%v part %d: %w", id, part, err)
	}
	log.WithFields(logrus.Fields{
		"puzzle":  id.String(),
		"part":    part,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("advent: solved")
	fmt.Fprintln(out, answer)

	return nil
}
