// Package play implements the play subcommand: the engine plays a full
// game of 2048, searching under a wall-clock budget per move.
package play

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"twenty48/cli"
	"twenty48/searcher"
	"twenty48/twenty48"
)

type Command struct {
	timePerMove time.Duration
	ensemble    int
	samples     int
	c           float64
	seed        uint64
	plain       bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "play 2048 with the MCTS ensemble" }
func (*Command) Usage() string {
	return `play [-time 1s] [-ensemble 10] [-samples 10] [-c 1.0] [-seed N]

Let the search engine play a game of 2048 until no move is left,
rendering the board after every move.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.DurationVar(&c.timePerMove, "time", time.Second, "search budget per move")
	flags.IntVar(&c.ensemble, "ensemble", 10, "number of independent search trees")
	flags.IntVar(&c.samples, "samples", 10, "iterations per tree per search call")
	flags.Float64Var(&c.c, "c", 1.0, "UCT exploration constant")
	flags.Uint64Var(&c.seed, "seed", 0, "seed game and search randomness (0 = time-based)")
	flags.BoolVar(&c.plain, "plain", false, "render without colors")
}

func (c *Command) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ensemble < 1 || c.samples < 1 {
		log.Error().Msg("ensemble and samples must be at least 1")
		return subcommands.ExitUsageError
	}

	g, options := newGame(c.seed)
	m := searcher.NewMCTS[twenty48.Direction](g.Clone(), c.ensemble, options...)

	var renderOptions []termenv.OutputOption
	if c.plain {
		renderOptions = append(renderOptions, termenv.WithProfile(termenv.Ascii))
	}
	r := cli.NewRenderer(os.Stdout, renderOptions...)
	r.Render(g)

	for {
		deadline := time.Now().Add(c.timePerMove)
		for time.Now().Before(deadline) {
			m.Search(c.samples, c.c)
		}

		action, ok := m.BestAction()
		if !ok {
			log.Info().Int("moves", g.Moves()).Float64("score", g.Reward()).
				Msg("game over")
			break
		}

		g.MakeMove(action)
		m.AdvanceGame(g.Clone())

		log.Debug().Stringer("move", action).Float64("score", g.Reward()).
			Msg("played")
		r.Render(g)
	}
	return subcommands.ExitSuccess
}

// newGame opens a 2048 game, seeded for a reproducible run when seed is
// nonzero, along with the matching searcher options.
func newGame(seed uint64) (*twenty48.Game, []searcher.Option) {
	if seed == 0 {
		return twenty48.New(), nil
	}

	g := twenty48.NewEmpty()
	g.SeedRandomness(seed)
	g.Spawn()
	g.Spawn()
	return g, []searcher.Option{searcher.WithSeed(seed)}
}
