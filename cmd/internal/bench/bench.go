// Package bench implements the bench subcommand: whole games played across
// a grid of ensemble sizes, reporting score statistics per configuration.
package bench

import (
	"context"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"twenty48/searcher"
	"twenty48/twenty48"
)

type Command struct {
	games       int
	timePerMove time.Duration
	samples     int
	c           float64
	ensembles   string
	seed        uint64
}

func (*Command) Name() string     { return "bench" }
func (*Command) Synopsis() string { return "compare ensemble sizes over whole games" }
func (*Command) Usage() string {
	return `bench [-games 5] [-time 100ms] [-ensembles 1,5,10] [-seed N]

Play whole games for each ensemble size and report mean, min and max
final score per configuration.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.games, "games", 5, "games per configuration")
	flags.DurationVar(&c.timePerMove, "time", 100*time.Millisecond, "search budget per move")
	flags.IntVar(&c.samples, "samples", 10, "iterations per tree per search call")
	flags.Float64Var(&c.c, "c", 1.0, "UCT exploration constant")
	flags.StringVar(&c.ensembles, "ensembles", "1,5,10", "comma-separated ensemble sizes")
	flags.Uint64Var(&c.seed, "seed", 1, "base seed; game i of size s plays with a derived seed")
}

func (c *Command) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sizes, err := parseSizes(c.ensembles)
	if err != nil {
		log.Error().Err(err).Msg("bad -ensembles value")
		return subcommands.ExitUsageError
	}
	if c.games < 1 || c.samples < 1 {
		log.Error().Msg("games and samples must be at least 1")
		return subcommands.ExitUsageError
	}

	fmt.Printf("Running ensemble benchmark...\n")
	for _, size := range sizes {
		mean, lo, hi := 0.0, math.Inf(1), math.Inf(-1)
		for i := 0; i < c.games; i++ {
			seed := c.seed + uint64(size)*1000 + uint64(i)
			score, moves := c.playGame(size, seed)
			log.Debug().Int("ensemble", size).Int("game", i+1).
				Float64("score", score).Int("moves", moves).Msg("game over")

			mean += score / float64(c.games)
			lo = math.Min(lo, score)
			hi = math.Max(hi, score)
		}
		fmt.Printf("ensemble=%-3d games=%d mean=%.0f min=%.0f max=%.0f\n",
			size, c.games, mean, lo, hi)
	}
	fmt.Printf("Finished ensemble benchmark.\n")
	return subcommands.ExitSuccess
}

// playGame runs one full game with the given ensemble size and returns the
// final score and move count.
func (c *Command) playGame(ensembleSize int, seed uint64) (float64, int) {
	g := twenty48.NewEmpty()
	g.SeedRandomness(seed)
	g.Spawn()
	g.Spawn()

	m := searcher.NewMCTS[twenty48.Direction](g.Clone(), ensembleSize,
		searcher.WithSeed(seed))

	for {
		deadline := time.Now().Add(c.timePerMove)
		for time.Now().Before(deadline) {
			m.Search(c.samples, c.c)
		}

		action, ok := m.BestAction()
		if !ok {
			return g.Reward(), g.Moves()
		}
		g.MakeMove(action)
		m.AdvanceGame(g.Clone())
	}
}

func parseSizes(list string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		if size < 1 {
			return nil, fmt.Errorf("ensemble size %d out of range", size)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
