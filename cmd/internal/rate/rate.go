// Package rate implements the rate subcommand: a pure Monte-Carlo estimate
// of the reward a fresh game is worth under random play.
package rate

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"twenty48/cli"
	"twenty48/searcher"
	"twenty48/twenty48"
)

type Command struct {
	samples int
	seed    uint64
	show    bool
}

func (*Command) Name() string     { return "rate" }
func (*Command) Synopsis() string { return "estimate the expected reward of random play" }
func (*Command) Usage() string {
	return `rate [-samples 1000] [-seed N] [-show]

Average the terminal score of independent random playouts from a fresh
game. With -show, also render one sampled terminal board.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.samples, "samples", 1000, "number of independent playouts")
	flags.Uint64Var(&c.seed, "seed", 0, "seed game and playout randomness (0 = time-based)")
	flags.BoolVar(&c.show, "show", false, "render one sampled terminal board")
}

func (c *Command) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.samples < 1 {
		log.Error().Msg("samples must be at least 1")
		return subcommands.ExitUsageError
	}

	seed := c.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := twenty48.NewEmpty()
	g.SeedRandomness(seed)
	g.Spawn()
	g.Spawn()

	rng := rand.New(rand.NewSource(seed))
	mean := searcher.ExpectedReward[twenty48.Direction](g, c.samples, rng)
	fmt.Printf("expected reward over %d playouts: %.1f\n", c.samples, mean)

	if c.show {
		final := searcher.Playout[twenty48.Direction](g, rng)
		cli.NewRenderer(os.Stdout).Render(final)
	}
	return subcommands.ExitSuccess
}
