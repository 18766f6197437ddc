package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"twenty48/cmd/internal/bench"
	"twenty48/cmd/internal/play"
	"twenty48/cmd/internal/rate"
)

var debug = flag.Bool("debug", false, "enable debug logging")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&rate.Command{}, "")
	subcommands.Register(&bench.Command{}, "")

	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	os.Exit(int(subcommands.Execute(context.Background())))
}
