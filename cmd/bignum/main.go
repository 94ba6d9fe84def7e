// Command bignum reads pairs of decimal integers from standard input, one per
// line, and prints the result of every arithmetic operation on each pair. An
// empty line ends the input.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := ParseConfig(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	err = run(os.Stdin, os.Stdout, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}
