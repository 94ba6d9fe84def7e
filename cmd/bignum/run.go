package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/integer"
)

// Error is the harness error class.
var Error = errs.Class("bignum")

// run reads operand pairs from in, one number per line, and writes the
// results for each pair to out. An empty line or the end of input stops it.
func run(in io.Reader, out io.Writer, cfg Config, log zerolog.Logger) (err error) {
	defer Error.WrapP(&err)

	scanner := bufio.NewScanner(in)
	next := func() (line string, ok bool) {
		if !scanner.Scan() {
			return "", false
		}

		line = strings.TrimSpace(scanner.Text())

		return line, line != ""
	}

	pairs := 0
	for {
		first, ok := next()
		if !ok {
			break
		}

		second, ok := next()
		if !ok {
			log.Warn().Str("first", first).Msg("missing second operand")

			break
		}

		x, err := integer.Parse(first)
		if err != nil {
			log.Warn().Err(err).Str("line", first).Msg("skipping pair")

			continue
		}

		y, err := integer.Parse(second)
		if err != nil {
			log.Warn().Err(err).Str("line", second).Msg("skipping pair")

			continue
		}

		_, err = io.WriteString(out, report(cfg, x, y, log))
		if err != nil {
			return err
		}

		pairs++
		log.Debug().Int("pair", pairs).Str("first", first).Str("second", second).Msg("reported")
	}

	err = scanner.Err()
	if err != nil {
		return err
	}

	log.Debug().Int("pairs", pairs).Msg("done")

	return nil
}

// report formats every operation on x and y.
func report(cfg Config, x, y *integer.Int, log zerolog.Logger) string {
	sb := &strings.Builder{}
	line := func(label string, v interface{}) {
		fmt.Fprintf(sb, "%s: %v\n", label, v)
	}

	line("First", x)
	line("Second", y)

	if cfg.Raw {
		line("First Raw", x.Raw())
		line("Second Raw", y.Raw())
	}

	line("Sum", x.Add(y))
	line("Sum", y.Add(x))
	line("First - Second", x.Sub(y))
	line("Second - First", y.Sub(x))
	line("First Negated", x.Neg())
	line("Second Negated", y.Neg())
	line("Product", x.Mul(y))
	line("Product", y.Mul(x))

	quoRem := func(quo, rem string, a, b *integer.Int) {
		q, r, err := a.QuoRem(b)
		if err != nil {
			log.Debug().Err(err).Str("op", quo).Msg("division undefined")
			line(quo, "undefined")
			line(rem, "undefined")

			return
		}

		line(quo, q)
		line(rem, r)
	}
	quoRem("First / Second", "First % Second", x, y)
	quoRem("Second / First", "Second % First", y, x)

	if cfg.Factor {
		factors := func(label string, a *integer.Int) {
			fs, err := a.Factors()
			if err != nil {
				log.Debug().Err(err).Str("op", label).Msg("factoring undefined")
				line(label, "undefined")

				return
			}

			if len(fs) == 0 {
				line(label, "none")

				return
			}

			parts := make([]string, 0, len(fs))
			for _, f := range fs {
				parts = append(parts, f.String())
			}

			line(label, strings.Join(parts, " "))
		}
		factors("First Factors", x)
		factors("Second Factors", y)
	}

	return sb.String()
}
