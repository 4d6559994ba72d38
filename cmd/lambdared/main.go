// Command lambdared evaluates a lambda term from the built-in library by
// repeated beta-reduction and prints the reduction trajectory.
//
// Configuration comes from the environment:
//
//	LAMBDA_TERM       registry name of the term to evaluate (default FACT 3)
//	LAMBDA_ARG        optional natural applied to the term
//	LAMBDA_VERBOSITY  basic | summary | verbose
//	LAMBDA_MAX_STEPS  abandon the run after this many steps (0 = unbounded)
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/vic/lambdared/pkg/church"
	"github.com/vic/lambdared/pkg/lambda"
)

type config struct {
	Term      string `env:"LAMBDA_TERM"`
	Arg       *int   `env:"LAMBDA_ARG"`
	Verbosity string `env:"LAMBDA_VERBOSITY" envDefault:"basic"`
	MaxSteps  int    `env:"LAMBDA_MAX_STEPS" envDefault:"0"`
}

func parseVerbosity(s string) (lambda.Verbosity, error) {
	switch strings.ToLower(s) {
	case "basic":
		return lambda.Basic, nil
	case "summary":
		return lambda.Summary, nil
	case "verbose":
		return lambda.Verbose, nil
	}
	return lambda.Basic, fmt.Errorf("unknown verbosity %q", s)
}

// selectTerm builds the term to evaluate. With no configuration this is
// the library's factorial of three, matching the program this evaluator
// descends from.
func selectTerm(cfg config) (lambda.Term, error) {
	if cfg.Term == "" {
		return lambda.Ap(church.Fact, church.Nat(3)), nil
	}
	t, err := church.Lookup(strings.ToUpper(cfg.Term))
	if err != nil {
		return nil, fmt.Errorf("select term (known: %s): %w",
			strings.Join(church.Names(), " "), err)
	}
	if cfg.Arg != nil {
		t = lambda.Ap(t, church.Nat(*cfg.Arg))
	}
	return t, nil
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.WithError(err).Fatal("parse environment")
	}

	verbosity, err := parseVerbosity(cfg.Verbosity)
	if err != nil {
		log.WithError(err).Fatal("parse verbosity")
	}

	term, err := selectTerm(cfg)
	if err != nil {
		log.WithError(err).Fatal("select term")
	}

	if verbosity != lambda.Summary {
		fmt.Printf("\nMAIN := %s\n", term)
	}

	opts := lambda.Options{
		Verbosity: verbosity,
		Observer: func(step int, t lambda.Term) {
			fmt.Printf("\n= %s\n", t)
		},
	}
	if cfg.MaxSteps > 0 {
		opts.Continue = func(step int, _ lambda.Term) bool {
			return step < cfg.MaxSteps
		}
	}

	start := time.Now()
	res := lambda.Evaluate(term, opts)
	elapsed := time.Since(start)

	if verbosity != lambda.Summary {
		fmt.Printf("\n= %s\n", res.Final)
	}

	if verbosity >= lambda.Summary {
		if verbosity >= lambda.Verbose {
			fmt.Println("\n\n\nSummary:")
		}
		fmt.Printf("\nMAIN := %s\n", term)
		for _, t := range res.Trace {
			fmt.Printf("\n= %s\n", t)
		}
	}

	entry := log.WithFields(logrus.Fields{
		"steps":   res.Steps,
		"fixed":   res.Fixed,
		"elapsed": elapsed,
	})
	if !res.Fixed {
		entry.Warn("abandoned before a fixed point")
		os.Exit(1)
	}
	entry.Info("reached normal form")
}
