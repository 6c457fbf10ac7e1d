package main

import (
	"fmt"
	"os"

	"github.com/probelab/evalctl/internal/config"
	"github.com/probelab/evalctl/internal/evaluator"
	"github.com/probelab/evalctl/internal/logging"
	"github.com/probelab/evalctl/internal/problems/factor"
)

func main() {
	cfg, err := config.Load(config.ResolvePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "factoreval: %v\n", err)
		os.Exit(2)
	}
	logger := logging.New("factoreval", cfg.Log)

	cli := &evaluator.CLI{
		Registry: factor.Register(evaluator.NewRegistry()),
		Problem:  factor.Problem{},
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Logger:   logger,
	}
	if err := cli.Run(os.Args[1:]); err != nil {
		logger.Fatal().Err(err).Msg("evaluator aborted")
	}
}
