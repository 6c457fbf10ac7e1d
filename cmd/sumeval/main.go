package main

import (
	"fmt"
	"os"

	"github.com/probelab/evalctl/internal/config"
	"github.com/probelab/evalctl/internal/evaluator"
	"github.com/probelab/evalctl/internal/logging"
	"github.com/probelab/evalctl/internal/problems/sum"
)

func main() {
	cfg, err := config.Load(config.ResolvePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "sumeval: %v\n", err)
		os.Exit(2)
	}
	logger := logging.New("sumeval", cfg.Log)

	cli := &evaluator.CLI{
		Registry: sum.Register(evaluator.NewRegistry()),
		Problem:  sum.Problem{},
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Logger:   logger,
	}
	if err := cli.Run(os.Args[1:]); err != nil {
		logger.Fatal().Err(err).Msg("evaluator aborted")
	}
}
