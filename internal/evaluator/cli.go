package evaluator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// CLI dispatches one protocol command for one problem. Each invocation does
// a single unit of work, writes one JSON document to Stdout, and returns;
// any returned error indicates harness misuse and the binary should abort.
type CLI struct {
	Registry *Registry
	Problem  Problem
	Stdin    io.Reader
	Stdout   io.Writer
	Logger   zerolog.Logger
}

// Run executes the subcommand named by args (argv without the program name).
func (c *CLI) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: examples | generate <seed> | prepare | check", ErrUnknownCommand)
	}

	cmd := args[0]
	c.Logger.Debug().Str("command", cmd).Msg("dispatch")

	switch cmd {
	case "examples":
		return c.emit(c.Registry.Identifiers())

	case "generate":
		if len(args) < 2 {
			return ErrMissingSeed
		}
		res, err := Generate(c.Registry, c.Problem, args[1])
		if err != nil {
			return err
		}
		return c.emit(res)

	case "prepare":
		var req PrepareRequest
		if err := c.readStdin(&req); err != nil {
			return err
		}
		return c.emit(Prepare(c.Problem, req))

	case "check":
		var req CheckRequest
		if err := c.readStdin(&req); err != nil {
			return err
		}
		res := Check(c.Problem, req)
		c.Logger.Debug().Str("verdict", string(res.Verdict)).Msg("checked")
		return c.emit(res)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// readStdin consumes Stdin fully before any computation starts. A payload
// that fails to decode means the harness sent garbage, which is fatal.
func (c *CLI) readStdin(out any) error {
	raw, err := io.ReadAll(c.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedStdin, err)
	}
	return nil
}

func (c *CLI) emit(v any) error {
	enc := json.NewEncoder(c.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
