package logging

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the evaluator logger and installs it as the global logger.
// Output goes to stderr: stdout belongs to the protocol payloads. Every
// invocation gets a fresh id so a harness fanning out many evaluator
// processes can attribute interleaved diagnostics.
func New(app string, opts Options) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}
	ctx := zerolog.New(writer).Level(opts.Level).With().
		Str("app", app).
		Str("invocation", uuid.NewString())
	if opts.Timestamp {
		ctx = ctx.Timestamp()
	}
	logger := ctx.Logger()
	log.Logger = logger
	return logger
}
