package testlog

import (
	"testing"

	"github.com/probelab/evalctl/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logger := logging.New("test", logging.DefaultOptions(logging.ProfileTest))
	logger.Debug().Str("test", t.Name()).Msg("start")
}
