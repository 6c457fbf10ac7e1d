package evaluator

import "errors"

var (
	ErrUnknownExample = errors.New("evaluator: unknown example identifier")
	ErrNilFactory     = errors.New("evaluator: nil example factory")
	ErrUnknownCommand = errors.New("evaluator: unknown command")
	ErrMissingSeed    = errors.New("evaluator: missing seed argument")
	ErrMalformedStdin = errors.New("evaluator: malformed stdin payload")
)
