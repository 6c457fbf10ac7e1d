package evaluator

import "encoding/json"

// Verdict is the closed judgment set for a checked output.
type Verdict string

const (
	VerdictOK            Verdict = "OK"
	VerdictWrongAnswer   Verdict = "WRONG_ANSWER"
	VerdictInvalidFormat Verdict = "INVALID_OUTPUT_FORMAT"
)

// Input is one generated test case.
type Input interface {
	// Serialize renders the text handed to the solution under test.
	Serialize() string
	// Data derives the reference payload used for checking. The value must
	// marshal cleanly to JSON; it is never shown to the solution.
	Data() any
}

// Output is a parsed submission result.
type Output interface {
	// Check compares the output against the reference data, appending
	// human-readable diagnostics to log. It must be total over any output
	// that parsed successfully.
	Check(data json.RawMessage, log *Log) bool
}

// Problem defines one evaluator: input synthesis and output parsing.
type Problem interface {
	// FromSeed builds an input from the deterministic stream derived from
	// seed. All randomness must come from that stream.
	FromSeed(seed string) Input
	// ParseOutput deserializes the raw text a solution produced. A non-nil
	// error marks the output as malformed rather than wrong.
	ParseOutput(raw string, log *Log) (Output, error)
}

// Preparer is implemented by problems that validate or rewrite submitted
// code before execution. Problems without it get pass-through preparation.
type Preparer interface {
	// Prepare returns the runnable code string. A non-nil error rejects the
	// submission with the accumulated log lines as the reason.
	Prepare(environment, code string, data json.RawMessage, log *Log) (string, error)
}

// GenerateResult is the generate command stdout payload.
type GenerateResult struct {
	Input string          `json:"input"`
	Data  json.RawMessage `json:"data"`
}

// PrepareRequest is the prepare command stdin payload. Data passes through
// from generation untouched by the harness.
type PrepareRequest struct {
	Environment string          `json:"environment"`
	Code        string          `json:"code"`
	Data        json.RawMessage `json:"data"`
}

// PrepareResult is the prepare command stdout payload. A null Code signals
// rejection.
type PrepareResult struct {
	Code   *string `json:"code"`
	Reason string  `json:"reason"`
}

// CheckRequest is the check command stdin payload.
type CheckRequest struct {
	Output string          `json:"output"`
	Data   json.RawMessage `json:"data"`
}

// CheckResult is the check command stdout payload.
type CheckResult struct {
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason"`
}
