// Package evaluator implements the problem-evaluator protocol: deterministic
// input generation from seeds, an ordered registry of curated examples, an
// optional code-preparation stage, and the check state machine that turns a
// submitted output into a verdict.
//
// The package is generic over problems. A problem supplies input synthesis
// and output parsing through the Problem interface; everything else — seed
// resolution, payload encoding, verdict mapping, command dispatch — lives
// here and behaves identically across problems.
package evaluator
