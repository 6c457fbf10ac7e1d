// evalprobe drives an evaluator binary the way the judging harness does and
// verifies the protocol properties regrading depends on: stable example
// listings, byte-identical regeneration, opaque data round-trips, and
// malformed-output containment.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type options struct {
	bin   string
	mode  string
	seeds string
	args  []string
}

type generateResult struct {
	Input string          `json:"input"`
	Data  json.RawMessage `json:"data"`
}

type checkResult struct {
	Verdict string `json:"verdict"`
	Reason  string `json:"reason"`
}

type prepareResult struct {
	Code   *string `json:"code"`
	Reason string  `json:"reason"`
}

type probeSummary struct {
	checksRun int
	failures  []string
}

func (s *probeSummary) failf(format string, args ...any) {
	s.failures = append(s.failures, fmt.Sprintf(format, args...))
}

func main() {
	opts := parseFlags()
	if opts.bin == "" {
		fatalf("missing -bin (path to the evaluator binary)")
	}
	switch opts.mode {
	case "run":
		if err := runProxy(opts); err != nil {
			fatalf("%v", err)
		}
	case "verify":
		summary, err := runVerify(opts)
		if err != nil {
			fatalf("%v", err)
		}
		report(summary)
		if len(summary.failures) > 0 {
			os.Exit(1)
		}
	default:
		fatalf("unknown mode %q (supported: run, verify)", opts.mode)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.bin, "bin", "", "path to the evaluator binary")
	flag.StringVar(&opts.mode, "mode", "verify", "mode: verify | run")
	flag.StringVar(&opts.seeds, "seeds", "probe-a,probe-b", "extra generic seeds for verify mode, comma-separated")
	flag.Parse()
	opts.args = flag.Args()
	return opts
}

// runProxy forwards one protocol command verbatim, stdin included.
func runProxy(opts options) error {
	stdin, err := readStdinIfNeeded(opts.args)
	if err != nil {
		return err
	}
	out, err := invoke(opts.bin, opts.args, stdin)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runVerify(opts options) (*probeSummary, error) {
	summary := &probeSummary{}

	ids, err := verifyExamples(opts.bin, summary)
	if err != nil {
		return nil, err
	}

	seeds := append(ids, splitSeeds(opts.seeds)...)
	for _, seed := range seeds {
		gen, err := verifyGenerate(opts.bin, seed, summary)
		if err != nil {
			return nil, err
		}
		if err := verifyContainment(opts.bin, seed, gen.Data, summary); err != nil {
			return nil, err
		}
		if err := verifyPrepare(opts.bin, seed, gen.Data, summary); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

// verifyExamples checks that the listing is stable across two invocations.
func verifyExamples(bin string, summary *probeSummary) ([]string, error) {
	first, err := invoke(bin, []string{"examples"}, nil)
	if err != nil {
		return nil, err
	}
	second, err := invoke(bin, []string{"examples"}, nil)
	if err != nil {
		return nil, err
	}
	summary.checksRun++
	if !bytes.Equal(first, second) {
		summary.failf("examples: listing not stable across invocations")
	}

	var ids []string
	if err := json.Unmarshal(first, &ids); err != nil {
		return nil, fmt.Errorf("examples: not a JSON string array: %w", err)
	}
	summary.checksRun++
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			summary.failf("examples: empty identifier in listing %q", first)
		}
	}
	return ids, nil
}

// verifyGenerate checks byte-identical regeneration for one seed.
func verifyGenerate(bin, seed string, summary *probeSummary) (generateResult, error) {
	first, err := invoke(bin, []string{"generate", seed}, nil)
	if err != nil {
		return generateResult{}, err
	}
	second, err := invoke(bin, []string{"generate", seed}, nil)
	if err != nil {
		return generateResult{}, err
	}
	summary.checksRun++
	if !bytes.Equal(first, second) {
		summary.failf("generate %s: output differs across invocations", seed)
	}

	var gen generateResult
	if err := json.Unmarshal(first, &gen); err != nil {
		return generateResult{}, fmt.Errorf("generate %s: bad payload: %w", seed, err)
	}
	summary.checksRun++
	if len(gen.Data) == 0 {
		summary.failf("generate %s: missing data payload", seed)
	}
	return gen, nil
}

// verifyContainment feeds check an unparseable output. Any verdict from the
// closed set is acceptable; a crash or junk payload is not.
func verifyContainment(bin, seed string, data json.RawMessage, summary *probeSummary) error {
	req, err := json.Marshal(map[string]any{"output": "!!not-a-valid-output!!", "data": data})
	if err != nil {
		return err
	}
	out, err := invoke(bin, []string{"check"}, req)
	if err != nil {
		summary.checksRun++
		summary.failf("check %s: evaluator crashed on malformed output: %v", seed, err)
		return nil
	}
	var res checkResult
	if err := json.Unmarshal(out, &res); err != nil {
		return fmt.Errorf("check %s: bad payload: %w", seed, err)
	}
	summary.checksRun++
	if !verdictValid(res.Verdict) {
		summary.failf("check %s: verdict %q outside the closed set", seed, res.Verdict)
	}
	return nil
}

// verifyPrepare checks the uniform prepare surface: every evaluator must
// answer, pass-through or not.
func verifyPrepare(bin, seed string, data json.RawMessage, summary *probeSummary) error {
	req, err := json.Marshal(map[string]any{"environment": "probe", "code": "print(0)", "data": data})
	if err != nil {
		return err
	}
	out, err := invoke(bin, []string{"prepare"}, req)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", seed, err)
	}
	var res prepareResult
	if err := json.Unmarshal(out, &res); err != nil {
		return fmt.Errorf("prepare %s: bad payload: %w", seed, err)
	}
	summary.checksRun++
	if res.Code == nil && strings.TrimSpace(res.Reason) == "" {
		summary.failf("prepare %s: rejection with empty reason", seed)
	}
	return nil
}

func invoke(bin string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.Command(bin, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w (stderr: %s)", bin, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func readStdinIfNeeded(args []string) ([]byte, error) {
	if len(args) == 0 || (args[0] != "prepare" && args[0] != "check") {
		return nil, nil
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(os.Stdin); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return buf.Bytes(), nil
}

func verdictValid(v string) bool {
	switch v {
	case "OK", "WRONG_ANSWER", "INVALID_OUTPUT_FORMAT":
		return true
	}
	return false
}

func splitSeeds(raw string) []string {
	var seeds []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" || strings.HasPrefix(s, "_") {
			continue
		}
		seeds = append(seeds, s)
	}
	return seeds
}

func report(s *probeSummary) {
	fmt.Printf("checks: %d  failures: %d\n", s.checksRun, len(s.failures))
	for _, f := range s.failures {
		fmt.Printf("  FAIL %s\n", f)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "evalprobe: "+format+"\n", args...)
	os.Exit(2)
}
