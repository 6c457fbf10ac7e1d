package evaluator

// Check runs the verdict state machine for one submitted output. Parse
// failure is the only contained failure and maps to INVALID_OUTPUT_FORMAT;
// after a successful parse the problem's check logic must be total, and it
// decides between OK and WRONG_ANSWER. Exactly one terminal verdict is
// reached per call.
func Check(prob Problem, req CheckRequest) CheckResult {
	log := &Log{}
	out, err := prob.ParseOutput(req.Output, log)
	if err != nil {
		if log.Empty() {
			log.Line(err.Error())
		}
		return CheckResult{Verdict: VerdictInvalidFormat, Reason: log.Reason()}
	}

	if out.Check(req.Data, log) {
		return CheckResult{Verdict: VerdictOK, Reason: log.Reason()}
	}
	return CheckResult{Verdict: VerdictWrongAnswer, Reason: log.Reason()}
}
