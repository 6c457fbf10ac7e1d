package evaluator

// Prepare runs the optional pre-execution stage on submitted code. Problems
// that do not implement Preparer get pass-through behavior: the code comes
// back untouched with an empty reason, so the harness sees a uniform command
// surface. A panic inside a Preparer is contained here and reported as a
// rejection, never as a process crash.
func Prepare(prob Problem, req PrepareRequest) (res PrepareResult) {
	p, ok := prob.(Preparer)
	if !ok {
		code := req.Code
		return PrepareResult{Code: &code}
	}

	log := &Log{}
	defer func() {
		if r := recover(); r != nil {
			log.Linef("prepare failed: %v", r)
			res = PrepareResult{Reason: log.Reason()}
		}
	}()

	code, err := p.Prepare(req.Environment, req.Code, req.Data, log)
	if err != nil {
		if log.Empty() {
			log.Line(err.Error())
		}
		return PrepareResult{Reason: log.Reason()}
	}
	return PrepareResult{Code: &code, Reason: log.Reason()}
}
