package evaluator

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/probelab/evalctl/internal/testutil/testlog"
)

// echoProblem serializes its seed and checks outputs by string equality.
type echoProblem struct{}

type echoInput struct {
	text string
}

func (e echoInput) Serialize() string { return e.text }
func (e echoInput) Data() any         { return e.text }

type echoOutput struct {
	text string
}

func (o echoOutput) Check(data json.RawMessage, log *Log) bool {
	var want string
	if err := json.Unmarshal(data, &want); err != nil {
		panic(err)
	}
	if o.text != want {
		log.Linef("mismatch: got %q want %q", o.text, want)
		return false
	}
	return true
}

func (echoProblem) FromSeed(seed string) Input {
	return echoInput{text: "seed:" + seed}
}

func (echoProblem) ParseOutput(raw string, log *Log) (Output, error) {
	if strings.HasPrefix(raw, "!") {
		log.Line("unparseable output")
		return nil, errors.New("bad output")
	}
	return echoOutput{text: raw}, nil
}

// quietParseProblem fails parsing without logging anything.
type quietParseProblem struct {
	echoProblem
}

func (quietParseProblem) ParseOutput(raw string, log *Log) (Output, error) {
	return nil, errors.New("quiet parse failure")
}

// gatePreparer rejects forbidden code and stamps everything else.
type gatePreparer struct {
	echoProblem
}

func (gatePreparer) Prepare(environment, code string, data json.RawMessage, log *Log) (string, error) {
	if strings.Contains(code, "forbidden") {
		log.Line("forbidden construct")
		return "", errors.New("rejected")
	}
	if strings.Contains(code, "silent") {
		return "", errors.New("no good")
	}
	return code + "\n# prepared", nil
}

type panicPreparer struct {
	echoProblem
}

func (panicPreparer) Prepare(environment, code string, data json.RawMessage, log *Log) (string, error) {
	panic("boom")
}

func TestGenerateFromExample(t *testing.T) {
	testlog.Start(t)
	reg := NewRegistry()
	reg.Register(func() Input { return echoInput{text: "five"} })

	res, err := Generate(reg, echoProblem{}, "_0")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Input != "five" {
		t.Fatalf("input: got=%q want=%q", res.Input, "five")
	}
	if string(res.Data) != `"five"` {
		t.Fatalf("data: got=%s want=%q", res.Data, `"five"`)
	}
}

func TestGenerateGenericSeedDeterministic(t *testing.T) {
	testlog.Start(t)
	reg := NewRegistry()
	first, err := Generate(reg, echoProblem{}, "some-seed")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := Generate(reg, echoProblem{}, "some-seed")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed diverged: %+v vs %+v", first, second)
	}
	if first.Input != "seed:some-seed" {
		t.Fatalf("generic seed not routed through FromSeed: %q", first.Input)
	}
}

func TestGenerateUnknownExampleFails(t *testing.T) {
	testlog.Start(t)
	reg := NewRegistry()
	reg.Register(func() Input { return echoInput{text: "only"} })
	if _, err := Generate(reg, echoProblem{}, "_9"); !errors.Is(err, ErrUnknownExample) {
		t.Fatalf("expected ErrUnknownExample, got %v", err)
	}
}

func TestCheckVerdicts(t *testing.T) {
	testlog.Start(t)
	data := json.RawMessage(`"hello"`)

	res := Check(echoProblem{}, CheckRequest{Output: "hello", Data: data})
	if res.Verdict != VerdictOK || res.Reason != "" {
		t.Fatalf("correct output: got=%+v", res)
	}

	res = Check(echoProblem{}, CheckRequest{Output: "goodbye", Data: data})
	if res.Verdict != VerdictWrongAnswer {
		t.Fatalf("wrong output: got=%+v", res)
	}
	if !strings.Contains(res.Reason, "mismatch") {
		t.Fatalf("wrong output reason: %q", res.Reason)
	}

	res = Check(echoProblem{}, CheckRequest{Output: "!garbage", Data: data})
	if res.Verdict != VerdictInvalidFormat || res.Reason != "unparseable output" {
		t.Fatalf("malformed output: got=%+v", res)
	}
}

func TestCheckQuietParseFailureKeepsErrorText(t *testing.T) {
	testlog.Start(t)
	res := Check(quietParseProblem{}, CheckRequest{Output: "x", Data: json.RawMessage(`"x"`)})
	if res.Verdict != VerdictInvalidFormat || res.Reason != "quiet parse failure" {
		t.Fatalf("got=%+v", res)
	}
}

func TestPreparePassThrough(t *testing.T) {
	testlog.Start(t)
	req := PrepareRequest{Environment: "python", Code: "print(1)", Data: json.RawMessage(`1`)}
	res := Prepare(echoProblem{}, req)
	if res.Code == nil || *res.Code != "print(1)" || res.Reason != "" {
		t.Fatalf("pass-through broken: %+v", res)
	}
}

func TestPrepareTransforms(t *testing.T) {
	testlog.Start(t)
	res := Prepare(gatePreparer{}, PrepareRequest{Code: "print(1)"})
	if res.Code == nil || *res.Code != "print(1)\n# prepared" {
		t.Fatalf("transform missing: %+v", res)
	}
}

func TestPrepareRejection(t *testing.T) {
	testlog.Start(t)
	res := Prepare(gatePreparer{}, PrepareRequest{Code: "forbidden()"})
	if res.Code != nil {
		t.Fatalf("expected rejection, got code %q", *res.Code)
	}
	if res.Reason != "forbidden construct" {
		t.Fatalf("reason: %q", res.Reason)
	}
}

func TestPrepareRejectionWithoutLogUsesErrorText(t *testing.T) {
	testlog.Start(t)
	res := Prepare(gatePreparer{}, PrepareRequest{Code: "silent"})
	if res.Code != nil || res.Reason != "no good" {
		t.Fatalf("got=%+v", res)
	}
}

func TestPreparePanicContained(t *testing.T) {
	testlog.Start(t)
	res := Prepare(panicPreparer{}, PrepareRequest{Code: "anything"})
	if res.Code != nil {
		t.Fatalf("panic must reject, got code %q", *res.Code)
	}
	if !strings.Contains(res.Reason, "boom") {
		t.Fatalf("reason should carry the failure: %q", res.Reason)
	}
}
