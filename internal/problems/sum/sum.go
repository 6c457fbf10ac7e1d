// Package sum evaluates the sum-of-1..n task: the solution reads a single
// integer n and must print the sum of the integers 1 through n.
package sum

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/probelab/evalctl/internal/evaluator"
)

// Problem implements the evaluator contract for the task.
type Problem struct{}

// Register installs the curated examples in their stable order.
func Register(reg *evaluator.Registry) *evaluator.Registry {
	reg.Register(func() evaluator.Input { return input{n: 5} })
	reg.Register(func() evaluator.Input { return input{n: 10} })
	reg.Register(func() evaluator.Input { return Problem{}.FromSeed("0") })
	reg.Register(func() evaluator.Input { return Problem{}.FromSeed("1") })
	reg.Register(func() evaluator.Input { return Problem{}.FromSeed("2") })
	return reg
}

type input struct {
	n int64
}

// FromSeed draws n uniformly from [10, 1000].
func (Problem) FromSeed(seed string) evaluator.Input {
	r := evaluator.Rand(seed)
	return input{n: 10 + r.Int64N(991)}
}

func (in input) Serialize() string {
	return strconv.FormatInt(in.n, 10)
}

func (in input) Data() any {
	return in.n * (in.n + 1) / 2
}

type output struct {
	sum int64
}

// ParseOutput expects a single base-10 integer, surrounding whitespace
// ignored. An integer beyond int64 range is still a well-formed answer,
// just a wildly wrong one: ParseInt hands back the clamped value and the
// ordering against the reference survives the clamp.
func (Problem) ParseOutput(raw string, log *evaluator.Log) (evaluator.Output, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		log.Linef("expected a single integer, got %q", trimmed)
		return nil, err
	}
	return output{sum: v}, nil
}

func (o output) Check(data json.RawMessage, log *evaluator.Log) bool {
	var want int64
	if err := json.Unmarshal(data, &want); err != nil {
		panic(fmt.Sprintf("sum: reference data is not an integer: %v", err))
	}
	if o.sum < want {
		log.Line("too low")
		return false
	}
	if o.sum > want {
		log.Line("too high")
		return false
	}
	return true
}
