// Package factor evaluates an integer-factoring task: the solution reads a
// semiprime n and must print two factors greater than 1 whose product is n.
// The problem carries a Preparer that rejects solutions embedding a
// reference factor as a literal, since the check alone cannot tell a
// computed factor from a hardcoded one.
package factor

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
	reg.Register(func() evaluator.Input { return input{p: 101, q: 103} })
	reg.Register(func() evaluator.Input { return input{p: 997, q: 997} })
	reg.Register(func() evaluator.Input { return Problem{}.FromSeed("0") })
	reg.Register(func() evaluator.Input { return Problem{}.FromSeed("1") })
	return reg
}

// Three-digit primes keep n comfortably inside int64 while leaving trial
// division feasible for any reasonable solution.
var primes = []int64{
	101, 103, 107, 109, 113, 127, 131, 137, 139, 149,
	151, 157, 163, 167, 173, 179, 181, 191, 193, 197,
	199, 211, 223, 227, 229, 233, 239, 241, 251, 257,
	263, 269, 271, 277, 281, 283, 293, 307, 311, 313,
	317, 331, 337, 347, 349, 353, 359, 367, 373, 379,
	383, 389, 397, 401, 409, 419, 421, 431, 433, 439,
	443, 449, 457, 461, 463, 467, 479, 487, 491, 499,
	503, 509, 521, 523, 541, 547, 557, 563, 569, 571,
	577, 587, 593, 599, 601, 607, 613, 617, 619, 631,
	641, 643, 647, 653, 659, 661, 673, 677, 683, 691,
	701, 709, 719, 727, 733, 739, 743, 751, 757, 761,
	769, 773, 787, 797, 809, 811, 821, 823, 827, 829,
	839, 853, 857, 859, 863, 877, 881, 883, 887, 907,
	911, 919, 929, 937, 941, 947, 953, 967, 971, 977,
	983, 991, 997,
}

type input struct {
	p, q int64
}

type refData struct {
	N int64 `json:"n"`
	P int64 `json:"p"`
	Q int64 `json:"q"`
}

func (Problem) FromSeed(seed string) evaluator.Input {
	r := evaluator.Rand(seed)
	return input{
		p: primes[r.IntN(len(primes))],
		q: primes[r.IntN(len(primes))],
	}
}

func (in input) Serialize() string {
	return strconv.FormatInt(in.p*in.q, 10)
}

func (in input) Data() any {
	return refData{N: in.p * in.q, P: in.p, Q: in.q}
}

type output struct {
	a, b int64
}

// ParseOutput expects exactly two whitespace-separated base-10 integers.
func (Problem) ParseOutput(raw string, log *evaluator.Log) (evaluator.Output, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		log.Linef("expected two integers, got %d fields", len(fields))
		return nil, errors.New("factor: want two fields")
	}
	var parsed [2]int64
	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			log.Linef("not an integer: %q", field)
			return nil, err
		}
		parsed[i] = v
	}
	return output{a: parsed[0], b: parsed[1]}, nil
}

func (o output) Check(data json.RawMessage, log *evaluator.Log) bool {
	ref := decodeRef(data)
	if o.a <= 1 || o.b <= 1 {
		log.Line("factors must be greater than 1")
		return false
	}
	// Divisibility instead of a raw multiply: a*b can wrap around int64 and
	// land on ref.N, which would turn an overflowing garbage pair into OK.
	if ref.N%o.a != 0 || ref.N/o.a != o.b {
		log.Linef("%d * %d does not equal %d", o.a, o.b, ref.N)
		return false
	}
	return true
}

// Prepare rejects code that embeds a reference factor as a literal. The
// harness surfaces the rejection before the solution ever runs.
func (Problem) Prepare(environment, code string, data json.RawMessage, log *evaluator.Log) (string, error) {
	ref := decodeRef(data)
	for _, factor := range []int64{ref.P, ref.Q} {
		lit := strconv.FormatInt(factor, 10)
		if strings.Contains(code, lit) {
			log.Linef("code contains the literal %s", lit)
			return "", errors.New("factor: hardcoded factor")
		}
	}
	return code, nil
}

func decodeRef(data json.RawMessage) refData {
	var ref refData
	if err := json.Unmarshal(data, &ref); err != nil {
		panic(fmt.Sprintf("factor: malformed reference data: %v", err))
	}
	return ref
}
