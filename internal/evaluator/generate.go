package evaluator

import (
	"encoding/json"
	"fmt"
)

// Generate produces the serialized input and reference data for seed. An
// example-prefixed seed resolves through the registry; any other seed feeds
// the problem's deterministic synthesis rule. Identical seeds always yield
// byte-identical input and data.
func Generate(reg *Registry, prob Problem, seed string) (GenerateResult, error) {
	var in Input
	if IsExampleSeed(seed) {
		f, err := reg.Resolve(seed)
		if err != nil {
			return GenerateResult{}, err
		}
		in = f()
	} else {
		in = prob.FromSeed(seed)
	}

	data, err := json.Marshal(in.Data())
	if err != nil {
		return GenerateResult{}, fmt.Errorf("encode data for seed %q: %w", seed, err)
	}
	return GenerateResult{Input: in.Serialize(), Data: data}, nil
}
