package evaluator

import (
	"fmt"
	"strconv"
	"strings"
)

// ExamplePrefix is the reserved marker distinguishing example identifiers
// from generic seeds. An identifier is the prefix followed by the factory's
// zero-based registration index.
const ExamplePrefix = "_"

// Factory produces one curated example input.
type Factory func() Input

// Registry holds a problem's curated examples in registration order. The
// order is append-only: identifiers stay stable for a given problem revision
// and regression suites rely on that.
type Registry struct {
	factories []Factory
}

// NewRegistry creates an empty example registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a factory and returns it unchanged, so a registration
// can wrap the definition site. A nil factory is a bug in the problem
// definition and panics.
func (r *Registry) Register(f Factory) Factory {
	if f == nil {
		panic(ErrNilFactory)
	}
	r.factories = append(r.factories, f)
	return f
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	return len(r.factories)
}

// Identifiers returns the ordered example identifiers.
func (r *Registry) Identifiers() []string {
	ids := make([]string, len(r.factories))
	for i := range r.factories {
		ids[i] = ExamplePrefix + strconv.Itoa(i)
	}
	return ids
}

// IsExampleSeed reports whether seed carries the reserved example prefix.
// Such seeds must resolve through the registry, never through FromSeed.
func IsExampleSeed(seed string) bool {
	return strings.HasPrefix(seed, ExamplePrefix)
}

// Resolve maps an example identifier to its factory. A malformed or
// out-of-range identifier means the caller is misusing the protocol; the
// returned error is treated as fatal by the CLI.
func (r *Registry) Resolve(id string) (Factory, error) {
	idx, err := strconv.Atoi(strings.TrimPrefix(id, ExamplePrefix))
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExample, id)
	}
	if idx >= len(r.factories) {
		return nil, fmt.Errorf("%w: %q (registry has %d examples)", ErrUnknownExample, id, len(r.factories))
	}
	return r.factories[idx], nil
}
