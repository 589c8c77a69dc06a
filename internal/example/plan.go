package example

import (
	"fmt"
	"slices"
)

// Plan is the ordered list of examples produced by one compilation.
type Plan struct {
	examples []*Example
}

// NewPlan sorts the examples by rank and takes ownership of them. An example
// can belong to one plan only.
func NewPlan(examples []*Example) (*Plan, error) {
	sorted := slices.Clone(examples)
	slices.SortStableFunc(sorted, func(a, b *Example) int {
		return a.rank.Compare(b.rank)
	})

	for _, e := range sorted {
		if e.plan != nil {
			return nil, fmt.Errorf("example '%s' already belongs to a plan", e.description)
		}
	}

	p := &Plan{examples: sorted}
	for i, e := range sorted {
		e.plan = p
		e.index = i
	}
	return p, nil
}

// Examples returns the examples in execution order.
func (p *Plan) Examples() []*Example {
	return slices.Clone(p.examples)
}

// Len is the number of examples in the plan, ignored ones included.
func (p *Plan) Len() int {
	return len(p.examples)
}

// At returns the i-th example in execution order.
func (p *Plan) At(i int) *Example {
	return p.examples[i]
}

// Ignored counts the examples that will be reported as ignored.
func (p *Plan) Ignored() int {
	n := 0
	for _, e := range p.examples {
		if e.ignored {
			n++
		}
	}
	return n
}
