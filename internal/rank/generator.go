package rank

import (
	"math/rand/v2"
	"slices"
)

// Order decides which key a newly declared child receives.
type Order interface {
	// Key maps the declaration sequence number of a child to its key.
	Key(seq uint64) uint64
	String() string
}

type definedOrder struct{}

func (definedOrder) Key(seq uint64) uint64 { return seq }
func (definedOrder) String() string        { return "defined" }

// DefinedOrder keeps siblings in declaration order.
func DefinedOrder() Order {
	return definedOrder{}
}

type randomOrder struct {
	seed uint64
	rnd  *rand.Rand
}

// Key puts a random draw in the high bits and the sequence number in the
// low bits, so keys never collide and the result only depends on the seed.
func (o *randomOrder) Key(seq uint64) uint64 {
	return uint64(o.rnd.Uint32())<<32 | (seq & 0xffffffff)
}

func (o *randomOrder) String() string { return "random" }

// RandomOrder shuffles siblings deterministically for the given seed. Every
// Generator must get its own Order value.
func RandomOrder(seed uint64) Order {
	return &randomOrder{seed: seed, rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generator issues ranks during a top-down traversal. It is not safe for
// concurrent use; the builder serializes access.
type Generator struct {
	order  Order
	prefix []uint64
	// next holds the sequence number of the next child, one entry per open level.
	next []uint64
}

// NewGenerator returns a generator positioned at the top level.
func NewGenerator(order Order) *Generator {
	if order == nil {
		order = DefinedOrder()
	}
	return &Generator{order: order, next: []uint64{0}}
}

// Generate returns the rank of the next child at the current level.
func (g *Generator) Generate() Rank {
	level := len(g.next) - 1
	seq := g.next[level]
	g.next[level]++

	path := slices.Clone(g.prefix)
	path = append(path, g.order.Key(seq))
	return Rank{Path: path}
}

// PushLevel ranks a new group at the current level and descends into it.
// The returned rank is the group's own rank.
func (g *Generator) PushLevel() Rank {
	r := g.Generate()
	g.prefix = r.Path
	g.next = append(g.next, 0)
	return r
}

// PopLevel returns to the parent level. Popping the top level is a no-op.
func (g *Generator) PopLevel() {
	if len(g.prefix) == 0 {
		return
	}
	g.prefix = g.prefix[:len(g.prefix)-1]
	g.next = g.next[:len(g.next)-1]
}

// Depth is the number of open levels below the top level.
func (g *Generator) Depth() int {
	return len(g.prefix)
}
