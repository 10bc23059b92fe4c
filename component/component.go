package component

// Component is the client-supplied per-block attribute algebra. netgraph
// is generic over any C satisfying this contract; the zero value of C is
// never assumed meaningful — every C instance reaching netgraph code is
// produced either by a caller or by one of these three operations.
//
// Laws (see spec §3; callers are expected to uphold them, netgraph never
// validates them):
//
//	Add is associative: Add(Add(a,b),c) == Add(a,Add(b,c))
//	Add(a, zero) == a, where zero = FromLength(0)
//	Del(Add(a,b), b) == a, whenever the composition is defined
//	Add(Partition(a,l,r)) == a, for l+r >= 1
//
// Del is undefined (implementation-specific outcome, never validated by
// netgraph) when b was not previously Added into a — this is an algebra
// precondition violation per spec §7, not a netgraph-detectable error.
type Component[C any] interface {
	// Add combines two components; must be associative with Add(a, FromLength(0)) == a.
	Add(other C) C

	// Del is the inverse of Add on the right: Del(Add(a,b), b) == a.
	Del(other C) C

	// Partition splits the receiver into two parts proportional to left:right,
	// with Add(l, r) == receiver. Defined for left+right >= 1.
	Partition(left, right int) (l, r C)
}

// FromLengthFunc constructs the canonical component representing n
// contiguous lattice cells (n may be 0). It is supplied alongside C's
// Component methods because Go has no way to express "a static
// constructor" as part of an interface method set bound to instances.
type FromLengthFunc[C any] func(n int) C
