package component

import "math"

// IntCapacity is the reference Component implementation used throughout
// spec.md's end-to-end scenarios: each lattice cell is worth 100 units
// of capacity, Add/Del are ordinary integer arithmetic, and Partition
// splits proportionally to the requested left:right block counts.
type IntCapacity int64

// UnitCapacity is the capacity contributed by a single lattice cell.
const UnitCapacity = 100

// FromLength returns the canonical capacity for n contiguous cells.
func FromLength(n int) IntCapacity {
	return IntCapacity(n) * UnitCapacity
}

// Add returns the sum of two capacities.
func (c IntCapacity) Add(other IntCapacity) IntCapacity {
	return c + other
}

// Del subtracts other from c. Undefined (per the algebra contract) if
// other was never added into c; netgraph never validates this.
func (c IntCapacity) Del(other IntCapacity) IntCapacity {
	return c - other
}

// Partition splits c proportionally to left:right block counts.
//
// When exactly one side is zero, the non-zero side inherits all of c and
// the zero side is FromLength(0) — spec §3's "Defined for l+r >= 1"
// case. When BOTH sides are zero, the spec flags the source's behavior
// as likely buggy (§9 Open Questions) but requires it be preserved for
// compatibility: both lengths are forced to max(len,1) before computing
// proportions, which keeps Partition total at the cost of strict
// proportionality.
func (c IntCapacity) Partition(left, right int) (l, r IntCapacity) {
	if left == 0 && right != 0 {
		return 0, c
	}
	if right == 0 && left != 0 {
		return c, 0
	}
	if left == 0 && right == 0 {
		left, right = 1, 1
	}
	total := left + right
	l = IntCapacity(math.Round(float64(c) * float64(left) / float64(total)))
	r = c - l
	return l, r
}
