package component

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromLength(t *testing.T) {
	require.Equal(t, IntCapacity(0), FromLength(0))
	require.Equal(t, IntCapacity(500), FromLength(5))
}

func TestAddDelRoundTrip(t *testing.T) {
	a := FromLength(3)
	b := FromLength(2)
	sum := a.Add(b)
	require.Equal(t, FromLength(5), sum)
	require.Equal(t, a, sum.Del(b))
}

func TestPartitionProportional(t *testing.T) {
	c := IntCapacity(300)
	l, r := c.Partition(1, 2)
	require.Equal(t, IntCapacity(100), l)
	require.Equal(t, IntCapacity(200), r)
	require.Equal(t, c, l.Add(r))
}

func TestPartitionOneSidedZero(t *testing.T) {
	c := FromLength(4)
	l, r := c.Partition(0, 3)
	require.Equal(t, IntCapacity(0), l)
	require.Equal(t, c, r)

	l, r = c.Partition(3, 0)
	require.Equal(t, c, l)
	require.Equal(t, IntCapacity(0), r)
}

func TestPartitionBothZeroForcesMaxOne(t *testing.T) {
	// Preserved quirk from the original source (spec §9 Open Questions):
	// both sides zero still splits 50/50 via max(len,1) instead of
	// returning (FromLength(0), FromLength(0)).
	c := IntCapacity(100)
	l, r := c.Partition(0, 0)
	require.Equal(t, c, l.Add(r))
	require.Equal(t, IntCapacity(50), l)
	require.Equal(t, IntCapacity(50), r)
}
