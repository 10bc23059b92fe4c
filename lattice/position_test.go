package lattice

import "testing"

func TestAdjacent(t *testing.T) {
	cases := []struct {
		name string
		p, q Position
		want bool
	}{
		{"PlusX", Position{0, 0, 0}, Position{1, 0, 0}, true},
		{"MinusZ", Position{2, 2, 2}, Position{2, 2, 1}, true},
		{"Diagonal", Position{0, 0, 0}, Position{1, 1, 0}, false},
		{"Same", Position{0, 0, 0}, Position{0, 0, 0}, false},
		{"Distance2", Position{0, 0, 0}, Position{2, 0, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Adjacent(tc.p, tc.q); got != tc.want {
				t.Errorf("Adjacent(%v,%v) = %v; want %v", tc.p, tc.q, got, tc.want)
			}
		})
	}
}

func TestNeighborsOrderAndAdjacency(t *testing.T) {
	p := Position{1, 2, 3}
	ns := Neighbors(p)
	want := [6]Position{
		{2, 2, 3}, {0, 2, 3},
		{1, 3, 3}, {1, 1, 3},
		{1, 2, 4}, {1, 2, 2},
	}
	if ns != want {
		t.Errorf("Neighbors(%v) = %v; want %v", p, ns, want)
	}
	for _, n := range ns {
		if !Adjacent(p, n) {
			t.Errorf("neighbor %v of %v should be adjacent", n, p)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	if got := ManhattanDistance(Position{0, 0, 0}, Position{3, -2, 1}); got != 6 {
		t.Errorf("ManhattanDistance = %d; want 6", got)
	}
}
