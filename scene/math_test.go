package scene

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := vec3{1, 2, 3}
	b := vec3{-4, 0.5, 2}

	if got := a.add(b); got != (vec3{-3, 2.5, 5}) {
		t.Fatalf("add=%v", got)
	}
	if got := a.sub(b); got != (vec3{5, 1.5, 1}) {
		t.Fatalf("sub=%v", got)
	}
	if got := a.scale(2); got != (vec3{2, 4, 6}) {
		t.Fatalf("scale=%v", got)
	}
	if got := a.dot(b); math.Abs(got-3) > 1e-12 {
		t.Fatalf("dot=%v", got)
	}
}

func TestNormalize(t *testing.T) {
	v := vec3{3, -4, 12}.normalize()
	if l := math.Sqrt(v.dot(v)); math.Abs(l-1) > 1e-12 {
		t.Fatalf("length=%v", l)
	}

	zero := vec3{}.normalize()
	if zero != (vec3{}) {
		t.Fatalf("zero normalize=%v", zero)
	}
}
