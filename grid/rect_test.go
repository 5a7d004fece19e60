package grid

import (
	"testing"

	"github.com/lixenwraith/gridmath/vmath"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(vmath.V2i(2, 3)) {
		t.Error("Expected top-left corner to be contained")
	}
	if !r.Contains(vmath.V2i(5, 7)) {
		t.Error("Expected last cell to be contained")
	}
	if r.Contains(vmath.V2i(6, 3)) {
		t.Error("Expected End X to be exclusive")
	}
	if r.Contains(vmath.V2i(2, 8)) {
		t.Error("Expected End Y to be exclusive")
	}
	if r.Contains(vmath.V2i(1, 3)) {
		t.Error("Expected cell left of rect to be outside")
	}
}

func TestRectCenterEnd(t *testing.T) {
	r := NewRect(0, 0, 10, 4)
	if got := r.Center(); got != vmath.V2i(5, 2) {
		t.Errorf("Center: expected (5, 2), got %v", got)
	}
	if got := r.End(); got != vmath.V2i(10, 4) {
		t.Errorf("End: expected (10, 4), got %v", got)
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	c := NewRect(20, 20, 2, 2)

	if !a.Intersects(b) {
		t.Error("Expected overlapping rects to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected disjoint rects not to intersect")
	}

	got := a.Intersection(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersection: expected %+v, got %+v", want, got)
	}
	if a.Intersection(c) != (Rect{}) {
		t.Error("Expected empty intersection for disjoint rects")
	}
}

func TestRectGrowClamp(t *testing.T) {
	r := NewRect(5, 5, 2, 2)
	if got := r.Grow(1); got != NewRect(4, 4, 4, 4) {
		t.Errorf("Grow: expected (4,4 4x4), got %+v", got)
	}

	if got := r.Clamp(vmath.V2i(0, 100)); got != vmath.V2i(5, 6) {
		t.Errorf("Clamp: expected (5, 6), got %v", got)
	}
	if got := r.Clamp(vmath.V2i(6, 5)); got != vmath.V2i(6, 5) {
		t.Errorf("Clamp: expected interior point unchanged, got %v", got)
	}
}

func TestRectRandomPoint(t *testing.T) {
	r := NewRect(-3, 2, 5, 4)
	rng := vmath.NewFastRand(99)
	for i := 0; i < 1000; i++ {
		p := r.RandomPoint(rng)
		if !r.Contains(p) {
			t.Fatalf("RandomPoint outside rect: %v", p)
		}
	}
}

func TestRectDistributePoint(t *testing.T) {
	r := NewRect(10, 20, 3, 2)
	rng := vmath.NewFastRand(1)

	// Row-major coverage for in-capacity indices
	want := []vmath.Vec2i{
		vmath.V2i(10, 20), vmath.V2i(11, 20), vmath.V2i(12, 20),
		vmath.V2i(10, 21), vmath.V2i(11, 21), vmath.V2i(12, 21),
	}
	for i, w := range want {
		if got := r.DistributePoint(i, rng); got != w {
			t.Errorf("DistributePoint(%d): expected %v, got %v", i, w, got)
		}
	}

	// Over capacity falls back to a point still inside the rect
	if p := r.DistributePoint(100, rng); !r.Contains(p) {
		t.Errorf("DistributePoint fallback outside rect: %v", p)
	}
}
