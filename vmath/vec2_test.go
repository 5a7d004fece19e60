package vmath

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1.5, -2)
	b := V2(0.5, 4)

	if got := a.Add(b); got != (Vec2{2, 2}) {
		t.Errorf("Add: expected (2, 2), got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{1, -6}) {
		t.Errorf("Sub: expected (1, -6), got %v", got)
	}
	if got := a.Mul(b); got != (Vec2{0.75, -8}) {
		t.Errorf("Mul: expected (0.75, -8), got %v", got)
	}
	if got := a.MulScalar(2); got != (Vec2{3, -4}) {
		t.Errorf("MulScalar: expected (3, -4), got %v", got)
	}
	if got := a.Neg(); got != (Vec2{-1.5, 2}) {
		t.Errorf("Neg: expected (-1.5, 2), got %v", got)
	}
}

func TestVec2DivisionNeverPanics(t *testing.T) {
	got := V2(1, -1).DivScalar(0)
	if !math.IsInf(got.X, 1) || !math.IsInf(got.Y, -1) {
		t.Errorf("Expected (+Inf, -Inf), got %v", got)
	}
	if q := V2(0, 1).Div(Vec2Zero); !math.IsNaN(q.X) || !math.IsInf(q.Y, 1) {
		t.Errorf("Expected (NaN, +Inf), got %v", q)
	}
}

func TestVec2LengthNormalize(t *testing.T) {
	v := V2(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length: expected 5, got %g", got)
	}
	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %g", n.Length())
	}
	if got := Vec2Zero.Normalized(); got != Vec2Zero {
		t.Errorf("Normalizing zero must stay zero, got %v", got)
	}
}

func TestVec2Rounding(t *testing.T) {
	v := V2(1.5, -1.5)
	if got := v.Floor(); got != (Vec2{1, -2}) {
		t.Errorf("Floor: expected (1, -2), got %v", got)
	}
	if got := v.Ceil(); got != (Vec2{2, -1}) {
		t.Errorf("Ceil: expected (2, -1), got %v", got)
	}
	if got := v.Round(); got != (Vec2{2, -2}) {
		t.Errorf("Round: expected (2, -2), got %v", got)
	}
}

func TestVec2Snapped(t *testing.T) {
	if got := V2(7.3, -7.3).Snapped(V2(2, 2)); got != (Vec2{8, -8}) {
		t.Errorf("Snapped: expected (8, -8), got %v", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := V2(0, 10)
	b := V2(10, 20)
	if got := a.Lerp(b, 0.5); got != (Vec2{5, 15}) {
		t.Errorf("Lerp: expected (5, 15), got %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at 0: expected %v, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at 1: expected %v, got %v", b, got)
	}
}

func TestVec2String(t *testing.T) {
	if got := V2(1.5, -2).String(); got != "(1.5, -2)" {
		t.Errorf("String: expected \"(1.5, -2)\", got %q", got)
	}
}
