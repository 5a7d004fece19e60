package vmath

import (
	"fmt"
	"math"
)

// Vec2 is the float64 sibling of Vec2i
// Division follows IEEE 754: a zero divisor yields ±Inf or NaN, never a panic
type Vec2 struct {
	X, Y float64
}

var (
	Vec2Zero = Vec2{0, 0}
	Vec2One  = Vec2{1, 1}
)

// V2 creates a Vec2 from x,y components
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

func (v Vec2) MulScalar(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vec2) DistanceSquaredTo(o Vec2) float64 {
	return o.Sub(v).LengthSquared()
}

func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Sqrt(v.DistanceSquaredTo(o))
}

// Normalized returns the unit vector, zero-safe
func (v Vec2) Normalized() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

func (v Vec2) Aspect() float64 {
	return v.X / v.Y
}

func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}

// Sign returns -1, 0, or 1 per component
func (v Vec2) Sign() Vec2 {
	return Vec2{signf(v.X), signf(v.Y)}
}

func (v Vec2) Clamp(minv, maxv Vec2) Vec2 {
	return Vec2{
		X: math.Min(math.Max(v.X, minv.X), maxv.X),
		Y: math.Min(math.Max(v.Y, minv.Y), maxv.Y),
	}
}

// Floor, Ceil, and Round pick the rounding before a ToInt narrowing,
// which itself always truncates

func (v Vec2) Floor() Vec2 {
	return Vec2{math.Floor(v.X), math.Floor(v.Y)}
}

func (v Vec2) Ceil() Vec2 {
	return Vec2{math.Ceil(v.X), math.Ceil(v.Y)}
}

func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// Snapped rounds each component to the nearest multiple of the matching
// step component
func (v Vec2) Snapped(step Vec2) Vec2 {
	return Vec2{Snappedf(v.X, step.X), Snappedf(v.Y, step.Y)}
}

// Lerp interpolates toward o by t (0 = v, 1 = o)
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerpf(v.X, o.X, t), Lerpf(v.Y, o.Y, t)}
}

// ToInt narrows to Vec2i, truncating each component toward zero
// Apply Floor, Ceil, or Round first for other narrowing semantics
func (v Vec2) ToInt() Vec2i {
	return Vec2i{int32(v.X), int32(v.Y)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func signf(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
