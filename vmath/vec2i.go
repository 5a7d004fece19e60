package vmath

import (
	"fmt"
	"math"
)

// Vec2i is a 2D vector with int32 components
// Plain value type: copy to duplicate, compare with ==, usable as a map key
// Add/Sub/Mul wrap on overflow per Go int32 semantics (unchecked)
type Vec2i struct {
	X, Y int32
}

// Direction constants use screen coordinates: Y grows downward
var (
	Vec2iZero  = Vec2i{0, 0}
	Vec2iOne   = Vec2i{1, 1}
	Vec2iMin   = Vec2i{math.MinInt32, math.MinInt32}
	Vec2iMax   = Vec2i{math.MaxInt32, math.MaxInt32}
	Vec2iUp    = Vec2i{0, -1}
	Vec2iDown  = Vec2i{0, 1}
	Vec2iLeft  = Vec2i{-1, 0}
	Vec2iRight = Vec2i{1, 0}
)

// V2i creates a Vec2i from x,y components
func V2i(x, y int32) Vec2i {
	return Vec2i{X: x, Y: y}
}

// --- Representation ---

// Component returns the component at index: 0 for X, 1 for Y
// Panics for any other index
func (v Vec2i) Component(i int) int32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("vmath: Vec2i component index %d out of range [0, 1]", i))
}

// SetComponent sets the component at index: 0 for X, 1 for Y
// Panics for any other index
func (v *Vec2i) SetComponent(i int, value int32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("vmath: Vec2i component index %d out of range [0, 1]", i))
	}
}

// XY extracts both components as separate values
func (v Vec2i) XY() (x, y int32) {
	return v.X, v.Y
}

// --- Arithmetic ---

func (v Vec2i) Add(o Vec2i) Vec2i {
	return Vec2i{v.X + o.X, v.Y + o.Y}
}

func (v Vec2i) Sub(o Vec2i) Vec2i {
	return Vec2i{v.X - o.X, v.Y - o.Y}
}

func (v Vec2i) Neg() Vec2i {
	return Vec2i{-v.X, -v.Y}
}

// Mul returns the component-wise product
func (v Vec2i) Mul(o Vec2i) Vec2i {
	return Vec2i{v.X * o.X, v.Y * o.Y}
}

func (v Vec2i) MulScalar(s int32) Vec2i {
	return Vec2i{v.X * s, v.Y * s}
}

// Div returns the component-wise truncating quotient (rounds toward zero)
// Panics if any component of o is zero; no partial result is produced
func (v Vec2i) Div(o Vec2i) Vec2i {
	if o.X == 0 || o.Y == 0 {
		panic("vmath: Vec2i division by zero")
	}
	return Vec2i{v.X / o.X, v.Y / o.Y}
}

// DivScalar returns the truncating quotient of each component by s
// Panics if s is zero
func (v Vec2i) DivScalar(s int32) Vec2i {
	if s == 0 {
		panic("vmath: Vec2i division by zero")
	}
	return Vec2i{v.X / s, v.Y / s}
}

// Mod returns the component-wise truncating remainder
// The sign follows the dividend: (-20) mod 7 is -6, not 1
// Use PosMod for a nonnegative result. Panics if any component of o is zero
func (v Vec2i) Mod(o Vec2i) Vec2i {
	if o.X == 0 || o.Y == 0 {
		panic("vmath: Vec2i modulo by zero")
	}
	return Vec2i{v.X % o.X, v.Y % o.Y}
}

// ModScalar returns the truncating remainder of each component by s
// Panics if s is zero
func (v Vec2i) ModScalar(s int32) Vec2i {
	if s == 0 {
		panic("vmath: Vec2i modulo by zero")
	}
	return Vec2i{v.X % s, v.Y % s}
}

// --- Geometric queries ---

// Abs returns the component-wise absolute value
func (v Vec2i) Abs() Vec2i {
	return Vec2i{abs32(v.X), abs32(v.Y)}
}

// Aspect returns X/Y as a real number
// A zero Y yields ±Inf (or NaN for the zero vector) per IEEE 754; never panics
func (v Vec2i) Aspect() float64 {
	return float64(v.X) / float64(v.Y)
}

// Clamp limits each component to [minv, maxv]
// Result is unspecified where minv > maxv on a component
func (v Vec2i) Clamp(minv, maxv Vec2i) Vec2i {
	return Vec2i{
		X: min(max(v.X, minv.X), maxv.X),
		Y: min(max(v.Y, minv.Y), maxv.Y),
	}
}

// ClampScalar limits both components to [minv, maxv]
func (v Vec2i) ClampScalar(minv, maxv int32) Vec2i {
	return Vec2i{
		X: min(max(v.X, minv), maxv),
		Y: min(max(v.Y, minv), maxv),
	}
}

// LengthSquared returns the squared length without sqrt
// Computed in int64, exact for all int32 inputs; the preferred
// comparison primitive
func (v Vec2i) LengthSquared() int64 {
	x, y := int64(v.X), int64(v.Y)
	return x*x + y*y
}

// Length returns the Euclidean length
func (v Vec2i) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// DistanceSquaredTo returns the squared distance to o, exactly
// (o - v).LengthSquared()
func (v Vec2i) DistanceSquaredTo(o Vec2i) int64 {
	return o.Sub(v).LengthSquared()
}

// DistanceTo returns the Euclidean distance to o
func (v Vec2i) DistanceTo(o Vec2i) float64 {
	return math.Sqrt(float64(v.DistanceSquaredTo(o)))
}

// Max returns the component-wise maximum
func (v Vec2i) Max(o Vec2i) Vec2i {
	return Vec2i{max(v.X, o.X), max(v.Y, o.Y)}
}

func (v Vec2i) MaxScalar(s int32) Vec2i {
	return Vec2i{max(v.X, s), max(v.Y, s)}
}

// Min returns the component-wise minimum
func (v Vec2i) Min(o Vec2i) Vec2i {
	return Vec2i{min(v.X, o.X), min(v.Y, o.Y)}
}

func (v Vec2i) MinScalar(s int32) Vec2i {
	return Vec2i{min(v.X, s), min(v.Y, s)}
}

// MaxAxisIndex returns the axis of the larger component; X wins ties
func (v Vec2i) MaxAxisIndex() Axis {
	if v.X < v.Y {
		return AxisY
	}
	return AxisX
}

// MinAxisIndex returns the axis of the smaller component; Y wins ties
func (v Vec2i) MinAxisIndex() Axis {
	if v.X < v.Y {
		return AxisX
	}
	return AxisY
}

// Sign returns -1, 0, or 1 per component
func (v Vec2i) Sign() Vec2i {
	return Vec2i{sign32(v.X), sign32(v.Y)}
}

// Snapped rounds each component to the nearest multiple of the matching
// step component (Snappedf rounding, halves away from zero), then truncates
// back toward zero. A zero step component leaves that component unchanged
func (v Vec2i) Snapped(step Vec2i) Vec2i {
	return Vec2i{
		X: int32(Snappedf(float64(v.X), float64(step.X))),
		Y: int32(Snappedf(float64(v.Y), float64(step.Y))),
	}
}

// SnappedScalar rounds both components to the nearest multiple of step
func (v Vec2i) SnappedScalar(step int32) Vec2i {
	return v.Snapped(Vec2i{step, step})
}

// --- Ordering ---

// Cmp three-way compares lexicographically: X first, then Y
// Returns -1, 0, or 1. All relational methods derive from this
func (v Vec2i) Cmp(o Vec2i) int {
	switch {
	case v.X < o.X:
		return -1
	case v.X > o.X:
		return 1
	case v.Y < o.Y:
		return -1
	case v.Y > o.Y:
		return 1
	}
	return 0
}

func (v Vec2i) Less(o Vec2i) bool      { return v.Cmp(o) < 0 }
func (v Vec2i) LessEq(o Vec2i) bool    { return v.Cmp(o) <= 0 }
func (v Vec2i) Greater(o Vec2i) bool   { return v.Cmp(o) > 0 }
func (v Vec2i) GreaterEq(o Vec2i) bool { return v.Cmp(o) >= 0 }

// Hash packs both components into a uint64
// Injective, so equal vectors always hash equally
func (v Vec2i) Hash() uint64 {
	return uint64(uint32(v.X))<<32 | uint64(uint32(v.Y))
}

// --- Conversion ---

// ToFloat widens to the float64 sibling, losslessly
func (v Vec2i) ToFloat() Vec2 {
	return Vec2{float64(v.X), float64(v.Y)}
}

// String renders the canonical "(x, y)" form
func (v Vec2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// StringFormat renders "(x, y)" applying the fmt verb to each component,
// e.g. "%04d"
func (v Vec2i) StringFormat(format string) string {
	return "(" + fmt.Sprintf(format, v.X) + ", " + fmt.Sprintf(format, v.Y) + ")"
}

// --- Helpers ---

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func sign32(x int32) int32 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
