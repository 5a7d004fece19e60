// Package grid provides integer-grid geometry and indexing built on vmath.Vec2i.
package grid

import "github.com/lixenwraith/gridmath/vmath"

// Rect is an axis-aligned rectangular region of grid cells
// Pos is the top-left corner; Size components should be >= 1 for a
// non-degenerate region
type Rect struct {
	Pos, Size vmath.Vec2i
}

// NewRect creates a Rect from corner and dimensions
func NewRect(x, y, w, h int32) Rect {
	return Rect{Pos: vmath.V2i(x, y), Size: vmath.V2i(w, h)}
}

// End returns the exclusive bottom-right corner (Pos + Size)
func (r Rect) End() vmath.Vec2i {
	return r.Pos.Add(r.Size)
}

// Center returns the center cell of the rect
func (r Rect) Center() vmath.Vec2i {
	return r.Pos.Add(r.Size.DivScalar(2))
}

// Contains checks if point p is within the rect (End exclusive)
func (r Rect) Contains(p vmath.Vec2i) bool {
	end := r.End()
	return p.X >= r.Pos.X && p.X < end.X && p.Y >= r.Pos.Y && p.Y < end.Y
}

// Intersects checks if the two rects share any cell
func (r Rect) Intersects(o Rect) bool {
	return r.Pos.X < o.End().X && o.Pos.X < r.End().X &&
		r.Pos.Y < o.End().Y && o.Pos.Y < r.End().Y
}

// Intersection returns the overlapping region, or a zero Rect when disjoint
func (r Rect) Intersection(o Rect) Rect {
	pos := r.Pos.Max(o.Pos)
	end := r.End().Min(o.End())
	if end.X <= pos.X || end.Y <= pos.Y {
		return Rect{}
	}
	return Rect{Pos: pos, Size: end.Sub(pos)}
}

// Grow expands the rect by amount cells on every side
func (r Rect) Grow(amount int32) Rect {
	return Rect{
		Pos:  r.Pos.Sub(vmath.V2i(amount, amount)),
		Size: r.Size.Add(vmath.V2i(amount*2, amount*2)),
	}
}

// Clamp returns p limited to the rect's cells (End exclusive)
func (r Rect) Clamp(p vmath.Vec2i) vmath.Vec2i {
	return p.Clamp(r.Pos, r.End().Sub(vmath.Vec2iOne))
}

// RandomPoint returns a random cell within the rect using provided RNG
func (r Rect) RandomPoint(rng *vmath.FastRand) vmath.Vec2i {
	p := r.Pos
	if r.Size.X > 1 {
		p.X += int32(rng.Intn(int(r.Size.X)))
	}
	if r.Size.Y > 1 {
		p.Y += int32(rng.Intn(int(r.Size.Y)))
	}
	return p
}

// DistributePoint returns a cell based on index for even row-major coverage
// Falls back to random if index exceeds the rect's capacity
func (r Rect) DistributePoint(index int, rng *vmath.FastRand) vmath.Vec2i {
	capacity := int(r.Size.X) * int(r.Size.Y)
	if capacity <= 1 || index >= capacity {
		return r.RandomPoint(rng)
	}
	return vmath.V2i(
		r.Pos.X+int32(index%int(r.Size.X)),
		r.Pos.Y+int32(index/int(r.Size.X)),
	)
}
