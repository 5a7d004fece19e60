package grid

import (
	"sort"
	"sync"

	"github.com/lixenwraith/gridmath/vmath"
)

// Index is a spatial index mapping grid cells to values of type T.
// Vec2i's structural equality makes it usable directly as the map key, so
// the index stays a single flat map. All methods are safe for concurrent use.
type Index[T any] struct {
	mu    sync.RWMutex
	cells map[vmath.Vec2i]T
}

// NewIndex creates an empty spatial index.
func NewIndex[T any]() *Index[T] {
	return &Index[T]{
		cells: make(map[vmath.Vec2i]T),
	}
}

// Put stores value at pos, replacing any previous occupant.
func (ix *Index[T]) Put(pos vmath.Vec2i, value T) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.cells[pos] = value
}

// At returns the value at pos and whether the cell is occupied.
func (ix *Index[T]) At(pos vmath.Vec2i) (T, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	v, ok := ix.cells[pos]
	return v, ok
}

// Remove clears the cell at pos. Returns true if a value was removed.
func (ix *Index[T]) Remove(pos vmath.Vec2i) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, ok := ix.cells[pos]; !ok {
		return false
	}
	delete(ix.cells, pos)
	return true
}

// Move atomically relocates the value at from to to.
// Returns false without modifying anything if from is empty or to is
// already occupied.
func (ix *Index[T]) Move(from, to vmath.Vec2i) bool {
	if from == to {
		return true
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()

	v, ok := ix.cells[from]
	if !ok {
		return false
	}
	if _, occupied := ix.cells[to]; occupied {
		return false
	}
	delete(ix.cells, from)
	ix.cells[to] = v
	return true
}

// Len returns the number of occupied cells.
func (ix *Index[T]) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.cells)
}

// SortedPositions returns all occupied cells in the Vec2i total order
// (X first, then Y). Map iteration order is random; sorting gives
// deterministic traversal for rendering and replay.
func (ix *Index[T]) SortedPositions() []vmath.Vec2i {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	positions := make([]vmath.Vec2i, 0, len(ix.cells))
	for pos := range ix.cells {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})
	return positions
}

// InRect returns the occupied cells inside r, in the Vec2i total order.
func (ix *Index[T]) InRect(r Rect) []vmath.Vec2i {
	positions := ix.SortedPositions()
	inside := positions[:0]
	for _, pos := range positions {
		if r.Contains(pos) {
			inside = append(inside, pos)
		}
	}
	return inside
}
