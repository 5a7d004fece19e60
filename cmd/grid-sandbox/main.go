// Interactive sandbox for the integer vector math.
// Move a cursor around the terminal grid and watch length, aspect, sign,
// dominant axis and snapping update live. Scatter markers to exercise the
// spatial index and nearest-cell queries.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridmath/grid"
	"github.com/lixenwraith/gridmath/vmath"
)

// Tokyo Night-ish palette
var (
	styleBg     = tcell.StyleDefault.Background(tcell.NewRGBColor(26, 27, 38))
	styleAxis   = styleBg.Foreground(tcell.NewRGBColor(100, 100, 110))
	styleCursor = styleBg.Foreground(tcell.ColorAqua).Bold(true)
	styleSnap   = styleBg.Foreground(tcell.NewRGBColor(255, 160, 50))
	styleMarker = styleBg.Foreground(tcell.NewRGBColor(255, 0, 255))
	styleText   = styleBg.Foreground(tcell.ColorWhite)
)

var snapSteps = []int32{1, 2, 4, 8}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "grid-sandbox:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "grid-sandbox:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(styleBg)
	screen.HideCursor()

	w, h := screen.Size()
	bounds := boundsFor(w, h)
	origin := bounds.Center()

	cursor := vmath.Vec2iZero
	stepIdx := 0
	markers := grid.NewIndex[rune]()
	rng := vmath.NewFastRand(0xC0FFEE)

	for {
		draw(screen, bounds, origin, cursor, snapSteps[stepIdx], markers)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			w, h = screen.Size()
			bounds = boundsFor(w, h)
			origin = bounds.Center()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				cursor = move(cursor, vmath.Vec2iLeft, bounds, origin)
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				cursor = move(cursor, vmath.Vec2iRight, bounds, origin)
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				cursor = move(cursor, vmath.Vec2iUp, bounds, origin)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				cursor = move(cursor, vmath.Vec2iDown, bounds, origin)
			case ev.Rune() == 'g':
				stepIdx = (stepIdx + 1) % len(snapSteps)
			case ev.Rune() == 'm':
				scatter(markers, bounds, origin, rng)
			case ev.Rune() == 'c':
				markers = grid.NewIndex[rune]()
			case ev.Rune() == '0':
				cursor = vmath.Vec2iZero
			}
		}
	}
}

// boundsFor reserves the bottom rows for the info panel
func boundsFor(w, h int) grid.Rect {
	return grid.NewRect(0, 0, int32(w), int32(max(h-6, 1)))
}

// move shifts the cursor one cell, keeping its screen cell inside bounds
func move(cursor, dir vmath.Vec2i, bounds grid.Rect, origin vmath.Vec2i) vmath.Vec2i {
	next := cursor.Add(dir)
	return bounds.Clamp(next.Add(origin)).Sub(origin)
}

// scatter drops a few random markers, skipping occupied cells
func scatter(markers *grid.Index[rune], bounds grid.Rect, origin vmath.Vec2i, rng *vmath.FastRand) {
	for i := 0; i < 5; i++ {
		pos := bounds.RandomPoint(rng).Sub(origin)
		if _, occupied := markers.At(pos); !occupied {
			markers.Put(pos, '*')
		}
	}
}

func draw(screen tcell.Screen, bounds grid.Rect, origin, cursor vmath.Vec2i, step int32, markers *grid.Index[rune]) {
	screen.Clear()

	// Axes through the origin, screen coordinates (Y down)
	end := bounds.End()
	for x := bounds.Pos.X; x < end.X; x++ {
		screen.SetContent(int(x), int(origin.Y), '-', nil, styleAxis)
	}
	for y := bounds.Pos.Y; y < end.Y; y++ {
		screen.SetContent(int(origin.X), int(y), '|', nil, styleAxis)
	}
	screen.SetContent(int(origin.X), int(origin.Y), '+', nil, styleAxis)

	for _, pos := range markers.SortedPositions() {
		cell := pos.Add(origin)
		if bounds.Contains(cell) {
			screen.SetContent(int(cell.X), int(cell.Y), '*', nil, styleMarker)
		}
	}

	snapped := cursor.SnappedScalar(step)
	if snapped != cursor {
		ghost := snapped.Add(origin)
		if bounds.Contains(ghost) {
			screen.SetContent(int(ghost.X), int(ghost.Y), 'o', nil, styleSnap)
		}
	}

	at := cursor.Add(origin)
	screen.SetContent(int(at.X), int(at.Y), '@', nil, styleCursor)

	drawPanel(screen, bounds, cursor, snapped, step, markers)
	screen.Show()
}

func drawPanel(screen tcell.Screen, bounds grid.Rect, cursor, snapped vmath.Vec2i, step int32, markers *grid.Index[rune]) {
	row := int(bounds.End().Y)

	nearest, dist, found := nearestMarker(markers, cursor)
	nearestInfo := "none (press m to scatter)"
	if found {
		nearestInfo = fmt.Sprintf("%v  distSq=%d  dist=%.2f", nearest, dist, cursor.DistanceTo(nearest))
	}

	lines := []string{
		fmt.Sprintf("cursor %v  len=%.3f  lenSq=%d  aspect=%.3f", cursor, cursor.Length(), cursor.LengthSquared(), cursor.Aspect()),
		fmt.Sprintf("sign %v  abs %v  maxAxis=%v  minAxis=%v", cursor.Sign(), cursor.Abs(), cursor.MaxAxisIndex(), cursor.MinAxisIndex()),
		fmt.Sprintf("snap step %d -> %v", step, snapped),
		fmt.Sprintf("nearest marker: %s", nearestInfo),
		"arrows/hjkl move | g snap step | m markers | c clear | 0 origin | q quit",
	}
	for i, line := range lines {
		drawText(screen, 1, row+i, styleText, line)
	}
}

// nearestMarker scans in sorted order so equidistant markers resolve
// deterministically (lowest in the Vec2i total order wins)
func nearestMarker(markers *grid.Index[rune], from vmath.Vec2i) (vmath.Vec2i, int64, bool) {
	var best vmath.Vec2i
	var bestDist int64
	found := false
	for _, pos := range markers.SortedPositions() {
		d := from.DistanceSquaredTo(pos)
		if !found || d < bestDist {
			best, bestDist, found = pos, d, true
		}
	}
	return best, bestDist, found
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
