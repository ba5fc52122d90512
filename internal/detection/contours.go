package detection

import (
	"image"
)

// Clockwise neighbor offsets in image coordinates (Y grows downward),
// starting from the west neighbor.
var mooreOffsets = [8]image.Point{
	{X: -1, Y: 0},  // W
	{X: -1, Y: -1}, // NW
	{X: 0, Y: -1},  // N
	{X: 1, Y: -1},  // NE
	{X: 1, Y: 0},   // E
	{X: 1, Y: 1},   // SE
	{X: 0, Y: 1},   // S
	{X: -1, Y: 1},  // SW
}

const dirWest = 0

// binaryGrid is a foreground mask over a zero-origin width x height area.
// Anything outside the grid is background.
type binaryGrid struct {
	width, height int
	fg            []bool
}

func newBinaryGrid(img *image.Gray) *binaryGrid {
	bounds := img.Bounds()
	g := &binaryGrid{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		fg:     make([]bool, bounds.Dx()*bounds.Dy()),
	}
	for y := 0; y < g.height; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < g.width; x++ {
			g.fg[y*g.width+x] = img.Pix[off+x] != 0
		}
	}
	return g
}

func (g *binaryGrid) inside(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g *binaryGrid) at(p image.Point) bool {
	return g.inside(p) && g.fg[p.Y*g.width+p.X]
}

// findExternalContoursNative returns the outer boundary of every foreground
// component in edges that is not enclosed by another component.
//
// Any non-zero pixel is foreground. Foreground is 8-connected and background
// 4-connected, so a closed 8-connected ring seals its interior: components
// that sit inside a hole of another component are skipped. The area outside
// the image counts as background.
//
// # Algorithm
//
//  1. Labeling: flood-fill groups foreground pixels into 8-connected components
//  2. Outer background: a 4-connected flood from the image frame marks the
//     background reachable from outside
//  3. Selection: a component is external if one of its pixels is 4-adjacent
//     to outer background or to the frame
//  4. Tracing: Moore-neighbor tracing walks the boundary clockwise from the
//     component's first pixel in raster order
//  5. Compression: points in the middle of a horizontal, vertical or diagonal
//     run are dropped so only the run end points remain
//
// Contours are returned in raster order of their first pixel. A component of
// one pixel yields a single-point contour.
func findExternalContoursNative(edges *image.Gray) [][]image.Point {
	g := newBinaryGrid(edges)
	contours := make([][]image.Point, 0)
	if g.width == 0 || g.height == 0 {
		return contours
	}

	labels := make([]int, g.width*g.height)
	starts := make([]image.Point, 0)
	next := 1
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			if g.fg[i] && labels[i] == 0 {
				floodFill(g, labels, image.Point{X: x, Y: y}, next)
				starts = append(starts, image.Point{X: x, Y: y})
				next++
			}
		}
	}

	outer := outerBackground(g)
	external := make([]bool, next)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			if !g.fg[i] || external[labels[i]] {
				continue
			}
			for _, d := range [4]image.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
				q := image.Point{X: x + d.X, Y: y + d.Y}
				if !g.inside(q) || outer[q.Y*g.width+q.X] {
					external[labels[i]] = true
					break
				}
			}
		}
	}

	for n, start := range starts {
		if !external[n+1] {
			continue
		}
		contours = append(contours, compressChain(traceBoundary(g, start)))
	}
	return contours
}

// floodFill performs iterative flood-fill from a starting point.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow
// on large components. Every reached foreground pixel gets the given label.
// Uses 8-connectivity (includes diagonal neighbors).
func floodFill(g *binaryGrid, labels []int, start image.Point, label int) {
	stack := []image.Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.at(p) {
			continue
		}
		i := p.Y*g.width + p.X
		if labels[i] != 0 {
			continue
		}
		labels[i] = label

		for _, d := range mooreOffsets {
			stack = append(stack, p.Add(d))
		}
	}
}

// outerBackground marks background pixels 4-connected to the image frame.
func outerBackground(g *binaryGrid) []bool {
	outer := make([]bool, g.width*g.height)
	stack := make([]image.Point, 0, 2*(g.width+g.height))
	for x := 0; x < g.width; x++ {
		stack = append(stack, image.Point{X: x, Y: 0}, image.Point{X: x, Y: g.height - 1})
	}
	for y := 0; y < g.height; y++ {
		stack = append(stack, image.Point{X: 0, Y: y}, image.Point{X: g.width - 1, Y: y})
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.inside(p) || g.at(p) {
			continue
		}
		i := p.Y*g.width + p.X
		if outer[i] {
			continue
		}
		outer[i] = true

		stack = append(stack,
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y - 1},
			image.Point{X: p.X, Y: p.Y + 1},
		)
	}
	return outer
}

// traceBoundary walks the outer boundary of the component containing start
// with Moore-neighbor tracing. start must be the component's first pixel in
// raster order, so its west neighbor is background.
//
// Tracing stops when the walk is back at start and about to repeat its first
// move. Points visited more than once (thin spurs, one-pixel bridges) appear
// once per visit.
func traceBoundary(g *binaryGrid, start image.Point) []image.Point {
	contour := []image.Point{start}

	p := start
	backtrack := dirWest
	firstMove := -1

	// Each boundary pixel is entered at most once from each of its 8 sides.
	limit := 8*len(g.fg) + 8
	for step := 0; step < limit; step++ {
		move := -1
		for i := 1; i <= 8; i++ {
			d := (backtrack + i) % 8
			if g.at(p.Add(mooreOffsets[d])) {
				move = d
				break
			}
		}
		if move < 0 {
			// Isolated pixel.
			return contour
		}
		if p == start && move == firstMove {
			break
		}
		if firstMove < 0 {
			firstMove = move
		}

		// The last background neighbor examined becomes the new backtrack.
		checked := p.Add(mooreOffsets[(move+7)%8])
		q := p.Add(mooreOffsets[move])
		backtrack = directionTo(q, checked)
		p = q
		contour = append(contour, p)
	}

	if len(contour) > 1 && contour[len(contour)-1] == start {
		contour = contour[:len(contour)-1]
	}
	return contour
}

// directionTo returns the index in mooreOffsets of the step from p to q.
// p and q must be 8-adjacent.
func directionTo(p, q image.Point) int {
	d := q.Sub(p)
	for i, o := range mooreOffsets {
		if o == d {
			return i
		}
	}
	return dirWest
}

// compressChain keeps only the points where the chain changes direction.
// The contour is treated as closed and its first point is always kept.
func compressChain(contour []image.Point) []image.Point {
	n := len(contour)
	if n <= 2 {
		return contour
	}

	out := []image.Point{contour[0]}
	for i := 1; i < n; i++ {
		prev := contour[i-1]
		cur := contour[i]
		next := contour[(i+1)%n]
		if cur.Sub(prev) != next.Sub(cur) {
			out = append(out, cur)
		}
	}
	return out
}
