package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// DrawRectangle strokes the axis-aligned rectangle through corners p1 and p2
// onto dst. Both corners lie on the stroke. Pixels outside dst are skipped.
func DrawRectangle(dst draw.Image, p1, p2 image.Point, c color.Color, thickness int) {
	corners := []image.Point{
		{X: p1.X, Y: p1.Y},
		{X: p2.X, Y: p1.Y},
		{X: p2.X, Y: p2.Y},
		{X: p1.X, Y: p2.Y},
	}
	DrawPolyline(dst, corners, true, c, thickness)
}

// DrawContours strokes every contour onto dst as a closed polyline.
// A contour with a single point is drawn as a dot.
func DrawContours(dst draw.Image, contours [][]image.Point, c color.Color, thickness int) {
	for _, contour := range contours {
		DrawPolyline(dst, contour, true, c, thickness)
	}
}

// DrawPolyline connects consecutive points with straight strokes. When closed
// is true the last point is joined back to the first.
func DrawPolyline(dst draw.Image, points []image.Point, closed bool, c color.Color, thickness int) {
	if len(points) == 0 {
		return
	}
	if thickness < 1 {
		thickness = 1
	}
	if len(points) == 1 {
		stamp(dst, points[0].X, points[0].Y, c, thickness)
		return
	}
	for i := 0; i < len(points)-1; i++ {
		drawLine(dst, points[i], points[i+1], c, thickness)
	}
	if closed {
		drawLine(dst, points[len(points)-1], points[0], c, thickness)
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm, stamping a square
// brush of the given thickness at every step.
func drawLine(dst draw.Image, a, b image.Point, c color.Color, thickness int) {
	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	e := dx + dy
	for {
		stamp(dst, x, y, c, thickness)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// stamp paints a thickness x thickness square centred on (x, y). For even
// thickness the extra row and column go to the top-left.
func stamp(dst draw.Image, x, y int, c color.Color, thickness int) {
	bounds := dst.Bounds()
	lo := -(thickness / 2)
	hi := (thickness - 1) / 2
	for oy := lo; oy <= hi; oy++ {
		py := y + oy
		if py < bounds.Min.Y || py >= bounds.Max.Y {
			continue
		}
		for ox := lo; ox <= hi; ox++ {
			px := x + ox
			if px < bounds.Min.X || px >= bounds.Max.X {
				continue
			}
			dst.Set(px, py, c)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
