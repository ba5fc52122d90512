package imaging

import (
	"image"
	"image/color"
	"testing"
)

func countColor(img *image.NRGBA, c color.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestDrawPolyline_Thickness(t *testing.T) {
	tests := []struct {
		name      string
		thickness int
		want      int
	}{
		{"thin", 1, 11},
		{"two", 2, 24},
		{"three", 3, 39},
		{"zero treated as one", 0, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
			// Horizontal segment from x=5 to x=15 on row 10.
			DrawPolyline(img, []image.Point{{5, 10}, {15, 10}}, false, Green, tt.thickness)
			if got := countColor(img, Green); got != tt.want {
				t.Errorf("painted pixels: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDrawPolyline_Diagonal(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	DrawPolyline(img, []image.Point{{0, 0}, {9, 9}}, false, Green, 1)
	for i := 0; i < 10; i++ {
		if img.NRGBAAt(i, i) != Green {
			t.Errorf("pixel (%d,%d) not painted", i, i)
		}
	}
	if got := countColor(img, Green); got != 10 {
		t.Errorf("painted pixels: got %d, want 10", got)
	}
}

func TestDrawPolyline_SinglePoint(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	DrawPolyline(img, []image.Point{{2, 2}}, true, Green, 1)
	if got := countColor(img, Green); got != 1 {
		t.Errorf("painted pixels: got %d, want 1", got)
	}
}

func TestDrawPolyline_Clipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	DrawPolyline(img, []image.Point{{-10, 2}, {20, 2}}, false, Green, 1)
	if got := countColor(img, Green); got != 5 {
		t.Errorf("painted pixels: got %d, want 5", got)
	}
}

func TestDrawRectangle(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	DrawRectangle(img, image.Pt(2, 2), image.Pt(6, 5), Green, 1)

	// Perimeter of a 5x4 box.
	if got := countColor(img, Green); got != 14 {
		t.Errorf("painted pixels: got %d, want 14", got)
	}
	if img.NRGBAAt(4, 3) == Green {
		t.Error("interior should not be painted")
	}
}

func TestDrawContours(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	contours := [][]image.Point{
		{{1, 1}, {4, 1}, {4, 4}, {1, 4}},
		{{10, 10}},
		{},
	}

	DrawContours(img, contours, Green, 1)

	// 4x4 square perimeter plus one dot.
	if got := countColor(img, Green); got != 13 {
		t.Errorf("painted pixels: got %d, want 13", got)
	}
	if img.NRGBAAt(10, 10) != Green {
		t.Error("single-point contour should be drawn")
	}
}
