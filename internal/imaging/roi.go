package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidROI is returned when ROI coordinates are malformed, degenerate,
	// or fall outside the image.
	ErrInvalidROI = errors.New("invalid region of interest")

	// ErrEmptyImage is returned by operations that need at least one pixel.
	ErrEmptyImage = errors.New("image has no pixels")
)

// ROI is a rectangular region of interest given by two corner points.
//
// (X1, Y1) is the top-left corner and (X2, Y2) the bottom-right corner.
// For cropping the bottom-right corner is exclusive; the annotation
// rectangle is drawn through both corners.
type ROI struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ROIFromCoordinates builds an ROI from exactly four integers x1 y1 x2 y2.
func ROIFromCoordinates(coords []int) (ROI, error) {
	if len(coords) != 4 {
		return ROI{}, fmt.Errorf("%w: want 4 coordinates (x1 y1 x2 y2), got %d", ErrInvalidROI, len(coords))
	}
	return ROI{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
}

// TopLeft returns the top-left corner.
func (r ROI) TopLeft() image.Point { return image.Pt(r.X1, r.Y1) }

// BottomRight returns the bottom-right corner.
func (r ROI) BottomRight() image.Point { return image.Pt(r.X2, r.Y2) }

func (r ROI) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

// Validate checks that the ROI is non-degenerate and lies inside bounds.
func (r ROI) Validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("%w: %s must satisfy x1 < x2 and y1 < y2", ErrInvalidROI, r)
	}
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return fmt.Errorf("%w: %s outside image bounds (%d,%d)-(%d,%d)",
			ErrInvalidROI, r, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// Annotate returns a copy of img with the ROI outlined in c using the given
// stroke thickness. img itself is not modified. Corners outside the image
// are allowed; the stroke is clipped.
func Annotate(img image.Image, roi ROI, c color.Color, thickness int) *image.NRGBA {
	dst := imaging.Clone(img)
	DrawRectangle(dst, roi.TopLeft(), roi.BottomRight(), c, thickness)
	return dst
}

// Outline returns a zero-origin copy of img with every contour stroked as a
// closed polyline. Contour points are relative to img's top-left corner.
func Outline(img image.Image, contours [][]image.Point, c color.Color, thickness int) *image.NRGBA {
	dst := imaging.Clone(img)
	DrawContours(dst, contours, c, thickness)
	return dst
}

// Crop returns the ROI as a new zero-origin image.
//
// Crop follows array slicing rules instead of validating: the region is
// clamped to the image bounds and a degenerate region (x1 >= x2 or
// y1 >= y2 after clamping) yields an empty image. Use ROI.Validate first
// when degenerate input should be an error.
func Crop(img image.Image, roi ROI) *image.NRGBA {
	bounds := img.Bounds()
	x1 := clamp(roi.X1, bounds.Min.X, bounds.Max.X)
	y1 := clamp(roi.Y1, bounds.Min.Y, bounds.Max.Y)
	x2 := clamp(roi.X2, bounds.Min.X, bounds.Max.X)
	y2 := clamp(roi.Y2, bounds.Min.Y, bounds.Max.Y)
	if x1 >= x2 || y1 >= y2 {
		return &image.NRGBA{}
	}
	return imaging.Crop(img, image.Rect(x1, y1, x2, y2))
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
