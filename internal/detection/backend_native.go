//go:build !gocv

package detection

import (
	"fmt"
	"image"

	"github.com/ironsheep/roi-edges/internal/imaging"
)

// Backend names the implementation compiled into this binary.
const Backend = "native"

// Canny detects edges in a smoothed grayscale image using lower and upper
// as hysteresis thresholds. The result is a binary map with edges at 255.
func Canny(gray *image.Gray, lower, upper int) (*image.Gray, error) {
	if gray == nil || gray.Bounds().Empty() {
		return nil, fmt.Errorf("canny: %w", imaging.ErrEmptyImage)
	}
	return cannyNative(gray, lower, upper), nil
}

// FindExternalContours returns the compressed outer boundaries of the
// foreground components in edges, ignoring components nested in holes.
func FindExternalContours(edges *image.Gray) ([][]image.Point, error) {
	if edges == nil || edges.Bounds().Empty() {
		return nil, fmt.Errorf("contours: %w", imaging.ErrEmptyImage)
	}
	return findExternalContoursNative(edges), nil
}
