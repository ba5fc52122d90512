//go:build gocv

package detection

import (
	"fmt"
	"image"

	"github.com/ironsheep/roi-edges/internal/imaging"
	"gocv.io/x/gocv"
)

// Backend names the implementation compiled into this binary.
const Backend = "gocv"

// Canny detects edges with OpenCV. See the native build for the contract.
func Canny(gray *image.Gray, lower, upper int) (*image.Gray, error) {
	if gray == nil || gray.Bounds().Empty() {
		return nil, fmt.Errorf("canny: %w", imaging.ErrEmptyImage)
	}

	src, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return nil, fmt.Errorf("canny: failed to convert image: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Canny(src, &dst, float32(lower), float32(upper))

	return matToGray(dst)
}

// FindExternalContours finds outer contours with OpenCV using external
// retrieval and simple chain approximation.
func FindExternalContours(edges *image.Gray) ([][]image.Point, error) {
	if edges == nil || edges.Bounds().Empty() {
		return nil, fmt.Errorf("contours: %w", imaging.ErrEmptyImage)
	}

	src, err := gocv.ImageGrayToMatGray(edges)
	if err != nil {
		return nil, fmt.Errorf("contours: failed to convert image: %w", err)
	}
	defer src.Close()

	contours := gocv.FindContours(src, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	return contours.ToPoints(), nil
}

func matToGray(m gocv.Mat) (*image.Gray, error) {
	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert mat: %w", err)
	}
	if g, ok := img.(*image.Gray); ok {
		return g, nil
	}
	return imaging.Grayscale(img), nil
}
