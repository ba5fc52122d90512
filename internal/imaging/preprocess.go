package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Luma weights used for color to grayscale conversion (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts img to a single-channel zero-origin image using the
// BT.601 luma weights. Gray input is copied unchanged.
func Grayscale(img image.Image) *image.Gray {
	if isEmpty(img) {
		return &image.Gray{}
	}
	if g, ok := img.(*image.Gray); ok {
		return cloneGray(g)
	}
	return redToGray(effect.GrayscaleWithWeights(img, lumaR, lumaG, lumaB))
}

// gaussian3 is the separable [1 2 1]/4 kernel applied in both directions,
// which is what a 3x3 Gaussian with automatically derived sigma reduces to.
var gaussian3 = func() convolution.Matrix {
	k := convolution.NewKernel(3, 3)
	copy(k.Matrix, []float64{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	})
	return k.Normalized()
}()

// GaussianBlur3 smooths gray with a 3x3 Gaussian kernel and rounds results
// to the nearest integer. Borders are mirrored without repeating the edge
// pixel (reflect-101), so the row outside the top edge is row 1.
func GaussianBlur3(gray *image.Gray) *image.Gray {
	if isEmpty(gray) {
		return &image.Gray{}
	}
	padded := padReflect101(gray)
	// Bias of 0.5 turns the library's truncation into rounding.
	blurred := convolution.Convolve(padded, gaussian3, &convolution.Options{Bias: 0.5, KeepAlpha: true})
	b := blurred.Bounds()
	return redToGray(blurred.SubImage(image.Rect(b.Min.X+1, b.Min.Y+1, b.Max.X-1, b.Max.Y-1)))
}

// padReflect101 returns a zero-origin copy of g with a one-pixel mirrored frame.
func padReflect101(g *image.Gray) *image.Gray {
	bounds := g.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w+2, h+2))
	for py := 0; py < h+2; py++ {
		sy := reflect101(py-1, h)
		for px := 0; px < w+2; px++ {
			sx := reflect101(px-1, w)
			dst.Pix[py*dst.Stride+px] = g.Pix[g.PixOffset(bounds.Min.X+sx, bounds.Min.Y+sy)]
		}
	}
	return dst
}

// reflect101 maps i into [0, n) by mirroring around the first and last index.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	if i < 0 {
		return -i
	}
	if i >= n {
		return 2*n - 2 - i
	}
	return i
}

// Binarize maps every pixel strictly brighter than level to white and every
// other pixel to black.
func Binarize(gray *image.Gray, level uint8) *image.Gray {
	if isEmpty(gray) {
		return &image.Gray{}
	}
	adjusted := imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		v := uint8(0)
		if c.R > level {
			v = 255
		}
		return color.NRGBA{R: v, G: v, B: v, A: 255}
	})
	return redToGray(adjusted)
}

// redToGray copies the red channel of an 8-bit RGBA-like image into a
// zero-origin Gray image. The source is expected to be gray already.
func redToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	var pix []uint8
	var stride int
	switch src := img.(type) {
	case *image.RGBA:
		pix, stride = src.Pix, src.Stride
	case *image.NRGBA:
		pix, stride = src.Pix, src.Stride
	default:
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				dst.Pix[y*dst.Stride+x] = uint8(r >> 8)
			}
		}
		return dst
	}

	for y := 0; y < bounds.Dy(); y++ {
		row := pix[y*stride:]
		for x := 0; x < bounds.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = row[x*4]
		}
	}
	return dst
}

func cloneGray(g *image.Gray) *image.Gray {
	bounds := g.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		srcOff := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+bounds.Dx()], g.Pix[srcOff:srcOff+bounds.Dx()])
	}
	return dst
}
