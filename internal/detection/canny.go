package detection

import (
	"image"
)

// Quantization bounds for the gradient direction, scaled by 2^15 so the
// comparisons stay in integer arithmetic: tan(22.5°) and tan(67.5°).
const (
	tan22 = 13573 // round(0.41421356 * 32768)
	tan67 = 79109 // round(2.41421356 * 32768)
)

// cannyNative runs Canny edge detection on an already smoothed grayscale image.
//
// # Algorithm
//
//  1. Gradient computation: 3x3 Sobel operators for X and Y gradients with
//     replicated borders. magnitude = |Gx| + |Gy|
//
//  2. Non-maximum suppression: the direction is quantized to horizontal,
//     vertical or one of the two diagonals, and a pixel survives only if its
//     magnitude is a local maximum along that direction. Ties keep the pixel
//     that comes first (left or top), so a two-pixel ridge thins to one pixel.
//
//  3. Hysteresis thresholding:
//     - Pixels above high are strong edges (always kept)
//     - Pixels above low and at most high are weak edges
//     (kept only if 8-connected, possibly through other weak edges, to a strong edge)
//     - Pixels at or below low are discarded
//
// The output has the same size as gray with edges at 255 and everything else at 0.
func cannyNative(gray *image.Gray, low, high int) *image.Gray {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	result := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return result
	}
	if low > high {
		low, high = high, low
	}

	at := func(x, y int) int {
		x = clamp(x, 0, width-1)
		y = clamp(y, 0, height-1)
		return int(gray.Pix[gray.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)])
	}

	gradX := make([]int, width*height)
	gradY := make([]int, width*height)
	magnitude := make([]int, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tl, t, tr := at(x-1, y-1), at(x, y-1), at(x+1, y-1)
			l, r := at(x-1, y), at(x+1, y)
			bl, b, br := at(x-1, y+1), at(x, y+1), at(x+1, y+1)

			gx := (tr + 2*r + br) - (tl + 2*l + bl)
			gy := (bl + 2*b + br) - (tl + 2*t + tr)

			i := y*width + x
			gradX[i] = gx
			gradY[i] = gy
			magnitude[i] = absInt(gx) + absInt(gy)
		}
	}

	mag := func(x, y int) int {
		if x < 0 || y < 0 || x >= width || y >= height {
			return 0
		}
		return magnitude[y*width+x]
	}

	// Non-maximum suppression into three classes.
	const (
		none = iota
		weak
		strong
	)
	class := make([]uint8, width*height)
	stack := make([]image.Point, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			m := magnitude[i]
			if m <= low {
				continue
			}

			gx, gy := gradX[i], gradY[i]
			ax := absInt(gx)
			ay := absInt(gy) << 15

			// n1 is the neighbor before the pixel in raster order, n2 the one after.
			var n1, n2 int
			switch {
			case ay < ax*tan22:
				n1, n2 = mag(x-1, y), mag(x+1, y)
			case ay > ax*tan67:
				n1, n2 = mag(x, y-1), mag(x, y+1)
			case (gx < 0) != (gy < 0):
				n1, n2 = mag(x+1, y-1), mag(x-1, y+1)
			default:
				n1, n2 = mag(x-1, y-1), mag(x+1, y+1)
			}

			if !(m > n1 && m >= n2) {
				continue
			}

			if m > high {
				class[i] = strong
				stack = append(stack, image.Point{X: x, Y: y})
			} else {
				class[i] = weak
			}
		}
	}

	// Edge tracking by hysteresis: grow strong edges through weak ones.
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result.Pix[p.Y*result.Stride+p.X] = 255

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || ny < 0 || nx >= width || ny >= height {
					continue
				}
				j := ny*width + nx
				if class[j] == weak {
					class[j] = strong
					stack = append(stack, image.Point{X: nx, Y: ny})
				}
			}
		}
	}

	return result
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
