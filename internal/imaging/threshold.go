package imaging

import (
	"fmt"
	"image"
	"math"
)

// DefaultSigma is the spread around the median used for automatic Canny
// thresholds.
const DefaultSigma = 0.33

// Thresholds holds the hysteresis bounds passed to the Canny detector.
type Thresholds struct {
	Lower int
	Upper int
}

func (t Thresholds) String() string {
	return fmt.Sprintf("lower=%d upper=%d", t.Lower, t.Upper)
}

// AutoCannyThresholds derives Canny thresholds from a median intensity v:
// lower = floor(max(0, (1-sigma)*v)) and upper = floor(min(255, (1+sigma)*v)).
// Lower never exceeds upper for sigma >= 0.
func AutoCannyThresholds(v, sigma float64) Thresholds {
	lower := math.Max(0, (1.0-sigma)*v)
	upper := math.Min(255, (1.0+sigma)*v)
	return Thresholds{Lower: int(lower), Upper: int(upper)}
}

// MedianIntensity returns the median of every 8-bit sample in img. For color
// images all three channels of every pixel are pooled together; gray images
// contribute one sample per pixel. With an even sample count the two middle
// values are averaged.
func MedianIntensity(img image.Image) (float64, error) {
	if isEmpty(img) {
		return 0, ErrEmptyImage
	}

	var hist [256]int
	bounds := img.Bounds()

	switch src := img.(type) {
	case *image.Gray:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			off := src.PixOffset(bounds.Min.X, y)
			for _, v := range src.Pix[off : off+bounds.Dx()] {
				hist[v]++
			}
		}
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			off := src.PixOffset(bounds.Min.X, y)
			row := src.Pix[off : off+bounds.Dx()*4]
			for i := 0; i < len(row); i += 4 {
				hist[row[i]]++
				hist[row[i+1]]++
				hist[row[i+2]]++
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				hist[r>>8]++
				hist[g>>8]++
				hist[b>>8]++
			}
		}
	}

	return medianFromHistogram(&hist), nil
}

// medianFromHistogram finds the median of the samples counted in hist.
func medianFromHistogram(hist *[256]int) float64 {
	total := 0
	for _, n := range hist {
		total += n
	}
	if total == 0 {
		return 0
	}

	// Zero-based ranks of the middle sample(s).
	lo := (total - 1) / 2
	hi := total / 2

	loVal, hiVal := -1, -1
	seen := 0
	for v, n := range hist {
		if n == 0 {
			continue
		}
		seen += n
		if loVal < 0 && seen > lo {
			loVal = v
		}
		if seen > hi {
			hiVal = v
			break
		}
	}
	return float64(loVal+hiVal) / 2
}
