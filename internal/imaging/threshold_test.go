package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestMedianIntensity_Gray(t *testing.T) {
	tests := []struct {
		name string
		pix  []uint8
		want float64
	}{
		{"odd count", []uint8{9, 1, 5}, 5},
		{"even count averages", []uint8{1, 2, 3, 4}, 2.5},
		{"duplicates", []uint8{7, 7, 7, 200}, 7},
		{"extremes", []uint8{0, 255}, 127.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewGray(image.Rect(0, 0, len(tt.pix), 1))
			copy(img.Pix, tt.pix)

			got, err := MedianIntensity(img)
			if err != nil {
				t.Fatalf("MedianIntensity failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMedianIntensity_ColorPoolsChannels(t *testing.T) {
	// Every pixel contributes 10, 20 and 30.
	img := createInMemoryImage(3, 3, color.RGBA{10, 20, 30, 255})
	got, err := MedianIntensity(img)
	if err != nil {
		t.Fatalf("MedianIntensity failed: %v", err)
	}
	if got != 20 {
		t.Errorf("got %v, want 20", got)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	nrgba.SetNRGBA(1, 0, color.NRGBA{200, 200, 100, 255})
	// Samples: 0 0 0 100 200 200 -> (0+100)/2
	got, err = MedianIntensity(nrgba)
	if err != nil {
		t.Fatalf("MedianIntensity failed: %v", err)
	}
	if got != 50 {
		t.Errorf("got %v, want 50", got)
	}
}

func TestMedianIntensity_Empty(t *testing.T) {
	_, err := MedianIntensity(&image.Gray{})
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("got %v, want ErrEmptyImage", err)
	}
}

func TestAutoCannyThresholds(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		sigma float64
		want  Thresholds
	}{
		{"zero median", 0, 0.33, Thresholds{0, 0}},
		{"zero sigma", 128, 0, Thresholds{128, 128}},
		{"upper capped", 255, 0.33, Thresholds{170, 255}},
		{"full sigma", 100, 1, Thresholds{0, 200}},
		{"half sigma", 100, 0.5, Thresholds{50, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoCannyThresholds(tt.v, tt.sigma)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAutoCannyThresholds_Bracket(t *testing.T) {
	sigmas := []float64{0, 0.1, 0.33, 0.5, 0.75, 1}
	for v := 0; v <= 255; v++ {
		for _, sigma := range sigmas {
			th := AutoCannyThresholds(float64(v), sigma)
			if th.Lower < 0 || th.Upper > 255 {
				t.Fatalf("v=%d sigma=%v: out of range %+v", v, sigma, th)
			}
			if th.Lower > v || th.Upper < v {
				t.Fatalf("v=%d sigma=%v: %+v does not bracket the median", v, sigma, th)
			}
		}
	}
}

func TestAutoCannyThresholds_WidensWithSigma(t *testing.T) {
	for v := 0; v <= 255; v += 5 {
		prev := -1
		for s := 0; s <= 100; s++ {
			th := AutoCannyThresholds(float64(v), float64(s)/100)
			width := th.Upper - th.Lower
			if width < prev {
				t.Fatalf("v=%d sigma=%.2f: width %d shrank from %d", v, float64(s)/100, width, prev)
			}
			prev = width
		}
	}
}
