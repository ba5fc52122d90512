package imaging

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Green is the default stroke color for ROI and contour outlines.
var Green = color.NRGBA{R: 0, G: 255, B: 0, A: 255}

// ParseColor parses a hex color string such as "#00FF00" or "#0f0" into an
// opaque color. The leading '#' is required.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
