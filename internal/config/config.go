// Package config holds the tunable settings of the ROI edge pipeline and
// loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ironsheep/roi-edges/internal/imaging"
	"github.com/ironsheep/roi-edges/internal/ocr"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Threshold sources.
const (
	SourceImage = "image" // median of the full, unblurred input image
	SourceCrop  = "crop"  // median of the blurred grayscale crop
)

// Config is the complete pipeline configuration.
type Config struct {
	DataDir     string     `yaml:"data_dir"`
	JPEGQuality int        `yaml:"jpeg_quality"`
	ROI         ROI        `yaml:"roi"`
	Annotate    Stroke     `yaml:"annotate"`
	Contours    Stroke     `yaml:"contours"`
	Thresholds  Thresholds `yaml:"thresholds"`
	OCR         OCR        `yaml:"ocr"`
}

// ROI controls region validation.
type ROI struct {
	// Strict rejects degenerate and out-of-bounds regions before any stage
	// runs. When false, the crop follows slicing rules and may come out empty.
	Strict bool `yaml:"strict"`
}

// Stroke is a line color and width in pixels.
type Stroke struct {
	Color     string `yaml:"color"`
	Thickness int    `yaml:"thickness"`
}

// Thresholds controls the automatic Canny thresholds.
type Thresholds struct {
	Sigma  float64 `yaml:"sigma"`
	Source string  `yaml:"source"`
}

// OCR controls binarization and Tesseract.
type OCR struct {
	BinarizeThreshold int    `yaml:"binarize_threshold"`
	Language          string `yaml:"language"`
	PageSegMode       int    `yaml:"page_seg_mode"`
	TessdataPrefix    string `yaml:"tessdata_prefix,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:     "data",
		JPEGQuality: 95,
		ROI:         ROI{Strict: true},
		Annotate:    Stroke{Color: "#00FF00", Thickness: 2},
		Contours:    Stroke{Color: "#00FF00", Thickness: 2},
		Thresholds:  Thresholds{Sigma: imaging.DefaultSigma, Source: SourceImage},
		OCR: OCR{
			BinarizeThreshold: 110,
			Language:          ocr.DefaultLanguage,
			PageSegMode:       ocr.DefaultPageSegMode,
		},
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalid)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg_quality %d out of range 1-100", ErrInvalid, c.JPEGQuality)
	}
	if err := c.Annotate.validate("annotate"); err != nil {
		return err
	}
	if err := c.Contours.validate("contours"); err != nil {
		return err
	}
	if c.Thresholds.Sigma < 0 {
		return fmt.Errorf("%w: thresholds.sigma %v must not be negative", ErrInvalid, c.Thresholds.Sigma)
	}
	switch c.Thresholds.Source {
	case SourceImage, SourceCrop:
	default:
		return fmt.Errorf("%w: thresholds.source %q must be %q or %q", ErrInvalid, c.Thresholds.Source, SourceImage, SourceCrop)
	}
	if c.OCR.BinarizeThreshold < 0 || c.OCR.BinarizeThreshold > 255 {
		return fmt.Errorf("%w: ocr.binarize_threshold %d out of range 0-255", ErrInvalid, c.OCR.BinarizeThreshold)
	}
	if err := c.OCROptions().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// OCROptions converts the OCR section to recognizer options.
func (c *Config) OCROptions() ocr.Options {
	return ocr.Options{
		Language:       c.OCR.Language,
		PageSegMode:    c.OCR.PageSegMode,
		TessdataPrefix: c.OCR.TessdataPrefix,
	}
}

// StrokeColor parses the stroke color. Call Validate first.
func (s Stroke) StrokeColor() color.NRGBA {
	c, err := imaging.ParseColor(s.Color)
	if err != nil {
		return imaging.Green
	}
	return c
}

func (s Stroke) validate(section string) error {
	if _, err := imaging.ParseColor(s.Color); err != nil {
		return fmt.Errorf("%w: %s.color: %v", ErrInvalid, section, err)
	}
	if s.Thickness < 1 {
		return fmt.Errorf("%w: %s.thickness %d must be at least 1", ErrInvalid, section, s.Thickness)
	}
	return nil
}
