// Package pipeline runs the ROI edge-detection stages in their fixed order:
// load, annotate, crop, grayscale and blur, threshold estimation, Canny,
// contour drawing and the optional OCR pass.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"github.com/ironsheep/roi-edges/internal/config"
	"github.com/ironsheep/roi-edges/internal/detection"
	"github.com/ironsheep/roi-edges/internal/imaging"
	"github.com/ironsheep/roi-edges/internal/ocr"
)

// Options are the per-run inputs that come from the command line.
type Options struct {
	// InputImage is the file name of the image inside the data directory.
	// It also prefixes every output file name.
	InputImage string

	// OutputDir receives the artifacts. It is created when missing.
	OutputDir string

	ROI imaging.ROI

	// Sigma overrides thresholds.sigma from the configuration when set.
	Sigma *float64

	// OCR enables the text recognition stage.
	OCR bool
}

// Result summarizes a completed run.
type Result struct {
	Info         *imaging.ImageInfo
	Thresholds   imaging.Thresholds
	ContourCount int
	OCRText      string

	// Artifacts lists the written files in the order they were produced.
	Artifacts []string
}

// Pipeline holds the configuration of one run. Each stage is a method that
// takes the previous stage's output explicitly.
type Pipeline struct {
	cfg        *config.Config
	opts       Options
	sigma      float64
	recognizer ocr.Recognizer
	artifacts  []string
}

/*
New checks the configuration and options and returns a ready pipeline.

A nil cfg means config.Default(). The recognizer is only required when
opts.OCR is set; a missing one is reported as ocr.ErrUnavailable.
*/
func New(cfg *config.Config, opts Options, recognizer ocr.Recognizer) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.InputImage == "" {
		return nil, errors.New("input image name must not be empty")
	}
	if opts.OutputDir == "" {
		return nil, errors.New("output directory must not be empty")
	}

	sigma := cfg.Thresholds.Sigma
	if opts.Sigma != nil {
		sigma = *opts.Sigma
	}
	if sigma < 0 {
		return nil, fmt.Errorf("%w: sigma %v must not be negative", config.ErrInvalid, sigma)
	}

	if opts.OCR && recognizer == nil {
		return nil, fmt.Errorf("OCR requested: %w", ocr.ErrUnavailable)
	}

	return &Pipeline{
		cfg:        cfg,
		opts:       opts,
		sigma:      sigma,
		recognizer: recognizer,
	}, nil
}

/*
Run executes every stage in order and stops at the first failure.

Files written before a failure are left in place. On success the returned
Result lists every artifact.
*/
func (p *Pipeline) Run() (*Result, error) {
	tl.Log(
		tl.Notice, palette.BlueBold, "%s edge detection for '%s' with ROI %s",
		"Starting", p.opts.InputImage, p.opts.ROI,
	)

	if err := p.ensureOutputDirectory(); err != nil {
		return nil, err
	}

	img, info, err := p.LoadImage()
	if err != nil {
		return nil, err
	}

	if _, err := p.DrawROI(img); err != nil {
		return nil, err
	}

	cropped, err := p.Crop(img)
	if err != nil {
		return nil, err
	}

	gray, blurred := p.GrayscaleAndBlur(cropped)

	thresholds, err := p.FindThresholds(img, blurred)
	if err != nil {
		return nil, err
	}

	edges, err := p.DetectEdges(blurred, thresholds)
	if err != nil {
		return nil, err
	}

	count, err := p.DrawContours(edges, cropped)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Info:         info,
		Thresholds:   thresholds,
		ContourCount: count,
	}

	if p.opts.OCR {
		text, err := p.PerformOCR(gray)
		if err != nil {
			return nil, err
		}
		result.OCRText = text
	} else {
		tl.Log(tl.Verbose, palette.BlueDim, "%s OCR, switch is off", "Skipping")
	}

	result.Artifacts = append([]string(nil), p.artifacts...)

	tl.Log(
		tl.Notice1, palette.GreenBold, "%s. %d files stored in '%s'",
		"Edge detection completed", len(result.Artifacts), p.opts.OutputDir,
	)
	for _, path := range result.Artifacts {
		tl.Log(tl.Info1, palette.Green, "  %s", filepath.Base(path))
	}

	return result, nil
}

// LoadImage reads <data_dir>/<input_image>.
func (p *Pipeline) LoadImage() (image.Image, *imaging.ImageInfo, error) {
	path := filepath.Join(p.cfg.DataDir, p.opts.InputImage)

	tl.Log(tl.Notice, palette.BlueBold, "%s image '%s'", "Loading", path)

	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := imaging.Describe(img, path)
	if err != nil {
		return nil, nil, err
	}

	tl.Log(
		tl.Info1, palette.Cyan, "Loaded %dx%d %s image (%d bytes)",
		info.Width, info.Height, info.Format, info.FileSizeBytes,
	)
	return img, info, nil
}

// DrawROI validates the ROI when roi.strict is set, then saves a copy of img
// with the ROI rectangle drawn on it.
func (p *Pipeline) DrawROI(img image.Image) (*image.NRGBA, error) {
	tl.Log(tl.Notice, palette.BlueBold, "%s region of interest %s", "Drawing", p.opts.ROI)

	if p.cfg.ROI.Strict {
		if err := p.opts.ROI.Validate(img.Bounds()); err != nil {
			return nil, err
		}
	}

	annotated := imaging.Annotate(img, p.opts.ROI, p.cfg.Annotate.StrokeColor(), p.cfg.Annotate.Thickness)
	if err := p.saveImage(annotated, "_with_ROI.jpg"); err != nil {
		return nil, err
	}
	return annotated, nil
}

// Crop cuts the ROI out of img and saves it. An empty crop is not saved;
// the edge stage reports it.
func (p *Pipeline) Crop(img image.Image) (*image.NRGBA, error) {
	tl.Log(tl.Notice, palette.BlueBold, "%s image to the region of interest", "Cropping")

	cropped := imaging.Crop(img, p.opts.ROI)
	if cropped.Bounds().Empty() {
		tl.Log(tl.Warning, palette.YellowBold, "ROI %s selects no pixels; %s", p.opts.ROI, "crop not saved")
		return cropped, nil
	}

	tl.Log(tl.Info1, palette.Cyan, "Cropped to %dx%d", cropped.Bounds().Dx(), cropped.Bounds().Dy())

	if err := p.saveImage(cropped, "_cropped.jpg"); err != nil {
		return nil, err
	}
	return cropped, nil
}

// GrayscaleAndBlur returns the grayscale crop and its 3x3 Gaussian blur.
func (p *Pipeline) GrayscaleAndBlur(cropped image.Image) (gray, blurred *image.Gray) {
	tl.Log(tl.Notice, palette.BlueBold, "%s crop to grayscale and blurring", "Converting")

	gray = imaging.Grayscale(cropped)
	blurred = imaging.GaussianBlur3(gray)
	return gray, blurred
}

// FindThresholds computes the Canny threshold pair from the median of the
// configured source: the full original image or the blurred crop.
func (p *Pipeline) FindThresholds(original image.Image, blurred *image.Gray) (imaging.Thresholds, error) {
	tl.Log(tl.Notice, palette.BlueBold, "%s Canny thresholds from the %s median", "Estimating", p.cfg.Thresholds.Source)

	var src image.Image = original
	if p.cfg.Thresholds.Source == config.SourceCrop {
		src = blurred
	}

	median, err := imaging.MedianIntensity(src)
	if err != nil {
		return imaging.Thresholds{}, fmt.Errorf("failed to estimate thresholds: %w", err)
	}

	t := imaging.AutoCannyThresholds(median, p.sigma)
	tl.Log(
		tl.Info1, palette.Cyan, "Median %.1f, sigma %.2f: lower %d, upper %d",
		median, p.sigma, t.Lower, t.Upper,
	)
	return t, nil
}

// DetectEdges runs Canny on the blurred crop.
func (p *Pipeline) DetectEdges(blurred *image.Gray, t imaging.Thresholds) (*image.Gray, error) {
	tl.Log(
		tl.Notice, palette.BlueBold, "%s Canny edge detection (%s backend) with thresholds %s",
		"Running", detection.Backend, t,
	)

	edges, err := detection.Canny(blurred, t.Lower, t.Upper)
	if err != nil {
		return nil, fmt.Errorf("edge detection failed: %w", err)
	}
	return edges, nil
}

// DrawContours outlines the external contours of the edge map on a copy of
// the crop, saves it and returns the number of contours.
func (p *Pipeline) DrawContours(edges *image.Gray, cropped image.Image) (int, error) {
	tl.Log(tl.Notice, palette.BlueBold, "%s contours around detected edges", "Drawing")

	contours, err := detection.FindExternalContours(edges)
	if err != nil {
		return 0, fmt.Errorf("contour detection failed: %w", err)
	}
	tl.Log(tl.Info1, palette.Cyan, "Found %d external contours", len(contours))

	letters := imaging.Outline(cropped, contours, p.cfg.Contours.StrokeColor(), p.cfg.Contours.Thickness)
	if err := p.saveImage(letters, "_letters.jpg"); err != nil {
		return 0, err
	}
	return len(contours), nil
}

// PerformOCR binarizes the unblurred grayscale crop, recognizes its text,
// cleans it and writes the report file. It returns the cleaned text.
func (p *Pipeline) PerformOCR(gray *image.Gray) (string, error) {
	tl.Log(tl.Notice, palette.BlueBold, "%s OCR on the binarized crop", "Running")

	binary := imaging.Binarize(gray, uint8(p.cfg.OCR.BinarizeThreshold))

	raw, err := p.recognizer.Recognize(binary)
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	text := ocr.CleanText(raw)
	tl.Log(tl.Info1, palette.Cyan, "Recognized %d characters", len(text))

	path := p.outputPath("_OCR_text.txt")
	report := ocr.Report(p.opts.InputImage, text)
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("failed to write OCR text %q: %w", path, err)
	}
	p.artifacts = append(p.artifacts, path)

	tl.Log(tl.Info1, palette.Green, "Saved OCR text to '%s'", path)
	return text, nil
}

func (p *Pipeline) ensureOutputDirectory() error {
	if err := os.MkdirAll(p.opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", p.opts.OutputDir, err)
	}
	tl.Log(tl.Info1, palette.Blue, "Ensured output directory '%s'", p.opts.OutputDir)
	return nil
}

// outputPath names an artifact after the input file, extension included.
func (p *Pipeline) outputPath(suffix string) string {
	return filepath.Join(p.opts.OutputDir, filepath.Base(p.opts.InputImage)+suffix)
}

func (p *Pipeline) saveImage(img image.Image, suffix string) error {
	path := p.outputPath(suffix)
	if err := imaging.Save(img, path, p.cfg.JPEGQuality); err != nil {
		return err
	}
	p.artifacts = append(p.artifacts, path)
	tl.Log(tl.Info1, palette.Green, "Saved '%s'", path)
	return nil
}
