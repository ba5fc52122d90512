//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"slices"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract recognizes text through the gosseract bindings.
type Tesseract struct {
	opts Options
}

// NewTesseract returns a recognizer for opts. It fails with ErrUnavailable
// when the language data for opts.Language is not installed.
func NewTesseract(opts Options) (*Tesseract, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.TessdataPrefix == "" {
		// An empty listing means the data path could not be probed; let
		// Tesseract itself report the problem later.
		langs, err := gosseract.GetAvailableLanguages()
		if err == nil && len(langs) > 0 && !slices.Contains(langs, opts.Language) {
			return nil, fmt.Errorf("%w: language %q not installed (have %v)", ErrUnavailable, opts.Language, langs)
		}
	}
	return &Tesseract{opts: opts}, nil
}

// Version returns the linked Tesseract library version.
func (t *Tesseract) Version() string {
	return gosseract.Version()
}

// Recognize runs OCR over img and returns the raw text.
//
// The image is encoded as PNG in memory and handed to Tesseract with the
// configured language and page segmentation mode. No temporary file is
// written.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", fmt.Errorf("ocr: image has no pixels")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.opts.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(t.opts.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetPageSegMode(gosseract.PageSegMode(t.opts.PageSegMode)); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
