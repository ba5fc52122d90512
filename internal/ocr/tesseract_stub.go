//go:build !cgo

package ocr

import (
	"fmt"
	"image"
)

// Tesseract is unavailable in builds without cgo.
type Tesseract struct{}

// NewTesseract always fails with ErrUnavailable in builds without cgo.
func NewTesseract(opts Options) (*Tesseract, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: built without cgo", ErrUnavailable)
}

// Version reports that no library is linked.
func (t *Tesseract) Version() string {
	return "unavailable"
}

// Recognize always fails with ErrUnavailable.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	return "", ErrUnavailable
}
