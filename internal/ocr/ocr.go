package ocr

import (
	"errors"
	"fmt"
	"image"
)

// ErrUnavailable is returned when this build or host cannot run Tesseract,
// either because the binary was built without cgo or because the requested
// language data is not installed.
var ErrUnavailable = errors.New("ocr: tesseract is not available")

// Defaults for Options.
const (
	DefaultLanguage    = "eng"
	DefaultPageSegMode = 3 // fully automatic page segmentation, no OSD
)

// Options configure a Tesseract recognizer.
type Options struct {
	// Language is a Tesseract language code such as "eng" or "deu".
	Language string

	// PageSegMode is the Tesseract page segmentation mode (0-13).
	PageSegMode int

	// TessdataPrefix overrides the directory holding *.traineddata files.
	// Empty means the Tesseract installation default.
	TessdataPrefix string
}

// DefaultOptions returns English with automatic page segmentation.
func DefaultOptions() Options {
	return Options{
		Language:    DefaultLanguage,
		PageSegMode: DefaultPageSegMode,
	}
}

// Validate checks that the options can be handed to Tesseract.
func (o Options) Validate() error {
	if o.Language == "" {
		return errors.New("ocr: language must not be empty")
	}
	if o.PageSegMode < 0 || o.PageSegMode > 13 {
		return fmt.Errorf("ocr: page segmentation mode %d out of range 0-13", o.PageSegMode)
	}
	return nil
}

// Recognizer extracts raw text from an image.
type Recognizer interface {
	Recognize(img image.Image) (string, error)
}

// Report formats the contents of the OCR text file for the named input image.
func Report(imageName, text string) string {
	return fmt.Sprintf("Below you can see the result of the OCR run on %s:\n \n %s", imageName, text)
}
