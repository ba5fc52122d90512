// Package ocr provides Optical Character Recognition (OCR) functionality using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) to extract text
// from an in-memory image, and cleans the raw output into a single line.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// Builds without cgo compile a stub whose recognizer always returns
// ErrUnavailable.
//
// # Supported Languages
//
// The default language is English ("eng"). Other languages can be specified
// using their Tesseract language codes:
//   - "eng" - English
//   - "deu" - German
//   - "fra" - French
//   - "spa" - Spanish
//   - See Tesseract documentation for full list
//
// # Text Cleanup
//
// CleanText flattens OCR output: line breaks and common OCR noise ("|", "!",
// "__", stray " - ") are removed and whitespace is collapsed. It is
// idempotent.
//
// # The OCR Switch
//
// Switch parses the command-line on/off value. Only the exact strings
// "True" and "False" are accepted; anything else is an error.
package ocr
