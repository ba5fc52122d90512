// Package imaging provides the pixel-level stages of the ROI edge pipeline.
//
// It covers loading and saving images, describing and validating a region
// of interest, cropping, grayscale conversion, Gaussian smoothing,
// binarization, median-based Canny thresholds, and drawing rectangles and
// contour outlines.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Annotate is the one exception: the outline it draws passes through both
// corners, so the bottom-right corner is painted.
//
// # Copies
//
// Every operation returns a new zero-origin image and leaves its input
// untouched. Operations are stateless and safe to call concurrently on
// different images.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - ROI coordinate lists that do not hold exactly four values
//   - Degenerate or out-of-bounds regions passed to ROI.Validate
//   - Empty images where at least one pixel is required
//   - File I/O errors during loading and saving
//
// Classifiable failures wrap ErrInvalidROI or ErrEmptyImage.
package imaging
