// Package detection finds edges and outer contours in grayscale images.
//
// Canny turns a smoothed grayscale image into a binary edge map, and
// FindExternalContours traces the outer boundary of every edge component
// that is not nested inside another one.
//
// # Backends
//
// The default build is pure Go. Building with the gocv tag swaps both
// functions for their OpenCV counterparts through gocv.io/x/gocv, which
// needs cgo and an OpenCV installation. Backend reports which one is
// compiled in.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Edge maps are zero-origin; contour points are relative to the map's origin.
//
// # Contour Form
//
// Contours are closed and compressed: only the end points of horizontal,
// vertical and diagonal runs are kept, so an axis-aligned rectangle comes
// back as its four corners.
package detection
