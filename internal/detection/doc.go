// Package detection locates rectangular regions of interest in preprocessed
// grayscale images and separates foreground from background across an image
// sequence.
//
// The region locators consume binarized or edge-bearing images, typically
// the output of the imaging package's gradient or line extraction, but they
// operate on any single-channel image. Foreground separation maintains a
// per-pixel adaptive Gaussian-mixture background model across an ordered
// frame sequence.
//
// # Foreground/Background Convention
//
// The region locators classify a pixel as foreground when its intensity is
// non-zero and background when it is zero. The foreground separator instead
// classifies statistically: pixels whose recent history the background model
// explains are background, pixels that changed are foreground.
//
// # No-Region Results
//
// BoundingRect reports absence of any foreground pixel through its boolean
// result while physically preserving the legacy sentinel rectangle (negative
// width and height). Callers must check the boolean; the sentinel values are
// deliberate and are never clamped into a valid-looking rectangle.
//
// # Sessions
//
// ForegroundSeparator is a single-owner, sequential-call session: exactly
// one caller may advance it, one frame at a time, in order. It holds no
// locks; concurrent Apply calls on the same session are a caller bug. All
// other functions in this package are stateless and safe to call
// concurrently on different images.
package detection
