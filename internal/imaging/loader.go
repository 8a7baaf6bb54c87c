package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/anthonynsimon/bild/effect"
)

// ImageCache provides thread-safe caching of loaded grayscale images to
// avoid redundant disk reads.
//
// The cache stores decoded single-channel images keyed by their file path.
// Decoded images are converted to grayscale before caching, so every image
// handed out by the cache already satisfies the single-channel contract of
// this package. Once an image is loaded, subsequent Load() calls for the
// same path return the cached copy without disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines. Images held
// by the cache must be treated as immutable by callers; the transforms in
// this package never mutate their input, but a caller that writes into a
// cached buffer will corrupt every later Load() of the same path.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*image.Gray
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*image.Gray),
	}
}

// Load retrieves a grayscale image from the cache or loads it from disk if
// not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, and GIF.
//
// Returns:
//   - *image.Gray: The decoded image, converted to a single channel if the
//     source carried color.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) will result in separate
// cache entries.
func (c *ImageCache) Load(path string) (*image.Gray, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	img := ToGray(decoded)

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*image.Gray)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing. After eviction,
// the next Load() call for this path will read from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ToGray converts an arbitrary decoded image to a freshly allocated
// single-channel grayscale buffer. Color input is converted with luminance
// weighting; input that is already *image.Gray is copied so the returned
// buffer is independently owned.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, width, height))

	if src, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+width], src.Pix[i:i+width])
		}
		return out
	}

	// Luminance conversion; the result has equal channels, keep one.
	rgba := effect.Grayscale(img)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Pix[y*out.Stride+x] = rgba.Pix[y*rgba.Stride+x*4]
		}
	}
	return out
}
