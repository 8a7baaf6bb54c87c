package imaging

import (
	"errors"
	"image"
)

// ErrEmptyImage is returned when an operation receives an image with zero
// width or height.
var ErrEmptyImage = errors.New("image has zero width or height")

// Sobel 3x3 first-derivative kernels.
var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// GradientMagnitude computes a gradient-magnitude image from a grayscale
// image.
//
// Parameters:
//   - img: Single-channel source image.
//
// Returns:
//   - *image.Gray: Gradient image with the same dimensions as the input.
//   - error: ErrEmptyImage if the input has zero width or height.
//
// # Algorithm
//
// The directional derivatives along X and Y are computed with the 3x3 Sobel
// kernels, each response is folded to its absolute value and saturated to the
// byte range, and the two responses are combined as an equally weighted sum:
//
//	out = 0.5*|dx| + 0.5*|dy|
//
// rounded to the nearest integer and saturated to [0, 255]. Border pixels use
// reflect-101 extension (the row/column adjacent to the border is mirrored,
// excluding the border sample itself), so the output has the same dimensions
// as the input.
func GradientMagnitude(img *image.Gray) (*image.Gray, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	out := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var gx, gy int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					px := reflect101(x+kx, width)
					py := reflect101(y+ky, height)
					v := int(img.GrayAt(px+bounds.Min.X, py+bounds.Min.Y).Y)
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			ax := saturateByte(abs(gx))
			ay := saturateByte(abs(gy))
			// Equal-weight blend with round-half-up, as addWeighted does.
			out.Pix[y*out.Stride+x] = uint8((ax + ay + 1) / 2)
		}
	}

	return out, nil
}

// reflect101 maps an out-of-range coordinate back into [0, n) by mirroring
// about the border pixel without repeating it: for n=5 the extension reads
// ...2 1 | 0 1 2 3 4 | 3 2...
func reflect101(c, n int) int {
	if n == 1 {
		return 0
	}
	for c < 0 || c >= n {
		if c < 0 {
			c = -c
		}
		if c >= n {
			c = 2*n - 2 - c
		}
	}
	return c
}

func saturateByte(v int) int {
	if v > 255 {
		return 255
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
