package imaging

import "image"

// StructElem is a flat rectangular structuring element for morphological
// operations. The anchor is the element center (Width/2, Height/2), matching
// the usual convention for even-sized elements.
type StructElem struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// HorizontalElem returns a 1-pixel-tall line element of the given length.
func HorizontalElem(length int) StructElem {
	if length < 1 {
		length = 1
	}
	return StructElem{Width: length, Height: 1}
}

// VerticalElem returns a 1-pixel-wide line element of the given length.
func VerticalElem(length int) StructElem {
	if length < 1 {
		length = 1
	}
	return StructElem{Width: 1, Height: length}
}

// Erode computes the grayscale erosion of img with the given structuring
// element: each output pixel is the minimum of the input over the element
// window. Samples outside the image are treated as 255 so the border does not
// erode structures that reach it.
func Erode(img *image.Gray, se StructElem) (*image.Gray, error) {
	return morph(img, se, false)
}

// Dilate computes the grayscale dilation of img with the given structuring
// element: each output pixel is the maximum of the input over the reflected
// element window. Samples outside the image are treated as 0.
func Dilate(img *image.Gray, se StructElem) (*image.Gray, error) {
	return morph(img, se, true)
}

// Open performs a morphological opening (erosion followed by dilation) with
// the same structuring element. Opening removes structures smaller than the
// element while preserving the shape of larger ones, and is idempotent:
// opening an already-opened image reproduces it.
func Open(img *image.Gray, se StructElem) (*image.Gray, error) {
	eroded, err := Erode(img, se)
	if err != nil {
		return nil, err
	}
	return Dilate(eroded, se)
}

// ExtractHorizontalLines extracts the dominant horizontal linear structures
// from a grayscale image.
//
// The image is opened with a line element half the image width long and one
// pixel tall. A run of foreground pixels survives the opening only if it is
// at least that long, which isolates long straight horizontal edges (plate or
// gel boundaries) while erasing shorter noise and text. Pixels that are not
// part of a surviving structure become 0. The output has the same dimensions
// as the input.
func ExtractHorizontalLines(img *image.Gray) (*image.Gray, error) {
	return Open(img, HorizontalElem(img.Bounds().Dx()/2))
}

// ExtractVerticalLines extracts the dominant vertical linear structures from
// a grayscale image, using a line element half the image height long and one
// pixel wide. See ExtractHorizontalLines.
func ExtractVerticalLines(img *image.Gray) (*image.Gray, error) {
	return Open(img, VerticalElem(img.Bounds().Dy()/2))
}

// morph runs a min (erosion) or max (dilation) filter over the element
// window. Dilation uses the reflected element so that erode-then-dilate with
// the same element is a true opening even when the element size is even.
func morph(img *image.Gray, se StructElem, dilate bool) (*image.Gray, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}
	if se.Width < 1 || se.Height < 1 {
		se = StructElem{Width: max(se.Width, 1), Height: max(se.Height, 1)}
	}

	anchorX := se.Width / 2
	anchorY := se.Height / 2
	// Window offsets relative to the output pixel.
	loX, hiX := -anchorX, se.Width-1-anchorX
	loY, hiY := -anchorY, se.Height-1-anchorY
	if dilate {
		loX, hiX = -hiX, -loX
		loY, hiY = -hiY, -loY
	}

	out := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var best uint8
			if !dilate {
				best = 255
			}
			for dy := loY; dy <= hiY; dy++ {
				py := y + dy
				if py < 0 || py >= height {
					continue // outside samples keep the border-neutral value
				}
				for dx := loX; dx <= hiX; dx++ {
					px := x + dx
					if px < 0 || px >= width {
						continue
					}
					v := img.GrayAt(px+bounds.Min.X, py+bounds.Min.Y).Y
					if dilate {
						if v > best {
							best = v
						}
					} else if v < best {
						best = v
					}
				}
			}
			out.Pix[y*out.Stride+x] = best
		}
	}

	return out, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
