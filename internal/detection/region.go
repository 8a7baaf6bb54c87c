package detection

import "image"

// Rect is a rectangle expressed as its top-left corner and an extent.
//
// Extents follow the inclusive max-minus-min convention of the locators
// below: a single foreground pixel produces Width == Height == 0. When
// BoundingRect finds no foreground at all, Width and Height are negative
// (see BoundingRect); such a Rect means "no region", not a valid crop.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bounds returns the rectangle as a standard image.Rectangle. The mapping is
// numerically direct and deliberately skips image.Rect's corner swapping, so
// a degenerate no-region Rect yields an empty rectangle instead of a
// valid-looking one.
func (r Rect) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(r.Left, r.Top),
		Max: image.Pt(r.Left+r.Width, r.Top+r.Height),
	}
}

// BoundingRect computes the bounding rectangle of all non-zero pixels in a
// grayscale image.
//
// Returns:
//   - Rect: Rect(minX, minY, maxX-minX, maxY-minY) over the non-zero pixels,
//     with inclusive max-min extents.
//   - bool: false when the image contains no non-zero pixel.
//
// When no non-zero pixel exists the min/max trackers retain their sentinel
// initialization (minX = width-1, maxX = 0, minY = height-1, maxY = 0),
// which yields negative Width and Height. The sentinel rectangle is returned
// as-is for compatibility with legacy callers; it must not be clamped.
func BoundingRect(img *image.Gray) (Rect, bool) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	leftMost, rightMost := width-1, 0
	topMost, bottomMost := height-1, 0
	found := false

	for y := 0; y < height; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		row := img.Pix[off : off+width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			found = true
			if x < leftMost {
				leftMost = x
			}
			if x > rightMost {
				rightMost = x
			}
			if y < topMost {
				topMost = y
			}
			if y > bottomMost {
				bottomMost = y
			}
		}
	}

	return Rect{
		Left:   leftMost,
		Top:    topMost,
		Width:  rightMost - leftMost,
		Height: bottomMost - topMost,
	}, found
}

// InnermostRect finds the innermost rectangle reachable from the image
// center by four orthogonal scans.
//
// From the exact center pixel (width/2, height/2), four independent rays are
// scanned outward (up, down, left, right) until the first non-zero pixel is
// encountered. A ray that reaches the image boundary without hitting
// foreground defaults to the corresponding edge: 0 for up and left, height
// or width for down and right.
//
// Unlike BoundingRect this finds the nearest foreground pixel to the center
// along each axis, not the global extent. It is intended for locating a
// roughly centered rectangular frame around an already-segmented object and
// is only meaningful when the center pixel itself lies inside or very near
// the background region.
func InnermostRect(img *image.Gray) Rect {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	centerX := width / 2
	centerY := height / 2
	up, down, left, right := 0, height, 0, width

	at := func(x, y int) uint8 {
		return img.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
	}

	for y := centerY; y >= 0; y-- {
		if at(centerX, y) != 0 {
			up = y
			break
		}
	}
	for y := centerY; y < height; y++ {
		if at(centerX, y) != 0 {
			down = y
			break
		}
	}
	for x := centerX; x >= 0; x-- {
		if at(x, centerY) != 0 {
			left = x
			break
		}
	}
	for x := centerX; x < width; x++ {
		if at(x, centerY) != 0 {
			right = x
			break
		}
	}

	return Rect{
		Left:   left,
		Top:    up,
		Width:  right - left,
		Height: down - up,
	}
}
