package imaging

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DrawRectOverlay draws a red rectangle outline on a color copy of a
// grayscale image. It is a debug aid for visually verifying a located
// region; the input image is never modified.
func DrawRectOverlay(img *image.Gray, rect image.Rectangle, thickness int) *image.NRGBA {
	return DrawRectOverlayColor(img, rect, thickness, colorful.Hsv(0, 1, 1))
}

// DrawRectOverlayColor is DrawRectOverlay with a caller-supplied highlight
// color.
func DrawRectOverlayColor(img *image.Gray, rect image.Rectangle, thickness int, highlight colorful.Color) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			v := img.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y
			out.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	if thickness < 1 {
		thickness = 1
	}
	r, g, b := highlight.RGB255()
	stroke := color.NRGBA{R: r, G: g, B: b, A: 255}

	// Stroke the four sides as filled bands centered on the outline.
	half := thickness / 2
	fillBand(out, rect.Min.X-half, rect.Min.Y-half, rect.Max.X+half, rect.Min.Y-half+thickness, stroke) // top
	fillBand(out, rect.Min.X-half, rect.Max.Y-half, rect.Max.X+half, rect.Max.Y-half+thickness, stroke) // bottom
	fillBand(out, rect.Min.X-half, rect.Min.Y-half, rect.Min.X-half+thickness, rect.Max.Y+half, stroke) // left
	fillBand(out, rect.Max.X-half, rect.Min.Y-half, rect.Max.X-half+thickness, rect.Max.Y+half, stroke) // right

	return out
}

// fillBand fills the half-open rectangle (x0,y0)-(x1,y1), clipped to the
// image bounds.
func fillBand(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	bounds := img.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
