package imaging

import "image"

// Histogram plot dimensions. The compact render uses one column per bin; the
// wide render targets a 1024x800 inspection window.
const (
	histBins     = 256
	histPlotSize = 256
	wideWindowW  = 1024
	wideWindowH  = 800
)

// Histogram holds per-intensity pixel counts for a grayscale image.
//
// Counts has one entry per possible byte value; the counts always sum to the
// width times height of the source image.
type Histogram struct {
	Counts [histBins]int `json:"counts"`
}

// ComputeHistogram tallies one count per pixel into 256 bins indexed by
// intensity value.
func ComputeHistogram(img *image.Gray) (*Histogram, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	h := &Histogram{}
	for y := 0; y < height; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for _, v := range img.Pix[off : off+width] {
			h.Counts[v]++
		}
	}
	return h, nil
}

// Max returns the largest bin count.
func (h *Histogram) Max() int {
	best := 0
	for _, c := range h.Counts {
		if c > best {
			best = c
		}
	}
	return best
}

// Render draws the histogram as a 256x256 grayscale plot.
//
// Each bin becomes a vertical white bar, drawn left to right in bin order,
// whose height is count/max of the plot height; the most populated bin
// reaches the full height. A histogram with a zero maximum (possible only
// for unsupported empty input) renders with no bars rather than dividing by
// zero.
func (h *Histogram) Render() *image.Gray {
	plot := image.NewGray(image.Rect(0, 0, histBins, histPlotSize))

	max := h.Max()
	if max == 0 {
		return plot
	}

	for bin := 0; bin < histBins; bin++ {
		barHeight := h.Counts[bin] * histPlotSize / max
		for y := histPlotSize - barHeight; y < histPlotSize; y++ {
			plot.Pix[y*plot.Stride+bin] = 255
		}
	}
	return plot
}

// RenderWide draws the histogram as a 1024x800 polyline plot.
//
// Bin counts are min-max normalized to the window height and consecutive
// bins are connected with line segments, four columns per bin. This is the
// wide inspection render; Render is the compact per-bin bar form.
func (h *Histogram) RenderWide() *image.Gray {
	plot := image.NewGray(image.Rect(0, 0, wideWindowW, wideWindowH))

	lo, hi := h.Counts[0], h.Counts[0]
	for _, c := range h.Counts[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	if hi == lo {
		return plot
	}

	binW := wideWindowW / histBins
	norm := func(c int) int {
		return (c - lo) * wideWindowH / (hi - lo)
	}
	for bin := 1; bin < histBins; bin++ {
		drawSegment(plot,
			binW*(bin-1), wideWindowH-norm(h.Counts[bin-1]),
			binW*bin, wideWindowH-norm(h.Counts[bin]))
	}
	return plot
}

// drawSegment draws a white line segment using integer Bresenham stepping,
// clipped to the plot bounds.
func drawSegment(plot *image.Gray, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	w := plot.Bounds().Dx()
	h := plot.Bounds().Dy()
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			plot.Pix[y0*plot.Stride+x0] = 255
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
