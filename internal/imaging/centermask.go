package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// maskPad is the synthetic background border added around the all-foreground
// mask before the distance transform. The 3x3 chamfer pass only ever samples
// the immediately adjacent ring, so one pixel keeps the transform near the
// true border unaffected by the image edge.
const maskPad = 1

// DistanceMetric describes the step costs of a 3x3 chamfer distance
// transform: Ortho is the cost of a horizontal or vertical step and Diag the
// cost of a diagonal step.
type DistanceMetric struct {
	Name  string `json:"name"`
	Ortho int    `json:"ortho"`
	Diag  int    `json:"diag"`
}

// Chamfer metrics with a 3x3 neighborhood.
var (
	// Chebyshev is the chessboard metric: max of the absolute coordinate
	// differences along each axis.
	Chebyshev = DistanceMetric{Name: "chebyshev", Ortho: 1, Diag: 1}

	// CityBlock is the Manhattan metric: sum of the absolute coordinate
	// differences.
	CityBlock = DistanceMetric{Name: "cityblock", Ortho: 1, Diag: 2}
)

// CenterMask is a normalized radial weighting mask. Values lie in [0, 1],
// are 1.0 at the geometric center of the mask, and are monotonically
// non-increasing along any ray from the center to the border. The mask is
// immutable after creation.
type CenterMask struct {
	width  int
	height int
	data   []float64
}

// Width returns the mask width in pixels.
func (m *CenterMask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *CenterMask) Height() int { return m.height }

// At returns the mask weight at (x, y).
func (m *CenterMask) At(x, y int) float64 {
	return m.data[y*m.width+x]
}

// GenerateCenterMask builds a radial center-weighting mask of the requested
// size using the Chebyshev metric.
//
// Returns:
//   - *CenterMask: Mask near 1.0 at the image center, decaying toward 0 at
//     the border.
//   - error: ErrEmptyImage if either dimension is zero.
//
// # Algorithm
//
// The mask starts fully foreground, is padded on all sides with a synthetic
// zero border, and a 3x3 chamfer distance transform assigns each pixel its
// distance to the nearest background pixel. Since the only background is the
// padded frame, distance increases monotonically from the border inward. The
// values are normalized by the maximum observed distance and the padding is
// stripped back off.
//
// For non-square sizes the Chebyshev metric is not radially symmetric, so
// the decay is anisotropic. That is the documented behavior of this mask,
// not a defect.
func GenerateCenterMask(width, height int) (*CenterMask, error) {
	return GenerateCenterMaskMetric(width, height, Chebyshev)
}

// GenerateCenterMaskMetric is GenerateCenterMask with a caller-supplied
// chamfer metric.
func GenerateCenterMaskMetric(width, height int, metric DistanceMetric) (*CenterMask, error) {
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	padded := padForeground(width, height)
	dist := chamferDistance(padded, metric)

	maxDist := 0
	for _, d := range dist {
		if d > maxDist {
			maxDist = d
		}
	}

	// Strip the padding while normalizing by the maximum distance.
	mask := &CenterMask{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
	pw := width + 2*maskPad
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mask.data[y*width+x] = float64(dist[(y+maskPad)*pw+(x+maskPad)]) / float64(maxDist)
		}
	}
	return mask, nil
}

// padForeground builds an all-foreground image of the requested size pasted
// onto a black canvas maskPad pixels larger on every side.
func padForeground(width, height int) *image.Gray {
	ones := imaging.New(width, height, color.White)
	canvas := imaging.New(width+2*maskPad, height+2*maskPad, color.Black)
	pasted := imaging.Paste(canvas, ones, image.Pt(maskPad, maskPad))

	gray := image.NewGray(pasted.Bounds())
	for y := 0; y < gray.Bounds().Dy(); y++ {
		for x := 0; x < gray.Bounds().Dx(); x++ {
			gray.Pix[y*gray.Stride+x] = pasted.NRGBAAt(x, y).R
		}
	}
	return gray
}

// chamferDistance computes the two-pass 3x3 chamfer distance of every pixel
// to the nearest zero-valued pixel.
func chamferDistance(img *image.Gray, metric DistanceMetric) []int {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	const inf = 1 << 30

	dist := make([]int, width*height)
	for i := range dist {
		if img.Pix[(i/width)*img.Stride+i%width] == 0 {
			dist[i] = 0
		} else {
			dist[i] = inf
		}
	}

	relax := func(i, j, cost int) {
		if d := dist[j] + cost; d < dist[i] {
			dist[i] = d
		}
	}

	// Forward pass: upper-left half of the 3x3 mask.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if dist[i] == 0 {
				continue
			}
			if x > 0 {
				relax(i, i-1, metric.Ortho)
			}
			if y > 0 {
				relax(i, i-width, metric.Ortho)
				if x > 0 {
					relax(i, i-width-1, metric.Diag)
				}
				if x < width-1 {
					relax(i, i-width+1, metric.Diag)
				}
			}
		}
	}

	// Backward pass: lower-right half.
	for y := height - 1; y >= 0; y-- {
		for x := width - 1; x >= 0; x-- {
			i := y*width + x
			if dist[i] == 0 {
				continue
			}
			if x < width-1 {
				relax(i, i+1, metric.Ortho)
			}
			if y < height-1 {
				relax(i, i+width, metric.Ortho)
				if x < width-1 {
					relax(i, i+width+1, metric.Diag)
				}
				if x > 0 {
					relax(i, i+width-1, metric.Diag)
				}
			}
		}
	}

	return dist
}
