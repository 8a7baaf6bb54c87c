package detection

import (
	"fmt"
	"image"
)

// Background model tuning. The values follow the common defaults for
// adaptive Gaussian-mixture background subtraction: a 500-frame adaptation
// history, up to 5 modes per pixel, and a squared-Mahalanobis match
// threshold of 16.
const (
	modelHistory     = 500
	modelMaxModes    = 5
	varThreshold     = 16.0
	backgroundRatio  = 0.9
	initialDeviation = 15.0
	minVariance      = 4.0
	maxVariance      = 5 * initialDeviation * initialDeviation
	minModeWeight    = 0.005
)

// gaussMode is one Gaussian component of a pixel's background mixture.
type gaussMode struct {
	weight   float64
	mean     float64
	variance float64
}

// ForegroundSeparator separates foreground from background across an
// ordered sequence of same-sized grayscale frames.
//
// Each pixel is modeled as a mixture of Gaussians over its recent intensity
// history. Every Apply call updates the mixture with the new frame and
// classifies each pixel: if its value matches one of the high-weight modes
// that together explain most of the history, the pixel is background;
// otherwise it is foreground.
//
// A separator is a single-owner session. Its state evolves with every call
// and is reset only by constructing a new separator; calls must be made one
// frame at a time in strict temporal order, and never concurrently.
//
// The first frame only initializes the model, so its output classifies the
// entire frame as foreground and is not a usable result. ProcessSequence
// excludes it; callers of Apply must discard it themselves.
type ForegroundSeparator struct {
	width  int
	height int
	frames int

	// Per-pixel mode storage: modes[p*modelMaxModes : p*modelMaxModes+nModes[p]]
	// holds pixel p's active modes, sorted by descending weight.
	modes  []gaussMode
	nModes []uint8
}

// NewForegroundSeparator creates an empty background model session. The
// frame size is fixed by the first Apply call.
func NewForegroundSeparator() *ForegroundSeparator {
	return &ForegroundSeparator{}
}

// Apply advances the background model with one frame and returns that
// frame's binary foreground mask (255 foreground, 0 background) together
// with the foreground image: the source pixels copied through the mask onto
// a zeroed canvas.
//
// The first frame ever applied fixes the session's frame size; later frames
// of a different size are rejected. The returned buffers are freshly owned
// by the caller.
func (s *ForegroundSeparator) Apply(frame *image.Gray) (mask, fg *image.Gray, err error) {
	bounds := frame.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, nil, fmt.Errorf("foreground separator: empty frame")
	}

	if s.frames == 0 {
		s.width = width
		s.height = height
		s.modes = make([]gaussMode, width*height*modelMaxModes)
		s.nModes = make([]uint8, width*height)
	} else if width != s.width || height != s.height {
		return nil, nil, fmt.Errorf("foreground separator: frame size %dx%d does not match session size %dx%d",
			width, height, s.width, s.height)
	}

	s.frames++
	alpha := 1.0 / float64(min(s.frames, modelHistory))

	mask = image.NewGray(image.Rect(0, 0, width, height))
	fg = image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		off := frame.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := 0; x < width; x++ {
			p := y*width + x
			v := float64(frame.Pix[off+x])

			if s.updatePixel(p, v, alpha) {
				mask.Pix[y*mask.Stride+x] = 255
				fg.Pix[y*fg.Stride+x] = frame.Pix[off+x]
			}
		}
	}

	return mask, fg, nil
}

// updatePixel folds one observation into pixel p's mixture and reports
// whether the observation is foreground.
func (s *ForegroundSeparator) updatePixel(p int, v, alpha float64) bool {
	modes := s.modes[p*modelMaxModes : p*modelMaxModes+int(s.nModes[p])]

	// Find the first mode the observation matches, decaying every weight.
	matched := -1
	isNew := false
	for i := range modes {
		modes[i].weight *= 1 - alpha
		if matched >= 0 {
			continue
		}
		d := v - modes[i].mean
		if d*d < varThreshold*modes[i].variance {
			matched = i
		}
	}

	if matched >= 0 {
		m := &modes[matched]
		m.weight += alpha
		rho := alpha / m.weight
		d := v - m.mean
		m.mean += rho * d
		m.variance += rho * (d*d - m.variance)
		if m.variance < minVariance {
			m.variance = minVariance
		}
		if m.variance > maxVariance {
			m.variance = maxVariance
		}
	} else {
		// No mode explains the observation: start a new one, evicting the
		// weakest when the mixture is full.
		mode := gaussMode{
			weight:   alpha,
			mean:     v,
			variance: initialDeviation * initialDeviation,
		}
		if int(s.nModes[p]) < modelMaxModes {
			s.nModes[p]++
			modes = s.modes[p*modelMaxModes : p*modelMaxModes+int(s.nModes[p])]
		}
		modes[len(modes)-1] = mode
		matched = len(modes) - 1
		isNew = true
	}

	// Prune modes whose weight has decayed to noise, then renormalize.
	kept := modes[:0]
	for i := range modes {
		if modes[i].weight >= minModeWeight || i == matched {
			if i == matched {
				matched = len(kept)
			}
			kept = append(kept, modes[i])
		}
	}
	s.nModes[p] = uint8(len(kept))
	modes = kept

	total := 0.0
	for i := range modes {
		total += modes[i].weight
	}
	for i := range modes {
		modes[i].weight /= total
	}

	// Keep modes sorted by descending weight; the matched mode's weight
	// just grew, so bubble it toward the front.
	for matched > 0 && modes[matched].weight > modes[matched-1].weight {
		modes[matched], modes[matched-1] = modes[matched-1], modes[matched]
		matched--
	}

	// An observation no existing mode explained is foreground. Otherwise the
	// highest-weight modes that together account for backgroundRatio of the
	// history form the background, and a match outside that set is
	// foreground.
	if isNew {
		return true
	}
	cumulative := 0.0
	for i := 0; i < matched; i++ {
		cumulative += modes[i].weight
	}
	return cumulative > backgroundRatio
}

// ProcessSequence runs a fresh background model over an ordered sequence of
// frames and returns one foreground image per usable frame.
//
// The first frame is fed to the model for initialization but excluded from
// the result, because the model has not yet converged when it is processed;
// foreground frames are emitted only from the second input onward, so N
// inputs yield at most N-1 outputs. An empty input yields an empty result,
// not an error. All frames must share one size.
func ProcessSequence(frames []*image.Gray) ([]*image.Gray, error) {
	sep := NewForegroundSeparator()
	out := make([]*image.Gray, 0, len(frames))

	for i, frame := range frames {
		_, fg, err := sep.Apply(frame)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if i == 0 {
			continue
		}
		out = append(out, fg)
	}

	return out, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
