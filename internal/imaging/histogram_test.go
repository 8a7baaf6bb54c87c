package imaging

import (
	"image"
	"testing"
)

func TestComputeHistogram_CountsSum(t *testing.T) {
	tests := []struct {
		name  string
		build func() *image.Gray
	}{
		{"uniform", func() *image.Gray { return createGray(16, 16, 42) }},
		{"step edge", func() *image.Gray { return createStepEdge(100, 50, 30) }},
		{"single pixel", func() *image.Gray { return createGray(1, 1, 7) }},
		{"gradient fill", func() *image.Gray {
			img := image.NewGray(image.Rect(0, 0, 64, 64))
			for i := range img.Pix {
				img.Pix[i] = uint8(i % 256)
			}
			return img
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := tt.build()
			h, err := ComputeHistogram(img)
			if err != nil {
				t.Fatalf("ComputeHistogram failed: %v", err)
			}

			sum := 0
			for _, c := range h.Counts {
				sum += c
			}
			want := img.Bounds().Dx() * img.Bounds().Dy()
			if sum != want {
				t.Errorf("counts sum: got %d, want %d", sum, want)
			}
		})
	}
}

func TestComputeHistogram_Bins(t *testing.T) {
	img := createGray(10, 10, 200)
	h, err := ComputeHistogram(img)
	if err != nil {
		t.Fatalf("ComputeHistogram failed: %v", err)
	}

	if h.Counts[200] != 100 {
		t.Errorf("bin 200: got %d, want 100", h.Counts[200])
	}
	if h.Max() != 100 {
		t.Errorf("Max: got %d, want 100", h.Max())
	}
}

func TestComputeHistogram_EmptyImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 0, 0))
	if _, err := ComputeHistogram(img); err == nil {
		t.Fatal("expected error for zero-sized image")
	}
}

func TestHistogramRender_UniformImage(t *testing.T) {
	// A uniform image puts all mass in one bin: that bin renders at full
	// height, every other bin at zero height.
	img := createGray(20, 20, 99)
	h, err := ComputeHistogram(img)
	if err != nil {
		t.Fatalf("ComputeHistogram failed: %v", err)
	}

	plot := h.Render()
	if plot.Bounds().Dx() != 256 || plot.Bounds().Dy() != 256 {
		t.Fatalf("plot dimensions: got %dx%d, want 256x256", plot.Bounds().Dx(), plot.Bounds().Dy())
	}

	for y := 0; y < 256; y++ {
		if plot.GrayAt(99, y).Y != 255 {
			t.Errorf("populated bin not full height at y=%d", y)
		}
	}
	for _, bin := range []int{0, 98, 100, 255} {
		for y := 0; y < 256; y++ {
			if plot.GrayAt(bin, y).Y != 0 {
				t.Errorf("empty bin %d has pixel at y=%d", bin, y)
			}
		}
	}
}

func TestHistogramRender_ZeroMax(t *testing.T) {
	// A zero-valued histogram must render with no bars, not divide by zero.
	h := &Histogram{}
	plot := h.Render()
	for i, v := range plot.Pix {
		if v != 0 {
			t.Fatalf("zero-max histogram drew a bar at index %d", i)
		}
	}
}

func TestHistogramRenderWide(t *testing.T) {
	img := createStepEdge(100, 100, 50)
	h, err := ComputeHistogram(img)
	if err != nil {
		t.Fatalf("ComputeHistogram failed: %v", err)
	}

	plot := h.RenderWide()
	if plot.Bounds().Dx() != 1024 || plot.Bounds().Dy() != 800 {
		t.Fatalf("plot dimensions: got %dx%d, want 1024x800", plot.Bounds().Dx(), plot.Bounds().Dy())
	}

	lit := 0
	for _, v := range plot.Pix {
		if v == 255 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("wide render drew nothing for a non-degenerate histogram")
	}
}

func TestHistogramRenderWide_FlatCounts(t *testing.T) {
	// Equal counts in every bin leave no min-max range; nothing is drawn.
	h := &Histogram{}
	for i := range h.Counts {
		h.Counts[i] = 5
	}

	plot := h.RenderWide()
	for i, v := range plot.Pix {
		if v != 0 {
			t.Fatalf("flat histogram drew a pixel at index %d", i)
		}
	}
}
