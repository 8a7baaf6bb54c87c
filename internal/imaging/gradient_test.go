package imaging

import (
	"image"
	"testing"
)

// createGray creates a grayscale test image filled with a constant value.
func createGray(width, height int, fill uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = fill
	}
	return img
}

// createStepEdge creates an image that is black left of the given column and
// white from it onward.
func createStepEdge(width, height, col int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := col; x < width; x++ {
			img.Pix[y*img.Stride+x] = 255
		}
	}
	return img
}

func TestGradientMagnitude_Uniform(t *testing.T) {
	img := createGray(50, 50, 128)

	grad, err := GradientMagnitude(img)
	if err != nil {
		t.Fatalf("GradientMagnitude failed: %v", err)
	}

	if grad.Bounds().Dx() != 50 || grad.Bounds().Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", grad.Bounds().Dx(), grad.Bounds().Dy())
	}

	for i, v := range grad.Pix {
		if v != 0 {
			t.Fatalf("uniform image should have zero gradient, got %d at index %d", v, i)
		}
	}
}

func TestGradientMagnitude_StepEdge(t *testing.T) {
	img := createStepEdge(100, 100, 50)

	grad, err := GradientMagnitude(img)
	if err != nil {
		t.Fatalf("GradientMagnitude failed: %v", err)
	}

	// The horizontal Sobel response saturates at the transition columns:
	// |dx| clamps to 255 and the equal-weight blend halves it.
	for _, x := range []int{49, 50} {
		if got := grad.GrayAt(x, 50).Y; got != 128 {
			t.Errorf("edge column %d: got %d, want 128", x, got)
		}
	}

	// Far from the edge the image is flat.
	for _, x := range []int{10, 90} {
		if got := grad.GrayAt(x, 50).Y; got != 0 {
			t.Errorf("flat column %d: got %d, want 0", x, got)
		}
	}
}

func TestGradientMagnitude_BorderExtension(t *testing.T) {
	// A horizontal ramp has a constant dx everywhere; reflect-101 borders
	// must not introduce spurious responses in the first and last columns.
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Pix[y*img.Stride+x] = uint8(x * 10)
		}
	}

	grad, err := GradientMagnitude(img)
	if err != nil {
		t.Fatalf("GradientMagnitude failed: %v", err)
	}

	// Interior: |dx| = (110-90)*(1+2+1) = 80, halved to 40. The reflected
	// border flips the ramp, cancelling the response in the outer columns.
	if got := grad.GrayAt(10, 10).Y; got != 40 {
		t.Errorf("interior: got %d, want 40", got)
	}
	if got := grad.GrayAt(0, 10).Y; got != 0 {
		t.Errorf("left border: got %d, want 0", got)
	}
}

func TestGradientMagnitude_EmptyImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 0, 0))
	if _, err := GradientMagnitude(img); err == nil {
		t.Fatal("expected error for zero-sized image")
	}
}

func TestReflect101(t *testing.T) {
	tests := []struct {
		c, n, want int
	}{
		{-1, 5, 1},
		{-2, 5, 2},
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 3},
		{6, 5, 2},
		{-1, 1, 0},
		{1, 1, 0},
	}

	for _, tt := range tests {
		if got := reflect101(tt.c, tt.n); got != tt.want {
			t.Errorf("reflect101(%d, %d) = %d, want %d", tt.c, tt.n, got, tt.want)
		}
	}
}
