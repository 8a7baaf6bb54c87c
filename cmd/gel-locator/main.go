package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	disintegration "github.com/disintegration/imaging"

	"github.com/ironsheep/gel-locator/internal/detection"
	"github.com/ironsheep/gel-locator/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gel-locator %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		outputDir string
		overwrite bool
		debug     bool
		verbose   bool
	)
	flag.StringVar(&outputDir, "output-dir", "", "Output directory for cropped images")
	flag.BoolVar(&overwrite, "overwrite", false, "Overwrite input images in place")
	flag.BoolVar(&debug, "debug", false, "Write an overlay image showing the located region")
	flag.BoolVar(&verbose, "verbose", false, "Print per-file debug information")
	flag.Parse()

	// Log to stderr; stdout stays clean for scripting.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("GEL_LOCATOR_LOG_LEVEL") == "debug" {
		verbose = true
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] image_files...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if !overwrite && outputDir == "" {
		fmt.Fprintln(os.Stderr, "ERROR: provide -output-dir or -overwrite")
		os.Exit(2)
	}

	cache := imaging.NewImageCache()
	failures := 0

	for i, filename := range files {
		if err := processFile(cache, filename, outputDir, overwrite, debug, verbose); err != nil {
			log.Printf("[%d/%d] skipping %s: %v", i+1, len(files), filename, err)
			failures++
			continue
		}
		if verbose {
			log.Printf("[%d/%d] processed %s", i+1, len(files), filename)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// processFile locates the gel region in one file and writes the cropped
// result, plus an overlay image when debug output is requested.
func processFile(cache *imaging.ImageCache, filename, outputDir string, overwrite, debug, verbose bool) error {
	img, err := cache.Load(filename)
	if err != nil {
		return err
	}

	grad, err := imaging.GradientMagnitude(img)
	if err != nil {
		return err
	}
	horiz, err := imaging.ExtractHorizontalLines(grad)
	if err != nil {
		return err
	}
	vert, err := imaging.ExtractVerticalLines(grad)
	if err != nil {
		return err
	}

	region, ok := detection.BoundingRect(maxCombine(horiz, vert))
	if !ok {
		return fmt.Errorf("no region found")
	}
	if verbose {
		log.Printf("%s: region left=%d top=%d width=%d height=%d",
			filename, region.Left, region.Top, region.Width, region.Height)
	}

	outPath := filename
	if !overwrite {
		outPath = filepath.Join(outputDir, filepath.Base(filename))
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return err
		}
	}

	cropped := disintegration.Crop(img, region.Bounds())
	if err := disintegration.Save(cropped, outPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outPath, err)
	}

	if debug {
		overlay := imaging.DrawRectOverlay(img, region.Bounds(), 2)
		debugPath := debugFilename(outPath)
		if err := disintegration.Save(overlay, debugPath); err != nil {
			return fmt.Errorf("failed to save %s: %w", debugPath, err)
		}
	}

	return nil
}

// maxCombine merges two same-sized grayscale images by per-pixel maximum,
// keeping whichever directional structure survived at each location.
func maxCombine(a, b *image.Gray) *image.Gray {
	out := image.NewGray(a.Bounds())
	copy(out.Pix, a.Pix)
	for i, v := range b.Pix {
		if v > out.Pix[i] {
			out.Pix[i] = v
		}
	}
	return out
}

// debugFilename derives the overlay output path: foo.png -> foo.region.png.
func debugFilename(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".region" + ext
}
