package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/selection-engine/internal/engine"
	"github.com/ironsheep/selection-engine/internal/script"
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
			fmt.Printf("selection-demo %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	imagePath := flag.String("image", "", "source image (PNG, JPEG, or GIF)")
	scriptPath := flag.String("script", "", "gesture script file (default: stdin)")
	overlayPath := flag.String("out-overlay", "", "write selection overlay PNG here")
	outlinePath := flag.String("out-outline", "", "write marching-ants outline PNG here")
	zoom := flag.Float64("zoom", 1, "zoom factor for the overlay snapshot")
	flag.Usage = usage
	flag.Parse()

	// Log to stderr; stdout carries the script status lines.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug := os.Getenv("SELECTION_DEMO_LOG_LEVEL") == "debug"

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "selection-demo: -image is required")
		flag.Usage()
		os.Exit(2)
	}

	img, err := loadImage(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	eng := engine.NewFromImage(img)
	if debug {
		log.Printf("selection-demo v%s: loaded %s (%dx%d)",
			Version, *imagePath, eng.Width(), eng.Height())
	}

	var in io.Reader = os.Stdin
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer f.Close()
		in = f
	}

	runner := script.NewRunner(eng)
	if err := runner.Run(in, os.Stdout); err != nil {
		log.Fatalf("Script error: %v", err)
	}

	if *overlayPath != "" {
		out, err := overlayImage(img, eng, *zoom)
		if err != nil {
			log.Fatalf("Failed to build overlay: %v", err)
		}
		if err := imgio.Save(*overlayPath, out, imgio.PNGEncoder()); err != nil {
			log.Fatalf("Failed to write overlay: %v", err)
		}
		if debug {
			log.Printf("wrote overlay to %s", *overlayPath)
		}
	}

	if *outlinePath != "" {
		out := script.RenderOutline(img, eng)
		if err := imgio.Save(*outlinePath, out, imgio.PNGEncoder()); err != nil {
			log.Fatalf("Failed to write outline: %v", err)
		}
		if debug {
			log.Printf("wrote outline to %s", *outlinePath)
		}
	}
}

// overlayImage composites the selection tint over the source; at zoom
// factors other than 1 only the raw scaled snapshot is emitted, since
// the source is layer-sized.
func overlayImage(img image.Image, eng *engine.SelectionEngine, zoom float64) (image.Image, error) {
	if zoom == 1 {
		return script.RenderOverlay(img, eng), nil
	}
	return eng.OverlaySnapshot(zoom)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "selection-demo - run selection gestures against an image")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: selection-demo -image FILE [options] [< script]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  SELECTION_DEMO_LOG_LEVEL=debug    Enable debug logging")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Script commands (one per line, # for comments):")
	fmt.Fprintln(os.Stderr, "  wand X Y TOLERANCE MODE")
	fmt.Fprintln(os.Stderr, "  rect LEFT TOP RIGHT BOTTOM MODE")
	fmt.Fprintln(os.Stderr, "  ellipse CX CY RX RY MODE")
	fmt.Fprintln(os.Stderr, "  lasso MODE X1 Y1 X2 Y2 X3 Y3 ...")
	fmt.Fprintln(os.Stderr, "  brush RADIUS MODE X1 Y1 ...")
	fmt.Fprintln(os.Stderr, "  invert | clear | selectall | status")
	fmt.Fprintln(os.Stderr, "  expand RADIUS | contract RADIUS | tick N")
	fmt.Fprintln(os.Stderr, "  MODE: new | add | subtract | intersect")
}
