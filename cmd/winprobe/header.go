package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/linxsus/city-sub001/internal/capture"
	"github.com/linxsus/city-sub001/internal/console"
	"github.com/linxsus/city-sub001/internal/platform"
)

func runHeader(args []string) int {
	fs := flag.NewFlagSet("header", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file")
	output := fs.String("out", "", "Capture output path (default from config)")
	verbose := fs.Bool("verbose", false, "Print the sampled column colors row by row")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winprobe header [--out <file.png>] [--verbose]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Capture the emulator window, save the image for manual inspection,")
		fmt.Fprintln(os.Stderr, "and scan the center column for color transitions to estimate the")
		fmt.Fprintln(os.Stderr, "header-bar height. The estimate is a hint, not a measurement.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	outputPath := cfg.CapturePath
	if *output != "" {
		outputPath = *output
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	banner(os.Stdout, "HEADER BAR MEASUREMENT")

	w, err := findWindow(backend, cfg, "")
	if err != nil {
		if errors.Is(err, platform.ErrNoWindow) {
			reportNoWindow(backend, cfg)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("\nWindow found: %s\n", w.Title)
	fmt.Printf("Position: (%d, %d)\n", w.Bounds.X, w.Bounds.Y)
	fmt.Printf("Dimensions: %d x %d\n", w.Bounds.Width, w.Bounds.Height)

	// Clamp the capture region to the screen; a window hanging partly
	// off-screen would otherwise fail to capture.
	region := w.Bounds
	if displays, err := backend.Displays(); err == nil {
		region = platform.ClampToDisplay(region, displays)
	}

	fmt.Println("\nCapturing the window...")
	img, err := capture.Grab(region.X, region.Y, region.Width, region.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Capture failed: %v\n", err)
		return 1
	}

	if err := capture.Save(img, outputPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Capture saved: %s\n", outputPath)

	centerX := region.Width / 2
	fmt.Printf("\n--- Pixel analysis (column x=%d) ---\n", centerX)

	column := capture.ScanColumn(img, centerX, cfg.ScanRowLimit)
	transitions := capture.DetectTransitions(column, cfg.TransitionThreshold)

	if *verbose {
		fmt.Println("\nY    | RGB")
		rule(os.Stdout)
		for y, c := range column {
			fmt.Printf("%4d | (%3d, %3d, %3d)\n", y, c.R, c.G, c.B)
		}
	}

	fmt.Println("\n--- Detected transitions ---")
	if len(transitions) == 0 {
		fmt.Printf("No transitions above threshold %d in the first %d rows.\n",
			cfg.TransitionThreshold, len(column))
	}
	for i, tr := range transitions {
		if i >= 5 {
			break
		}
		fmt.Printf("Y=%d: (%d, %d, %d) -> (%d, %d, %d)  delta=%d\n",
			tr.Y, tr.Before.R, tr.Before.G, tr.Before.B,
			tr.After.R, tr.After.G, tr.After.B, tr.Delta)
	}

	if estimate, ok := capture.HeaderEstimate(transitions); ok {
		// The first strong transition is most likely the chrome/content edge.
		fmt.Printf("\n>>> ESTIMATED TOP HEADER: ~%d pixels <<<\n", estimate)
	}

	fmt.Println()
	rule(os.Stdout)
	fmt.Printf("Open '%s' and measure the header strip (title + navigation)\n", outputPath)
	fmt.Println("manually to confirm the estimate.")
	rule(os.Stdout)

	console.NewStdio().PressEnter("\nPress enter to quit...")
	return 0
}
