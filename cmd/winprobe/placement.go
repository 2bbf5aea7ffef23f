package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/linxsus/city-sub001/internal/probe"
)

func runPlacement(args []string) int {
	fs := flag.NewFlagSet("placement", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file")
	ratio := fs.Float64("ratio", 0, "Simulate a single case with this window ratio")
	referenceWidth := fs.Int("reference-width", 0, "Reference region width (default from config)")
	targetHeight := fs.Int("target-height", 0, "Target height (default from config)")
	configuredX := fs.Int("x", 0, "Configured X position")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winprobe placement [--ratio <r>] [--x <px>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Simulate the ratio-based placement logic. Without --ratio the four")
		fmt.Fprintln(os.Stderr, "canonical cases are run (exact fit, too wide, too narrow, non-zero X).")
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
	refW := cfg.ReferenceWidth
	if *referenceWidth > 0 {
		refW = *referenceWidth
	}
	height := cfg.TargetHeight
	if *targetHeight > 0 {
		height = *targetHeight
	}

	banner(os.Stdout, "PLACEMENT LOGIC SIMULATION")

	if *ratio > 0 {
		simulatePlacement(refW, height, *ratio, *configuredX)
		return 0
	}

	exact := float64(refW) / float64(height)

	fmt.Println("\n--- CASE 1: exact ratio ---")
	simulatePlacement(refW, height, exact, 0)

	fmt.Println("\n--- CASE 2: window too wide (larger ratio) ---")
	simulatePlacement(refW, height, 0.7, 0)

	fmt.Println("\n--- CASE 3: window too narrow (smaller ratio) ---")
	simulatePlacement(refW, height, 0.5, 0)

	fmt.Println("\n--- CASE 4: non-zero configured X, window too wide ---")
	simulatePlacement(refW, height, 0.7, 100)

	fmt.Println()
	banner(os.Stdout, "CONCLUSION")
	fmt.Println("- The reference width defines the anchored content region")
	fmt.Println("- The real width is derived from the window ratio")
	fmt.Println("- Too wide: shift left so the region's right edge stays put (X may go negative)")
	fmt.Println("- Too narrow: configuration error, placement must not be attempted")

	return 0
}

// simulatePlacement prints the full derivation for one placement case.
func simulatePlacement(referenceWidth, targetHeight int, ratio float64, configuredX int) {
	rule(os.Stdout)
	fmt.Println("Configuration:")
	fmt.Printf("  - Reference width: %dpx\n", referenceWidth)
	fmt.Printf("  - Target height:   %dpx\n", targetHeight)
	fmt.Printf("  - Configured X:    %dpx\n", configuredX)
	fmt.Printf("  - Window ratio:    %.3f\n", ratio)

	p, err := probe.ComputePlacement(referenceWidth, targetHeight, ratio, configuredX)

	fmt.Println("\nDerivation:")
	fmt.Printf("  - rendered width = floor(%d * %.3f) = %dpx\n", targetHeight, ratio, p.RenderedWidth)

	switch {
	case errors.Is(err, probe.ErrTooNarrow):
		fmt.Println("\nResult: ERROR")
		fmt.Printf("  - Rendered width (%dpx) < reference width (%dpx)\n", p.RenderedWidth, referenceWidth)
		fmt.Println("  - The content region does not fit; placement must not be attempted")
		fmt.Printf("  - Fallback position: x=%d, y=%d (flagged as failure)\n", p.OffsetX, p.OffsetY)

	case p.Status == probe.StatusTooWide:
		shift := p.RenderedWidth - referenceWidth
		fmt.Println("\nResult: ADJUSTED")
		fmt.Printf("  - Rendered width (%dpx) > reference width (%dpx)\n", p.RenderedWidth, referenceWidth)
		fmt.Printf("  - Shift: %dpx\n", shift)
		fmt.Printf("  - Adjusted position: x = %d - %d = %dpx\n", configuredX, shift, p.OffsetX)
		fmt.Printf("  - Final position: x=%d, y=%d\n", p.OffsetX, p.OffsetY)

	default:
		fmt.Println("\nResult: EXACT FIT")
		fmt.Printf("  - Rendered width (%dpx) = reference width (%dpx)\n", p.RenderedWidth, referenceWidth)
		fmt.Printf("  - Final position: x=%d, y=%d\n", p.OffsetX, p.OffsetY)
	}
}
